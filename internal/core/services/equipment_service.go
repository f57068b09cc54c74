package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/treeservice_ops/internal/core/costing"
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	portsrepo "github.com/SscSPs/treeservice_ops/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/SscSPs/treeservice_ops/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type equipmentService struct {
	BaseService
	equipmentRepo     portsrepo.EquipmentRepositoryFacade
	defaultMultiplier decimal.Decimal
}

// NewEquipmentService creates a new EquipmentService. defaultMultiplier is
// stored on machines saved without an overhead multiplier.
func NewEquipmentService(repo portsrepo.EquipmentRepositoryFacade, defaultMultiplier decimal.Decimal, opts ...Option) portssvc.EquipmentSvcFacade {
	return &equipmentService{
		BaseService:       newBaseService(opts),
		equipmentRepo:     repo,
		defaultMultiplier: defaultMultiplier,
	}
}

var _ portssvc.EquipmentSvcFacade = (*equipmentService)(nil)

// applyCost fills the overhead default and recomputes the hourly cost.
func (s *equipmentService) applyCost(e *domain.Equipment) costing.EquipmentCostBreakdown {
	if !e.OverheadMultiplier.IsPositive() && s.defaultMultiplier.IsPositive() {
		e.OverheadMultiplier = s.defaultMultiplier
	}
	return costing.ApplyEquipmentCost(e)
}

func (s *equipmentService) CreateEquipment(ctx context.Context, companyID string, req dto.CreateEquipmentRequest, userID string) (*domain.Equipment, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}

	equipment := domain.Equipment{
		EquipmentID:            uuid.NewString(),
		CompanyID:              companyID,
		Name:                   req.Name,
		Category:               req.Category,
		Make:                   req.Make,
		Model:                  req.Model,
		Year:                   req.Year,
		PurchasePrice:          req.PurchasePrice,
		UsefulLifeYears:        req.UsefulLifeYears,
		SalvageValue:           req.SalvageValue,
		AnnualOperatingHours:   req.AnnualOperatingHours,
		FuelConsumptionPerHour: req.FuelConsumptionPerHour,
		FuelPricePerGallon:     req.FuelPricePerGallon,
		AnnualMaintenanceCost:  req.AnnualMaintenanceCost,
		AnnualOtherCosts:       req.AnnualOtherCosts,
		OverheadMultiplier:     req.OverheadMultiplier,
		Status:                 domain.EquipmentActive,
		AuditFields:            domain.NewAuditFields(userID, s.Now()),
	}
	s.applyCost(&equipment)

	if err := s.equipmentRepo.SaveEquipment(ctx, equipment); err != nil {
		s.LogError(ctx, err, "Failed to save equipment",
			slog.String("equipment_id", equipment.EquipmentID),
			slog.String("company_id", companyID))
		return nil, err
	}

	s.LogInfo(ctx, "Equipment created successfully",
		slog.String("equipment_id", equipment.EquipmentID),
		slog.String("hourly_cost", equipment.HourlyCost.StringFixed(2)))
	return &equipment, nil
}

func (s *equipmentService) GetEquipmentByID(ctx context.Context, companyID string, equipmentID string) (*domain.Equipment, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}
	equipment, err := s.equipmentRepo.FindEquipmentByID(ctx, equipmentID)
	if err != nil {
		s.logUnlessExpected(ctx, err, "Failed to find equipment by ID", slog.String("equipment_id", equipmentID))
		return nil, err
	}
	if err := s.CheckOwner(ctx, companyID, equipment.CompanyID, "equipment", equipmentID); err != nil {
		return nil, err
	}
	return equipment, nil
}

func (s *equipmentService) ListEquipment(ctx context.Context, companyID string, params dto.ListEquipmentParams) ([]domain.Equipment, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}
	items, err := s.equipmentRepo.ListEquipment(ctx, companyID, params.Status,
		portsrepo.Page{Limit: params.Limit, Offset: params.Offset})
	if err != nil {
		s.LogError(ctx, err, "Failed to list equipment", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	if items == nil {
		return []domain.Equipment{}, nil
	}
	return items, nil
}

func (s *equipmentService) GetCostBreakdown(ctx context.Context, companyID string, equipmentID string) (*costing.EquipmentCostBreakdown, error) {
	equipment, err := s.GetEquipmentByID(ctx, companyID, equipmentID)
	if err != nil {
		return nil, err
	}
	breakdown := s.applyCost(equipment)
	return &breakdown, nil
}

func (s *equipmentService) UpdateEquipment(ctx context.Context, companyID string, equipmentID string, req dto.UpdateEquipmentRequest, userID string) (*domain.Equipment, error) {
	equipment, err := s.GetEquipmentByID(ctx, companyID, equipmentID)
	if err != nil {
		return nil, err
	}

	mergeString(&equipment.Name, req.Name)
	mergeString(&equipment.Category, req.Category)
	mergeString(&equipment.Make, req.Make)
	mergeString(&equipment.Model, req.Model)
	mergeInt(&equipment.Year, req.Year)
	mergeDecimal(&equipment.PurchasePrice, req.PurchasePrice)
	mergeDecimal(&equipment.UsefulLifeYears, req.UsefulLifeYears)
	mergeDecimal(&equipment.SalvageValue, req.SalvageValue)
	mergeDecimal(&equipment.AnnualOperatingHours, req.AnnualOperatingHours)
	mergeDecimal(&equipment.FuelConsumptionPerHour, req.FuelConsumptionPerHour)
	mergeDecimal(&equipment.FuelPricePerGallon, req.FuelPricePerGallon)
	mergeDecimal(&equipment.AnnualMaintenanceCost, req.AnnualMaintenanceCost)
	mergeDecimal(&equipment.AnnualOtherCosts, req.AnnualOtherCosts)
	mergeDecimal(&equipment.OverheadMultiplier, req.OverheadMultiplier)
	if req.Status != nil {
		equipment.Status = *req.Status
	}

	s.applyCost(equipment)
	equipment.Touch(userID, s.Now())

	if err := s.equipmentRepo.UpdateEquipment(ctx, *equipment); err != nil {
		s.LogError(ctx, err, "Failed to update equipment", slog.String("equipment_id", equipmentID))
		return nil, err
	}

	s.LogInfo(ctx, "Equipment updated successfully",
		slog.String("equipment_id", equipmentID),
		slog.String("hourly_cost", equipment.HourlyCost.StringFixed(2)))
	return equipment, nil
}

func (s *equipmentService) RetireEquipment(ctx context.Context, companyID string, equipmentID string, userID string) error {
	equipment, err := s.GetEquipmentByID(ctx, companyID, equipmentID)
	if err != nil {
		return err
	}
	if equipment.Status == domain.EquipmentRetired {
		return nil
	}

	equipment.Status = domain.EquipmentRetired
	equipment.Touch(userID, s.Now())
	if err := s.equipmentRepo.UpdateEquipment(ctx, *equipment); err != nil {
		s.LogError(ctx, err, "Failed to retire equipment", slog.String("equipment_id", equipmentID))
		return err
	}

	s.LogInfo(ctx, "Equipment retired", slog.String("equipment_id", equipmentID))
	return nil
}
