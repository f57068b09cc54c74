package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/treeservice_ops/internal/apperrors"
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	portsrepo "github.com/SscSPs/treeservice_ops/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/SscSPs/treeservice_ops/internal/dto"
	"github.com/google/uuid"
)

type loadoutService struct {
	BaseService
	loadoutRepo portsrepo.LoadoutRepositoryFacade
	resources   *resourceResolver
}

// NewLoadoutService creates a new LoadoutService.
func NewLoadoutService(repo portsrepo.LoadoutRepositoryFacade, employees portsrepo.EmployeeReader, equipment portsrepo.EquipmentReader, opts ...Option) portssvc.LoadoutSvcFacade {
	s := &loadoutService{
		BaseService: newBaseService(opts),
		loadoutRepo: repo,
	}
	s.resources = newResourceResolver(&s.BaseService, employees, equipment, repo)
	return s
}

var _ portssvc.LoadoutSvcFacade = (*loadoutService)(nil)

func (s *loadoutService) CreateLoadout(ctx context.Context, companyID string, req dto.CreateLoadoutRequest, userID string) (*domain.Loadout, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}
	if err := checkProductionRates(req.ProductionRates); err != nil {
		return nil, err
	}

	loadout := domain.Loadout{
		LoadoutID:       uuid.NewString(),
		CompanyID:       companyID,
		Name:            req.Name,
		Description:     req.Description,
		EmployeeIDs:     uniqueIDs(req.EmployeeIDs),
		EquipmentIDs:    uniqueIDs(req.EquipmentIDs),
		ProductionRates: dto.ToProductionRates(req.ProductionRates),
		AuditFields:     domain.NewAuditFields(userID, s.Now()),
	}

	total, err := s.resources.memberCost(ctx, companyID, loadout.EmployeeIDs, loadout.EquipmentIDs)
	if err != nil {
		s.logUnlessExpected(ctx, err, "Failed to resolve loadout members", slog.String("company_id", companyID))
		return nil, err
	}
	loadout.TotalHourlyCost = total

	if err := s.loadoutRepo.SaveLoadout(ctx, loadout); err != nil {
		s.LogError(ctx, err, "Failed to save loadout", slog.String("loadout_id", loadout.LoadoutID))
		return nil, err
	}

	s.LogInfo(ctx, "Loadout created successfully",
		slog.String("loadout_id", loadout.LoadoutID),
		slog.String("total_hourly_cost", total.StringFixed(2)))
	return &loadout, nil
}

func (s *loadoutService) GetLoadoutByID(ctx context.Context, companyID string, loadoutID string) (*domain.Loadout, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}
	loadout, err := s.resources.loadout(ctx, companyID, loadoutID)
	if err != nil {
		s.logUnlessExpected(ctx, err, "Failed to find loadout by ID", slog.String("loadout_id", loadoutID))
		return nil, err
	}
	return loadout, nil
}

func (s *loadoutService) ListLoadouts(ctx context.Context, companyID string, params dto.ListParams) ([]domain.Loadout, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}
	loadouts, err := s.loadoutRepo.ListLoadouts(ctx, companyID, portsrepo.Page{Limit: params.Limit, Offset: params.Offset})
	if err != nil {
		s.LogError(ctx, err, "Failed to list loadouts", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list loadouts: %w", err)
	}
	if loadouts == nil {
		return []domain.Loadout{}, nil
	}
	return loadouts, nil
}

func (s *loadoutService) UpdateLoadout(ctx context.Context, companyID string, loadoutID string, req dto.UpdateLoadoutRequest, userID string) (*domain.Loadout, error) {
	loadout, err := s.GetLoadoutByID(ctx, companyID, loadoutID)
	if err != nil {
		return nil, err
	}

	mergeString(&loadout.Name, req.Name)
	mergeString(&loadout.Description, req.Description)
	if req.EmployeeIDs != nil {
		loadout.EmployeeIDs = uniqueIDs(*req.EmployeeIDs)
	}
	if req.EquipmentIDs != nil {
		loadout.EquipmentIDs = uniqueIDs(*req.EquipmentIDs)
	}
	if req.ProductionRates != nil {
		if err := checkProductionRates(*req.ProductionRates); err != nil {
			return nil, err
		}
		loadout.ProductionRates = dto.ToProductionRates(*req.ProductionRates)
	}

	total, err := s.resources.memberCost(ctx, companyID, loadout.EmployeeIDs, loadout.EquipmentIDs)
	if err != nil {
		s.logUnlessExpected(ctx, err, "Failed to resolve loadout members", slog.String("loadout_id", loadoutID))
		return nil, err
	}
	loadout.TotalHourlyCost = total
	loadout.Touch(userID, s.Now())

	if err := s.loadoutRepo.UpdateLoadout(ctx, *loadout); err != nil {
		s.LogError(ctx, err, "Failed to update loadout", slog.String("loadout_id", loadoutID))
		return nil, err
	}

	s.LogInfo(ctx, "Loadout updated successfully",
		slog.String("loadout_id", loadoutID),
		slog.String("total_hourly_cost", total.StringFixed(2)))
	return loadout, nil
}

func (s *loadoutService) DeleteLoadout(ctx context.Context, companyID string, loadoutID string, userID string) error {
	if _, err := s.GetLoadoutByID(ctx, companyID, loadoutID); err != nil {
		return err
	}

	items, err := s.loadoutRepo.CountLineItemsForLoadout(ctx, loadoutID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count line items for loadout", slog.String("loadout_id", loadoutID))
		return err
	}
	if items > 0 {
		return apperrors.Blocked("loadout", items, "line items")
	}

	if err := s.loadoutRepo.DeleteLoadout(ctx, loadoutID); err != nil {
		s.LogError(ctx, err, "Failed to delete loadout", slog.String("loadout_id", loadoutID))
		return err
	}
	s.LogInfo(ctx, "Loadout deleted successfully",
		slog.String("loadout_id", loadoutID),
		slog.String("user_id", userID))
	return nil
}

// checkProductionRates rejects a second rate for the same service type.
func checkProductionRates(rates []dto.ProductionRateRequest) error {
	seen := make(map[string]bool, len(rates))
	for _, r := range rates {
		if !r.Unit.IsValid() {
			return fmt.Errorf("%w: unknown production unit %q", apperrors.ErrValidation, r.Unit)
		}
		if !r.Rate.IsPositive() {
			return fmt.Errorf("%w: production rate for %s must be greater than zero", apperrors.ErrValidation, r.ServiceType)
		}
		if seen[strings.ToLower(r.ServiceType)] {
			return fmt.Errorf("%w: duplicate production rate for %s", apperrors.ErrValidation, r.ServiceType)
		}
		seen[strings.ToLower(r.ServiceType)] = true
	}
	return nil
}
