package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/treeservice_ops/internal/apperrors"
	"github.com/SscSPs/treeservice_ops/internal/core/costing"
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	portsrepo "github.com/SscSPs/treeservice_ops/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/SscSPs/treeservice_ops/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type lineItemService struct {
	BaseService
	lineItemRepo portsrepo.LineItemRepositoryFacade
	jobRepo      portsrepo.JobReader
	resources    *resourceResolver
}

// NewLineItemService creates a new LineItemService.
func NewLineItemService(
	lineItemRepo portsrepo.LineItemRepositoryFacade,
	jobRepo portsrepo.JobReader,
	employees portsrepo.EmployeeReader,
	equipment portsrepo.EquipmentReader,
	loadouts portsrepo.LoadoutReader,
	opts ...Option,
) portssvc.LineItemSvcFacade {
	s := &lineItemService{
		BaseService:  newBaseService(opts),
		lineItemRepo: lineItemRepo,
		jobRepo:      jobRepo,
	}
	s.resources = newResourceResolver(&s.BaseService, employees, equipment, loadouts)
	return s
}

var _ portssvc.LineItemSvcFacade = (*lineItemService)(nil)

// openJob loads a job owned by the organization that still accepts changes.
func (s *lineItemService) openJob(ctx context.Context, companyID, jobID string) (*domain.Job, error) {
	job, err := s.job(ctx, companyID, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: job %s is %s and its line items can no longer change",
			apperrors.ErrValidation, job.JobNumber, job.Status)
	}
	return job, nil
}

func (s *lineItemService) job(ctx context.Context, companyID, jobID string) (*domain.Job, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}
	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		s.logUnlessExpected(ctx, err, "Failed to find job for line items", slog.String("job_id", jobID))
		return nil, err
	}
	if err := s.CheckOwner(ctx, companyID, job.CompanyID, "job", jobID); err != nil {
		return nil, err
	}
	return job, nil
}

// item loads a line item and checks it belongs to the job.
func (s *lineItemService) item(ctx context.Context, companyID, jobID, lineItemID string) (*domain.JobLineItem, error) {
	item, err := s.lineItemRepo.FindLineItemByID(ctx, lineItemID)
	if err != nil {
		s.logUnlessExpected(ctx, err, "Failed to find line item", slog.String("line_item_id", lineItemID))
		return nil, err
	}
	if err := s.CheckOwner(ctx, companyID, item.CompanyID, "line item", lineItemID); err != nil {
		return nil, err
	}
	if item.JobID != jobID {
		return nil, fmt.Errorf("%w: line item %s on job %s", apperrors.ErrNotFound, lineItemID, jobID)
	}
	return item, nil
}

func (s *lineItemService) ListLineItems(ctx context.Context, companyID string, jobID string) ([]domain.JobLineItem, error) {
	if _, err := s.job(ctx, companyID, jobID); err != nil {
		return nil, err
	}
	items, err := s.lineItemRepo.ListLineItemsByJob(ctx, jobID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list line items", slog.String("job_id", jobID))
		return nil, err
	}
	if items == nil {
		return []domain.JobLineItem{}, nil
	}
	return items, nil
}

func (s *lineItemService) AddLineItem(ctx context.Context, companyID string, jobID string, req dto.AddLineItemRequest, userID string) (*domain.JobLineItem, error) {
	job, err := s.openJob(ctx, companyID, jobID)
	if err != nil {
		return nil, err
	}

	loadoutID := ""
	if req.LoadoutID != nil {
		loadoutID = *req.LoadoutID
	}
	set, err := s.resources.resolve(ctx, companyID, loadoutID, req.EmployeeIDs, req.EquipmentIDs, req.ServiceType)
	if err != nil {
		s.logUnlessExpected(ctx, err, "Failed to resolve line item resources", slog.String("job_id", jobID))
		return nil, err
	}

	rate := decimal.Zero
	switch {
	case req.ProductionRate != nil:
		rate = *req.ProductionRate
	case set.HasLoadoutRate:
		rate = set.LoadoutRate
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.ServiceType
	}
	item := domain.JobLineItem{
		LineItemID:            uuid.NewString(),
		JobID:                 job.JobID,
		CompanyID:             companyID,
		IsBillable:            true,
		ServiceType:           req.ServiceType,
		DisplayName:           displayName,
		Quantity:              req.Quantity,
		DifficultyFactor:      req.DifficultyFactor,
		MarginPercent:         req.MarginPercent,
		Status:                domain.LineItemPending,
		ActualProductiveHours: decimal.Zero,
		VarianceHours:         decimal.Zero,
		AuditFields:           domain.NewAuditFields(userID, s.Now()),
	}
	if req.SortOrder != nil {
		item.SortOrder = *req.SortOrder
	}
	if err := priceLineItem(&item, set, rate); err != nil {
		return nil, err
	}

	if err := s.lineItemRepo.AddBillableLineItem(ctx, &item); err != nil {
		s.logUnlessExpected(ctx, err, "Failed to add line item", slog.String("job_id", jobID))
		return nil, err
	}

	s.LogInfo(ctx, "Line item added",
		slog.String("job_id", jobID),
		slog.String("line_item_id", item.LineItemID),
		slog.String("line_item_total", item.LineItemTotal.StringFixed(2)))
	return s.reload(ctx, item)
}

func (s *lineItemService) UpdateLineItem(ctx context.Context, companyID string, jobID string, lineItemID string, req dto.UpdateLineItemRequest, userID string) (*domain.JobLineItem, error) {
	if _, err := s.openJob(ctx, companyID, jobID); err != nil {
		return nil, err
	}
	item, err := s.item(ctx, companyID, jobID, lineItemID)
	if err != nil {
		return nil, err
	}

	mergeString(&item.DisplayName, req.DisplayName)
	if req.Status != nil {
		item.Status = *req.Status
	}

	// Phase items carry no pricing; only their label and progress change.
	if item.IsBillable {
		if err := s.repriceBillable(ctx, companyID, item, req); err != nil {
			return nil, err
		}
	}

	item.Touch(userID, s.Now())
	if err := s.lineItemRepo.UpdateLineItem(ctx, *item); err != nil {
		s.logUnlessExpected(ctx, err, "Failed to update line item", slog.String("line_item_id", lineItemID))
		return nil, err
	}

	s.LogInfo(ctx, "Line item updated",
		slog.String("job_id", jobID),
		slog.String("line_item_id", lineItemID))
	return s.reload(ctx, *item)
}

// repriceBillable merges the request onto a billable item and prices it at
// the current rates of its resources.
func (s *lineItemService) repriceBillable(ctx context.Context, companyID string, item *domain.JobLineItem, req dto.UpdateLineItemRequest) error {
	mergeDecimal(&item.Quantity, req.Quantity)
	mergeDecimal(&item.DifficultyFactor, req.DifficultyFactor)
	mergeDecimal(&item.MarginPercent, req.MarginPercent)
	mergeInt(&item.SortOrder, req.SortOrder)

	loadoutID := item.LoadoutID
	employeeIDs := item.EmployeeIDs
	equipmentIDs := item.EquipmentIDs
	resourcesChanged := false
	if req.LoadoutID != nil {
		loadoutID = *req.LoadoutID
		resourcesChanged = true
	}
	if req.EmployeeIDs != nil {
		employeeIDs = *req.EmployeeIDs
		resourcesChanged = true
	}
	if req.EquipmentIDs != nil {
		equipmentIDs = *req.EquipmentIDs
		resourcesChanged = true
	}
	// Picking members by hand replaces a previously selected loadout.
	if req.LoadoutID == nil && (req.EmployeeIDs != nil || req.EquipmentIDs != nil) {
		loadoutID = ""
	}

	set, err := s.resources.resolve(ctx, companyID, loadoutID, employeeIDs, equipmentIDs, item.ServiceType)
	if err != nil {
		s.logUnlessExpected(ctx, err, "Failed to resolve line item resources", slog.String("line_item_id", item.LineItemID))
		return err
	}

	rate := item.ProductionRate
	switch {
	case req.ProductionRate != nil:
		rate = *req.ProductionRate
	case resourcesChanged && set.HasLoadoutRate:
		rate = set.LoadoutRate
	}
	return priceLineItem(item, set, rate)
}

func (s *lineItemService) DeleteLineItem(ctx context.Context, companyID string, jobID string, lineItemID string, userID string) error {
	if _, err := s.openJob(ctx, companyID, jobID); err != nil {
		return err
	}
	item, err := s.item(ctx, companyID, jobID, lineItemID)
	if err != nil {
		return err
	}
	if !item.IsBillable {
		return fmt.Errorf("%w: phase line items cannot be deleted", apperrors.ErrValidation)
	}

	item.Touch(userID, s.Now())
	if err := s.lineItemRepo.DeleteLineItem(ctx, *item); err != nil {
		s.logUnlessExpected(ctx, err, "Failed to delete line item", slog.String("line_item_id", lineItemID))
		return err
	}

	s.LogInfo(ctx, "Line item deleted",
		slog.String("job_id", jobID),
		slog.String("line_item_id", lineItemID))
	return nil
}

// reload reads the item back so actuals rebuilt by the write are returned.
func (s *lineItemService) reload(ctx context.Context, item domain.JobLineItem) (*domain.JobLineItem, error) {
	stored, err := s.lineItemRepo.FindLineItemByID(ctx, item.LineItemID)
	if err != nil {
		s.LogError(ctx, err, "Failed to reload line item", slog.String("line_item_id", item.LineItemID))
		return &item, nil
	}
	return stored, nil
}

// priceLineItem runs the pricing calculator and copies the result onto item.
func priceLineItem(item *domain.JobLineItem, set resourceSet, rate decimal.Decimal) error {
	result, err := costing.CalculateLineItemPrice(costing.PricingInput{
		Quantity:         item.Quantity,
		DifficultyFactor: item.DifficultyFactor,
		ProductionRate:   rate,
		MarginPercent:    item.MarginPercent,
		CostPerHour:      set.CostPerHour,
		HasResources:     set.HasResources,
	})
	if err != nil {
		return err
	}

	item.LoadoutID = set.LoadoutID
	item.EmployeeIDs = set.EmployeeIDs
	item.EquipmentIDs = set.EquipmentIDs
	item.Score = result.BaseScore
	item.ProductionRate = result.ProductionRate
	item.EstimatedHours = result.EstimatedHours
	item.TotalCostPerHour = result.TotalCostPerHour
	item.BillingRate = result.BillingRate
	item.TotalCost = result.TotalCost
	item.LineItemTotal = result.LineItemTotal
	return nil
}
