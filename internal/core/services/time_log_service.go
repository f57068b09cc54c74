package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/apperrors"
	"github.com/SscSPs/treeservice_ops/internal/core/costing"
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	portsrepo "github.com/SscSPs/treeservice_ops/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/SscSPs/treeservice_ops/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type timeLogService struct {
	BaseService
	timeLogRepo  portsrepo.TimeLogRepositoryFacade
	jobRepo      portsrepo.JobReader
	lineItemRepo portsrepo.LineItemReader
	resources    *resourceResolver
}

// NewTimeLogService creates a new TimeLogService.
func NewTimeLogService(
	timeLogRepo portsrepo.TimeLogRepositoryFacade,
	jobRepo portsrepo.JobReader,
	lineItemRepo portsrepo.LineItemReader,
	employees portsrepo.EmployeeReader,
	equipment portsrepo.EquipmentReader,
	opts ...Option,
) portssvc.TimeLogSvcFacade {
	s := &timeLogService{
		BaseService:  newBaseService(opts),
		timeLogRepo:  timeLogRepo,
		jobRepo:      jobRepo,
		lineItemRepo: lineItemRepo,
	}
	s.resources = newResourceResolver(&s.BaseService, employees, equipment, nil)
	return s
}

var _ portssvc.TimeLogSvcFacade = (*timeLogService)(nil)

func (s *timeLogService) GetTimeLogByID(ctx context.Context, companyID string, timeLogID string) (*domain.TimeLog, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}
	log, err := s.timeLogRepo.FindTimeLogByID(ctx, timeLogID)
	if err != nil {
		s.logUnlessExpected(ctx, err, "Failed to get time log", slog.String("time_log_id", timeLogID))
		return nil, err
	}
	if err := s.CheckOwner(ctx, companyID, log.CompanyID, "time log", timeLogID); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *timeLogService) ListTimeLogs(ctx context.Context, companyID string, params dto.ListTimeLogsParams) ([]domain.TimeLog, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}
	if err := checkSchedule(params.From, params.To); err != nil {
		return nil, err
	}
	logs, err := s.timeLogRepo.ListTimeLogs(ctx, companyID, portsrepo.TimeLogFilter{
		JobID:      params.JobID,
		EmployeeID: params.EmployeeID,
		From:       params.From,
		To:         params.To,
		Page:       portsrepo.Page{Limit: params.Limit, Offset: params.Offset},
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list time logs")
		return nil, err
	}
	if logs == nil {
		return []domain.TimeLog{}, nil
	}
	return logs, nil
}

// GetActiveTimer returns the employee's running timer or ErrNotFound.
func (s *timeLogService) GetActiveTimer(ctx context.Context, companyID string, employeeID string) (*domain.TimeLog, error) {
	if _, err := s.employee(ctx, companyID, employeeID); err != nil {
		return nil, err
	}
	log, err := s.timeLogRepo.FindActiveTimeLog(ctx, employeeID)
	if err != nil {
		s.logUnlessExpected(ctx, err, "Failed to get active timer", slog.String("employee_id", employeeID))
		return nil, err
	}
	return log, nil
}

func (s *timeLogService) StartTimer(ctx context.Context, companyID string, req dto.StartTimerRequest, userID string) (*domain.TimeLog, error) {
	if _, err := s.employee(ctx, companyID, req.EmployeeID); err != nil {
		return nil, err
	}
	active, err := s.timeLogRepo.FindActiveTimeLog(ctx, req.EmployeeID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: employee already has an active timer (%s)", apperrors.ErrValidation, active.TimeLogID)
	case !isNotFound(err):
		s.LogError(ctx, err, "Failed to check active timer", slog.String("employee_id", req.EmployeeID))
		return nil, err
	}

	job, err := s.openJob(ctx, companyID, req.JobID)
	if err != nil {
		return nil, err
	}
	lineItemID, err := s.lineItemOf(ctx, job.JobID, req.LineItemID)
	if err != nil {
		return nil, err
	}
	if _, err := s.resources.equipment(ctx, companyID, req.EquipmentIDs); err != nil {
		s.logUnlessExpected(ctx, err, "Failed to resolve timer equipment")
		return nil, err
	}

	now := s.Now()
	log := domain.TimeLog{
		TimeLogID:     uuid.NewString(),
		CompanyID:     companyID,
		JobID:         job.JobID,
		LineItemID:    lineItemID,
		EmployeeID:    req.EmployeeID,
		EquipmentIDs:  uniqueIDs(req.EquipmentIDs),
		StartTime:     now,
		EmployeeRate:  decimal.Zero,
		EquipmentCost: decimal.Zero,
		DurationHours: decimal.Zero,
		TotalCost:     decimal.Zero,
		Notes:         req.Notes,
		AuditFields:   domain.NewAuditFields(userID, now),
	}
	if err := s.timeLogRepo.StartTimeLog(ctx, log); err != nil {
		s.logUnlessExpected(ctx, err, "Failed to start timer", slog.String("employee_id", req.EmployeeID))
		return nil, err
	}

	s.LogInfo(ctx, "Timer started",
		slog.String("time_log_id", log.TimeLogID),
		slog.String("job_id", log.JobID),
		slog.String("employee_id", log.EmployeeID))
	return &log, nil
}

// StopTimer closes a running timer, capturing the current employee and
// equipment rates so later rate changes do not alter the cost.
func (s *timeLogService) StopTimer(ctx context.Context, companyID string, timeLogID string, req dto.StopTimerRequest, userID string) (*domain.TimeLog, error) {
	log, err := s.GetTimeLogByID(ctx, companyID, timeLogID)
	if err != nil {
		return nil, err
	}
	if !log.IsActive() {
		return nil, fmt.Errorf("%w: time log %s is not running", apperrors.ErrValidation, timeLogID)
	}

	now := s.Now()
	end := now
	if req.EndTime != nil {
		end = req.EndTime.UTC()
	}
	if !end.After(log.StartTime) {
		return nil, fmt.Errorf("%w: end time must be after start time", apperrors.ErrValidation)
	}
	mergeString(&log.Notes, req.Notes)

	if err := s.captureRates(ctx, companyID, log); err != nil {
		return nil, err
	}
	log.EndTime = &end
	recost(log)
	log.Touch(userID, now)

	if err := s.timeLogRepo.StopTimeLog(ctx, *log); err != nil {
		s.logUnlessExpected(ctx, err, "Failed to stop timer", slog.String("time_log_id", timeLogID))
		return nil, err
	}

	s.LogInfo(ctx, "Timer stopped",
		slog.String("time_log_id", timeLogID),
		slog.String("duration_hours", log.DurationHours.StringFixed(2)))
	return log, nil
}

func (s *timeLogService) CreateTimeLog(ctx context.Context, companyID string, req dto.CreateTimeLogRequest, userID string) (*domain.TimeLog, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, fmt.Errorf("%w: end time must be after start time", apperrors.ErrValidation)
	}
	if _, err := s.employee(ctx, companyID, req.EmployeeID); err != nil {
		return nil, err
	}
	job, err := s.openJob(ctx, companyID, req.JobID)
	if err != nil {
		return nil, err
	}
	lineItemID, err := s.lineItemOf(ctx, job.JobID, req.LineItemID)
	if err != nil {
		return nil, err
	}

	end := req.EndTime.UTC()
	log := domain.TimeLog{
		TimeLogID:    uuid.NewString(),
		CompanyID:    companyID,
		JobID:        job.JobID,
		LineItemID:   lineItemID,
		EmployeeID:   req.EmployeeID,
		EquipmentIDs: uniqueIDs(req.EquipmentIDs),
		StartTime:    req.StartTime.UTC(),
		EndTime:      &end,
		Notes:        req.Notes,
		AuditFields:  domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.captureRates(ctx, companyID, &log); err != nil {
		return nil, err
	}
	recost(&log)

	if err := s.timeLogRepo.SaveTimeLog(ctx, log); err != nil {
		s.logUnlessExpected(ctx, err, "Failed to create time log", slog.String("job_id", job.JobID))
		return nil, err
	}

	s.LogInfo(ctx, "Time log created",
		slog.String("time_log_id", log.TimeLogID),
		slog.String("job_id", log.JobID))
	return &log, nil
}

// UpdateTimeLog edits a closed entry and recomputes its cost from the rates
// captured when it was closed.
func (s *timeLogService) UpdateTimeLog(ctx context.Context, companyID string, timeLogID string, req dto.UpdateTimeLogRequest, userID string) (*domain.TimeLog, error) {
	log, err := s.GetTimeLogByID(ctx, companyID, timeLogID)
	if err != nil {
		return nil, err
	}
	if log.IsActive() {
		return nil, fmt.Errorf("%w: stop the timer before editing it", apperrors.ErrValidation)
	}
	if _, err := s.openJob(ctx, companyID, log.JobID); err != nil {
		return nil, err
	}

	if req.LineItemID != nil {
		lineItemID, err := s.lineItemOf(ctx, log.JobID, req.LineItemID)
		if err != nil {
			return nil, err
		}
		log.LineItemID = lineItemID
	}
	if req.StartTime != nil {
		log.StartTime = req.StartTime.UTC()
	}
	if req.EndTime != nil {
		end := req.EndTime.UTC()
		log.EndTime = &end
	}
	if !log.EndTime.After(log.StartTime) {
		return nil, fmt.Errorf("%w: end time must be after start time", apperrors.ErrValidation)
	}
	mergeString(&log.Notes, req.Notes)

	recost(log)
	log.Touch(userID, s.Now())
	if err := s.timeLogRepo.UpdateTimeLog(ctx, *log); err != nil {
		s.logUnlessExpected(ctx, err, "Failed to update time log", slog.String("time_log_id", timeLogID))
		return nil, err
	}

	s.LogInfo(ctx, "Time log updated", slog.String("time_log_id", timeLogID))
	return log, nil
}

func (s *timeLogService) DeleteTimeLog(ctx context.Context, companyID string, timeLogID string, userID string) error {
	log, err := s.GetTimeLogByID(ctx, companyID, timeLogID)
	if err != nil {
		return err
	}
	if _, err := s.openJob(ctx, companyID, log.JobID); err != nil {
		return err
	}

	log.Touch(userID, s.Now())
	if err := s.timeLogRepo.DeleteTimeLog(ctx, *log); err != nil {
		s.logUnlessExpected(ctx, err, "Failed to delete time log", slog.String("time_log_id", timeLogID))
		return err
	}

	s.LogInfo(ctx, "Time log deleted", slog.String("time_log_id", timeLogID))
	return nil
}

func (s *timeLogService) employee(ctx context.Context, companyID, employeeID string) (*domain.Employee, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}
	found, err := s.resources.employees(ctx, companyID, []string{employeeID})
	if err != nil {
		s.logUnlessExpected(ctx, err, "Failed to find employee", slog.String("employee_id", employeeID))
		return nil, err
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: employee is required", apperrors.ErrValidation)
	}
	return &found[0], nil
}

// openJob loads a job of the organization that still accepts time.
func (s *timeLogService) openJob(ctx context.Context, companyID, jobID string) (*domain.Job, error) {
	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		s.logUnlessExpected(ctx, err, "Failed to find job for time log", slog.String("job_id", jobID))
		return nil, err
	}
	if err := s.CheckOwner(ctx, companyID, job.CompanyID, "job", jobID); err != nil {
		return nil, err
	}
	if !job.AcceptsTime() {
		return nil, fmt.Errorf("%w: job %s is %s and no longer accepts time",
			apperrors.ErrValidation, job.JobNumber, job.Status)
	}
	return job, nil
}

// lineItemOf checks the optional line item belongs to the job.
func (s *timeLogService) lineItemOf(ctx context.Context, jobID string, lineItemID *string) (string, error) {
	if lineItemID == nil || *lineItemID == "" {
		return "", nil
	}
	item, err := s.lineItemRepo.FindLineItemByID(ctx, *lineItemID)
	if err != nil {
		s.logUnlessExpected(ctx, err, "Failed to find line item for time log", slog.String("line_item_id", *lineItemID))
		return "", err
	}
	if item.JobID != jobID {
		return "", fmt.Errorf("%w: line item %s does not belong to job %s", apperrors.ErrValidation, *lineItemID, jobID)
	}
	return item.LineItemID, nil
}

// captureRates stamps the employee's effective rate and the combined hourly
// cost of the log's equipment onto the log.
func (s *timeLogService) captureRates(ctx context.Context, companyID string, log *domain.TimeLog) error {
	emp, err := s.employee(ctx, companyID, log.EmployeeID)
	if err != nil {
		return err
	}
	machines, err := s.resources.equipment(ctx, companyID, log.EquipmentIDs)
	if err != nil {
		s.logUnlessExpected(ctx, err, "Failed to resolve time log equipment", slog.String("time_log_id", log.TimeLogID))
		return err
	}
	equipCost := decimal.Zero
	for _, m := range machines {
		equipCost = equipCost.Add(m.HourlyCost)
	}
	log.EmployeeRate = emp.EffectiveRate
	log.EquipmentCost = equipCost
	return nil
}

// recost derives duration and cost of a closed log from its captured rates.
func recost(log *domain.TimeLog) {
	end := time.Time{}
	if log.EndTime != nil {
		end = *log.EndTime
	}
	log.DurationHours = costing.DurationHours(log.StartTime, end)
	log.TotalCost = costing.TimeLogCost(log.EmployeeRate, log.EquipmentCost, log.DurationHours)
}
