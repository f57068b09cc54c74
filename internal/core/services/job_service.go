package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/treeservice_ops/internal/apperrors"
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	portsrepo "github.com/SscSPs/treeservice_ops/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/SscSPs/treeservice_ops/internal/dto"
	"github.com/SscSPs/treeservice_ops/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultJobPageSize = 20

// EventTracker receives product analytics events. The PostHog client wrapper
// satisfies it.
type EventTracker interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}

type jobService struct {
	BaseService
	jobRepo      portsrepo.JobRepositoryFacade
	customerRepo portsrepo.CustomerReader
	lineItemRepo portsrepo.LineItemReader
	reports      portssvc.ProjectReportGenerator
	events       EventTracker
}

// NewJobService creates a new JobService. reports and events may be nil.
func NewJobService(
	jobRepo portsrepo.JobRepositoryFacade,
	customerRepo portsrepo.CustomerReader,
	lineItemRepo portsrepo.LineItemReader,
	reports portssvc.ProjectReportGenerator,
	events EventTracker,
	opts ...Option,
) portssvc.JobSvcFacade {
	return &jobService{
		BaseService:  newBaseService(opts),
		jobRepo:      jobRepo,
		customerRepo: customerRepo,
		lineItemRepo: lineItemRepo,
		reports:      reports,
		events:       events,
	}
}

var _ portssvc.JobSvcFacade = (*jobService)(nil)

func (s *jobService) CreateJob(ctx context.Context, companyID string, req dto.CreateJobRequest, userID string) (*domain.Job, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}
	if err := s.checkCustomer(ctx, companyID, req.CustomerID); err != nil {
		return nil, err
	}
	if err := checkSchedule(req.ScheduledStart, req.ScheduledEnd); err != nil {
		return nil, err
	}

	now := s.Now()
	job := domain.Job{
		JobID:                 uuid.NewString(),
		CompanyID:             companyID,
		CustomerID:            req.CustomerID,
		Title:                 req.Title,
		Description:           req.Description,
		SiteAddress:           req.SiteAddress,
		Status:                domain.JobDraft,
		ScheduledStart:        req.ScheduledStart,
		ScheduledEnd:          req.ScheduledEnd,
		EstimatedTotalHours:   decimal.Zero,
		TotalInvestment:       decimal.Zero,
		ActualProductiveHours: decimal.Zero,
		ActualSupportHours:    decimal.Zero,
		ActualTotalCost:       decimal.Zero,
		AuditFields:           domain.NewAuditFields(userID, now),
	}
	phases := seedPhases(job, userID)

	if err := s.jobRepo.CreateJob(ctx, &job, phases); err != nil {
		s.LogError(ctx, err, "Failed to create job",
			slog.String("job_id", job.JobID),
			slog.String("company_id", companyID))
		return nil, err
	}
	job.LineItems = phases

	s.LogInfo(ctx, "Job created successfully",
		slog.String("job_id", job.JobID),
		slog.String("job_number", job.JobNumber))
	return &job, nil
}

// seedPhases builds the non-billable phase items every job starts with.
func seedPhases(job domain.Job, userID string) []domain.JobLineItem {
	phases := make([]domain.JobLineItem, 0, len(domain.DefaultPhases))
	for _, p := range domain.DefaultPhases {
		phases = append(phases, domain.JobLineItem{
			LineItemID:            uuid.NewString(),
			JobID:                 job.JobID,
			CompanyID:             job.CompanyID,
			IsBillable:            false,
			ServiceType:           p.ServiceType,
			DisplayName:           p.DisplayName,
			SortOrder:             p.SortOrder,
			Quantity:              decimal.Zero,
			DifficultyFactor:      decimal.Zero,
			Score:                 decimal.Zero,
			ProductionRate:        decimal.Zero,
			EmployeeIDs:           []string{},
			EquipmentIDs:          []string{},
			TotalCostPerHour:      decimal.Zero,
			MarginPercent:         decimal.Zero,
			BillingRate:           decimal.Zero,
			EstimatedHours:        decimal.Zero,
			TotalCost:             decimal.Zero,
			LineItemTotal:         decimal.Zero,
			Status:                domain.LineItemPending,
			ActualProductiveHours: decimal.Zero,
			VarianceHours:         decimal.Zero,
			AuditFields:           domain.NewAuditFields(userID, job.CreatedAt),
		})
	}
	return phases
}

// findJob loads a job without line items and checks ownership.
func (s *jobService) findJob(ctx context.Context, companyID, jobID string) (*domain.Job, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}
	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		s.logUnlessExpected(ctx, err, "Failed to find job by ID", slog.String("job_id", jobID))
		return nil, err
	}
	if err := s.CheckOwner(ctx, companyID, job.CompanyID, "job", jobID); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) GetJobByID(ctx context.Context, companyID string, jobID string) (*domain.Job, error) {
	job, err := s.findJob(ctx, companyID, jobID)
	if err != nil {
		return nil, err
	}
	items, err := s.lineItemRepo.ListLineItemsByJob(ctx, jobID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list line items of job", slog.String("job_id", jobID))
		return nil, err
	}
	job.LineItems = items
	return job, nil
}

func (s *jobService) ListJobs(ctx context.Context, companyID string, params dto.ListJobsParams) (*dto.ListJobsResponse, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}
	if params.Status != "" && !params.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown job status %q", apperrors.ErrValidation, params.Status)
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultJobPageSize
	}

	filter := portsrepo.JobFilter{
		Status:     params.Status,
		CustomerID: params.CustomerID,
		Limit:      limit + 1, // one extra row tells whether another page exists
	}
	if params.NextToken != "" {
		createdAt, jobID, err := pagination.DecodeCursor(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		filter.AfterCreatedAt = &createdAt
		filter.AfterJobID = jobID
	}

	jobs, err := s.jobRepo.ListJobs(ctx, companyID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list jobs", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	res := &dto.ListJobsResponse{}
	if len(jobs) > limit {
		jobs = jobs[:limit]
		last := jobs[len(jobs)-1]
		res.NextToken = pagination.EncodeCursor(last.CreatedAt, last.JobID)
	}
	res.Jobs = dto.ToListJobResponse(jobs)
	return res, nil
}

func (s *jobService) UpdateJob(ctx context.Context, companyID string, jobID string, req dto.UpdateJobRequest, userID string) (*domain.Job, error) {
	job, err := s.findJob(ctx, companyID, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: job %s is %s and can no longer be edited", apperrors.ErrValidation, job.JobNumber, job.Status)
	}

	if req.CustomerID != nil && *req.CustomerID != job.CustomerID {
		if err := s.checkCustomer(ctx, companyID, *req.CustomerID); err != nil {
			return nil, err
		}
		job.CustomerID = *req.CustomerID
	}
	mergeString(&job.Title, req.Title)
	mergeString(&job.Description, req.Description)
	mergeString(&job.SiteAddress, req.SiteAddress)
	if req.ScheduledStart != nil {
		job.ScheduledStart = req.ScheduledStart
	}
	if req.ScheduledEnd != nil {
		job.ScheduledEnd = req.ScheduledEnd
	}
	if err := checkSchedule(job.ScheduledStart, job.ScheduledEnd); err != nil {
		return nil, err
	}

	job.Touch(userID, s.Now())
	if err := s.jobRepo.UpdateJob(ctx, *job); err != nil {
		s.LogError(ctx, err, "Failed to update job", slog.String("job_id", jobID))
		return nil, err
	}

	s.LogInfo(ctx, "Job updated successfully", slog.String("job_id", jobID))
	return s.GetJobByID(ctx, companyID, jobID)
}

func (s *jobService) DeleteJob(ctx context.Context, companyID string, jobID string, userID string) error {
	job, err := s.findJob(ctx, companyID, jobID)
	if err != nil {
		return err
	}
	if job.Status != domain.JobDraft && job.Status != domain.JobCancelled {
		return fmt.Errorf("%w: only draft or cancelled jobs can be deleted, job %s is %s",
			apperrors.ErrValidation, job.JobNumber, job.Status)
	}

	logs, err := s.jobRepo.CountTimeLogsForJob(ctx, jobID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count time logs for job", slog.String("job_id", jobID))
		return err
	}
	if logs > 0 {
		return apperrors.Blocked("job", logs, "time logs")
	}

	if err := s.jobRepo.DeleteJob(ctx, jobID); err != nil {
		s.LogError(ctx, err, "Failed to delete job", slog.String("job_id", jobID))
		return err
	}
	s.LogInfo(ctx, "Job deleted successfully",
		slog.String("job_id", jobID),
		slog.String("user_id", userID))
	return nil
}

func (s *jobService) TransitionStatus(ctx context.Context, companyID string, jobID string, status domain.JobStatus, userID string) (*domain.Job, error) {
	job, err := s.findJob(ctx, companyID, jobID)
	if err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown job status %q", apperrors.ErrValidation, status)
	}
	if !domain.CanTransition(job.Status, status) {
		return nil, fmt.Errorf("%w: job cannot move from %s to %s", apperrors.ErrValidation, job.Status, status)
	}

	now := s.Now()
	if status == domain.JobCompleted {
		active, err := s.jobRepo.CountActiveTimeLogsForJob(ctx, jobID)
		if err != nil {
			s.LogError(ctx, err, "Failed to count active time logs", slog.String("job_id", jobID))
			return nil, err
		}
		if active > 0 {
			return nil, fmt.Errorf("%w: job %s has %d running timers, stop them before completing",
				apperrors.ErrValidation, job.JobNumber, active)
		}
		if err := s.jobRepo.CompleteJob(ctx, jobID, job.Status, userID, now); err != nil {
			s.LogError(ctx, err, "Failed to complete job", slog.String("job_id", jobID))
			return nil, err
		}
		s.afterCompletion(ctx, *job, userID)
	} else {
		if err := s.jobRepo.UpdateJobStatus(ctx, jobID, job.Status, status, userID, now); err != nil {
			s.LogError(ctx, err, "Failed to update job status", slog.String("job_id", jobID))
			return nil, err
		}
	}

	s.LogInfo(ctx, "Job status changed",
		slog.String("job_id", jobID),
		slog.String("from", string(job.Status)),
		slog.String("to", string(status)))
	return s.GetJobByID(ctx, companyID, jobID)
}

// afterCompletion generates the report and records the analytics event. A
// report failure does not undo the completion; the report can be generated
// again through the report endpoint.
func (s *jobService) afterCompletion(ctx context.Context, job domain.Job, userID string) {
	if s.reports != nil {
		if _, err := s.reports.GenerateForJob(ctx, job.CompanyID, job.JobID, userID); err != nil {
			s.LogError(ctx, err, "Failed to generate project report after completion",
				slog.String("job_id", job.JobID))
		}
	}
	if s.events != nil {
		s.events.Enqueue(userID, "job_completed", map[string]any{
			"company_id": job.CompanyID,
			"job_id":     job.JobID,
			"job_number": job.JobNumber,
		})
	}
}

func (s *jobService) MarkJobPaid(ctx context.Context, companyID string, jobID string, userID string) (*domain.Job, error) {
	job, err := s.findJob(ctx, companyID, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != domain.JobCompleted {
		return nil, fmt.Errorf("%w: only completed jobs can be marked paid", apperrors.ErrValidation)
	}
	if job.PaidAt == nil {
		if err := s.jobRepo.MarkJobPaid(ctx, jobID, userID, s.Now()); err != nil {
			s.LogError(ctx, err, "Failed to mark job paid", slog.String("job_id", jobID))
			return nil, err
		}
		s.LogInfo(ctx, "Job marked paid", slog.String("job_id", jobID))
	}
	return s.GetJobByID(ctx, companyID, jobID)
}

func (s *jobService) checkCustomer(ctx context.Context, companyID, customerID string) error {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		s.logUnlessExpected(ctx, err, "Failed to find customer for job", slog.String("customer_id", customerID))
		return err
	}
	return s.CheckOwner(ctx, companyID, customer.CompanyID, "customer", customerID)
}
