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
	"github.com/SscSPs/treeservice_ops/internal/export"
	"github.com/google/uuid"
)

type projectReportService struct {
	BaseService
	reportRepo   portsrepo.ProjectReportRepositoryFacade
	jobRepo      portsrepo.JobReader
	customerRepo portsrepo.CustomerReader
	lineItemRepo portsrepo.LineItemReader
	timeLogRepo  portsrepo.TimeLogReader
	employeeRepo portsrepo.EmployeeReader
}

// NewProjectReportService creates a new ProjectReportService.
func NewProjectReportService(
	reportRepo portsrepo.ProjectReportRepositoryFacade,
	jobRepo portsrepo.JobReader,
	customerRepo portsrepo.CustomerReader,
	lineItemRepo portsrepo.LineItemReader,
	timeLogRepo portsrepo.TimeLogReader,
	employeeRepo portsrepo.EmployeeReader,
	opts ...Option,
) portssvc.ProjectReportSvcFacade {
	return &projectReportService{
		BaseService:  newBaseService(opts),
		reportRepo:   reportRepo,
		jobRepo:      jobRepo,
		customerRepo: customerRepo,
		lineItemRepo: lineItemRepo,
		timeLogRepo:  timeLogRepo,
		employeeRepo: employeeRepo,
	}
}

var _ portssvc.ProjectReportSvcFacade = (*projectReportService)(nil)

// GenerateForJob snapshots a completed job. The first snapshot wins; later
// calls return it unchanged.
func (s *projectReportService) GenerateForJob(ctx context.Context, companyID string, jobID string, userID string) (*domain.ProjectReport, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}
	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		s.logUnlessExpected(ctx, err, "Failed to find job for report", slog.String("job_id", jobID))
		return nil, err
	}
	if err := s.CheckOwner(ctx, companyID, job.CompanyID, "job", jobID); err != nil {
		return nil, err
	}
	if job.Status != domain.JobCompleted {
		return nil, fmt.Errorf("%w: reports are generated for completed jobs only", apperrors.ErrValidation)
	}

	existing, err := s.reportRepo.FindReportByJobID(ctx, jobID)
	if err == nil {
		return existing, nil
	}
	if !isNotFound(err) {
		s.LogError(ctx, err, "Failed to look up existing report", slog.String("job_id", jobID))
		return nil, err
	}

	input, err := s.collect(ctx, *job)
	if err != nil {
		return nil, err
	}
	report := costing.BuildProjectReport(input, uuid.NewString(), userID, s.Now())

	inserted, err := s.reportRepo.SaveReport(ctx, report)
	if err != nil {
		s.LogError(ctx, err, "Failed to save report", slog.String("job_id", jobID))
		return nil, err
	}
	if !inserted {
		// A concurrent generation stored its snapshot first.
		return s.reportRepo.FindReportByJobID(ctx, jobID)
	}

	s.LogInfo(ctx, "Project report generated",
		slog.String("job_id", jobID),
		slog.String("report_id", report.ReportID),
		slog.String("profit", report.Profit.StringFixed(2)))
	return &report, nil
}

// collect gathers everything a snapshot copies from the live job.
func (s *projectReportService) collect(ctx context.Context, job domain.Job) (costing.ReportInput, error) {
	in := costing.ReportInput{Job: job}

	customer, err := s.customerRepo.FindCustomerByID(ctx, job.CustomerID)
	switch {
	case err == nil:
		in.Customer = customer
	case !isNotFound(err):
		s.LogError(ctx, err, "Failed to load customer for report", slog.String("job_id", job.JobID))
		return in, err
	}

	if in.LineItems, err = s.lineItemRepo.ListLineItemsByJob(ctx, job.JobID); err != nil {
		s.LogError(ctx, err, "Failed to load line items for report", slog.String("job_id", job.JobID))
		return in, err
	}
	if in.TimeLogs, err = s.timeLogRepo.ListTimeLogsByJob(ctx, job.JobID); err != nil {
		s.LogError(ctx, err, "Failed to load time logs for report", slog.String("job_id", job.JobID))
		return in, err
	}

	ids := make([]string, 0, len(in.TimeLogs))
	for _, l := range in.TimeLogs {
		ids = append(ids, l.EmployeeID)
	}
	in.Employees = map[string]domain.Employee{}
	if ids = uniqueIDs(ids); len(ids) > 0 {
		if in.Employees, err = s.employeeRepo.FindEmployeesByIDs(ctx, ids); err != nil {
			s.LogError(ctx, err, "Failed to load employees for report", slog.String("job_id", job.JobID))
			return in, err
		}
	}
	return in, nil
}

func (s *projectReportService) GetReportByJobID(ctx context.Context, companyID string, jobID string) (*domain.ProjectReport, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}
	report, err := s.reportRepo.FindReportByJobID(ctx, jobID)
	if err != nil {
		s.logUnlessExpected(ctx, err, "Failed to get report", slog.String("job_id", jobID))
		return nil, err
	}
	if err := s.CheckOwner(ctx, companyID, report.CompanyID, "report", report.ReportID); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *projectReportService) ListReports(ctx context.Context, companyID string, params dto.ListParams) ([]domain.ProjectReport, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}
	reports, err := s.reportRepo.ListReports(ctx, companyID, portsrepo.Page{Limit: params.Limit, Offset: params.Offset})
	if err != nil {
		s.LogError(ctx, err, "Failed to list reports")
		return nil, err
	}
	if reports == nil {
		return []domain.ProjectReport{}, nil
	}
	return reports, nil
}

func (s *projectReportService) ExportReportXLSX(ctx context.Context, companyID string, jobID string) ([]byte, string, error) {
	report, err := s.GetReportByJobID(ctx, companyID, jobID)
	if err != nil {
		return nil, "", err
	}
	data, err := export.ProjectReportXLSX(*report)
	if err != nil {
		s.LogError(ctx, err, "Failed to export report", slog.String("job_id", jobID))
		return nil, "", err
	}
	return data, export.FileName(*report), nil
}
