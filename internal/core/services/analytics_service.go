package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/core/costing"
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	portsrepo "github.com/SscSPs/treeservice_ops/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/SscSPs/treeservice_ops/internal/dto"
)

type analyticsService struct {
	BaseService
	repo        portsrepo.AnalyticsRepository
	defaultTopN int
}

// NewAnalyticsService creates the dashboard service. defaultTopN applies when
// a request does not ask for a ranking size.
func NewAnalyticsService(repo portsrepo.AnalyticsRepository, defaultTopN int, opts ...Option) portssvc.AnalyticsSvc {
	return &analyticsService{
		BaseService: newBaseService(opts),
		repo:        repo,
		defaultTopN: defaultTopN,
	}
}

var _ portssvc.AnalyticsSvc = (*analyticsService)(nil)

func (s *analyticsService) GetDashboard(ctx context.Context, companyID string, params dto.DashboardParams) (*domain.Dashboard, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}
	if err := checkSchedule(params.From, params.To); err != nil {
		return nil, err
	}

	jobs, err := s.repo.ListJobsCreatedBetween(ctx, companyID, params.From, params.To)
	if err != nil {
		s.LogError(ctx, err, "Failed to load jobs for dashboard")
		return nil, err
	}
	jobIDs := make([]string, len(jobs))
	for i, j := range jobs {
		jobIDs[i] = j.JobID
	}
	logs, err := s.repo.ListClosedTimeLogsForJobs(ctx, companyID, jobIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to load time logs for dashboard")
		return nil, err
	}
	employees, err := s.repo.ListAllEmployees(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load employees for dashboard")
		return nil, err
	}
	customers, err := s.repo.ListAllCustomers(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load customers for dashboard")
		return nil, err
	}
	equipment, err := s.repo.ListAllEquipment(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load equipment for dashboard")
		return nil, err
	}

	topN := params.TopN
	if topN <= 0 {
		topN = s.defaultTopN
	}
	dashboard := costing.BuildDashboard(costing.DashboardInput{
		From:      deref(params.From),
		To:        deref(params.To),
		TopN:      topN,
		Jobs:      jobs,
		TimeLogs:  logs,
		Employees: employees,
		Customers: customers,
		Equipment: equipment,
	})

	s.LogDebug(ctx, "Dashboard computed",
		slog.Int("projects", dashboard.TotalProjects),
		slog.String("revenue", dashboard.TotalRevenue.StringFixed(2)))
	return &dashboard, nil
}

func deref(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
