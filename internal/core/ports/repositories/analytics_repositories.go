package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
)

// AnalyticsRepository loads the read-only data the dashboard aggregates.
type AnalyticsRepository interface {
	// ListJobsCreatedBetween returns jobs whose creation time falls in the range.
	// Nil bounds are open.
	ListJobsCreatedBetween(ctx context.Context, companyID string, from, to *time.Time) ([]domain.Job, error)

	// ListClosedTimeLogsForJobs returns closed logs of the given jobs.
	ListClosedTimeLogsForJobs(ctx context.Context, companyID string, jobIDs []string) ([]domain.TimeLog, error)

	ListAllEmployees(ctx context.Context, companyID string) ([]domain.Employee, error)
	ListAllCustomers(ctx context.Context, companyID string) ([]domain.Customer, error)
	ListAllEquipment(ctx context.Context, companyID string) ([]domain.Equipment, error)
}
