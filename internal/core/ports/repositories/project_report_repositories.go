package repositories

import (
	"context"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
)

// ProjectReportReader defines read operations for report snapshots
type ProjectReportReader interface {
	FindReportByJobID(ctx context.Context, jobID string) (*domain.ProjectReport, error)
	ListReports(ctx context.Context, companyID string, page Page) ([]domain.ProjectReport, error)
}

// ProjectReportWriter defines write operations for report snapshots.
// Reports are insert-only.
type ProjectReportWriter interface {
	// SaveReport inserts the snapshot unless the job already has one.
	// It reports whether a row was inserted.
	SaveReport(ctx context.Context, report domain.ProjectReport) (bool, error)
}

// ProjectReportRepositoryFacade combines all report-related repository interfaces
type ProjectReportRepositoryFacade interface {
	ProjectReportReader
	ProjectReportWriter
}
