package services

import (
	"context"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/SscSPs/treeservice_ops/internal/dto"
)

// ProjectReportGenerator builds report snapshots for completed jobs.
type ProjectReportGenerator interface {
	// GenerateForJob snapshots a completed job. When the job already has a
	// report the stored one is returned unchanged.
	GenerateForJob(ctx context.Context, companyID string, jobID string, userID string) (*domain.ProjectReport, error)
}

// ProjectReportSvcFacade defines operations for project reports
type ProjectReportSvcFacade interface {
	ProjectReportGenerator
	GetReportByJobID(ctx context.Context, companyID string, jobID string) (*domain.ProjectReport, error)
	ListReports(ctx context.Context, companyID string, params dto.ListParams) ([]domain.ProjectReport, error)

	// ExportReportXLSX renders the stored report as a workbook and returns its
	// bytes with a suggested file name.
	ExportReportXLSX(ctx context.Context, companyID string, jobID string) ([]byte, string, error)
}

// AnalyticsSvc computes the profitability dashboard.
type AnalyticsSvc interface {
	GetDashboard(ctx context.Context, companyID string, params dto.DashboardParams) (*domain.Dashboard, error)
}
