package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	portsrepo "github.com/SscSPs/treeservice_ops/internal/core/ports/repositories"
	"github.com/SscSPs/treeservice_ops/internal/models"
	"github.com/SscSPs/treeservice_ops/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProjectReportRepository struct {
	BaseRepository
}

func newPgxProjectReportRepository(pool *pgxpool.Pool) portsrepo.ProjectReportRepositoryFacade {
	return &PgxProjectReportRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProjectReportRepositoryFacade = (*PgxProjectReportRepository)(nil)

const (
	selectProjectReportFields = `
		report_id, company_id, job_id, job_number, job_title, customer_id, customer_name,
		completed_at, line_items, employee_logs, crew, revenue, total_cost, profit, profit_margin,
		estimated_hours, actual_productive_hours, actual_support_hours, actual_total_hours,
		generated_at, generated_by`

	// Snapshots are write-once; a second generation for the same job is a no-op.
	insertProjectReportQuery = `
		INSERT INTO project_reports (` + selectProjectReportFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21)
		ON CONFLICT (job_id) DO NOTHING`
)

func scanProjectReport(row pgx.Row) (domain.ProjectReport, error) {
	var m models.ProjectReport
	err := row.Scan(
		&m.ReportID, &m.CompanyID, &m.JobID, &m.JobNumber, &m.JobTitle, &m.CustomerID, &m.CustomerName,
		&m.CompletedAt, &m.LineItems, &m.EmployeeLogs, &m.Crew, &m.Revenue, &m.TotalCost, &m.Profit, &m.ProfitMargin,
		&m.EstimatedHours, &m.ActualProductiveHours, &m.ActualSupportHours, &m.ActualTotalHours,
		&m.GeneratedAt, &m.GeneratedBy,
	)
	if err != nil {
		return domain.ProjectReport{}, err
	}
	return mapping.ToDomainProjectReport(m)
}

// SaveReport inserts the snapshot unless the job already has one.
func (r *PgxProjectReportRepository) SaveReport(ctx context.Context, report domain.ProjectReport) (bool, error) {
	m, err := mapping.ToModelProjectReport(report)
	if err != nil {
		return false, err
	}
	tag, err := r.Pool.Exec(ctx, insertProjectReportQuery,
		m.ReportID, m.CompanyID, m.JobID, m.JobNumber, m.JobTitle, m.CustomerID, m.CustomerName,
		m.CompletedAt, m.LineItems, m.EmployeeLogs, m.Crew, m.Revenue, m.TotalCost, m.Profit, m.ProfitMargin,
		m.EstimatedHours, m.ActualProductiveHours, m.ActualSupportHours, m.ActualTotalHours,
		m.GeneratedAt, m.GeneratedBy,
	)
	if err != nil {
		return false, fmt.Errorf("failed to save report for job %s: %w", m.JobID, err)
	}
	return tag.RowsAffected() == 1, nil
}

// FindReportByJobID retrieves the snapshot of a job.
func (r *PgxProjectReportRepository) FindReportByJobID(ctx context.Context, jobID string) (*domain.ProjectReport, error) {
	rep, err := scanProjectReport(r.Pool.QueryRow(ctx,
		`SELECT `+selectProjectReportFields+` FROM project_reports WHERE job_id = $1`, jobID))
	if err != nil {
		return nil, notFoundOr(err, "report for job", jobID)
	}
	return &rep, nil
}

// ListReports retrieves an organization's snapshots, latest completion first.
func (r *PgxProjectReportRepository) ListReports(ctx context.Context, companyID string, page portsrepo.Page) ([]domain.ProjectReport, error) {
	query := `SELECT ` + selectProjectReportFields + ` FROM project_reports WHERE company_id = $1
		ORDER BY completed_at DESC, report_id`
	clause, args := pageClause(page, []any{companyID})
	rows, err := r.Pool.Query(ctx, query+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	reports, err := collectRows(rows, scanProjectReport)
	if err != nil {
		return nil, fmt.Errorf("failed to scan reports: %w", err)
	}
	return reports, nil
}
