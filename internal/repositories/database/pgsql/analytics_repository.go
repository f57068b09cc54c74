package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	portsrepo "github.com/SscSPs/treeservice_ops/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// analyticsRepository loads the raw rows the dashboard aggregates in Go.
type analyticsRepository struct {
	BaseRepository
}

func newAnalyticsRepository(db *pgxpool.Pool) portsrepo.AnalyticsRepository {
	return &analyticsRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.AnalyticsRepository = (*analyticsRepository)(nil)

// ListJobsCreatedBetween returns jobs created in [from, to]; a nil bound is open.
func (r *analyticsRepository) ListJobsCreatedBetween(ctx context.Context, companyID string, from, to *time.Time) ([]domain.Job, error) {
	query := `SELECT ` + selectJobFields + ` FROM jobs WHERE company_id = $1`
	args := []any{companyID}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(` AND created_at >= $%d`, len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(` AND created_at <= $%d`, len(args))
	}
	query += ` ORDER BY created_at`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying jobs for dashboard: %w", err)
	}
	jobs, err := collectRows(rows, scanJob)
	if err != nil {
		return nil, fmt.Errorf("error scanning jobs for dashboard: %w", err)
	}
	return jobs, nil
}

// ListClosedTimeLogsForJobs returns closed logs of the given jobs.
func (r *analyticsRepository) ListClosedTimeLogsForJobs(ctx context.Context, companyID string, jobIDs []string) ([]domain.TimeLog, error) {
	if len(jobIDs) == 0 {
		return []domain.TimeLog{}, nil
	}
	query := `SELECT ` + selectTimeLogFields + ` FROM time_logs
		WHERE company_id = $1 AND job_id = ANY($2) AND end_time IS NOT NULL
		ORDER BY start_time`
	rows, err := r.Pool.Query(ctx, query, companyID, jobIDs)
	if err != nil {
		return nil, fmt.Errorf("error querying time logs for dashboard: %w", err)
	}
	logs, err := collectRows(rows, scanTimeLog)
	if err != nil {
		return nil, fmt.Errorf("error scanning time logs for dashboard: %w", err)
	}
	return logs, nil
}

func (r *analyticsRepository) ListAllEmployees(ctx context.Context, companyID string) ([]domain.Employee, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+selectEmployeeFields+` FROM employees WHERE company_id = $1`, companyID)
	if err != nil {
		return nil, fmt.Errorf("error querying employees for dashboard: %w", err)
	}
	return collectRows(rows, scanEmployee)
}

func (r *analyticsRepository) ListAllCustomers(ctx context.Context, companyID string) ([]domain.Customer, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+selectCustomerFields+` FROM customers WHERE company_id = $1`, companyID)
	if err != nil {
		return nil, fmt.Errorf("error querying customers for dashboard: %w", err)
	}
	return collectRows(rows, scanCustomer)
}

func (r *analyticsRepository) ListAllEquipment(ctx context.Context, companyID string) ([]domain.Equipment, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+selectEquipmentFields+` FROM equipment WHERE company_id = $1`, companyID)
	if err != nil {
		return nil, fmt.Errorf("error querying equipment for dashboard: %w", err)
	}
	return collectRows(rows, scanEquipment)
}
