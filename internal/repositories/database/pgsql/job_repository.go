package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/apperrors"
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	portsrepo "github.com/SscSPs/treeservice_ops/internal/core/ports/repositories"
	"github.com/SscSPs/treeservice_ops/internal/models"
	"github.com/SscSPs/treeservice_ops/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJobRepository struct {
	BaseRepository
}

func newPgxJobRepository(pool *pgxpool.Pool) portsrepo.JobRepositoryFacade {
	return &PgxJobRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JobRepositoryFacade = (*PgxJobRepository)(nil)

const (
	selectJobFields = `
		job_id, company_id, customer_id, sequence, job_number, title, description, site_address,
		status, scheduled_start, scheduled_end, completed_at, paid_at, estimated_total_hours,
		total_investment, actual_productive_hours, actual_support_hours, actual_total_cost,
		created_at, created_by, last_updated_at, last_updated_by`

	nextJobNumberQuery = `
		INSERT INTO job_sequences (company_id, last_number) VALUES ($1, 1)
		ON CONFLICT (company_id) DO UPDATE SET last_number = job_sequences.last_number + 1
		RETURNING last_number`

	insertJobQuery = `
		INSERT INTO jobs (` + selectJobFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22)`

	insertLineItemQuery = `
		INSERT INTO job_line_items (` + selectLineItemFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22, $23, $24, $25, $26, $27)`

	updateJobQuery = `
		UPDATE jobs
		SET customer_id = $2, title = $3, description = $4, site_address = $5,
			scheduled_start = $6, scheduled_end = $7, last_updated_at = $8, last_updated_by = $9
		WHERE job_id = $1`
)

func scanJob(row pgx.Row) (domain.Job, error) {
	var m models.Job
	err := row.Scan(
		&m.JobID, &m.CompanyID, &m.CustomerID, &m.Sequence, &m.JobNumber, &m.Title, &m.Description, &m.SiteAddress,
		&m.Status, &m.ScheduledStart, &m.ScheduledEnd, &m.CompletedAt, &m.PaidAt, &m.EstimatedTotalHours,
		&m.TotalInvestment, &m.ActualProductiveHours, &m.ActualSupportHours, &m.ActualTotalCost,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return domain.Job{}, err
	}
	return mapping.ToDomainJob(m), nil
}

func insertLineItem(ctx context.Context, q querier, item domain.JobLineItem) error {
	m := mapping.ToModelLineItem(item)
	_, err := q.Exec(ctx, insertLineItemQuery,
		m.LineItemID, m.JobID, m.CompanyID, m.IsBillable, m.ServiceType, m.DisplayName, m.SortOrder,
		m.Quantity, m.DifficultyFactor, m.Score, m.ProductionRate, m.LoadoutID, m.EmployeeIDs, m.EquipmentIDs,
		m.TotalCostPerHour, m.MarginPercent, m.BillingRate, m.EstimatedHours, m.TotalCost,
		m.LineItemTotal, m.Status, m.ActualProductiveHours, m.VarianceHours,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return err
}

// CreateJob numbers the job from the organization's counter and seeds its phases.
func (r *PgxJobRepository) CreateJob(ctx context.Context, job *domain.Job, phases []domain.JobLineItem) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		var seq int
		if err := tx.QueryRow(ctx, nextJobNumberQuery, job.CompanyID).Scan(&seq); err != nil {
			return fmt.Errorf("failed to allocate job number: %w", err)
		}
		job.Sequence = seq
		job.JobNumber = domain.FormatJobNumber(seq)

		m := mapping.ToModelJob(*job)
		_, err := tx.Exec(ctx, insertJobQuery,
			m.JobID, m.CompanyID, m.CustomerID, m.Sequence, m.JobNumber, m.Title, m.Description, m.SiteAddress,
			m.Status, m.ScheduledStart, m.ScheduledEnd, m.CompletedAt, m.PaidAt, m.EstimatedTotalHours,
			m.TotalInvestment, m.ActualProductiveHours, m.ActualSupportHours, m.ActualTotalCost,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to save job %s: %w", m.JobID, err)
		}

		for _, phase := range phases {
			phase.JobID = job.JobID
			if err := insertLineItem(ctx, tx, phase); err != nil {
				return fmt.Errorf("failed to seed phase %s of job %s: %w", phase.ServiceType, job.JobID, err)
			}
		}
		return nil
	})
}

// UpdateJob rewrites the descriptive fields of a job.
func (r *PgxJobRepository) UpdateJob(ctx context.Context, job domain.Job) error {
	m := mapping.ToModelJob(job)
	tag, err := r.Pool.Exec(ctx, updateJobQuery,
		m.JobID, m.CustomerID, m.Title, m.Description, m.SiteAddress,
		m.ScheduledStart, m.ScheduledEnd, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update job %s: %w", m.JobID, err)
	}
	return expectOneRow(tag, "job", m.JobID)
}

// UpdateJobStatus moves a job from status from to a non-completed status. The
// write only lands while the row still holds from.
func (r *PgxJobRepository) UpdateJobStatus(ctx context.Context, jobID string, from, to domain.JobStatus, userID string, now time.Time) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE jobs SET status = $2, last_updated_at = $3, last_updated_by = $4 WHERE job_id = $1 AND status = $5`,
		jobID, string(to), now, userID, string(from))
	if err != nil {
		return fmt.Errorf("failed to update status of job %s: %w", jobID, err)
	}
	return expectStatusRow(tag, jobID, from)
}

// CompleteJob completes the job and every line item, then rebuilds totals so
// the completed job carries final figures. It refuses while a timer is still
// running on the job or when the job no longer holds status from.
func (r *PgxJobRepository) CompleteJob(ctx context.Context, jobID string, from domain.JobStatus, userID string, now time.Time) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		active, err := countQuery(ctx, tx, activeTimeLogsForJobQuery, jobID)
		if err != nil {
			return fmt.Errorf("failed to count active time logs for job %s: %w", jobID, err)
		}
		if active > 0 {
			return fmt.Errorf("%w: job %s has %d running timers", apperrors.ErrValidation, jobID, active)
		}
		tag, err := tx.Exec(ctx,
			`UPDATE jobs SET status = $2, completed_at = $3, last_updated_at = $3, last_updated_by = $4 WHERE job_id = $1 AND status = $5`,
			jobID, string(domain.JobCompleted), now, userID, string(from))
		if err != nil {
			return fmt.Errorf("failed to complete job %s: %w", jobID, err)
		}
		if err := expectStatusRow(tag, jobID, from); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			`UPDATE job_line_items SET status = $2, last_updated_at = $3, last_updated_by = $4 WHERE job_id = $1`,
			jobID, string(domain.LineItemCompleted), now, userID); err != nil {
			return fmt.Errorf("failed to complete line items of job %s: %w", jobID, err)
		}
		return rebuildJobTotals(ctx, tx, jobID, userID, now)
	})
}

// expectStatusRow reports a lost status race as a validation failure.
func expectStatusRow(tag pgconn.CommandTag, jobID string, from domain.JobStatus) error {
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: job %s is no longer %s", apperrors.ErrValidation, jobID, from)
	}
	return nil
}

// MarkJobPaid stamps paidAt.
func (r *PgxJobRepository) MarkJobPaid(ctx context.Context, jobID string, userID string, now time.Time) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE jobs SET paid_at = $2, last_updated_at = $2, last_updated_by = $3 WHERE job_id = $1`,
		jobID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to mark job %s paid: %w", jobID, err)
	}
	return expectOneRow(tag, "job", jobID)
}

// DeleteJob removes the job; line items cascade.
func (r *PgxJobRepository) DeleteJob(ctx context.Context, jobID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM jobs WHERE job_id = $1`, jobID)
	if err != nil {
		return fmt.Errorf("failed to delete job %s: %w", jobID, err)
	}
	return expectOneRow(tag, "job", jobID)
}

// FindJobByID retrieves a job without its line items.
func (r *PgxJobRepository) FindJobByID(ctx context.Context, jobID string) (*domain.Job, error) {
	j, err := scanJob(r.Pool.QueryRow(ctx, `SELECT `+selectJobFields+` FROM jobs WHERE job_id = $1`, jobID))
	if err != nil {
		return nil, notFoundOr(err, "job", jobID)
	}
	return &j, nil
}

// ListJobs retrieves an organization's jobs newest first using a
// (created_at, job_id) keyset.
func (r *PgxJobRepository) ListJobs(ctx context.Context, companyID string, filter portsrepo.JobFilter) ([]domain.Job, error) {
	query := `SELECT ` + selectJobFields + ` FROM jobs WHERE company_id = $1`
	args := []any{companyID}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	if filter.CustomerID != "" {
		args = append(args, filter.CustomerID)
		query += fmt.Sprintf(` AND customer_id = $%d`, len(args))
	}
	if filter.AfterCreatedAt != nil {
		args = append(args, *filter.AfterCreatedAt, filter.AfterJobID)
		query += fmt.Sprintf(` AND (created_at, job_id) < ($%d, $%d)`, len(args)-1, len(args))
	}
	query += ` ORDER BY created_at DESC, job_id DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	jobs, err := collectRows(rows, scanJob)
	if err != nil {
		return nil, fmt.Errorf("failed to scan jobs: %w", err)
	}
	return jobs, nil
}

// CountTimeLogsForJob counts time logs recorded against the job.
func (r *PgxJobRepository) CountTimeLogsForJob(ctx context.Context, jobID string) (int, error) {
	n, err := countQuery(ctx, r.Pool, `SELECT COUNT(*) FROM time_logs WHERE job_id = $1`, jobID)
	if err != nil {
		return 0, fmt.Errorf("failed to count time logs for job %s: %w", jobID, err)
	}
	return n, nil
}

const activeTimeLogsForJobQuery = `SELECT COUNT(*) FROM time_logs WHERE job_id = $1 AND end_time IS NULL`

// CountActiveTimeLogsForJob counts running timers on the job.
func (r *PgxJobRepository) CountActiveTimeLogsForJob(ctx context.Context, jobID string) (int, error) {
	n, err := countQuery(ctx, r.Pool, activeTimeLogsForJobQuery, jobID)
	if err != nil {
		return 0, fmt.Errorf("failed to count active time logs for job %s: %w", jobID, err)
	}
	return n, nil
}
