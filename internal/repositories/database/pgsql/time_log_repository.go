package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/treeservice_ops/internal/apperrors"
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	portsrepo "github.com/SscSPs/treeservice_ops/internal/core/ports/repositories"
	"github.com/SscSPs/treeservice_ops/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTimeLogRepository struct {
	BaseRepository
}

func newPgxTimeLogRepository(pool *pgxpool.Pool) portsrepo.TimeLogRepositoryFacade {
	return &PgxTimeLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TimeLogRepositoryFacade = (*PgxTimeLogRepository)(nil)

const (
	insertTimeLogQuery = `
		INSERT INTO time_logs (` + selectTimeLogFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	stopTimeLogQuery = `
		UPDATE time_logs
		SET end_time = $2, employee_rate = $3, equipment_cost = $4, duration_hours = $5,
			total_cost = $6, notes = $7, last_updated_at = $8, last_updated_by = $9
		WHERE time_log_id = $1 AND end_time IS NULL`

	updateTimeLogQuery = `
		UPDATE time_logs
		SET line_item_id = $2, start_time = $3, end_time = $4, employee_rate = $5,
			equipment_cost = $6, duration_hours = $7, total_cost = $8, notes = $9,
			last_updated_at = $10, last_updated_by = $11
		WHERE time_log_id = $1`
)

func insertTimeLog(ctx context.Context, q querier, log domain.TimeLog) error {
	m := mapping.ToModelTimeLog(log)
	_, err := q.Exec(ctx, insertTimeLogQuery,
		m.TimeLogID, m.CompanyID, m.JobID, m.LineItemID, m.EmployeeID, m.EquipmentIDs, m.StartTime,
		m.EndTime, m.EmployeeRate, m.EquipmentCost, m.DurationHours, m.TotalCost, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: employee already has an active timer", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to save time log %s: %w", m.TimeLogID, err)
	}
	return nil
}

// StartTimeLog inserts an open log. The partial unique index on
// (employee_id) WHERE end_time IS NULL rejects a second running timer.
func (r *PgxTimeLogRepository) StartTimeLog(ctx context.Context, log domain.TimeLog) error {
	return insertTimeLog(ctx, r.Pool, log)
}

// StopTimeLog closes an open log and rebuilds the job totals.
func (r *PgxTimeLogRepository) StopTimeLog(ctx context.Context, log domain.TimeLog) error {
	m := mapping.ToModelTimeLog(log)
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if err := lockJob(ctx, tx, m.JobID); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, stopTimeLogQuery,
			m.TimeLogID, m.EndTime, m.EmployeeRate, m.EquipmentCost, m.DurationHours,
			m.TotalCost, m.Notes, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to stop time log %s: %w", m.TimeLogID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: time log %s is not running", apperrors.ErrValidation, m.TimeLogID)
		}
		return rebuildJobTotals(ctx, tx, m.JobID, m.LastUpdatedBy, m.LastUpdatedAt)
	})
}

// SaveTimeLog inserts a closed log and rebuilds the job totals.
func (r *PgxTimeLogRepository) SaveTimeLog(ctx context.Context, log domain.TimeLog) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if err := lockJob(ctx, tx, log.JobID); err != nil {
			return err
		}
		if err := insertTimeLog(ctx, tx, log); err != nil {
			return err
		}
		return rebuildJobTotals(ctx, tx, log.JobID, log.LastUpdatedBy, log.LastUpdatedAt)
	})
}

// UpdateTimeLog rewrites a log and rebuilds the job totals.
func (r *PgxTimeLogRepository) UpdateTimeLog(ctx context.Context, log domain.TimeLog) error {
	m := mapping.ToModelTimeLog(log)
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if err := lockJob(ctx, tx, m.JobID); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, updateTimeLogQuery,
			m.TimeLogID, m.LineItemID, m.StartTime, m.EndTime, m.EmployeeRate,
			m.EquipmentCost, m.DurationHours, m.TotalCost, m.Notes,
			m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to update time log %s: %w", m.TimeLogID, err)
		}
		if err := expectOneRow(tag, "time log", m.TimeLogID); err != nil {
			return err
		}
		return rebuildJobTotals(ctx, tx, m.JobID, m.LastUpdatedBy, m.LastUpdatedAt)
	})
}

// DeleteTimeLog removes a log and rebuilds the job totals.
func (r *PgxTimeLogRepository) DeleteTimeLog(ctx context.Context, log domain.TimeLog) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if err := lockJob(ctx, tx, log.JobID); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM time_logs WHERE time_log_id = $1`, log.TimeLogID)
		if err != nil {
			return fmt.Errorf("failed to delete time log %s: %w", log.TimeLogID, err)
		}
		if err := expectOneRow(tag, "time log", log.TimeLogID); err != nil {
			return err
		}
		return rebuildJobTotals(ctx, tx, log.JobID, log.LastUpdatedBy, log.LastUpdatedAt)
	})
}

// FindTimeLogByID retrieves a time log by its ID.
func (r *PgxTimeLogRepository) FindTimeLogByID(ctx context.Context, timeLogID string) (*domain.TimeLog, error) {
	t, err := scanTimeLog(r.Pool.QueryRow(ctx,
		`SELECT `+selectTimeLogFields+` FROM time_logs WHERE time_log_id = $1`, timeLogID))
	if err != nil {
		return nil, notFoundOr(err, "time log", timeLogID)
	}
	return &t, nil
}

// FindActiveTimeLog returns the employee's running log.
func (r *PgxTimeLogRepository) FindActiveTimeLog(ctx context.Context, employeeID string) (*domain.TimeLog, error) {
	t, err := scanTimeLog(r.Pool.QueryRow(ctx,
		`SELECT `+selectTimeLogFields+` FROM time_logs WHERE employee_id = $1 AND end_time IS NULL`, employeeID))
	if err != nil {
		return nil, notFoundOr(err, "active time log for employee", employeeID)
	}
	return &t, nil
}

// ListTimeLogs lists an organization's logs newest first.
func (r *PgxTimeLogRepository) ListTimeLogs(ctx context.Context, companyID string, filter portsrepo.TimeLogFilter) ([]domain.TimeLog, error) {
	query := `SELECT ` + selectTimeLogFields + ` FROM time_logs WHERE company_id = $1`
	args := []any{companyID}
	if filter.JobID != "" {
		args = append(args, filter.JobID)
		query += fmt.Sprintf(` AND job_id = $%d`, len(args))
	}
	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		query += fmt.Sprintf(` AND employee_id = $%d`, len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(` AND start_time >= $%d`, len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(` AND start_time < $%d`, len(args))
	}
	query += ` ORDER BY start_time DESC, time_log_id`
	clause, args := pageClause(filter.Page, args)
	query += clause

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list time logs: %w", err)
	}
	logs, err := collectRows(rows, scanTimeLog)
	if err != nil {
		return nil, fmt.Errorf("failed to scan time logs: %w", err)
	}
	return logs, nil
}

// ListTimeLogsByJob returns every log of a job oldest first.
func (r *PgxTimeLogRepository) ListTimeLogsByJob(ctx context.Context, jobID string) ([]domain.TimeLog, error) {
	return listTimeLogsByJob(ctx, r.Pool, jobID)
}
