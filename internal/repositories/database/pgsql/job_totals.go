package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/core/costing"
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/SscSPs/treeservice_ops/internal/models"
	"github.com/SscSPs/treeservice_ops/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const (
	selectLineItemFields = `
		line_item_id, job_id, company_id, is_billable, service_type, display_name, sort_order,
		quantity, difficulty_factor, score, production_rate, loadout_id, employee_ids, equipment_ids,
		total_cost_per_hour, margin_percent, billing_rate, estimated_hours, total_cost,
		line_item_total, status, actual_productive_hours, variance_hours,
		created_at, created_by, last_updated_at, last_updated_by`

	selectTimeLogFields = `
		time_log_id, company_id, job_id, line_item_id, employee_id, equipment_ids, start_time,
		end_time, employee_rate, equipment_cost, duration_hours, total_cost, notes,
		created_at, created_by, last_updated_at, last_updated_by`

	updateLineItemActualsQuery = `
		UPDATE job_line_items SET actual_productive_hours = $2, variance_hours = $3
		WHERE line_item_id = $1`

	updateJobTotalsQuery = `
		UPDATE jobs
		SET estimated_total_hours = $2, total_investment = $3, actual_productive_hours = $4,
			actual_support_hours = $5, actual_total_cost = $6, last_updated_at = $7, last_updated_by = $8
		WHERE job_id = $1`
)

func scanLineItem(row pgx.Row) (domain.JobLineItem, error) {
	var m models.JobLineItem
	err := row.Scan(
		&m.LineItemID, &m.JobID, &m.CompanyID, &m.IsBillable, &m.ServiceType, &m.DisplayName, &m.SortOrder,
		&m.Quantity, &m.DifficultyFactor, &m.Score, &m.ProductionRate, &m.LoadoutID, &m.EmployeeIDs, &m.EquipmentIDs,
		&m.TotalCostPerHour, &m.MarginPercent, &m.BillingRate, &m.EstimatedHours, &m.TotalCost,
		&m.LineItemTotal, &m.Status, &m.ActualProductiveHours, &m.VarianceHours,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return domain.JobLineItem{}, err
	}
	return mapping.ToDomainLineItem(m), nil
}

func scanTimeLog(row pgx.Row) (domain.TimeLog, error) {
	var m models.TimeLog
	err := row.Scan(
		&m.TimeLogID, &m.CompanyID, &m.JobID, &m.LineItemID, &m.EmployeeID, &m.EquipmentIDs, &m.StartTime,
		&m.EndTime, &m.EmployeeRate, &m.EquipmentCost, &m.DurationHours, &m.TotalCost, &m.Notes,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return domain.TimeLog{}, err
	}
	return mapping.ToDomainTimeLog(m), nil
}

func listLineItemsByJob(ctx context.Context, q querier, jobID string) ([]domain.JobLineItem, error) {
	rows, err := q.Query(ctx,
		`SELECT `+selectLineItemFields+` FROM job_line_items WHERE job_id = $1 ORDER BY sort_order`, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list line items of job %s: %w", jobID, err)
	}
	items, err := collectRows(rows, scanLineItem)
	if err != nil {
		return nil, fmt.Errorf("failed to scan line items of job %s: %w", jobID, err)
	}
	return items, nil
}

func listTimeLogsByJob(ctx context.Context, q querier, jobID string) ([]domain.TimeLog, error) {
	rows, err := q.Query(ctx,
		`SELECT `+selectTimeLogFields+` FROM time_logs WHERE job_id = $1 ORDER BY start_time, time_log_id`, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time logs of job %s: %w", jobID, err)
	}
	logs, err := collectRows(rows, scanTimeLog)
	if err != nil {
		return nil, fmt.Errorf("failed to scan time logs of job %s: %w", jobID, err)
	}
	return logs, nil
}

// rebuildJobTotals recomputes every derived hour and cost field of a job and
// its line items from the rows currently visible to q. Callers run it inside
// the transaction that changed a line item or time log.
func rebuildJobTotals(ctx context.Context, q querier, jobID, userID string, now time.Time) error {
	items, err := listLineItemsByJob(ctx, q, jobID)
	if err != nil {
		return err
	}
	logs, err := listTimeLogsByJob(ctx, q, jobID)
	if err != nil {
		return err
	}

	actuals := costing.RollupJobActuals(items, logs)
	estimates := costing.RollupJobEstimates(items)

	for _, li := range items {
		a := actuals.LineItems[li.LineItemID]
		if a.ActualProductiveHours.Equal(li.ActualProductiveHours) && a.VarianceHours.Equal(li.VarianceHours) {
			continue
		}
		if _, err := q.Exec(ctx, updateLineItemActualsQuery, li.LineItemID, a.ActualProductiveHours, a.VarianceHours); err != nil {
			return fmt.Errorf("failed to update actuals of line item %s: %w", li.LineItemID, err)
		}
	}

	tag, err := q.Exec(ctx, updateJobTotalsQuery, jobID,
		estimates.EstimatedTotalHours, estimates.TotalInvestment,
		actuals.ActualProductiveHours, actuals.ActualSupportHours, actuals.ActualTotalCost,
		now, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update totals of job %s: %w", jobID, err)
	}
	return expectOneRow(tag, "job", jobID)
}

// lockJob takes a row lock on the job so concurrent writers to the same job
// rebuild totals one at a time.
func lockJob(ctx context.Context, q querier, jobID string) error {
	var id string
	if err := q.QueryRow(ctx, `SELECT job_id FROM jobs WHERE job_id = $1 FOR UPDATE`, jobID).Scan(&id); err != nil {
		return notFoundOr(err, "job", jobID)
	}
	return nil
}
