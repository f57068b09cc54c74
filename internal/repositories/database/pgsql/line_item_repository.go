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

type PgxLineItemRepository struct {
	BaseRepository
}

func newPgxLineItemRepository(pool *pgxpool.Pool) portsrepo.LineItemRepositoryFacade {
	return &PgxLineItemRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LineItemRepositoryFacade = (*PgxLineItemRepository)(nil)

const (
	nextBillableSortOrderQuery = `
		SELECT COALESCE(MAX(sort_order), $2 - 1) + 1 FROM job_line_items
		WHERE job_id = $1 AND sort_order BETWEEN $2 AND $3`

	updateLineItemQuery = `
		UPDATE job_line_items
		SET service_type = $2, display_name = $3, sort_order = $4, quantity = $5,
			difficulty_factor = $6, score = $7, production_rate = $8, loadout_id = $9,
			employee_ids = $10, equipment_ids = $11, total_cost_per_hour = $12, margin_percent = $13,
			billing_rate = $14, estimated_hours = $15, total_cost = $16, line_item_total = $17,
			status = $18, last_updated_at = $19, last_updated_by = $20
		WHERE line_item_id = $1`
)

// AddBillableLineItem inserts a billable item. A zero SortOrder takes the
// slot after the highest billable item.
func (r *PgxLineItemRepository) AddBillableLineItem(ctx context.Context, item *domain.JobLineItem) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if err := lockJob(ctx, tx, item.JobID); err != nil {
			return err
		}
		if item.SortOrder == 0 {
			var next int
			if err := tx.QueryRow(ctx, nextBillableSortOrderQuery, item.JobID,
				domain.MinBillableSortOrder, domain.MaxBillableSortOrder).Scan(&next); err != nil {
				return fmt.Errorf("failed to pick sort order for job %s: %w", item.JobID, err)
			}
			if next > domain.MaxBillableSortOrder {
				return fmt.Errorf("%w: job has no free line item positions", apperrors.ErrValidation)
			}
			item.SortOrder = next
		}

		if err := insertLineItem(ctx, tx, *item); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: sort order %d is already used on this job", apperrors.ErrValidation, item.SortOrder)
			}
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: line item references a missing job or loadout", apperrors.ErrValidation)
			}
			return fmt.Errorf("failed to save line item %s: %w", item.LineItemID, err)
		}
		return rebuildJobTotals(ctx, tx, item.JobID, item.LastUpdatedBy, item.LastUpdatedAt)
	})
}

// UpdateLineItem rewrites a line item and rebuilds the job totals.
func (r *PgxLineItemRepository) UpdateLineItem(ctx context.Context, item domain.JobLineItem) error {
	m := mapping.ToModelLineItem(item)
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if err := lockJob(ctx, tx, m.JobID); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, updateLineItemQuery,
			m.LineItemID, m.ServiceType, m.DisplayName, m.SortOrder, m.Quantity,
			m.DifficultyFactor, m.Score, m.ProductionRate, m.LoadoutID,
			m.EmployeeIDs, m.EquipmentIDs, m.TotalCostPerHour, m.MarginPercent,
			m.BillingRate, m.EstimatedHours, m.TotalCost, m.LineItemTotal,
			m.Status, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: sort order %d is already used on this job", apperrors.ErrValidation, m.SortOrder)
			}
			return fmt.Errorf("failed to update line item %s: %w", m.LineItemID, err)
		}
		if err := expectOneRow(tag, "line item", m.LineItemID); err != nil {
			return err
		}
		return rebuildJobTotals(ctx, tx, m.JobID, m.LastUpdatedBy, m.LastUpdatedAt)
	})
}

// DeleteLineItem detaches the item's time logs, removes it and rebuilds the
// job totals. Detached hours count as support time.
func (r *PgxLineItemRepository) DeleteLineItem(ctx context.Context, item domain.JobLineItem) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if err := lockJob(ctx, tx, item.JobID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `UPDATE time_logs SET line_item_id = NULL WHERE line_item_id = $1`, item.LineItemID); err != nil {
			return fmt.Errorf("failed to detach time logs from line item %s: %w", item.LineItemID, err)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM job_line_items WHERE line_item_id = $1`, item.LineItemID)
		if err != nil {
			return fmt.Errorf("failed to delete line item %s: %w", item.LineItemID, err)
		}
		if err := expectOneRow(tag, "line item", item.LineItemID); err != nil {
			return err
		}
		return rebuildJobTotals(ctx, tx, item.JobID, item.LastUpdatedBy, item.LastUpdatedAt)
	})
}

// FindLineItemByID retrieves a line item by its ID.
func (r *PgxLineItemRepository) FindLineItemByID(ctx context.Context, lineItemID string) (*domain.JobLineItem, error) {
	li, err := scanLineItem(r.Pool.QueryRow(ctx,
		`SELECT `+selectLineItemFields+` FROM job_line_items WHERE line_item_id = $1`, lineItemID))
	if err != nil {
		return nil, notFoundOr(err, "line item", lineItemID)
	}
	return &li, nil
}

// ListLineItemsByJob returns a job's items ordered by sort order.
func (r *PgxLineItemRepository) ListLineItemsByJob(ctx context.Context, jobID string) ([]domain.JobLineItem, error) {
	return listLineItemsByJob(ctx, r.Pool, jobID)
}
