package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/core/costing"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// refreshLoadoutCosts recomputes total_hourly_cost for every loadout whose
// memberColumn (employee_ids or equipment_ids) contains memberID. It must run
// in the transaction that changed the member's rate.
func refreshLoadoutCosts(ctx context.Context, q querier, memberColumn, memberID, userID string, now time.Time) error {
	if memberColumn != "employee_ids" && memberColumn != "equipment_ids" {
		return fmt.Errorf("unknown loadout member column %q", memberColumn)
	}

	rows, err := q.Query(ctx,
		`SELECT loadout_id, employee_ids, equipment_ids FROM loadouts WHERE $1 = ANY(`+memberColumn+`) FOR UPDATE`,
		memberID)
	if err != nil {
		return fmt.Errorf("failed to find loadouts containing %s: %w", memberID, err)
	}
	type affected struct {
		id           string
		employeeIDs  []string
		equipmentIDs []string
	}
	var loadouts []affected
	for rows.Next() {
		var a affected
		if err := rows.Scan(&a.id, &a.employeeIDs, &a.equipmentIDs); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan loadout members: %w", err)
		}
		loadouts = append(loadouts, a)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read loadouts containing %s: %w", memberID, err)
	}

	for _, l := range loadouts {
		employeeRates, err := memberRates(ctx, q, `SELECT effective_rate FROM employees WHERE employee_id = ANY($1)`, l.employeeIDs)
		if err != nil {
			return err
		}
		equipmentCosts, err := memberRates(ctx, q, `SELECT hourly_cost FROM equipment WHERE equipment_id = ANY($1)`, l.equipmentIDs)
		if err != nil {
			return err
		}
		total := costing.SumResourceRates(employeeRates, equipmentCosts)
		if _, err := q.Exec(ctx,
			`UPDATE loadouts SET total_hourly_cost = $2, last_updated_at = $3, last_updated_by = $4 WHERE loadout_id = $1`,
			l.id, total, now, userID); err != nil {
			return fmt.Errorf("failed to refresh cost of loadout %s: %w", l.id, err)
		}
	}
	return nil
}

func memberRates(ctx context.Context, q querier, query string, ids []string) ([]decimal.Decimal, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load member rates: %w", err)
	}
	rates, err := collectRows(rows, func(row pgx.Row) (decimal.Decimal, error) {
		var d decimal.Decimal
		err := row.Scan(&d)
		return d, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan member rates: %w", err)
	}
	return rates, nil
}
