package costing_test

import (
	"testing"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/core/costing"
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func closedLog(id, lineItemID string, hours, cost string) domain.TimeLog {
	end := time.Now()
	return domain.TimeLog{
		TimeLogID:     id,
		LineItemID:    lineItemID,
		EndTime:       &end,
		DurationHours: d(hours),
		TotalCost:     d(cost),
	}
}

func TestRollupJobActuals(t *testing.T) {
	items := []domain.JobLineItem{
		{LineItemID: "setup", IsBillable: false, EstimatedHours: d("1")},
		{LineItemID: "mulch", IsBillable: true, EstimatedHours: d("7")},
	}
	logs := []domain.TimeLog{
		closedLog("a", "mulch", "4", "300"),
		closedLog("b", "mulch", "4.5", "320.5"),
		closedLog("c", "setup", "0.75", "40"),
		closedLog("d", "", "0.5", "20"),
		{TimeLogID: "open", LineItemID: "mulch", DurationHours: d("9"), TotalCost: d("999")},
	}

	got := costing.RollupJobActuals(items, logs)

	assertDecimal(t, "8.5", got.ActualProductiveHours)
	assertDecimal(t, "1.25", got.ActualSupportHours)
	assertDecimal(t, "680.5", got.ActualTotalCost)
	assertDecimal(t, "8.5", got.LineItems["mulch"].ActualProductiveHours)
	assertDecimal(t, "1.5", got.LineItems["mulch"].VarianceHours)
	assertDecimal(t, "0.75", got.LineItems["setup"].ActualProductiveHours)
	assertDecimal(t, "-0.25", got.LineItems["setup"].VarianceHours)
}

func TestRollupJobActuals_SingleLogRoundTrip(t *testing.T) {
	items := []domain.JobLineItem{{LineItemID: "mulch", IsBillable: true, EstimatedHours: d("2")}}

	got := costing.RollupJobActuals(items, []domain.TimeLog{closedLog("a", "mulch", "2.5", "190.89375")})

	assertDecimal(t, "190.89375", got.ActualTotalCost)
	assertDecimal(t, "2.5", got.ActualProductiveHours)
}

func TestRollupJobActuals_NoLogsZeroesItems(t *testing.T) {
	items := []domain.JobLineItem{{LineItemID: "mulch", IsBillable: true, EstimatedHours: d("3")}}

	got := costing.RollupJobActuals(items, nil)

	assert.Len(t, got.LineItems, 1)
	assertDecimal(t, "0", got.ActualTotalCost)
	assertDecimal(t, "-3", got.LineItems["mulch"].VarianceHours)
}

func TestRollupJobEstimates(t *testing.T) {
	items := []domain.JobLineItem{
		{IsBillable: false, EstimatedHours: d("1"), LineItemTotal: d("0")},
		{IsBillable: true, EstimatedHours: d("7"), LineItemTotal: d("1365")},
		{IsBillable: true, EstimatedHours: d("2.25"), LineItemTotal: d("400")},
	}

	got := costing.RollupJobEstimates(items)

	assertDecimal(t, "10.25", got.EstimatedTotalHours)
	assertDecimal(t, "1765", got.TotalInvestment)
}
