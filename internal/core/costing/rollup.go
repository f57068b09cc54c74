package costing

import (
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineItemActuals are the logged hours of one line item.
type LineItemActuals struct {
	ActualProductiveHours decimal.Decimal
	VarianceHours         decimal.Decimal
}

// JobActuals are a job's totals rebuilt from its closed time logs.
type JobActuals struct {
	ActualProductiveHours decimal.Decimal
	ActualSupportHours    decimal.Decimal
	ActualTotalCost       decimal.Decimal
	LineItems             map[string]LineItemActuals
}

// RollupJobActuals sums closed logs into line item and job totals. Hours on
// billable items are productive; hours on phase items or on no item are support.
// Every passed line item gets an entry, including those with no logs.
func RollupJobActuals(items []domain.JobLineItem, logs []domain.TimeLog) JobActuals {
	billable := make(map[string]bool, len(items))
	perItem := make(map[string]decimal.Decimal, len(items))
	for _, li := range items {
		billable[li.LineItemID] = li.IsBillable
		perItem[li.LineItemID] = decimal.Zero
	}

	out := JobActuals{
		ActualProductiveHours: decimal.Zero,
		ActualSupportHours:    decimal.Zero,
		ActualTotalCost:       decimal.Zero,
		LineItems:             make(map[string]LineItemActuals, len(items)),
	}
	for _, log := range logs {
		if log.IsActive() {
			continue
		}
		out.ActualTotalCost = out.ActualTotalCost.Add(log.TotalCost)
		if _, known := perItem[log.LineItemID]; known && log.LineItemID != "" {
			perItem[log.LineItemID] = perItem[log.LineItemID].Add(log.DurationHours)
		}
		if log.LineItemID != "" && billable[log.LineItemID] {
			out.ActualProductiveHours = out.ActualProductiveHours.Add(log.DurationHours)
		} else {
			out.ActualSupportHours = out.ActualSupportHours.Add(log.DurationHours)
		}
	}

	for _, li := range items {
		actual := perItem[li.LineItemID]
		out.LineItems[li.LineItemID] = LineItemActuals{
			ActualProductiveHours: actual,
			VarianceHours:         actual.Sub(li.EstimatedHours),
		}
	}
	return out
}

// JobEstimates are the planning totals rebuilt from a job's line items.
type JobEstimates struct {
	EstimatedTotalHours decimal.Decimal
	TotalInvestment     decimal.Decimal
}

// RollupJobEstimates sums estimated hours of all items and the price of billable ones.
func RollupJobEstimates(items []domain.JobLineItem) JobEstimates {
	out := JobEstimates{EstimatedTotalHours: decimal.Zero, TotalInvestment: decimal.Zero}
	for _, li := range items {
		out.EstimatedTotalHours = out.EstimatedTotalHours.Add(li.EstimatedHours)
		if li.IsBillable {
			out.TotalInvestment = out.TotalInvestment.Add(li.LineItemTotal)
		}
	}
	return out
}
