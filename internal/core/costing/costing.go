// Package costing holds the pure cost and pricing calculations. Nothing here
// touches storage; services call these inside the same transaction that
// persists the derived fields.
package costing

import "github.com/shopspring/decimal"

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// positiveOr returns d when it is greater than zero and fallback otherwise.
func positiveOr(d, fallback decimal.Decimal) decimal.Decimal {
	if d.GreaterThan(decimal.Zero) {
		return d
	}
	return fallback
}

// ProfitAndMargin returns revenue minus cost and the margin as a percentage
// of revenue. Margin is zero when there is no revenue.
func ProfitAndMargin(revenue, cost decimal.Decimal) (profit, margin decimal.Decimal) {
	profit = revenue.Sub(cost)
	if revenue.IsZero() {
		return profit, decimal.Zero
	}
	return profit, profit.Div(revenue).Mul(hundred)
}

// Sum adds a list of decimals.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
