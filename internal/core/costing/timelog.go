package costing

import (
	"time"

	"github.com/shopspring/decimal"
)

var millisPerHour = decimal.NewFromInt(int64(time.Hour / time.Millisecond))

// DurationHours converts the span between start and end to hours at
// millisecond resolution. A negative span yields zero.
func DurationHours(start, end time.Time) decimal.Decimal {
	ms := end.Sub(start).Milliseconds()
	if ms <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(ms).Div(millisPerHour)
}

// TimeLogCost is the cost of hours worked at the captured rates.
func TimeLogCost(employeeRate, equipmentCost, hours decimal.Decimal) decimal.Decimal {
	return employeeRate.Add(equipmentCost).Mul(hours)
}
