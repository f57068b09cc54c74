package dto

import "time"

// DashboardParams defines query parameters for the analytics dashboard.
type DashboardParams struct {
	From *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To   *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	TopN int        `form:"topN" binding:"gte=0,lte=50"`
}
