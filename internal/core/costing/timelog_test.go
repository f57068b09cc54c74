package costing_test

import (
	"testing"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/core/costing"
)

func TestDurationHours(t *testing.T) {
	start := time.Date(2025, 3, 4, 7, 0, 0, 0, time.UTC)

	assertDecimal(t, "2.5", costing.DurationHours(start, start.Add(150*time.Minute)))
	assertDecimal(t, "0.25", costing.DurationHours(start, start.Add(15*time.Minute)))
	assertDecimal(t, "0", costing.DurationHours(start, start.Add(-time.Hour)))
}

func TestTimeLogCost(t *testing.T) {
	cost := costing.TimeLogCost(d("31.68"), d("44.6775"), d("2.5"))
	assertDecimal(t, "190.89375", cost)
}
