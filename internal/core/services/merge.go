package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Partial updates: a nil source leaves the stored value untouched.

func mergeString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func mergeDecimal(dst *decimal.Decimal, src *decimal.Decimal) {
	if src != nil {
		*dst = *src
	}
}

func mergeInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}

func checkSchedule(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return fmt.Errorf("%w: scheduled end is before scheduled start", apperrors.ErrValidation)
	}
	return nil
}
