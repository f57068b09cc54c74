package repositories

import (
	"context"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
)

// LineItemReader defines read operations for job line items
type LineItemReader interface {
	FindLineItemByID(ctx context.Context, lineItemID string) (*domain.JobLineItem, error)
	// ListLineItemsByJob returns a job's items ordered by sort order.
	ListLineItemsByJob(ctx context.Context, jobID string) ([]domain.JobLineItem, error)
}

// LineItemWriter defines write operations for job line items. Every write
// rebuilds the owning job's estimate and actual totals in the same transaction.
type LineItemWriter interface {
	// AddBillableLineItem places the item at the next free sort order between
	// the leading and trailing phases and writes it back onto item.
	AddBillableLineItem(ctx context.Context, item *domain.JobLineItem) error
	UpdateLineItem(ctx context.Context, item domain.JobLineItem) error
	// DeleteLineItem detaches the item's time logs and removes it.
	DeleteLineItem(ctx context.Context, item domain.JobLineItem) error
}

// LineItemRepositoryFacade combines all line-item-related repository interfaces
type LineItemRepositoryFacade interface {
	LineItemReader
	LineItemWriter
}
