package services

import (
	"context"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/SscSPs/treeservice_ops/internal/dto"
)

// LineItemSvcFacade defines operations on a job's line items. Writes reprice
// the item and rebuild the job's totals.
type LineItemSvcFacade interface {
	ListLineItems(ctx context.Context, companyID string, jobID string) ([]domain.JobLineItem, error)
	AddLineItem(ctx context.Context, companyID string, jobID string, req dto.AddLineItemRequest, userID string) (*domain.JobLineItem, error)
	UpdateLineItem(ctx context.Context, companyID string, jobID string, lineItemID string, req dto.UpdateLineItemRequest, userID string) (*domain.JobLineItem, error)

	// DeleteLineItem removes a billable item. Phase items cannot be deleted.
	DeleteLineItem(ctx context.Context, companyID string, jobID string, lineItemID string, userID string) error
}
