package services

import (
	"context"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/SscSPs/treeservice_ops/internal/dto"
)

// LoadoutReaderSvc defines read operations for loadout data
type LoadoutReaderSvc interface {
	GetLoadoutByID(ctx context.Context, companyID string, loadoutID string) (*domain.Loadout, error)
	ListLoadouts(ctx context.Context, companyID string, params dto.ListParams) ([]domain.Loadout, error)
}

// LoadoutWriterSvc defines write operations for loadout data
type LoadoutWriterSvc interface {
	CreateLoadout(ctx context.Context, companyID string, req dto.CreateLoadoutRequest, userID string) (*domain.Loadout, error)
	UpdateLoadout(ctx context.Context, companyID string, loadoutID string, req dto.UpdateLoadoutRequest, userID string) (*domain.Loadout, error)

	// DeleteLoadout is refused while line items are priced from the loadout.
	DeleteLoadout(ctx context.Context, companyID string, loadoutID string, userID string) error
}

// LoadoutSvcFacade combines all loadout-related service interfaces
type LoadoutSvcFacade interface {
	LoadoutReaderSvc
	LoadoutWriterSvc
}
