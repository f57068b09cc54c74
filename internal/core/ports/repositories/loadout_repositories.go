package repositories

import (
	"context"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
)

// LoadoutReader defines read operations for loadout data
type LoadoutReader interface {
	FindLoadoutByID(ctx context.Context, loadoutID string) (*domain.Loadout, error)
	ListLoadouts(ctx context.Context, companyID string, page Page) ([]domain.Loadout, error)
	// CountLineItemsForLoadout counts line items priced from the loadout.
	CountLineItemsForLoadout(ctx context.Context, loadoutID string) (int, error)
}

// LoadoutWriter defines write operations for loadout data
type LoadoutWriter interface {
	SaveLoadout(ctx context.Context, loadout domain.Loadout) error
	UpdateLoadout(ctx context.Context, loadout domain.Loadout) error
	DeleteLoadout(ctx context.Context, loadoutID string) error
}

// LoadoutRepositoryFacade combines all loadout-related repository interfaces
type LoadoutRepositoryFacade interface {
	LoadoutReader
	LoadoutWriter
}
