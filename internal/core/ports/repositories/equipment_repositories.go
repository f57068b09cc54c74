package repositories

import (
	"context"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
)

// EquipmentReader defines read operations for equipment data
type EquipmentReader interface {
	FindEquipmentByID(ctx context.Context, equipmentID string) (*domain.Equipment, error)
	FindEquipmentByIDs(ctx context.Context, equipmentIDs []string) (map[string]domain.Equipment, error)
	// ListEquipment retrieves an organization's machines, optionally filtered by status.
	ListEquipment(ctx context.Context, companyID string, status domain.EquipmentStatus, page Page) ([]domain.Equipment, error)
}

// EquipmentWriter defines write operations for equipment data.
// UpdateEquipment refreshes every loadout containing the machine in the same transaction.
type EquipmentWriter interface {
	SaveEquipment(ctx context.Context, equipment domain.Equipment) error
	UpdateEquipment(ctx context.Context, equipment domain.Equipment) error
}

// EquipmentRepositoryFacade combines all equipment-related repository interfaces
type EquipmentRepositoryFacade interface {
	EquipmentReader
	EquipmentWriter
}
