package services

import (
	"context"

	"github.com/SscSPs/treeservice_ops/internal/core/costing"
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/SscSPs/treeservice_ops/internal/dto"
)

// EquipmentReaderSvc defines read operations for equipment data
type EquipmentReaderSvc interface {
	GetEquipmentByID(ctx context.Context, companyID string, equipmentID string) (*domain.Equipment, error)
	ListEquipment(ctx context.Context, companyID string, params dto.ListEquipmentParams) ([]domain.Equipment, error)
	GetCostBreakdown(ctx context.Context, companyID string, equipmentID string) (*costing.EquipmentCostBreakdown, error)
}

// EquipmentWriterSvc defines write operations for equipment data
type EquipmentWriterSvc interface {
	CreateEquipment(ctx context.Context, companyID string, req dto.CreateEquipmentRequest, userID string) (*domain.Equipment, error)
	UpdateEquipment(ctx context.Context, companyID string, equipmentID string, req dto.UpdateEquipmentRequest, userID string) (*domain.Equipment, error)

	// RetireEquipment sets the machine's status to retired.
	RetireEquipment(ctx context.Context, companyID string, equipmentID string, userID string) error
}

// EquipmentSvcFacade combines all equipment-related service interfaces
type EquipmentSvcFacade interface {
	EquipmentReaderSvc
	EquipmentWriterSvc
}
