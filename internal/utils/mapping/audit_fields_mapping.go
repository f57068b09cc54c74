package mapping

import (
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/SscSPs/treeservice_ops/internal/models"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}

// NullableID maps an empty reference to a NULL column value.
func NullableID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}

// FromNullableID maps a NULL reference column to an empty string.
func FromNullableID(id *string) string {
	if id == nil {
		return ""
	}
	return *id
}

// StringArray keeps TEXT[] columns non-NULL.
func StringArray(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
