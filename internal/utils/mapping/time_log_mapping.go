package mapping

import (
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/SscSPs/treeservice_ops/internal/models"
)

// ToModelTimeLog converts a domain TimeLog to a model TimeLog
func ToModelTimeLog(d domain.TimeLog) models.TimeLog {
	return models.TimeLog{
		TimeLogID:     d.TimeLogID,
		CompanyID:     d.CompanyID,
		JobID:         d.JobID,
		LineItemID:    NullableID(d.LineItemID),
		EmployeeID:    d.EmployeeID,
		EquipmentIDs:  StringArray(d.EquipmentIDs),
		StartTime:     d.StartTime,
		EndTime:       d.EndTime,
		EmployeeRate:  d.EmployeeRate,
		EquipmentCost: d.EquipmentCost,
		DurationHours: d.DurationHours,
		TotalCost:     d.TotalCost,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTimeLog converts a model TimeLog to a domain TimeLog
func ToDomainTimeLog(m models.TimeLog) domain.TimeLog {
	return domain.TimeLog{
		TimeLogID:     m.TimeLogID,
		CompanyID:     m.CompanyID,
		JobID:         m.JobID,
		LineItemID:    FromNullableID(m.LineItemID),
		EmployeeID:    m.EmployeeID,
		EquipmentIDs:  m.EquipmentIDs,
		StartTime:     m.StartTime,
		EndTime:       m.EndTime,
		EmployeeRate:  m.EmployeeRate,
		EquipmentCost: m.EquipmentCost,
		DurationHours: m.DurationHours,
		TotalCost:     m.TotalCost,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
