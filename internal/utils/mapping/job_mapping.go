package mapping

import (
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/SscSPs/treeservice_ops/internal/models"
)

// ToModelJob converts a domain Job to a model Job. Line items are stored separately.
func ToModelJob(d domain.Job) models.Job {
	return models.Job{
		JobID:                 d.JobID,
		CompanyID:             d.CompanyID,
		CustomerID:            d.CustomerID,
		Sequence:              d.Sequence,
		JobNumber:             d.JobNumber,
		Title:                 d.Title,
		Description:           d.Description,
		SiteAddress:           d.SiteAddress,
		Status:                string(d.Status),
		ScheduledStart:        d.ScheduledStart,
		ScheduledEnd:          d.ScheduledEnd,
		CompletedAt:           d.CompletedAt,
		PaidAt:                d.PaidAt,
		EstimatedTotalHours:   d.EstimatedTotalHours,
		TotalInvestment:       d.TotalInvestment,
		ActualProductiveHours: d.ActualProductiveHours,
		ActualSupportHours:    d.ActualSupportHours,
		ActualTotalCost:       d.ActualTotalCost,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJob converts a model Job to a domain Job
func ToDomainJob(m models.Job) domain.Job {
	return domain.Job{
		JobID:                 m.JobID,
		CompanyID:             m.CompanyID,
		CustomerID:            m.CustomerID,
		Sequence:              m.Sequence,
		JobNumber:             m.JobNumber,
		Title:                 m.Title,
		Description:           m.Description,
		SiteAddress:           m.SiteAddress,
		Status:                domain.JobStatus(m.Status),
		ScheduledStart:        m.ScheduledStart,
		ScheduledEnd:          m.ScheduledEnd,
		CompletedAt:           m.CompletedAt,
		PaidAt:                m.PaidAt,
		EstimatedTotalHours:   m.EstimatedTotalHours,
		TotalInvestment:       m.TotalInvestment,
		ActualProductiveHours: m.ActualProductiveHours,
		ActualSupportHours:    m.ActualSupportHours,
		ActualTotalCost:       m.ActualTotalCost,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLineItem converts a domain JobLineItem to a model JobLineItem
func ToModelLineItem(d domain.JobLineItem) models.JobLineItem {
	return models.JobLineItem{
		LineItemID:            d.LineItemID,
		JobID:                 d.JobID,
		CompanyID:             d.CompanyID,
		IsBillable:            d.IsBillable,
		ServiceType:           d.ServiceType,
		DisplayName:           d.DisplayName,
		SortOrder:             d.SortOrder,
		Quantity:              d.Quantity,
		DifficultyFactor:      d.DifficultyFactor,
		Score:                 d.Score,
		ProductionRate:        d.ProductionRate,
		LoadoutID:             NullableID(d.LoadoutID),
		EmployeeIDs:           StringArray(d.EmployeeIDs),
		EquipmentIDs:          StringArray(d.EquipmentIDs),
		TotalCostPerHour:      d.TotalCostPerHour,
		MarginPercent:         d.MarginPercent,
		BillingRate:           d.BillingRate,
		EstimatedHours:        d.EstimatedHours,
		TotalCost:             d.TotalCost,
		LineItemTotal:         d.LineItemTotal,
		Status:                string(d.Status),
		ActualProductiveHours: d.ActualProductiveHours,
		VarianceHours:         d.VarianceHours,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLineItem converts a model JobLineItem to a domain JobLineItem
func ToDomainLineItem(m models.JobLineItem) domain.JobLineItem {
	return domain.JobLineItem{
		LineItemID:            m.LineItemID,
		JobID:                 m.JobID,
		CompanyID:             m.CompanyID,
		IsBillable:            m.IsBillable,
		ServiceType:           m.ServiceType,
		DisplayName:           m.DisplayName,
		SortOrder:             m.SortOrder,
		Quantity:              m.Quantity,
		DifficultyFactor:      m.DifficultyFactor,
		Score:                 m.Score,
		ProductionRate:        m.ProductionRate,
		LoadoutID:             FromNullableID(m.LoadoutID),
		EmployeeIDs:           m.EmployeeIDs,
		EquipmentIDs:          m.EquipmentIDs,
		TotalCostPerHour:      m.TotalCostPerHour,
		MarginPercent:         m.MarginPercent,
		BillingRate:           m.BillingRate,
		EstimatedHours:        m.EstimatedHours,
		TotalCost:             m.TotalCost,
		LineItemTotal:         m.LineItemTotal,
		Status:                domain.LineItemStatus(m.Status),
		ActualProductiveHours: m.ActualProductiveHours,
		VarianceHours:         m.VarianceHours,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}
