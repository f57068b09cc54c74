package mapping

import (
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/SscSPs/treeservice_ops/internal/models"
)

// ToDomainCareerTrack converts a model CareerTrack to a domain CareerTrack
func ToDomainCareerTrack(m models.CareerTrack) domain.CareerTrack {
	return domain.CareerTrack{
		TrackID:     m.TrackID,
		CompanyID:   m.CompanyID,
		Name:        m.Name,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainManagementLevel converts a model ManagementLevel to a domain ManagementLevel
func ToDomainManagementLevel(m models.ManagementLevel) domain.ManagementLevel {
	return domain.ManagementLevel{
		LevelID:     m.LevelID,
		CompanyID:   m.CompanyID,
		Name:        m.Name,
		Rank:        m.Rank,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCertification converts a model Certification to a domain Certification
func ToDomainCertification(m models.Certification) domain.Certification {
	return domain.Certification{
		CertificationID: m.CertificationID,
		CompanyID:       m.CompanyID,
		Name:            m.Name,
		Issuer:          m.Issuer,
		ValidityMonths:  m.ValidityMonths,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEmployeeSkill converts a model EmployeeSkill to a domain EmployeeSkill
func ToDomainEmployeeSkill(m models.EmployeeSkill) domain.EmployeeSkill {
	return domain.EmployeeSkill{
		SkillID:       m.SkillID,
		CompanyID:     m.CompanyID,
		EmployeeID:    m.EmployeeID,
		CareerTrackID: m.CareerTrackID,
		Level:         m.Level,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEmployeeCertification converts a model EmployeeCertification to its domain form
func ToDomainEmployeeCertification(m models.EmployeeCertification) domain.EmployeeCertification {
	return domain.EmployeeCertification{
		AssignmentID:    m.AssignmentID,
		CompanyID:       m.CompanyID,
		EmployeeID:      m.EmployeeID,
		CertificationID: m.CertificationID,
		IssuedAt:        m.IssuedAt,
		ExpiresAt:       m.ExpiresAt,
		IsActive:        m.IsActive,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
