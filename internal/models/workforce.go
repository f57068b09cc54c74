package models

import "time"

// CareerTrack represents a row of the career_tracks table.
type CareerTrack struct {
	TrackID     string `db:"track_id"`
	CompanyID   string `db:"company_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	AuditFields
}

// ManagementLevel represents a row of the management_levels table.
type ManagementLevel struct {
	LevelID     string `db:"level_id"`
	CompanyID   string `db:"company_id"`
	Name        string `db:"name"`
	Rank        int    `db:"rank"`
	Description string `db:"description"`
	AuditFields
}

// Certification represents a row of the certifications table.
type Certification struct {
	CertificationID string `db:"certification_id"`
	CompanyID       string `db:"company_id"`
	Name            string `db:"name"`
	Issuer          string `db:"issuer"`
	ValidityMonths  int    `db:"validity_months"`
	AuditFields
}

// EmployeeSkill represents a row of the employee_skills table.
type EmployeeSkill struct {
	SkillID       string `db:"skill_id"`
	CompanyID     string `db:"company_id"`
	EmployeeID    string `db:"employee_id"`
	CareerTrackID string `db:"career_track_id"`
	Level         int    `db:"level"`
	IsActive      bool   `db:"is_active"`
	AuditFields
}

// EmployeeCertification represents a row of the employee_certifications table.
type EmployeeCertification struct {
	AssignmentID    string     `db:"assignment_id"`
	CompanyID       string     `db:"company_id"`
	EmployeeID      string     `db:"employee_id"`
	CertificationID string     `db:"certification_id"`
	IssuedAt        time.Time  `db:"issued_at"`
	ExpiresAt       *time.Time `db:"expires_at"`
	IsActive        bool       `db:"is_active"`
	AuditFields
}
