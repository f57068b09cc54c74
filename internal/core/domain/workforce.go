package domain

import "time"

// CareerTrack is a skill path employees can be assigned to (e.g. climber, operator).
type CareerTrack struct {
	TrackID     string `json:"trackID"`
	CompanyID   string `json:"companyID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AuditFields
}

// ManagementLevel is a rung in the organization's reporting structure.
type ManagementLevel struct {
	LevelID     string `json:"levelID"`
	CompanyID   string `json:"companyID"`
	Name        string `json:"name"`
	Rank        int    `json:"rank"`
	Description string `json:"description"`
	AuditFields
}

// Certification is a credential employees can hold (e.g. ISA Arborist).
type Certification struct {
	CertificationID string `json:"certificationID"`
	CompanyID       string `json:"companyID"`
	Name            string `json:"name"`
	Issuer          string `json:"issuer"`
	ValidityMonths  int    `json:"validityMonths"`
	AuditFields
}

// EmployeeSkill places an employee on a career track at a level.
type EmployeeSkill struct {
	SkillID       string `json:"skillID"`
	CompanyID     string `json:"companyID"`
	EmployeeID    string `json:"employeeID"`
	CareerTrackID string `json:"careerTrackID"`
	Level         int    `json:"level"`
	IsActive      bool   `json:"isActive"`
	AuditFields
}

// EmployeeCertification records that an employee holds a certification.
type EmployeeCertification struct {
	AssignmentID    string     `json:"assignmentID"`
	CompanyID       string     `json:"companyID"`
	EmployeeID      string     `json:"employeeID"`
	CertificationID string     `json:"certificationID"`
	IssuedAt        time.Time  `json:"issuedAt"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"`
	IsActive        bool       `json:"isActive"`
	AuditFields
}
