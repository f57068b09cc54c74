package dto

import "time"

// CreateCareerTrackRequest defines a new career track.
type CreateCareerTrackRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

// CreateManagementLevelRequest defines a new management level.
type CreateManagementLevelRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Rank        int    `json:"rank" binding:"gte=0"`
	Description string `json:"description"`
}

// CreateCertificationRequest defines a new certification type.
type CreateCertificationRequest struct {
	Name           string `json:"name" binding:"required,max=200"`
	Issuer         string `json:"issuer"`
	ValidityMonths int    `json:"validityMonths" binding:"gte=0"`
}

// AssignSkillRequest places an employee on a career track.
type AssignSkillRequest struct {
	CareerTrackID string `json:"careerTrackID" binding:"required"`
	Level         int    `json:"level" binding:"gte=1,lte=10"`
}

// AssignCertificationRequest records a certification held by an employee.
// ExpiresAt defaults to IssuedAt plus the certification's validity.
type AssignCertificationRequest struct {
	CertificationID string     `json:"certificationID" binding:"required"`
	IssuedAt        time.Time  `json:"issuedAt" binding:"required"`
	ExpiresAt       *time.Time `json:"expiresAt"`
}
