package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
)

// CareerTrackRepository defines persistence for career tracks
type CareerTrackRepository interface {
	SaveCareerTrack(ctx context.Context, track domain.CareerTrack) error
	FindCareerTrackByID(ctx context.Context, trackID string) (*domain.CareerTrack, error)
	ListCareerTracks(ctx context.Context, companyID string) ([]domain.CareerTrack, error)
	DeleteCareerTrack(ctx context.Context, trackID string) error
	// CountSkillsForTrack counts active employee skills on the track.
	CountSkillsForTrack(ctx context.Context, trackID string) (int, error)
}

// ManagementLevelRepository defines persistence for management levels
type ManagementLevelRepository interface {
	SaveManagementLevel(ctx context.Context, level domain.ManagementLevel) error
	FindManagementLevelByID(ctx context.Context, levelID string) (*domain.ManagementLevel, error)
	ListManagementLevels(ctx context.Context, companyID string) ([]domain.ManagementLevel, error)
	DeleteManagementLevel(ctx context.Context, levelID string) error
	// CountEmployeesAtLevel counts employees assigned the level, active or not.
	CountEmployeesAtLevel(ctx context.Context, levelID string) (int, error)
}

// CertificationRepository defines persistence for certifications and their assignments
type CertificationRepository interface {
	SaveCertification(ctx context.Context, cert domain.Certification) error
	FindCertificationByID(ctx context.Context, certificationID string) (*domain.Certification, error)
	ListCertifications(ctx context.Context, companyID string) ([]domain.Certification, error)
	DeleteCertification(ctx context.Context, certificationID string) error
	// CountActiveAssignments counts employees currently holding the certification.
	CountActiveAssignments(ctx context.Context, certificationID string) (int, error)

	// SaveEmployeeCertification fails with ErrValidation when the employee
	// already actively holds the certification.
	SaveEmployeeCertification(ctx context.Context, assignment domain.EmployeeCertification) error
	FindEmployeeCertificationByID(ctx context.Context, assignmentID string) (*domain.EmployeeCertification, error)
	ListEmployeeCertifications(ctx context.Context, employeeID string) ([]domain.EmployeeCertification, error)
	RevokeEmployeeCertification(ctx context.Context, assignmentID string, userID string, now time.Time) error
}

// EmployeeSkillRepository defines persistence for skill assignments
type EmployeeSkillRepository interface {
	// SaveEmployeeSkill fails with ErrValidation when the employee already has
	// an active skill on the same track.
	SaveEmployeeSkill(ctx context.Context, skill domain.EmployeeSkill) error
	FindEmployeeSkillByID(ctx context.Context, skillID string) (*domain.EmployeeSkill, error)
	ListEmployeeSkills(ctx context.Context, employeeID string) ([]domain.EmployeeSkill, error)
	DeactivateEmployeeSkill(ctx context.Context, skillID string, userID string, now time.Time) error
}

// WorkforceRepositoryFacade combines the workforce repositories
type WorkforceRepositoryFacade interface {
	CareerTrackRepository
	ManagementLevelRepository
	CertificationRepository
	EmployeeSkillRepository
}
