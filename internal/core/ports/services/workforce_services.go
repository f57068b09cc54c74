package services

import (
	"context"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/SscSPs/treeservice_ops/internal/dto"
)

// WorkforceCatalogSvc manages an organization's tracks, levels and certifications.
// Deletes are refused while anything still references the record.
type WorkforceCatalogSvc interface {
	CreateCareerTrack(ctx context.Context, companyID string, req dto.CreateCareerTrackRequest, userID string) (*domain.CareerTrack, error)
	ListCareerTracks(ctx context.Context, companyID string) ([]domain.CareerTrack, error)
	DeleteCareerTrack(ctx context.Context, companyID string, trackID string, userID string) error

	CreateManagementLevel(ctx context.Context, companyID string, req dto.CreateManagementLevelRequest, userID string) (*domain.ManagementLevel, error)
	ListManagementLevels(ctx context.Context, companyID string) ([]domain.ManagementLevel, error)
	DeleteManagementLevel(ctx context.Context, companyID string, levelID string, userID string) error

	CreateCertification(ctx context.Context, companyID string, req dto.CreateCertificationRequest, userID string) (*domain.Certification, error)
	ListCertifications(ctx context.Context, companyID string) ([]domain.Certification, error)
	DeleteCertification(ctx context.Context, companyID string, certificationID string, userID string) error
}

// WorkforceAssignmentSvc manages skills and certifications held by employees.
type WorkforceAssignmentSvc interface {
	AssignSkill(ctx context.Context, companyID string, employeeID string, req dto.AssignSkillRequest, userID string) (*domain.EmployeeSkill, error)
	ListEmployeeSkills(ctx context.Context, companyID string, employeeID string) ([]domain.EmployeeSkill, error)
	RemoveSkill(ctx context.Context, companyID string, employeeID string, skillID string, userID string) error

	AssignCertification(ctx context.Context, companyID string, employeeID string, req dto.AssignCertificationRequest, userID string) (*domain.EmployeeCertification, error)
	ListEmployeeCertifications(ctx context.Context, companyID string, employeeID string) ([]domain.EmployeeCertification, error)
	RevokeCertification(ctx context.Context, companyID string, employeeID string, assignmentID string, userID string) error
}

// WorkforceSvcFacade combines the workforce service interfaces
type WorkforceSvcFacade interface {
	WorkforceCatalogSvc
	WorkforceAssignmentSvc
}
