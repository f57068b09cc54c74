package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/treeservice_ops/internal/apperrors"
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	portsrepo "github.com/SscSPs/treeservice_ops/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/SscSPs/treeservice_ops/internal/dto"
	"github.com/google/uuid"
)

type workforceService struct {
	BaseService
	repo         portsrepo.WorkforceRepositoryFacade
	employeeRepo portsrepo.EmployeeReader
}

// NewWorkforceService creates a new WorkforceService.
func NewWorkforceService(repo portsrepo.WorkforceRepositoryFacade, employees portsrepo.EmployeeReader, opts ...Option) portssvc.WorkforceSvcFacade {
	return &workforceService{
		BaseService:  newBaseService(opts),
		repo:         repo,
		employeeRepo: employees,
	}
}

var _ portssvc.WorkforceSvcFacade = (*workforceService)(nil)

// --- career tracks ---

func (s *workforceService) CreateCareerTrack(ctx context.Context, companyID string, req dto.CreateCareerTrackRequest, userID string) (*domain.CareerTrack, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}
	track := domain.CareerTrack{
		TrackID:     uuid.NewString(),
		CompanyID:   companyID,
		Name:        req.Name,
		Description: req.Description,
		AuditFields: domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.repo.SaveCareerTrack(ctx, track); err != nil {
		s.logUnlessExpected(ctx, err, "Failed to create career track", slog.String("name", req.Name))
		return nil, err
	}
	s.LogInfo(ctx, "Career track created", slog.String("track_id", track.TrackID))
	return &track, nil
}

func (s *workforceService) ListCareerTracks(ctx context.Context, companyID string) ([]domain.CareerTrack, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}
	tracks, err := s.repo.ListCareerTracks(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list career tracks")
		return nil, err
	}
	return tracks, nil
}

func (s *workforceService) DeleteCareerTrack(ctx context.Context, companyID string, trackID string, userID string) error {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return err
	}
	track, err := s.repo.FindCareerTrackByID(ctx, trackID)
	if err != nil {
		s.logUnlessExpected(ctx, err, "Failed to find career track", slog.String("track_id", trackID))
		return err
	}
	if err := s.CheckOwner(ctx, companyID, track.CompanyID, "career track", trackID); err != nil {
		return err
	}
	n, err := s.repo.CountSkillsForTrack(ctx, trackID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count skills for career track", slog.String("track_id", trackID))
		return err
	}
	if n > 0 {
		return apperrors.Blocked("career track", n, "employee skills")
	}
	if err := s.repo.DeleteCareerTrack(ctx, trackID); err != nil {
		s.logUnlessExpected(ctx, err, "Failed to delete career track", slog.String("track_id", trackID))
		return err
	}
	s.LogInfo(ctx, "Career track deleted", slog.String("track_id", trackID), slog.String("user_id", userID))
	return nil
}

// --- management levels ---

func (s *workforceService) CreateManagementLevel(ctx context.Context, companyID string, req dto.CreateManagementLevelRequest, userID string) (*domain.ManagementLevel, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}
	level := domain.ManagementLevel{
		LevelID:     uuid.NewString(),
		CompanyID:   companyID,
		Name:        req.Name,
		Rank:        req.Rank,
		Description: req.Description,
		AuditFields: domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.repo.SaveManagementLevel(ctx, level); err != nil {
		s.logUnlessExpected(ctx, err, "Failed to create management level", slog.String("name", req.Name))
		return nil, err
	}
	s.LogInfo(ctx, "Management level created", slog.String("level_id", level.LevelID))
	return &level, nil
}

func (s *workforceService) ListManagementLevels(ctx context.Context, companyID string) ([]domain.ManagementLevel, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}
	levels, err := s.repo.ListManagementLevels(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list management levels")
		return nil, err
	}
	return levels, nil
}

func (s *workforceService) DeleteManagementLevel(ctx context.Context, companyID string, levelID string, userID string) error {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return err
	}
	level, err := s.repo.FindManagementLevelByID(ctx, levelID)
	if err != nil {
		s.logUnlessExpected(ctx, err, "Failed to find management level", slog.String("level_id", levelID))
		return err
	}
	if err := s.CheckOwner(ctx, companyID, level.CompanyID, "management level", levelID); err != nil {
		return err
	}
	n, err := s.repo.CountEmployeesAtLevel(ctx, levelID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count employees at level", slog.String("level_id", levelID))
		return err
	}
	if n > 0 {
		return apperrors.Blocked("management level", n, "employees")
	}
	if err := s.repo.DeleteManagementLevel(ctx, levelID); err != nil {
		s.logUnlessExpected(ctx, err, "Failed to delete management level", slog.String("level_id", levelID))
		return err
	}
	s.LogInfo(ctx, "Management level deleted", slog.String("level_id", levelID), slog.String("user_id", userID))
	return nil
}

// --- certifications ---

func (s *workforceService) CreateCertification(ctx context.Context, companyID string, req dto.CreateCertificationRequest, userID string) (*domain.Certification, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}
	cert := domain.Certification{
		CertificationID: uuid.NewString(),
		CompanyID:       companyID,
		Name:            req.Name,
		Issuer:          req.Issuer,
		ValidityMonths:  req.ValidityMonths,
		AuditFields:     domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.repo.SaveCertification(ctx, cert); err != nil {
		s.logUnlessExpected(ctx, err, "Failed to create certification", slog.String("name", req.Name))
		return nil, err
	}
	s.LogInfo(ctx, "Certification created", slog.String("certification_id", cert.CertificationID))
	return &cert, nil
}

func (s *workforceService) ListCertifications(ctx context.Context, companyID string) ([]domain.Certification, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}
	certs, err := s.repo.ListCertifications(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list certifications")
		return nil, err
	}
	return certs, nil
}

func (s *workforceService) DeleteCertification(ctx context.Context, companyID string, certificationID string, userID string) error {
	cert, err := s.certification(ctx, companyID, certificationID)
	if err != nil {
		return err
	}
	n, err := s.repo.CountActiveAssignments(ctx, cert.CertificationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count certification holders", slog.String("certification_id", certificationID))
		return err
	}
	if n > 0 {
		return apperrors.Blocked("certification", n, "active holders")
	}
	if err := s.repo.DeleteCertification(ctx, certificationID); err != nil {
		s.logUnlessExpected(ctx, err, "Failed to delete certification", slog.String("certification_id", certificationID))
		return err
	}
	s.LogInfo(ctx, "Certification deleted", slog.String("certification_id", certificationID), slog.String("user_id", userID))
	return nil
}

func (s *workforceService) certification(ctx context.Context, companyID, certificationID string) (*domain.Certification, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}
	cert, err := s.repo.FindCertificationByID(ctx, certificationID)
	if err != nil {
		s.logUnlessExpected(ctx, err, "Failed to find certification", slog.String("certification_id", certificationID))
		return nil, err
	}
	if err := s.CheckOwner(ctx, companyID, cert.CompanyID, "certification", certificationID); err != nil {
		return nil, err
	}
	return cert, nil
}

// --- assignments ---

// employee checks the employee exists in the organization.
func (s *workforceService) employee(ctx context.Context, companyID, employeeID string) error {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return err
	}
	emp, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		s.logUnlessExpected(ctx, err, "Failed to find employee", slog.String("employee_id", employeeID))
		return err
	}
	return s.CheckOwner(ctx, companyID, emp.CompanyID, "employee", employeeID)
}

func (s *workforceService) AssignSkill(ctx context.Context, companyID string, employeeID string, req dto.AssignSkillRequest, userID string) (*domain.EmployeeSkill, error) {
	if err := s.employee(ctx, companyID, employeeID); err != nil {
		return nil, err
	}
	track, err := s.repo.FindCareerTrackByID(ctx, req.CareerTrackID)
	if err != nil {
		s.logUnlessExpected(ctx, err, "Failed to find career track", slog.String("track_id", req.CareerTrackID))
		return nil, err
	}
	if err := s.CheckOwner(ctx, companyID, track.CompanyID, "career track", track.TrackID); err != nil {
		return nil, err
	}

	skill := domain.EmployeeSkill{
		SkillID:       uuid.NewString(),
		CompanyID:     companyID,
		EmployeeID:    employeeID,
		CareerTrackID: track.TrackID,
		Level:         req.Level,
		IsActive:      true,
		AuditFields:   domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.repo.SaveEmployeeSkill(ctx, skill); err != nil {
		s.logUnlessExpected(ctx, err, "Failed to assign skill", slog.String("employee_id", employeeID))
		return nil, err
	}
	s.LogInfo(ctx, "Skill assigned",
		slog.String("employee_id", employeeID),
		slog.String("track_id", track.TrackID),
		slog.Int("level", req.Level))
	return &skill, nil
}

func (s *workforceService) ListEmployeeSkills(ctx context.Context, companyID string, employeeID string) ([]domain.EmployeeSkill, error) {
	if err := s.employee(ctx, companyID, employeeID); err != nil {
		return nil, err
	}
	skills, err := s.repo.ListEmployeeSkills(ctx, employeeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employee skills", slog.String("employee_id", employeeID))
		return nil, err
	}
	return skills, nil
}

func (s *workforceService) RemoveSkill(ctx context.Context, companyID string, employeeID string, skillID string, userID string) error {
	if err := s.employee(ctx, companyID, employeeID); err != nil {
		return err
	}
	skill, err := s.repo.FindEmployeeSkillByID(ctx, skillID)
	if err != nil {
		s.logUnlessExpected(ctx, err, "Failed to find skill", slog.String("skill_id", skillID))
		return err
	}
	if skill.EmployeeID != employeeID {
		return fmt.Errorf("%w: skill %s of employee %s", apperrors.ErrNotFound, skillID, employeeID)
	}
	if !skill.IsActive {
		return nil
	}
	if err := s.repo.DeactivateEmployeeSkill(ctx, skillID, userID, s.Now()); err != nil {
		s.logUnlessExpected(ctx, err, "Failed to remove skill", slog.String("skill_id", skillID))
		return err
	}
	s.LogInfo(ctx, "Skill removed", slog.String("skill_id", skillID))
	return nil
}

func (s *workforceService) AssignCertification(ctx context.Context, companyID string, employeeID string, req dto.AssignCertificationRequest, userID string) (*domain.EmployeeCertification, error) {
	if err := s.employee(ctx, companyID, employeeID); err != nil {
		return nil, err
	}
	cert, err := s.certification(ctx, companyID, req.CertificationID)
	if err != nil {
		return nil, err
	}

	issued := req.IssuedAt.UTC()
	expires := req.ExpiresAt
	if expires == nil && cert.ValidityMonths > 0 {
		e := issued.AddDate(0, cert.ValidityMonths, 0)
		expires = &e
	}
	if expires != nil && !expires.After(issued) {
		return nil, fmt.Errorf("%w: expiry must be after issue date", apperrors.ErrValidation)
	}

	assignment := domain.EmployeeCertification{
		AssignmentID:    uuid.NewString(),
		CompanyID:       companyID,
		EmployeeID:      employeeID,
		CertificationID: cert.CertificationID,
		IssuedAt:        issued,
		ExpiresAt:       expires,
		IsActive:        true,
		AuditFields:     domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.repo.SaveEmployeeCertification(ctx, assignment); err != nil {
		s.logUnlessExpected(ctx, err, "Failed to assign certification", slog.String("employee_id", employeeID))
		return nil, err
	}
	s.LogInfo(ctx, "Certification assigned",
		slog.String("employee_id", employeeID),
		slog.String("certification_id", cert.CertificationID))
	return &assignment, nil
}

func (s *workforceService) ListEmployeeCertifications(ctx context.Context, companyID string, employeeID string) ([]domain.EmployeeCertification, error) {
	if err := s.employee(ctx, companyID, employeeID); err != nil {
		return nil, err
	}
	certs, err := s.repo.ListEmployeeCertifications(ctx, employeeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employee certifications", slog.String("employee_id", employeeID))
		return nil, err
	}
	return certs, nil
}

func (s *workforceService) RevokeCertification(ctx context.Context, companyID string, employeeID string, assignmentID string, userID string) error {
	if err := s.employee(ctx, companyID, employeeID); err != nil {
		return err
	}
	assignment, err := s.repo.FindEmployeeCertificationByID(ctx, assignmentID)
	if err != nil {
		s.logUnlessExpected(ctx, err, "Failed to find certification assignment", slog.String("assignment_id", assignmentID))
		return err
	}
	if assignment.EmployeeID != employeeID {
		return fmt.Errorf("%w: certification %s of employee %s", apperrors.ErrNotFound, assignmentID, employeeID)
	}
	if !assignment.IsActive {
		return nil
	}
	if err := s.repo.RevokeEmployeeCertification(ctx, assignmentID, userID, s.Now()); err != nil {
		s.logUnlessExpected(ctx, err, "Failed to revoke certification", slog.String("assignment_id", assignmentID))
		return err
	}
	s.LogInfo(ctx, "Certification revoked", slog.String("assignment_id", assignmentID))
	return nil
}
