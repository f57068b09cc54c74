package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/apperrors"
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	portsrepo "github.com/SscSPs/treeservice_ops/internal/core/ports/repositories"
	"github.com/SscSPs/treeservice_ops/internal/models"
	"github.com/SscSPs/treeservice_ops/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxWorkforceRepository stores the career-track, management-level and
// certification catalogs and their assignments to employees.
type PgxWorkforceRepository struct {
	BaseRepository
}

func newPgxWorkforceRepository(pool *pgxpool.Pool) portsrepo.WorkforceRepositoryFacade {
	return &PgxWorkforceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WorkforceRepositoryFacade = (*PgxWorkforceRepository)(nil)

const (
	auditColumns = `created_at, created_by, last_updated_at, last_updated_by`

	selectCareerTrackFields     = `track_id, company_id, name, description, ` + auditColumns
	selectManagementLevelFields = `level_id, company_id, name, rank, description, ` + auditColumns
	selectCertificationFields   = `certification_id, company_id, name, issuer, validity_months, ` + auditColumns
	selectEmployeeSkillFields   = `skill_id, company_id, employee_id, career_track_id, level, is_active, ` + auditColumns
	selectEmployeeCertFields    = `assignment_id, company_id, employee_id, certification_id, issued_at, expires_at, is_active, ` + auditColumns
)

func scanCareerTrack(row pgx.Row) (domain.CareerTrack, error) {
	var m models.CareerTrack
	if err := row.Scan(&m.TrackID, &m.CompanyID, &m.Name, &m.Description,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
		return domain.CareerTrack{}, err
	}
	return mapping.ToDomainCareerTrack(m), nil
}

func scanManagementLevel(row pgx.Row) (domain.ManagementLevel, error) {
	var m models.ManagementLevel
	if err := row.Scan(&m.LevelID, &m.CompanyID, &m.Name, &m.Rank, &m.Description,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
		return domain.ManagementLevel{}, err
	}
	return mapping.ToDomainManagementLevel(m), nil
}

func scanCertification(row pgx.Row) (domain.Certification, error) {
	var m models.Certification
	if err := row.Scan(&m.CertificationID, &m.CompanyID, &m.Name, &m.Issuer, &m.ValidityMonths,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
		return domain.Certification{}, err
	}
	return mapping.ToDomainCertification(m), nil
}

func scanEmployeeSkill(row pgx.Row) (domain.EmployeeSkill, error) {
	var m models.EmployeeSkill
	if err := row.Scan(&m.SkillID, &m.CompanyID, &m.EmployeeID, &m.CareerTrackID, &m.Level, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
		return domain.EmployeeSkill{}, err
	}
	return mapping.ToDomainEmployeeSkill(m), nil
}

func scanEmployeeCertification(row pgx.Row) (domain.EmployeeCertification, error) {
	var m models.EmployeeCertification
	if err := row.Scan(&m.AssignmentID, &m.CompanyID, &m.EmployeeID, &m.CertificationID, &m.IssuedAt, &m.ExpiresAt, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
		return domain.EmployeeCertification{}, err
	}
	return mapping.ToDomainEmployeeCertification(m), nil
}

func (r *PgxWorkforceRepository) list(ctx context.Context, query string, arg string) (pgx.Rows, error) {
	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query workforce catalog: %w", err)
	}
	return rows, nil
}

func (r *PgxWorkforceRepository) deleteByID(ctx context.Context, table, column, id, entity string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM `+table+` WHERE `+column+` = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", entity, id, err)
	}
	return expectOneRow(tag, entity, id)
}

// --- Career tracks ---

func (r *PgxWorkforceRepository) SaveCareerTrack(ctx context.Context, t domain.CareerTrack) error {
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO career_tracks (`+selectCareerTrackFields+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		t.TrackID, t.CompanyID, t.Name, t.Description, t.CreatedAt, t.CreatedBy, t.LastUpdatedAt, t.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to save career track %s: %w", t.TrackID, err)
	}
	return nil
}

func (r *PgxWorkforceRepository) FindCareerTrackByID(ctx context.Context, trackID string) (*domain.CareerTrack, error) {
	t, err := scanCareerTrack(r.Pool.QueryRow(ctx,
		`SELECT `+selectCareerTrackFields+` FROM career_tracks WHERE track_id = $1`, trackID))
	if err != nil {
		return nil, notFoundOr(err, "career track", trackID)
	}
	return &t, nil
}

func (r *PgxWorkforceRepository) ListCareerTracks(ctx context.Context, companyID string) ([]domain.CareerTrack, error) {
	rows, err := r.list(ctx, `SELECT `+selectCareerTrackFields+` FROM career_tracks WHERE company_id = $1 ORDER BY name`, companyID)
	if err != nil {
		return nil, err
	}
	return collectRows(rows, scanCareerTrack)
}

func (r *PgxWorkforceRepository) DeleteCareerTrack(ctx context.Context, trackID string) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM employee_skills WHERE career_track_id = $1 AND NOT is_active`, trackID); err != nil {
			return fmt.Errorf("failed to clear inactive skills of career track %s: %w", trackID, err)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM career_tracks WHERE track_id = $1`, trackID)
		if err != nil {
			return fmt.Errorf("failed to delete career track %s: %w", trackID, err)
		}
		return expectOneRow(tag, "career track", trackID)
	})
}

func (r *PgxWorkforceRepository) CountSkillsForTrack(ctx context.Context, trackID string) (int, error) {
	return countQuery(ctx, r.Pool, `SELECT COUNT(*) FROM employee_skills WHERE career_track_id = $1 AND is_active`, trackID)
}

// --- Management levels ---

func (r *PgxWorkforceRepository) SaveManagementLevel(ctx context.Context, l domain.ManagementLevel) error {
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO management_levels (`+selectManagementLevelFields+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		l.LevelID, l.CompanyID, l.Name, l.Rank, l.Description, l.CreatedAt, l.CreatedBy, l.LastUpdatedAt, l.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to save management level %s: %w", l.LevelID, err)
	}
	return nil
}

func (r *PgxWorkforceRepository) FindManagementLevelByID(ctx context.Context, levelID string) (*domain.ManagementLevel, error) {
	l, err := scanManagementLevel(r.Pool.QueryRow(ctx,
		`SELECT `+selectManagementLevelFields+` FROM management_levels WHERE level_id = $1`, levelID))
	if err != nil {
		return nil, notFoundOr(err, "management level", levelID)
	}
	return &l, nil
}

func (r *PgxWorkforceRepository) ListManagementLevels(ctx context.Context, companyID string) ([]domain.ManagementLevel, error) {
	rows, err := r.list(ctx, `SELECT `+selectManagementLevelFields+` FROM management_levels WHERE company_id = $1 ORDER BY rank, name`, companyID)
	if err != nil {
		return nil, err
	}
	return collectRows(rows, scanManagementLevel)
}

// DeleteManagementLevel removes a level. An employee assigned in between the
// count and the delete trips the foreign key, which surfaces as a blocked delete.
func (r *PgxWorkforceRepository) DeleteManagementLevel(ctx context.Context, levelID string) error {
	err := r.deleteByID(ctx, "management_levels", "level_id", levelID, "management level")
	if err != nil && isForeignKeyViolation(err) {
		n, cerr := r.CountEmployeesAtLevel(ctx, levelID)
		if cerr != nil {
			return fmt.Errorf("%w: management level %s is still assigned to employees", apperrors.ErrValidation, levelID)
		}
		return apperrors.Blocked("management level", n, "employees")
	}
	return err
}

func (r *PgxWorkforceRepository) CountEmployeesAtLevel(ctx context.Context, levelID string) (int, error) {
	return countQuery(ctx, r.Pool, `SELECT COUNT(*) FROM employees WHERE management_level_id = $1`, levelID)
}

// --- Certifications ---

func (r *PgxWorkforceRepository) SaveCertification(ctx context.Context, c domain.Certification) error {
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO certifications (`+selectCertificationFields+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.CertificationID, c.CompanyID, c.Name, c.Issuer, c.ValidityMonths, c.CreatedAt, c.CreatedBy, c.LastUpdatedAt, c.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to save certification %s: %w", c.CertificationID, err)
	}
	return nil
}

func (r *PgxWorkforceRepository) FindCertificationByID(ctx context.Context, certificationID string) (*domain.Certification, error) {
	c, err := scanCertification(r.Pool.QueryRow(ctx,
		`SELECT `+selectCertificationFields+` FROM certifications WHERE certification_id = $1`, certificationID))
	if err != nil {
		return nil, notFoundOr(err, "certification", certificationID)
	}
	return &c, nil
}

func (r *PgxWorkforceRepository) ListCertifications(ctx context.Context, companyID string) ([]domain.Certification, error) {
	rows, err := r.list(ctx, `SELECT `+selectCertificationFields+` FROM certifications WHERE company_id = $1 ORDER BY name`, companyID)
	if err != nil {
		return nil, err
	}
	return collectRows(rows, scanCertification)
}

func (r *PgxWorkforceRepository) DeleteCertification(ctx context.Context, certificationID string) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		// Revoked assignments are history of a certification that no longer exists.
		if _, err := tx.Exec(ctx, `DELETE FROM employee_certifications WHERE certification_id = $1 AND NOT is_active`, certificationID); err != nil {
			return fmt.Errorf("failed to clear revoked assignments of certification %s: %w", certificationID, err)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM certifications WHERE certification_id = $1`, certificationID)
		if err != nil {
			return fmt.Errorf("failed to delete certification %s: %w", certificationID, err)
		}
		return expectOneRow(tag, "certification", certificationID)
	})
}

func (r *PgxWorkforceRepository) CountActiveAssignments(ctx context.Context, certificationID string) (int, error) {
	return countQuery(ctx, r.Pool, `SELECT COUNT(*) FROM employee_certifications WHERE certification_id = $1 AND is_active`, certificationID)
}

func (r *PgxWorkforceRepository) SaveEmployeeCertification(ctx context.Context, a domain.EmployeeCertification) error {
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO employee_certifications (`+selectEmployeeCertFields+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		a.AssignmentID, a.CompanyID, a.EmployeeID, a.CertificationID, a.IssuedAt, a.ExpiresAt, a.IsActive,
		a.CreatedAt, a.CreatedBy, a.LastUpdatedAt, a.LastUpdatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: employee already holds this certification", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to save certification assignment %s: %w", a.AssignmentID, err)
	}
	return nil
}

func (r *PgxWorkforceRepository) FindEmployeeCertificationByID(ctx context.Context, assignmentID string) (*domain.EmployeeCertification, error) {
	a, err := scanEmployeeCertification(r.Pool.QueryRow(ctx,
		`SELECT `+selectEmployeeCertFields+` FROM employee_certifications WHERE assignment_id = $1`, assignmentID))
	if err != nil {
		return nil, notFoundOr(err, "certification assignment", assignmentID)
	}
	return &a, nil
}

func (r *PgxWorkforceRepository) ListEmployeeCertifications(ctx context.Context, employeeID string) ([]domain.EmployeeCertification, error) {
	rows, err := r.list(ctx, `SELECT `+selectEmployeeCertFields+` FROM employee_certifications WHERE employee_id = $1 ORDER BY issued_at DESC`, employeeID)
	if err != nil {
		return nil, err
	}
	return collectRows(rows, scanEmployeeCertification)
}

func (r *PgxWorkforceRepository) RevokeEmployeeCertification(ctx context.Context, assignmentID string, userID string, now time.Time) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE employee_certifications SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3 WHERE assignment_id = $1`,
		assignmentID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to revoke certification assignment %s: %w", assignmentID, err)
	}
	return expectOneRow(tag, "certification assignment", assignmentID)
}

// --- Employee skills ---

func (r *PgxWorkforceRepository) SaveEmployeeSkill(ctx context.Context, s domain.EmployeeSkill) error {
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO employee_skills (`+selectEmployeeSkillFields+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.SkillID, s.CompanyID, s.EmployeeID, s.CareerTrackID, s.Level, s.IsActive,
		s.CreatedAt, s.CreatedBy, s.LastUpdatedAt, s.LastUpdatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: employee already has a skill on this career track", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to save employee skill %s: %w", s.SkillID, err)
	}
	return nil
}

func (r *PgxWorkforceRepository) FindEmployeeSkillByID(ctx context.Context, skillID string) (*domain.EmployeeSkill, error) {
	s, err := scanEmployeeSkill(r.Pool.QueryRow(ctx,
		`SELECT `+selectEmployeeSkillFields+` FROM employee_skills WHERE skill_id = $1`, skillID))
	if err != nil {
		return nil, notFoundOr(err, "employee skill", skillID)
	}
	return &s, nil
}

func (r *PgxWorkforceRepository) ListEmployeeSkills(ctx context.Context, employeeID string) ([]domain.EmployeeSkill, error) {
	rows, err := r.list(ctx, `SELECT `+selectEmployeeSkillFields+` FROM employee_skills WHERE employee_id = $1 AND is_active ORDER BY created_at`, employeeID)
	if err != nil {
		return nil, err
	}
	return collectRows(rows, scanEmployeeSkill)
}

func (r *PgxWorkforceRepository) DeactivateEmployeeSkill(ctx context.Context, skillID string, userID string, now time.Time) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE employee_skills SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3 WHERE skill_id = $1`,
		skillID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee skill %s: %w", skillID, err)
	}
	return expectOneRow(tag, "employee skill", skillID)
}
