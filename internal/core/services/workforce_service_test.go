package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/apperrors"
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	portssvc "github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/SscSPs/treeservice_ops/internal/core/services"
	"github.com/SscSPs/treeservice_ops/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type WorkforceServiceTestSuite struct {
	suite.Suite
	repo      *MockWorkforceRepository
	employees *MockEmployeeRepository
	service   portssvc.WorkforceSvcFacade
	ctx       context.Context
}

func (suite *WorkforceServiceTestSuite) SetupTest() {
	suite.repo = new(MockWorkforceRepository)
	suite.employees = new(MockEmployeeRepository)
	suite.service = services.NewWorkforceService(suite.repo, suite.employees, testClock())
	suite.ctx = context.Background()
}

func TestWorkforceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkforceServiceTestSuite))
}

func (suite *WorkforceServiceTestSuite) expectEmployee() {
	suite.employees.On("FindEmployeeByID", suite.ctx, "emp-1").
		Return(&domain.Employee{EmployeeID: "emp-1", CompanyID: "org-1"}, nil)
}

func (suite *WorkforceServiceTestSuite) TestDeleteCareerTrack_Blocked() {
	suite.repo.On("FindCareerTrackByID", suite.ctx, "tr-1").Return(&domain.CareerTrack{TrackID: "tr-1", CompanyID: "org-1"}, nil).Once()
	suite.repo.On("CountSkillsForTrack", suite.ctx, "tr-1").Return(3, nil).Once()

	err := suite.service.DeleteCareerTrack(suite.ctx, "org-1", "tr-1", "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "3 employee skills")
	suite.repo.AssertNotCalled(suite.T(), "DeleteCareerTrack", mock.Anything, mock.Anything)
}

func (suite *WorkforceServiceTestSuite) TestDeleteManagementLevel_Success() {
	suite.repo.On("FindManagementLevelByID", suite.ctx, "lv-1").Return(&domain.ManagementLevel{LevelID: "lv-1", CompanyID: "org-1"}, nil).Once()
	suite.repo.On("CountEmployeesAtLevel", suite.ctx, "lv-1").Return(0, nil).Once()
	suite.repo.On("DeleteManagementLevel", suite.ctx, "lv-1").Return(nil).Once()

	suite.NoError(suite.service.DeleteManagementLevel(suite.ctx, "org-1", "lv-1", "user-1"))
	suite.repo.AssertExpectations(suite.T())
}

func (suite *WorkforceServiceTestSuite) TestDeleteManagementLevel_BlockedReportsCount() {
	suite.repo.On("FindManagementLevelByID", suite.ctx, "lv-1").Return(&domain.ManagementLevel{LevelID: "lv-1", CompanyID: "org-1"}, nil).Once()
	suite.repo.On("CountEmployeesAtLevel", suite.ctx, "lv-1").Return(4, nil).Once()

	err := suite.service.DeleteManagementLevel(suite.ctx, "org-1", "lv-1", "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "still referenced by 4 employees")
	suite.repo.AssertNotCalled(suite.T(), "DeleteManagementLevel", mock.Anything, mock.Anything)
}

func (suite *WorkforceServiceTestSuite) TestDeleteCertification_Blocked() {
	suite.repo.On("FindCertificationByID", suite.ctx, "c-1").Return(&domain.Certification{CertificationID: "c-1", CompanyID: "org-1"}, nil).Once()
	suite.repo.On("CountActiveAssignments", suite.ctx, "c-1").Return(1, nil).Once()

	err := suite.service.DeleteCertification(suite.ctx, "org-1", "c-1", "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "1 active holders")
}

func (suite *WorkforceServiceTestSuite) TestAssignSkill_ForeignTrack() {
	suite.expectEmployee()
	suite.repo.On("FindCareerTrackByID", suite.ctx, "tr-9").Return(&domain.CareerTrack{TrackID: "tr-9", CompanyID: "org-2"}, nil).Once()

	_, err := suite.service.AssignSkill(suite.ctx, "org-1", "emp-1", dto.AssignSkillRequest{CareerTrackID: "tr-9", Level: 2}, "user-1")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.repo.AssertNotCalled(suite.T(), "SaveEmployeeSkill", mock.Anything, mock.Anything)
}

func (suite *WorkforceServiceTestSuite) TestAssignSkill_Success() {
	suite.expectEmployee()
	suite.repo.On("FindCareerTrackByID", suite.ctx, "tr-1").Return(&domain.CareerTrack{TrackID: "tr-1", CompanyID: "org-1"}, nil).Once()
	suite.repo.On("SaveEmployeeSkill", suite.ctx, mock.MatchedBy(func(s domain.EmployeeSkill) bool {
		return s.IsActive && s.Level == 2 && s.CareerTrackID == "tr-1"
	})).Return(nil).Once()

	skill, err := suite.service.AssignSkill(suite.ctx, "org-1", "emp-1", dto.AssignSkillRequest{CareerTrackID: "tr-1", Level: 2}, "user-1")

	suite.Require().NoError(err)
	suite.Equal("emp-1", skill.EmployeeID)
}

func (suite *WorkforceServiceTestSuite) TestRemoveSkill() {
	suite.expectEmployee()
	suite.repo.On("FindEmployeeSkillByID", suite.ctx, "sk-1").Return(&domain.EmployeeSkill{SkillID: "sk-1", EmployeeID: "emp-1", IsActive: true}, nil).Once()
	suite.repo.On("FindEmployeeSkillByID", suite.ctx, "sk-2").Return(&domain.EmployeeSkill{SkillID: "sk-2", EmployeeID: "emp-1"}, nil).Once()
	suite.repo.On("FindEmployeeSkillByID", suite.ctx, "sk-3").Return(&domain.EmployeeSkill{SkillID: "sk-3", EmployeeID: "emp-7", IsActive: true}, nil).Once()
	suite.repo.On("DeactivateEmployeeSkill", suite.ctx, "sk-1", "user-1", fixedNow).Return(nil).Once()

	suite.NoError(suite.service.RemoveSkill(suite.ctx, "org-1", "emp-1", "sk-1", "user-1"))
	suite.NoError(suite.service.RemoveSkill(suite.ctx, "org-1", "emp-1", "sk-2", "user-1"))
	suite.ErrorIs(suite.service.RemoveSkill(suite.ctx, "org-1", "emp-1", "sk-3", "user-1"), apperrors.ErrNotFound)
	suite.repo.AssertNumberOfCalls(suite.T(), "DeactivateEmployeeSkill", 1)
}

func (suite *WorkforceServiceTestSuite) TestAssignCertification_DefaultExpiry() {
	suite.expectEmployee()
	suite.repo.On("FindCertificationByID", suite.ctx, "c-1").
		Return(&domain.Certification{CertificationID: "c-1", CompanyID: "org-1", ValidityMonths: 36}, nil).Once()
	issued := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	suite.repo.On("SaveEmployeeCertification", suite.ctx, mock.MatchedBy(func(a domain.EmployeeCertification) bool {
		return a.ExpiresAt != nil && a.ExpiresAt.Equal(time.Date(2028, 3, 1, 0, 0, 0, 0, time.UTC)) && a.IsActive
	})).Return(nil).Once()

	_, err := suite.service.AssignCertification(suite.ctx, "org-1", "emp-1", dto.AssignCertificationRequest{CertificationID: "c-1", IssuedAt: issued}, "user-1")

	suite.Require().NoError(err)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *WorkforceServiceTestSuite) TestAssignCertification_ExpiryBeforeIssue() {
	suite.expectEmployee()
	suite.repo.On("FindCertificationByID", suite.ctx, "c-1").
		Return(&domain.Certification{CertificationID: "c-1", CompanyID: "org-1"}, nil).Once()
	issued := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	expires := issued.AddDate(0, 0, -1)

	_, err := suite.service.AssignCertification(suite.ctx, "org-1", "emp-1", dto.AssignCertificationRequest{
		CertificationID: "c-1", IssuedAt: issued, ExpiresAt: &expires,
	}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *WorkforceServiceTestSuite) TestRevokeCertification_AlreadyRevoked() {
	suite.expectEmployee()
	suite.repo.On("FindEmployeeCertificationByID", suite.ctx, "as-1").
		Return(&domain.EmployeeCertification{AssignmentID: "as-1", EmployeeID: "emp-1"}, nil).Once()

	suite.NoError(suite.service.RevokeCertification(suite.ctx, "org-1", "emp-1", "as-1", "user-1"))
	suite.repo.AssertNotCalled(suite.T(), "RevokeEmployeeCertification", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
