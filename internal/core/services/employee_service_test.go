package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/treeservice_ops/internal/apperrors"
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	portssvc "github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/SscSPs/treeservice_ops/internal/core/services"
	"github.com/SscSPs/treeservice_ops/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type EmployeeServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockEmployeeRepository
	mockLevels *MockWorkforceRepository
	service    portssvc.EmployeeSvcFacade
	ctx        context.Context
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockEmployeeRepository)
	suite.mockLevels = new(MockWorkforceRepository)
	suite.service = services.NewEmployeeService(suite.mockRepo, suite.mockLevels, decimal.NewFromInt(2080), testClock())
	suite.ctx = context.Background()
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}

func hourlyEmployeeRequest() dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{
		FirstName:           "Sam",
		LastName:            "Lee",
		PayType:             domain.PayTypeHourly,
		BaseHourlyRate:      decimal.NewFromInt(20),
		ExpectedAnnualHours: decimal.NewFromInt(2000),
		WorkersCompRate:     decimal.NewFromInt(10),
		PayrollTaxRate:      decimal.NewFromInt(5),
	}
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_ComputesEffectiveRate() {
	suite.mockRepo.On("SaveEmployee", suite.ctx, mock.AnythingOfType("domain.Employee")).Return(nil).Once()

	emp, err := suite.service.CreateEmployee(suite.ctx, "org-1", hourlyEmployeeRequest(), "user-1")

	suite.Require().NoError(err)
	suite.True(emp.EffectiveRate.Equal(decimal.NewFromInt(23)), "got %s", emp.EffectiveRate)
	suite.True(emp.BurdenPercentage.Equal(decimal.NewFromInt(15)), "got %s", emp.BurdenPercentage)
	suite.True(emp.IsActive)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_LevelFromOtherOrganization() {
	levelID := "lvl-1"
	req := hourlyEmployeeRequest()
	req.ManagementLevelID = &levelID
	suite.mockLevels.On("FindManagementLevelByID", suite.ctx, levelID).
		Return(&domain.ManagementLevel{LevelID: levelID, CompanyID: "org-2"}, nil).Once()

	_, err := suite.service.CreateEmployee(suite.ctx, "org-1", req, "user-1")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEmployee", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_UnknownLevel() {
	levelID := "missing"
	req := hourlyEmployeeRequest()
	req.ManagementLevelID = &levelID
	suite.mockLevels.On("FindManagementLevelByID", suite.ctx, levelID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateEmployee(suite.ctx, "org-1", req, "user-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_RecomputesRate() {
	existing := &domain.Employee{
		EmployeeID:          "emp-1",
		CompanyID:           "org-1",
		PayType:             domain.PayTypeHourly,
		BaseHourlyRate:      decimal.NewFromInt(20),
		ExpectedAnnualHours: decimal.NewFromInt(2000),
		EffectiveRate:       decimal.NewFromInt(20),
		IsActive:            true,
	}
	suite.mockRepo.On("FindEmployeeByID", suite.ctx, "emp-1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateEmployee", suite.ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.EffectiveRate.Equal(decimal.NewFromInt(30))
	})).Return(nil).Once()

	rate := decimal.NewFromInt(30)
	emp, err := suite.service.UpdateEmployee(suite.ctx, "org-1", "emp-1", dto.UpdateEmployeeRequest{BaseHourlyRate: &rate}, "user-2")

	suite.Require().NoError(err)
	suite.Equal("user-2", emp.LastUpdatedBy)
	suite.Equal(fixedNow, emp.LastUpdatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestDeactivateEmployee_Idempotent() {
	suite.mockRepo.On("FindEmployeeByID", suite.ctx, "emp-1").
		Return(&domain.Employee{EmployeeID: "emp-1", CompanyID: "org-1", IsActive: false}, nil).Once()

	suite.NoError(suite.service.DeactivateEmployee(suite.ctx, "org-1", "emp-1", "user-1"))
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateEmployee", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestGetBurdenBreakdown() {
	suite.mockRepo.On("FindEmployeeByID", suite.ctx, "emp-1").Return(&domain.Employee{
		EmployeeID:   "emp-1",
		CompanyID:    "org-1",
		PayType:      domain.PayTypeSalary,
		AnnualSalary: decimal.NewFromInt(41600),
	}, nil).Once()

	b, err := suite.service.GetBurdenBreakdown(suite.ctx, "org-1", "emp-1")

	suite.Require().NoError(err)
	// 41600 / 2080 default hours
	suite.True(b.HourlyRate.Equal(decimal.NewFromInt(20)), "got %s", b.HourlyRate)
	suite.True(b.AnnualHours.Equal(decimal.NewFromInt(2080)))
}
