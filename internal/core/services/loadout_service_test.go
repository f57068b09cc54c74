package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/treeservice_ops/internal/apperrors"
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	portssvc "github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/SscSPs/treeservice_ops/internal/core/services"
	"github.com/SscSPs/treeservice_ops/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LoadoutServiceTestSuite struct {
	suite.Suite
	loadouts  *MockLoadoutRepository
	employees *MockEmployeeRepository
	equipment *MockEquipmentRepository
	service   portssvc.LoadoutSvcFacade
	ctx       context.Context
}

func (suite *LoadoutServiceTestSuite) SetupTest() {
	suite.loadouts = new(MockLoadoutRepository)
	suite.employees = new(MockEmployeeRepository)
	suite.equipment = new(MockEquipmentRepository)
	suite.service = services.NewLoadoutService(suite.loadouts, suite.employees, suite.equipment, testClock())
	suite.ctx = context.Background()
}

func TestLoadoutServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LoadoutServiceTestSuite))
}

func (suite *LoadoutServiceTestSuite) TestCreateLoadout_SumsMemberRates() {
	suite.employees.On("FindEmployeesByIDs", suite.ctx, []string{"emp-1", "emp-2"}).
		Return(map[string]domain.Employee{
			"emp-1": {EmployeeID: "emp-1", CompanyID: "org-1", EffectiveRate: dec("28.75")},
			"emp-2": {EmployeeID: "emp-2", CompanyID: "org-1", EffectiveRate: dec("31.25")},
		}, nil).Once()
	suite.equipment.On("FindEquipmentByIDs", suite.ctx, []string{"eq-1"}).
		Return(map[string]domain.Equipment{"eq-1": {EquipmentID: "eq-1", CompanyID: "org-1", HourlyCost: dec("45")}}, nil).Once()
	suite.loadouts.On("SaveLoadout", suite.ctx, mock.MatchedBy(func(l domain.Loadout) bool {
		return l.TotalHourlyCost.Equal(dec("105")) && len(l.EmployeeIDs) == 2 && len(l.ProductionRates) == 1
	})).Return(nil).Once()

	loadout, err := suite.service.CreateLoadout(suite.ctx, "org-1", dto.CreateLoadoutRequest{
		Name:            "Removal crew",
		EmployeeIDs:     []string{"emp-1", "emp-2", "emp-1"},
		EquipmentIDs:    []string{"eq-1"},
		ProductionRates: []dto.ProductionRateRequest{{ServiceType: "removal", Rate: dec("3"), Unit: domain.UnitPoints}},
	}, "user-1")

	suite.Require().NoError(err)
	suite.Equal("Removal crew", loadout.Name)
	suite.loadouts.AssertExpectations(suite.T())
}

func (suite *LoadoutServiceTestSuite) TestCreateLoadout_DuplicateServiceType() {
	_, err := suite.service.CreateLoadout(suite.ctx, "org-1", dto.CreateLoadoutRequest{
		Name: "Crew",
		ProductionRates: []dto.ProductionRateRequest{
			{ServiceType: "Removal", Rate: dec("3"), Unit: domain.UnitPoints},
			{ServiceType: "removal", Rate: dec("4"), Unit: domain.UnitPoints},
		},
	}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.loadouts.AssertNotCalled(suite.T(), "SaveLoadout", mock.Anything, mock.Anything)
}

func (suite *LoadoutServiceTestSuite) TestCreateLoadout_ForeignEquipment() {
	suite.equipment.On("FindEquipmentByIDs", suite.ctx, []string{"eq-9"}).
		Return(map[string]domain.Equipment{"eq-9": {EquipmentID: "eq-9", CompanyID: "org-2"}}, nil).Once()

	_, err := suite.service.CreateLoadout(suite.ctx, "org-1", dto.CreateLoadoutRequest{Name: "Crew", EquipmentIDs: []string{"eq-9"}}, "user-1")

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *LoadoutServiceTestSuite) TestUpdateLoadout_RecomputesTotal() {
	suite.loadouts.On("FindLoadoutByID", suite.ctx, "lo-1").Return(&domain.Loadout{
		LoadoutID: "lo-1", CompanyID: "org-1", Name: "Crew",
		EmployeeIDs: []string{"emp-1"}, TotalHourlyCost: dec("30"),
	}, nil).Once()
	suite.employees.On("FindEmployeesByIDs", suite.ctx, []string{"emp-1"}).
		Return(map[string]domain.Employee{"emp-1": {EmployeeID: "emp-1", CompanyID: "org-1", EffectiveRate: dec("30")}}, nil).Once()
	suite.equipment.On("FindEquipmentByIDs", suite.ctx, []string{"eq-1"}).
		Return(map[string]domain.Equipment{"eq-1": {EquipmentID: "eq-1", CompanyID: "org-1", HourlyCost: dec("70")}}, nil).Once()
	suite.loadouts.On("UpdateLoadout", suite.ctx, mock.MatchedBy(func(l domain.Loadout) bool {
		return l.TotalHourlyCost.Equal(dec("100")) && l.LastUpdatedBy == "user-2"
	})).Return(nil).Once()

	equipment := []string{"eq-1"}
	loadout, err := suite.service.UpdateLoadout(suite.ctx, "org-1", "lo-1", dto.UpdateLoadoutRequest{EquipmentIDs: &equipment}, "user-2")

	suite.Require().NoError(err)
	suite.Equal("Crew", loadout.Name)
	suite.loadouts.AssertExpectations(suite.T())
}

func (suite *LoadoutServiceTestSuite) TestDeleteLoadout_Blocked() {
	suite.loadouts.On("FindLoadoutByID", suite.ctx, "lo-1").Return(&domain.Loadout{LoadoutID: "lo-1", CompanyID: "org-1"}, nil).Once()
	suite.loadouts.On("CountLineItemsForLoadout", suite.ctx, "lo-1").Return(4, nil).Once()

	err := suite.service.DeleteLoadout(suite.ctx, "org-1", "lo-1", "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "4 line items")
	suite.loadouts.AssertNotCalled(suite.T(), "DeleteLoadout", mock.Anything, mock.Anything)
}

func (suite *LoadoutServiceTestSuite) TestDeleteLoadout_Success() {
	suite.loadouts.On("FindLoadoutByID", suite.ctx, "lo-1").Return(&domain.Loadout{LoadoutID: "lo-1", CompanyID: "org-1"}, nil).Once()
	suite.loadouts.On("CountLineItemsForLoadout", suite.ctx, "lo-1").Return(0, nil).Once()
	suite.loadouts.On("DeleteLoadout", suite.ctx, "lo-1").Return(nil).Once()

	suite.NoError(suite.service.DeleteLoadout(suite.ctx, "org-1", "lo-1", "user-1"))
	suite.loadouts.AssertExpectations(suite.T())
}
