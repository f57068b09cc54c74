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

type TimeLogServiceTestSuite struct {
	suite.Suite
	logs      *MockTimeLogRepository
	jobs      *MockJobRepository
	items     *MockLineItemRepository
	employees *MockEmployeeRepository
	equipment *MockEquipmentRepository
	service   portssvc.TimeLogSvcFacade
	ctx       context.Context
}

func (suite *TimeLogServiceTestSuite) SetupTest() {
	suite.logs = new(MockTimeLogRepository)
	suite.jobs = new(MockJobRepository)
	suite.items = new(MockLineItemRepository)
	suite.employees = new(MockEmployeeRepository)
	suite.equipment = new(MockEquipmentRepository)
	suite.service = services.NewTimeLogService(suite.logs, suite.jobs, suite.items, suite.employees, suite.equipment, testClock())
	suite.ctx = context.Background()
}

func TestTimeLogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TimeLogServiceTestSuite))
}

func (suite *TimeLogServiceTestSuite) expectEmployee(rate string) {
	suite.employees.On("FindEmployeesByIDs", suite.ctx, []string{"emp-1"}).
		Return(map[string]domain.Employee{"emp-1": {EmployeeID: "emp-1", CompanyID: "org-1", EffectiveRate: dec(rate)}}, nil)
}

func (suite *TimeLogServiceTestSuite) expectJob(status domain.JobStatus) {
	suite.jobs.On("FindJobByID", suite.ctx, "job-1").
		Return(&domain.Job{JobID: "job-1", CompanyID: "org-1", JobNumber: "WO-0001", Status: status}, nil)
}

func (suite *TimeLogServiceTestSuite) TestStartTimer_Success() {
	suite.expectEmployee("30")
	suite.expectJob(domain.JobScheduled)
	suite.logs.On("FindActiveTimeLog", suite.ctx, "emp-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.items.On("FindLineItemByID", suite.ctx, "li-1").Return(&domain.JobLineItem{LineItemID: "li-1", JobID: "job-1"}, nil).Once()
	suite.logs.On("StartTimeLog", suite.ctx, mock.MatchedBy(func(l domain.TimeLog) bool {
		return l.EmployeeID == "emp-1" && l.LineItemID == "li-1" && l.StartTime.Equal(fixedNow) && l.EndTime == nil
	})).Return(nil).Once()

	lineItemID := "li-1"
	log, err := suite.service.StartTimer(suite.ctx, "org-1", dto.StartTimerRequest{JobID: "job-1", EmployeeID: "emp-1", LineItemID: &lineItemID}, "user-1")

	suite.Require().NoError(err)
	suite.True(log.IsActive())
	suite.Empty(log.EquipmentIDs)
	suite.logs.AssertExpectations(suite.T())
}

func (suite *TimeLogServiceTestSuite) TestStartTimer_AlreadyRunning() {
	suite.expectEmployee("30")
	suite.logs.On("FindActiveTimeLog", suite.ctx, "emp-1").Return(&domain.TimeLog{TimeLogID: "tl-0"}, nil).Once()

	_, err := suite.service.StartTimer(suite.ctx, "org-1", dto.StartTimerRequest{JobID: "job-1", EmployeeID: "emp-1"}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.logs.AssertNotCalled(suite.T(), "StartTimeLog", mock.Anything, mock.Anything)
}

func (suite *TimeLogServiceTestSuite) TestStartTimer_ClosedJob() {
	suite.expectEmployee("30")
	suite.expectJob(domain.JobCancelled)
	suite.logs.On("FindActiveTimeLog", suite.ctx, "emp-1").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.StartTimer(suite.ctx, "org-1", dto.StartTimerRequest{JobID: "job-1", EmployeeID: "emp-1"}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TimeLogServiceTestSuite) TestStartTimer_LineItemFromOtherJob() {
	suite.expectEmployee("30")
	suite.expectJob(domain.JobInProgress)
	suite.logs.On("FindActiveTimeLog", suite.ctx, "emp-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.items.On("FindLineItemByID", suite.ctx, "li-9").Return(&domain.JobLineItem{LineItemID: "li-9", JobID: "job-2"}, nil).Once()

	lineItemID := "li-9"
	_, err := suite.service.StartTimer(suite.ctx, "org-1", dto.StartTimerRequest{JobID: "job-1", EmployeeID: "emp-1", LineItemID: &lineItemID}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TimeLogServiceTestSuite) TestStopTimer_CapturesRates() {
	start := fixedNow.Add(-90 * time.Minute)
	suite.logs.On("FindTimeLogByID", suite.ctx, "tl-1").Return(&domain.TimeLog{
		TimeLogID: "tl-1", CompanyID: "org-1", JobID: "job-1", EmployeeID: "emp-1",
		EquipmentIDs: []string{"eq-1"}, StartTime: start,
	}, nil).Once()
	suite.expectEmployee("30")
	suite.equipment.On("FindEquipmentByIDs", suite.ctx, []string{"eq-1"}).
		Return(map[string]domain.Equipment{"eq-1": {EquipmentID: "eq-1", CompanyID: "org-1", HourlyCost: dec("50")}}, nil).Once()
	suite.logs.On("StopTimeLog", suite.ctx, mock.MatchedBy(func(l domain.TimeLog) bool {
		return l.EndTime != nil && l.EndTime.Equal(fixedNow) &&
			l.DurationHours.Equal(dec("1.5")) &&
			l.EmployeeRate.Equal(dec("30")) &&
			l.EquipmentCost.Equal(dec("50")) &&
			l.TotalCost.Equal(dec("120"))
	})).Return(nil).Once()

	log, err := suite.service.StopTimer(suite.ctx, "org-1", "tl-1", dto.StopTimerRequest{}, "user-1")

	suite.Require().NoError(err)
	suite.False(log.IsActive())
	suite.logs.AssertExpectations(suite.T())
}

func (suite *TimeLogServiceTestSuite) TestStopTimer_NotRunning() {
	end := fixedNow
	suite.logs.On("FindTimeLogByID", suite.ctx, "tl-1").
		Return(&domain.TimeLog{TimeLogID: "tl-1", CompanyID: "org-1", StartTime: fixedNow.Add(-time.Hour), EndTime: &end}, nil).Once()

	_, err := suite.service.StopTimer(suite.ctx, "org-1", "tl-1", dto.StopTimerRequest{}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TimeLogServiceTestSuite) TestStopTimer_EndBeforeStart() {
	suite.logs.On("FindTimeLogByID", suite.ctx, "tl-1").
		Return(&domain.TimeLog{TimeLogID: "tl-1", CompanyID: "org-1", StartTime: fixedNow}, nil).Once()
	end := fixedNow.Add(-time.Minute)

	_, err := suite.service.StopTimer(suite.ctx, "org-1", "tl-1", dto.StopTimerRequest{EndTime: &end}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TimeLogServiceTestSuite) TestGetTimeLog_OtherOrganization() {
	suite.logs.On("FindTimeLogByID", suite.ctx, "tl-1").Return(&domain.TimeLog{TimeLogID: "tl-1", CompanyID: "org-2"}, nil).Once()

	_, err := suite.service.GetTimeLogByID(suite.ctx, "org-1", "tl-1")

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TimeLogServiceTestSuite) TestCreateTimeLog_Manual() {
	suite.expectEmployee("40")
	suite.expectJob(domain.JobInProgress)
	suite.logs.On("SaveTimeLog", suite.ctx, mock.MatchedBy(func(l domain.TimeLog) bool {
		return l.DurationHours.Equal(dec("2")) && l.TotalCost.Equal(dec("80")) && l.EquipmentCost.IsZero()
	})).Return(nil).Once()

	start := fixedNow.Add(-3 * time.Hour)
	log, err := suite.service.CreateTimeLog(suite.ctx, "org-1", dto.CreateTimeLogRequest{
		JobID: "job-1", EmployeeID: "emp-1", StartTime: start, EndTime: start.Add(2 * time.Hour),
	}, "user-1")

	suite.Require().NoError(err)
	suite.Equal("job-1", log.JobID)
	suite.logs.AssertExpectations(suite.T())
}

func (suite *TimeLogServiceTestSuite) TestUpdateTimeLog_UsesCapturedRates() {
	start := fixedNow.Add(-4 * time.Hour)
	end := start.Add(time.Hour)
	suite.logs.On("FindTimeLogByID", suite.ctx, "tl-1").Return(&domain.TimeLog{
		TimeLogID: "tl-1", CompanyID: "org-1", JobID: "job-1", EmployeeID: "emp-1",
		StartTime: start, EndTime: &end, EmployeeRate: dec("30"), EquipmentCost: dec("10"),
	}, nil).Once()
	suite.expectJob(domain.JobInProgress)
	suite.logs.On("UpdateTimeLog", suite.ctx, mock.MatchedBy(func(l domain.TimeLog) bool {
		return l.DurationHours.Equal(dec("3")) && l.TotalCost.Equal(dec("120"))
	})).Return(nil).Once()

	newEnd := start.Add(3 * time.Hour)
	_, err := suite.service.UpdateTimeLog(suite.ctx, "org-1", "tl-1", dto.UpdateTimeLogRequest{EndTime: &newEnd}, "user-1")

	suite.Require().NoError(err)
	suite.employees.AssertNotCalled(suite.T(), "FindEmployeesByIDs", mock.Anything, mock.Anything)
	suite.logs.AssertExpectations(suite.T())
}

func (suite *TimeLogServiceTestSuite) TestUpdateTimeLog_ActiveRejected() {
	suite.logs.On("FindTimeLogByID", suite.ctx, "tl-1").
		Return(&domain.TimeLog{TimeLogID: "tl-1", CompanyID: "org-1", StartTime: fixedNow}, nil).Once()

	_, err := suite.service.UpdateTimeLog(suite.ctx, "org-1", "tl-1", dto.UpdateTimeLogRequest{}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TimeLogServiceTestSuite) TestDeleteTimeLog_CompletedJob() {
	end := fixedNow
	suite.logs.On("FindTimeLogByID", suite.ctx, "tl-1").
		Return(&domain.TimeLog{TimeLogID: "tl-1", CompanyID: "org-1", JobID: "job-1", StartTime: fixedNow.Add(-time.Hour), EndTime: &end}, nil).Once()
	suite.expectJob(domain.JobCompleted)

	err := suite.service.DeleteTimeLog(suite.ctx, "org-1", "tl-1", "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.logs.AssertNotCalled(suite.T(), "DeleteTimeLog", mock.Anything, mock.Anything)
}

func (suite *TimeLogServiceTestSuite) TestListTimeLogs_BadRange() {
	from := fixedNow
	to := fixedNow.Add(-time.Hour)

	_, err := suite.service.ListTimeLogs(suite.ctx, "org-1", dto.ListTimeLogsParams{From: &from, To: &to})

	suite.ErrorIs(err, apperrors.ErrValidation)
}
