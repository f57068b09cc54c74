package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/apperrors"
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	portssvc "github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/SscSPs/treeservice_ops/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ProjectReportServiceTestSuite struct {
	suite.Suite
	reports   *MockReportRepository
	jobs      *MockJobRepository
	customers *MockCustomerRepository
	items     *MockLineItemRepository
	logs      *MockTimeLogRepository
	employees *MockEmployeeRepository
	service   portssvc.ProjectReportSvcFacade
	ctx       context.Context
}

func (suite *ProjectReportServiceTestSuite) SetupTest() {
	suite.reports = new(MockReportRepository)
	suite.jobs = new(MockJobRepository)
	suite.customers = new(MockCustomerRepository)
	suite.items = new(MockLineItemRepository)
	suite.logs = new(MockTimeLogRepository)
	suite.employees = new(MockEmployeeRepository)
	suite.service = services.NewProjectReportService(suite.reports, suite.jobs, suite.customers, suite.items, suite.logs, suite.employees, testClock())
	suite.ctx = context.Background()
}

func TestProjectReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectReportServiceTestSuite))
}

func (suite *ProjectReportServiceTestSuite) completedJob() *domain.Job {
	completed := fixedNow.Add(-time.Hour)
	return &domain.Job{
		JobID: "job-1", CompanyID: "org-1", CustomerID: "cus-1", JobNumber: "WO-0007",
		Status: domain.JobCompleted, CompletedAt: &completed,
		TotalInvestment: dec("1000"), ActualTotalCost: dec("600"),
	}
}

func (suite *ProjectReportServiceTestSuite) TestGenerateForJob_Snapshot() {
	suite.jobs.On("FindJobByID", suite.ctx, "job-1").Return(suite.completedJob(), nil).Once()
	suite.reports.On("FindReportByJobID", suite.ctx, "job-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.customers.On("FindCustomerByID", suite.ctx, "cus-1").Return(&domain.Customer{CustomerID: "cus-1", Name: "Ann", BusinessName: "Oak Ltd"}, nil).Once()
	suite.items.On("ListLineItemsByJob", suite.ctx, "job-1").Return([]domain.JobLineItem{
		{LineItemID: "li-b", SortOrder: 99, ServiceType: domain.ServiceTransportFromSite},
		{LineItemID: "li-a", SortOrder: 3, IsBillable: true, ServiceType: "removal"},
	}, nil).Once()
	end := fixedNow.Add(-2 * time.Hour)
	suite.logs.On("ListTimeLogsByJob", suite.ctx, "job-1").Return([]domain.TimeLog{
		{TimeLogID: "tl-1", EmployeeID: "emp-1", StartTime: end.Add(-time.Hour), EndTime: &end, DurationHours: dec("1"), TotalCost: dec("40")},
		{TimeLogID: "tl-2", EmployeeID: "emp-1", StartTime: fixedNow},
	}, nil).Once()
	suite.employees.On("FindEmployeesByIDs", suite.ctx, []string{"emp-1"}).
		Return(map[string]domain.Employee{"emp-1": {EmployeeID: "emp-1", FirstName: "Sam", LastName: "Lee"}}, nil).Once()
	suite.reports.On("SaveReport", suite.ctx, mock.AnythingOfType("domain.ProjectReport")).Return(true, nil).Once()

	report, err := suite.service.GenerateForJob(suite.ctx, "org-1", "job-1", "user-1")

	suite.Require().NoError(err)
	suite.Equal("Oak Ltd", report.CustomerName)
	suite.True(report.Profit.Equal(dec("400")))
	suite.True(report.ProfitMargin.Equal(dec("40")))
	suite.Require().Len(report.LineItems, 2)
	suite.Equal("li-a", report.LineItems[0].LineItemID)
	suite.Require().Len(report.EmployeeLogs, 1)
	suite.Equal("Sam Lee", report.EmployeeLogs[0].EmployeeName)
	suite.True(report.GeneratedAt.Equal(fixedNow))
	suite.reports.AssertExpectations(suite.T())
}

func (suite *ProjectReportServiceTestSuite) TestGenerateForJob_ReturnsExisting() {
	existing := &domain.ProjectReport{ReportID: "r-1", JobID: "job-1", CompanyID: "org-1"}
	suite.jobs.On("FindJobByID", suite.ctx, "job-1").Return(suite.completedJob(), nil).Once()
	suite.reports.On("FindReportByJobID", suite.ctx, "job-1").Return(existing, nil).Once()

	report, err := suite.service.GenerateForJob(suite.ctx, "org-1", "job-1", "user-1")

	suite.Require().NoError(err)
	suite.Same(existing, report)
	suite.reports.AssertNotCalled(suite.T(), "SaveReport", mock.Anything, mock.Anything)
}

func (suite *ProjectReportServiceTestSuite) TestGenerateForJob_LosesRace() {
	winner := &domain.ProjectReport{ReportID: "r-first", JobID: "job-1", CompanyID: "org-1"}
	suite.jobs.On("FindJobByID", suite.ctx, "job-1").Return(suite.completedJob(), nil).Once()
	suite.reports.On("FindReportByJobID", suite.ctx, "job-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.customers.On("FindCustomerByID", suite.ctx, "cus-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.items.On("ListLineItemsByJob", suite.ctx, "job-1").Return([]domain.JobLineItem{}, nil).Once()
	suite.logs.On("ListTimeLogsByJob", suite.ctx, "job-1").Return([]domain.TimeLog{}, nil).Once()
	suite.reports.On("SaveReport", suite.ctx, mock.AnythingOfType("domain.ProjectReport")).Return(false, nil).Once()
	suite.reports.On("FindReportByJobID", suite.ctx, "job-1").Return(winner, nil).Once()

	report, err := suite.service.GenerateForJob(suite.ctx, "org-1", "job-1", "user-1")

	suite.Require().NoError(err)
	suite.Equal("r-first", report.ReportID)
	suite.employees.AssertNotCalled(suite.T(), "FindEmployeesByIDs", mock.Anything, mock.Anything)
}

func (suite *ProjectReportServiceTestSuite) TestGenerateForJob_NotCompleted() {
	job := suite.completedJob()
	job.Status = domain.JobInProgress
	suite.jobs.On("FindJobByID", suite.ctx, "job-1").Return(job, nil).Once()

	_, err := suite.service.GenerateForJob(suite.ctx, "org-1", "job-1", "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ProjectReportServiceTestSuite) TestGetReport_OtherOrganization() {
	suite.reports.On("FindReportByJobID", suite.ctx, "job-1").Return(&domain.ProjectReport{ReportID: "r-1", CompanyID: "org-2"}, nil).Once()

	_, err := suite.service.GetReportByJobID(suite.ctx, "org-1", "job-1")

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ProjectReportServiceTestSuite) TestExportReportXLSX() {
	suite.reports.On("FindReportByJobID", suite.ctx, "job-1").
		Return(&domain.ProjectReport{ReportID: "r-1", CompanyID: "org-1", JobID: "job-1", JobNumber: "WO-0007"}, nil).Once()

	data, name, err := suite.service.ExportReportXLSX(suite.ctx, "org-1", "job-1")

	suite.Require().NoError(err)
	suite.Equal("WO-0007-report.xlsx", name)
	suite.NotEmpty(data)
}
