package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	portssvc "github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/SscSPs/treeservice_ops/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock CustomerService ---
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) GetCustomerByID(ctx context.Context, companyID string, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, companyID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) ListCustomers(ctx context.Context, companyID string, params dto.ListCustomersParams) ([]domain.Customer, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerService) CreateCustomer(ctx context.Context, companyID string, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) UpdateCustomer(ctx context.Context, companyID string, customerID string, req dto.UpdateCustomerRequest, userID string) (*domain.Customer, error) {
	args := m.Called(ctx, companyID, customerID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) DeleteCustomer(ctx context.Context, companyID string, customerID string, userID string) error {
	return m.Called(ctx, companyID, customerID, userID).Error(0)
}

var _ portssvc.CustomerSvcFacade = (*MockCustomerService)(nil)

// --- Mock JobService ---
type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) GetJobByID(ctx context.Context, companyID string, jobID string) (*domain.Job, error) {
	args := m.Called(ctx, companyID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobService) ListJobs(ctx context.Context, companyID string, params dto.ListJobsParams) (*dto.ListJobsResponse, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListJobsResponse), args.Error(1)
}
func (m *MockJobService) CreateJob(ctx context.Context, companyID string, req dto.CreateJobRequest, userID string) (*domain.Job, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobService) UpdateJob(ctx context.Context, companyID string, jobID string, req dto.UpdateJobRequest, userID string) (*domain.Job, error) {
	args := m.Called(ctx, companyID, jobID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobService) DeleteJob(ctx context.Context, companyID string, jobID string, userID string) error {
	return m.Called(ctx, companyID, jobID, userID).Error(0)
}
func (m *MockJobService) TransitionStatus(ctx context.Context, companyID string, jobID string, status domain.JobStatus, userID string) (*domain.Job, error) {
	args := m.Called(ctx, companyID, jobID, status, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobService) MarkJobPaid(ctx context.Context, companyID string, jobID string, userID string) (*domain.Job, error) {
	args := m.Called(ctx, companyID, jobID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

var _ portssvc.JobSvcFacade = (*MockJobService)(nil)

// --- Mock LineItemService ---
type MockLineItemService struct {
	mock.Mock
}

func (m *MockLineItemService) lineItem(args mock.Arguments) (*domain.JobLineItem, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobLineItem), args.Error(1)
}
func (m *MockLineItemService) ListLineItems(ctx context.Context, companyID string, jobID string) ([]domain.JobLineItem, error) {
	args := m.Called(ctx, companyID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobLineItem), args.Error(1)
}
func (m *MockLineItemService) AddLineItem(ctx context.Context, companyID string, jobID string, req dto.AddLineItemRequest, userID string) (*domain.JobLineItem, error) {
	return m.lineItem(m.Called(ctx, companyID, jobID, req, userID))
}
func (m *MockLineItemService) UpdateLineItem(ctx context.Context, companyID string, jobID string, lineItemID string, req dto.UpdateLineItemRequest, userID string) (*domain.JobLineItem, error) {
	return m.lineItem(m.Called(ctx, companyID, jobID, lineItemID, req, userID))
}
func (m *MockLineItemService) DeleteLineItem(ctx context.Context, companyID string, jobID string, lineItemID string, userID string) error {
	return m.Called(ctx, companyID, jobID, lineItemID, userID).Error(0)
}

var _ portssvc.LineItemSvcFacade = (*MockLineItemService)(nil)

// --- Mock ReportService ---
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) GenerateForJob(ctx context.Context, companyID string, jobID string, userID string) (*domain.ProjectReport, error) {
	args := m.Called(ctx, companyID, jobID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectReport), args.Error(1)
}
func (m *MockReportService) GetReportByJobID(ctx context.Context, companyID string, jobID string) (*domain.ProjectReport, error) {
	args := m.Called(ctx, companyID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectReport), args.Error(1)
}
func (m *MockReportService) ListReports(ctx context.Context, companyID string, params dto.ListParams) ([]domain.ProjectReport, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectReport), args.Error(1)
}
func (m *MockReportService) ExportReportXLSX(ctx context.Context, companyID string, jobID string) ([]byte, string, error) {
	args := m.Called(ctx, companyID, jobID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

var _ portssvc.ProjectReportSvcFacade = (*MockReportService)(nil)

// --- Mock TimeLogService ---
type MockTimeLogService struct {
	mock.Mock
}

func (m *MockTimeLogService) timeLog(args mock.Arguments) (*domain.TimeLog, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeLog), args.Error(1)
}
func (m *MockTimeLogService) GetTimeLogByID(ctx context.Context, companyID string, timeLogID string) (*domain.TimeLog, error) {
	return m.timeLog(m.Called(ctx, companyID, timeLogID))
}
func (m *MockTimeLogService) ListTimeLogs(ctx context.Context, companyID string, params dto.ListTimeLogsParams) ([]domain.TimeLog, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeLog), args.Error(1)
}
func (m *MockTimeLogService) GetActiveTimer(ctx context.Context, companyID string, employeeID string) (*domain.TimeLog, error) {
	return m.timeLog(m.Called(ctx, companyID, employeeID))
}
func (m *MockTimeLogService) StartTimer(ctx context.Context, companyID string, req dto.StartTimerRequest, userID string) (*domain.TimeLog, error) {
	return m.timeLog(m.Called(ctx, companyID, req, userID))
}
func (m *MockTimeLogService) StopTimer(ctx context.Context, companyID string, timeLogID string, req dto.StopTimerRequest, userID string) (*domain.TimeLog, error) {
	return m.timeLog(m.Called(ctx, companyID, timeLogID, req, userID))
}
func (m *MockTimeLogService) CreateTimeLog(ctx context.Context, companyID string, req dto.CreateTimeLogRequest, userID string) (*domain.TimeLog, error) {
	return m.timeLog(m.Called(ctx, companyID, req, userID))
}
func (m *MockTimeLogService) UpdateTimeLog(ctx context.Context, companyID string, timeLogID string, req dto.UpdateTimeLogRequest, userID string) (*domain.TimeLog, error) {
	return m.timeLog(m.Called(ctx, companyID, timeLogID, req, userID))
}
func (m *MockTimeLogService) DeleteTimeLog(ctx context.Context, companyID string, timeLogID string, userID string) error {
	return m.Called(ctx, companyID, timeLogID, userID).Error(0)
}

var _ portssvc.TimeLogSvcFacade = (*MockTimeLogService)(nil)

// --- Mock APITokenService ---
type MockAPITokenService struct {
	mock.Mock
}

func (m *MockAPITokenService) CreateToken(ctx context.Context, companyID, userID, name string, expiresIn *time.Duration) (string, *domain.APIToken, error) {
	args := m.Called(ctx, companyID, userID, name, expiresIn)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.APIToken), args.Error(2)
}
func (m *MockAPITokenService) ListTokens(ctx context.Context, companyID string) ([]domain.APIToken, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]domain.APIToken), args.Error(1)
}
func (m *MockAPITokenService) RevokeToken(ctx context.Context, companyID, userID, tokenID string) error {
	return m.Called(ctx, companyID, userID, tokenID).Error(0)
}
func (m *MockAPITokenService) ValidateToken(ctx context.Context, tokenString string) (*domain.APIToken, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.APIToken), args.Error(1)
}

var _ portssvc.APITokenSvc = (*MockAPITokenService)(nil)
