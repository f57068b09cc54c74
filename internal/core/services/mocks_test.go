package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	portsrepo "github.com/SscSPs/treeservice_ops/internal/core/ports/repositories"
	"github.com/SscSPs/treeservice_ops/internal/core/services"
	"github.com/stretchr/testify/mock"
)

// MockCustomerRepository is a mock type for the Customer repository interfaces
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, companyID string, search string, page portsrepo.Page) ([]domain.Customer, error) {
	args := m.Called(ctx, companyID, search, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) CountJobsForCustomer(ctx context.Context, customerID string) (int, error) {
	args := m.Called(ctx, customerID)
	return args.Int(0), args.Error(1)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

var _ portsrepo.CustomerRepositoryFacade = (*MockCustomerRepository)(nil)

// MockEmployeeRepository is a mock type for the Employee repository interfaces
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeesByIDs(ctx context.Context, employeeIDs []string) (map[string]domain.Employee, error) {
	args := m.Called(ctx, employeeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context, companyID string, activeOnly bool, page portsrepo.Page) ([]domain.Employee, error) {
	args := m.Called(ctx, companyID, activeOnly, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

var _ portsrepo.EmployeeRepositoryFacade = (*MockEmployeeRepository)(nil)

// MockEquipmentRepository is a mock type for the Equipment repository interfaces
type MockEquipmentRepository struct {
	mock.Mock
}

func (m *MockEquipmentRepository) FindEquipmentByID(ctx context.Context, equipmentID string) (*domain.Equipment, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) FindEquipmentByIDs(ctx context.Context, equipmentIDs []string) (map[string]domain.Equipment, error) {
	args := m.Called(ctx, equipmentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) ListEquipment(ctx context.Context, companyID string, status domain.EquipmentStatus, page portsrepo.Page) ([]domain.Equipment, error) {
	args := m.Called(ctx, companyID, status, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) SaveEquipment(ctx context.Context, equipment domain.Equipment) error {
	args := m.Called(ctx, equipment)
	return args.Error(0)
}

func (m *MockEquipmentRepository) UpdateEquipment(ctx context.Context, equipment domain.Equipment) error {
	args := m.Called(ctx, equipment)
	return args.Error(0)
}

var _ portsrepo.EquipmentRepositoryFacade = (*MockEquipmentRepository)(nil)

// MockLoadoutRepository is a mock type for the Loadout repository interfaces
type MockLoadoutRepository struct {
	mock.Mock
}

func (m *MockLoadoutRepository) FindLoadoutByID(ctx context.Context, loadoutID string) (*domain.Loadout, error) {
	args := m.Called(ctx, loadoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loadout), args.Error(1)
}

func (m *MockLoadoutRepository) ListLoadouts(ctx context.Context, companyID string, page portsrepo.Page) ([]domain.Loadout, error) {
	args := m.Called(ctx, companyID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loadout), args.Error(1)
}

func (m *MockLoadoutRepository) CountLineItemsForLoadout(ctx context.Context, loadoutID string) (int, error) {
	args := m.Called(ctx, loadoutID)
	return args.Int(0), args.Error(1)
}

func (m *MockLoadoutRepository) SaveLoadout(ctx context.Context, loadout domain.Loadout) error {
	args := m.Called(ctx, loadout)
	return args.Error(0)
}

func (m *MockLoadoutRepository) UpdateLoadout(ctx context.Context, loadout domain.Loadout) error {
	args := m.Called(ctx, loadout)
	return args.Error(0)
}

func (m *MockLoadoutRepository) DeleteLoadout(ctx context.Context, loadoutID string) error {
	args := m.Called(ctx, loadoutID)
	return args.Error(0)
}

var _ portsrepo.LoadoutRepositoryFacade = (*MockLoadoutRepository)(nil)

// MockJobRepository is a mock type for the Job repository interfaces
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) FindJobByID(ctx context.Context, jobID string) (*domain.Job, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepository) ListJobs(ctx context.Context, companyID string, filter portsrepo.JobFilter) ([]domain.Job, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepository) CountTimeLogsForJob(ctx context.Context, jobID string) (int, error) {
	args := m.Called(ctx, jobID)
	return args.Int(0), args.Error(1)
}

func (m *MockJobRepository) CreateJob(ctx context.Context, job *domain.Job, phases []domain.JobLineItem) error {
	args := m.Called(ctx, job, phases)
	return args.Error(0)
}

func (m *MockJobRepository) UpdateJob(ctx context.Context, job domain.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) CountActiveTimeLogsForJob(ctx context.Context, jobID string) (int, error) {
	args := m.Called(ctx, jobID)
	return args.Int(0), args.Error(1)
}

func (m *MockJobRepository) UpdateJobStatus(ctx context.Context, jobID string, from, to domain.JobStatus, userID string, now time.Time) error {
	args := m.Called(ctx, jobID, from, to, userID, now)
	return args.Error(0)
}

func (m *MockJobRepository) CompleteJob(ctx context.Context, jobID string, from domain.JobStatus, userID string, now time.Time) error {
	args := m.Called(ctx, jobID, from, userID, now)
	return args.Error(0)
}

func (m *MockJobRepository) MarkJobPaid(ctx context.Context, jobID string, userID string, now time.Time) error {
	args := m.Called(ctx, jobID, userID, now)
	return args.Error(0)
}

func (m *MockJobRepository) DeleteJob(ctx context.Context, jobID string) error {
	args := m.Called(ctx, jobID)
	return args.Error(0)
}

var _ portsrepo.JobRepositoryFacade = (*MockJobRepository)(nil)

// MockLineItemRepository is a mock type for the LineItem repository interfaces
type MockLineItemRepository struct {
	mock.Mock
}

func (m *MockLineItemRepository) FindLineItemByID(ctx context.Context, lineItemID string) (*domain.JobLineItem, error) {
	args := m.Called(ctx, lineItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobLineItem), args.Error(1)
}

func (m *MockLineItemRepository) ListLineItemsByJob(ctx context.Context, jobID string) ([]domain.JobLineItem, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobLineItem), args.Error(1)
}

func (m *MockLineItemRepository) AddBillableLineItem(ctx context.Context, item *domain.JobLineItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockLineItemRepository) UpdateLineItem(ctx context.Context, item domain.JobLineItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockLineItemRepository) DeleteLineItem(ctx context.Context, item domain.JobLineItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

var _ portsrepo.LineItemRepositoryFacade = (*MockLineItemRepository)(nil)

// MockTimeLogRepository is a mock type for the TimeLog repository interfaces
type MockTimeLogRepository struct {
	mock.Mock
}

func (m *MockTimeLogRepository) FindTimeLogByID(ctx context.Context, timeLogID string) (*domain.TimeLog, error) {
	args := m.Called(ctx, timeLogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeLog), args.Error(1)
}

func (m *MockTimeLogRepository) FindActiveTimeLog(ctx context.Context, employeeID string) (*domain.TimeLog, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeLog), args.Error(1)
}

func (m *MockTimeLogRepository) ListTimeLogs(ctx context.Context, companyID string, filter portsrepo.TimeLogFilter) ([]domain.TimeLog, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeLog), args.Error(1)
}

func (m *MockTimeLogRepository) ListTimeLogsByJob(ctx context.Context, jobID string) ([]domain.TimeLog, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeLog), args.Error(1)
}

func (m *MockTimeLogRepository) StartTimeLog(ctx context.Context, log domain.TimeLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockTimeLogRepository) StopTimeLog(ctx context.Context, log domain.TimeLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockTimeLogRepository) SaveTimeLog(ctx context.Context, log domain.TimeLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockTimeLogRepository) UpdateTimeLog(ctx context.Context, log domain.TimeLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockTimeLogRepository) DeleteTimeLog(ctx context.Context, log domain.TimeLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

var _ portsrepo.TimeLogRepositoryFacade = (*MockTimeLogRepository)(nil)

// MockReportRepository is a mock type for the Report repository interfaces
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) FindReportByJobID(ctx context.Context, jobID string) (*domain.ProjectReport, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectReport), args.Error(1)
}

func (m *MockReportRepository) ListReports(ctx context.Context, companyID string, page portsrepo.Page) ([]domain.ProjectReport, error) {
	args := m.Called(ctx, companyID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectReport), args.Error(1)
}

func (m *MockReportRepository) SaveReport(ctx context.Context, report domain.ProjectReport) (bool, error) {
	args := m.Called(ctx, report)
	return args.Bool(0), args.Error(1)
}

var _ portsrepo.ProjectReportRepositoryFacade = (*MockReportRepository)(nil)

// MockWorkforceRepository is a mock type for the Workforce repository interfaces
type MockWorkforceRepository struct {
	mock.Mock
}

func (m *MockWorkforceRepository) SaveCareerTrack(ctx context.Context, track domain.CareerTrack) error {
	args := m.Called(ctx, track)
	return args.Error(0)
}

func (m *MockWorkforceRepository) FindCareerTrackByID(ctx context.Context, trackID string) (*domain.CareerTrack, error) {
	args := m.Called(ctx, trackID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CareerTrack), args.Error(1)
}

func (m *MockWorkforceRepository) ListCareerTracks(ctx context.Context, companyID string) ([]domain.CareerTrack, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CareerTrack), args.Error(1)
}

func (m *MockWorkforceRepository) DeleteCareerTrack(ctx context.Context, trackID string) error {
	args := m.Called(ctx, trackID)
	return args.Error(0)
}

func (m *MockWorkforceRepository) CountSkillsForTrack(ctx context.Context, trackID string) (int, error) {
	args := m.Called(ctx, trackID)
	return args.Int(0), args.Error(1)
}

func (m *MockWorkforceRepository) SaveManagementLevel(ctx context.Context, level domain.ManagementLevel) error {
	args := m.Called(ctx, level)
	return args.Error(0)
}

func (m *MockWorkforceRepository) FindManagementLevelByID(ctx context.Context, levelID string) (*domain.ManagementLevel, error) {
	args := m.Called(ctx, levelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ManagementLevel), args.Error(1)
}

func (m *MockWorkforceRepository) ListManagementLevels(ctx context.Context, companyID string) ([]domain.ManagementLevel, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ManagementLevel), args.Error(1)
}

func (m *MockWorkforceRepository) DeleteManagementLevel(ctx context.Context, levelID string) error {
	args := m.Called(ctx, levelID)
	return args.Error(0)
}

func (m *MockWorkforceRepository) CountEmployeesAtLevel(ctx context.Context, levelID string) (int, error) {
	args := m.Called(ctx, levelID)
	return args.Int(0), args.Error(1)
}

func (m *MockWorkforceRepository) SaveCertification(ctx context.Context, cert domain.Certification) error {
	args := m.Called(ctx, cert)
	return args.Error(0)
}

func (m *MockWorkforceRepository) FindCertificationByID(ctx context.Context, certificationID string) (*domain.Certification, error) {
	args := m.Called(ctx, certificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Certification), args.Error(1)
}

func (m *MockWorkforceRepository) ListCertifications(ctx context.Context, companyID string) ([]domain.Certification, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Certification), args.Error(1)
}

func (m *MockWorkforceRepository) DeleteCertification(ctx context.Context, certificationID string) error {
	args := m.Called(ctx, certificationID)
	return args.Error(0)
}

func (m *MockWorkforceRepository) CountActiveAssignments(ctx context.Context, certificationID string) (int, error) {
	args := m.Called(ctx, certificationID)
	return args.Int(0), args.Error(1)
}

func (m *MockWorkforceRepository) SaveEmployeeCertification(ctx context.Context, assignment domain.EmployeeCertification) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockWorkforceRepository) FindEmployeeCertificationByID(ctx context.Context, assignmentID string) (*domain.EmployeeCertification, error) {
	args := m.Called(ctx, assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeeCertification), args.Error(1)
}

func (m *MockWorkforceRepository) ListEmployeeCertifications(ctx context.Context, employeeID string) ([]domain.EmployeeCertification, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmployeeCertification), args.Error(1)
}

func (m *MockWorkforceRepository) RevokeEmployeeCertification(ctx context.Context, assignmentID string, userID string, now time.Time) error {
	args := m.Called(ctx, assignmentID, userID, now)
	return args.Error(0)
}

func (m *MockWorkforceRepository) SaveEmployeeSkill(ctx context.Context, skill domain.EmployeeSkill) error {
	args := m.Called(ctx, skill)
	return args.Error(0)
}

func (m *MockWorkforceRepository) FindEmployeeSkillByID(ctx context.Context, skillID string) (*domain.EmployeeSkill, error) {
	args := m.Called(ctx, skillID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeeSkill), args.Error(1)
}

func (m *MockWorkforceRepository) ListEmployeeSkills(ctx context.Context, employeeID string) ([]domain.EmployeeSkill, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmployeeSkill), args.Error(1)
}

func (m *MockWorkforceRepository) DeactivateEmployeeSkill(ctx context.Context, skillID string, userID string, now time.Time) error {
	args := m.Called(ctx, skillID, userID, now)
	return args.Error(0)
}

var _ portsrepo.WorkforceRepositoryFacade = (*MockWorkforceRepository)(nil)

// MockAnalyticsRepository is a mock type for the Analytics repository interfaces
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) ListJobsCreatedBetween(ctx context.Context, companyID string, from *time.Time, to *time.Time) ([]domain.Job, error) {
	args := m.Called(ctx, companyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockAnalyticsRepository) ListClosedTimeLogsForJobs(ctx context.Context, companyID string, jobIDs []string) ([]domain.TimeLog, error) {
	args := m.Called(ctx, companyID, jobIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeLog), args.Error(1)
}

func (m *MockAnalyticsRepository) ListAllEmployees(ctx context.Context, companyID string) ([]domain.Employee, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockAnalyticsRepository) ListAllCustomers(ctx context.Context, companyID string) ([]domain.Customer, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockAnalyticsRepository) ListAllEquipment(ctx context.Context, companyID string) ([]domain.Equipment, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

var _ portsrepo.AnalyticsRepository = (*MockAnalyticsRepository)(nil)

// MockAPITokenRepository is a mock type for the APIToken repository interfaces
type MockAPITokenRepository struct {
	mock.Mock
}

func (m *MockAPITokenRepository) Create(ctx context.Context, token *domain.APIToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAPITokenRepository) FindByID(ctx context.Context, id string) (*domain.APIToken, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.APIToken), args.Error(1)
}

func (m *MockAPITokenRepository) ListByCompany(ctx context.Context, companyID string) ([]domain.APIToken, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.APIToken), args.Error(1)
}

func (m *MockAPITokenRepository) TouchLastUsed(ctx context.Context, id string, usedAt time.Time) error {
	args := m.Called(ctx, id, usedAt)
	return args.Error(0)
}

func (m *MockAPITokenRepository) Revoke(ctx context.Context, id string, revokedAt time.Time) error {
	args := m.Called(ctx, id, revokedAt)
	return args.Error(0)
}

var _ portsrepo.APITokenRepository = (*MockAPITokenRepository)(nil)

// MockEventTracker records product analytics events
type MockEventTracker struct {
	mock.Mock
}

func (m *MockEventTracker) Enqueue(distinctID string, event string, properties map[string]any) {
	m.Called(distinctID, event, properties)
}

// MockReportGenerator is a mock type for ProjectReportGenerator
type MockReportGenerator struct {
	mock.Mock
}

func (m *MockReportGenerator) GenerateForJob(ctx context.Context, companyID string, jobID string, userID string) (*domain.ProjectReport, error) {
	args := m.Called(ctx, companyID, jobID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectReport), args.Error(1)
}

// fixedNow is the clock every service test runs on.
var fixedNow = time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

func testClock() services.Option {
	return services.WithClock(func() time.Time { return fixedNow })
}
