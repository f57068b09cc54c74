package services

import (
	portsrepo "github.com/SscSPs/treeservice_ops/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/SscSPs/treeservice_ops/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// events receives product analytics and may be nil.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, events EventTracker, opts ...Option) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Customer = NewCustomerService(repos.CustomerRepo, opts...)
	container.Employee = NewEmployeeService(repos.EmployeeRepo, repos.WorkforceRepo, cfg.DefaultAnnualHours, opts...)
	container.Equipment = NewEquipmentService(repos.EquipmentRepo, cfg.DefaultOverheadMultiplier, opts...)
	container.Loadout = NewLoadoutService(repos.LoadoutRepo, repos.EmployeeRepo, repos.EquipmentRepo, opts...)

	// Completing a job generates its report, so the report service comes first.
	container.Report = NewProjectReportService(
		repos.ReportRepo,
		repos.JobRepo,
		repos.CustomerRepo,
		repos.LineItemRepo,
		repos.TimeLogRepo,
		repos.EmployeeRepo,
		opts...,
	)
	container.Job = NewJobService(repos.JobRepo, repos.CustomerRepo, repos.LineItemRepo, container.Report, events, opts...)
	container.LineItem = NewLineItemService(
		repos.LineItemRepo,
		repos.JobRepo,
		repos.EmployeeRepo,
		repos.EquipmentRepo,
		repos.LoadoutRepo,
		opts...,
	)
	container.TimeLog = NewTimeLogService(
		repos.TimeLogRepo,
		repos.JobRepo,
		repos.LineItemRepo,
		repos.EmployeeRepo,
		repos.EquipmentRepo,
		opts...,
	)

	container.Analytics = NewAnalyticsService(repos.AnalyticsRepo, cfg.AnalyticsTopN, opts...)
	container.Workforce = NewWorkforceService(repos.WorkforceRepo, repos.EmployeeRepo, opts...)
	container.Calculator = NewCalculatorService(
		repos.EmployeeRepo,
		repos.EquipmentRepo,
		repos.LoadoutRepo,
		cfg.DefaultOverheadMultiplier,
		cfg.DefaultAnnualHours,
		opts...,
	)
	container.APIToken = NewAPITokenService(repos.APITokenRepo, opts...)

	return container
}
