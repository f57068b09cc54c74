package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CustomerRepo  CustomerRepositoryFacade
	EmployeeRepo  EmployeeRepositoryFacade
	EquipmentRepo EquipmentRepositoryFacade
	LoadoutRepo   LoadoutRepositoryFacade
	JobRepo       JobRepositoryFacade
	LineItemRepo  LineItemRepositoryFacade
	TimeLogRepo   TimeLogRepositoryFacade
	ReportRepo    ProjectReportRepositoryFacade
	AnalyticsRepo AnalyticsRepository
	WorkforceRepo WorkforceRepositoryFacade
	APITokenRepo  APITokenRepository
}
