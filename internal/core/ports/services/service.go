package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Customer   CustomerSvcFacade
	Employee   EmployeeSvcFacade
	Equipment  EquipmentSvcFacade
	Loadout    LoadoutSvcFacade
	Job        JobSvcFacade
	LineItem   LineItemSvcFacade
	TimeLog    TimeLogSvcFacade
	Report     ProjectReportSvcFacade
	Analytics  AnalyticsSvc
	Workforce  WorkforceSvcFacade
	Calculator CalculatorSvc
	APIToken   APITokenSvc
}
