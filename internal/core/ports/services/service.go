package services

// ServiceContainer holds instances of all the application services.
// It is built once at startup and handed to the handlers.
type ServiceContainer struct {
	Record    RecordSvcFacade
	Reporting ReportingService
	Auth      AuthService
}
