package services

// ServiceContainer bundles all service facades for handler registration.
type ServiceContainer struct {
	Auth       AuthSvcFacade
	Account    AccountSvcFacade
	Department DepartmentSvcFacade
	Employee   EmployeeSvcFacade
	Request    RequestSvcFacade
}
