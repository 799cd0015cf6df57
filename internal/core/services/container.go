package services

import (
	portssvc "github.com/lilad25/intranet-portal/internal/core/ports/services"
	"github.com/lilad25/intranet-portal/internal/core/store"
)

// NewServiceContainer wires every service over the shared store.
func NewServiceContainer(s *store.Store) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth:       NewAuthService(s),
		Account:    NewAccountService(s),
		Department: NewDepartmentService(s),
		Employee:   NewEmployeeService(s),
		Request:    NewRequestService(s),
	}
}
