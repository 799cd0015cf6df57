package services

import (
	"context"

	"github.com/lilad25/intranet-portal/internal/core/domain"
	"github.com/lilad25/intranet-portal/internal/dto"
)

// EmployeeSvcFacade exposes admin employee management.
type EmployeeSvcFacade interface {
	// ListEmployees returns all employees plus a department-id → name map so
	// department names are resolved at render time.
	ListEmployees(ctx context.Context) ([]domain.Employee, map[string]string, error)

	// SaveEmployee creates when req.ID is empty and edits in place otherwise.
	// The referenced user e-mail must match an existing account or the save is
	// refused with apperrors.ErrReference and nothing is persisted. The
	// account id is snapshotted into the employee at save time. The saved
	// employee's department name is returned alongside for rendering.
	SaveEmployee(ctx context.Context, req dto.SaveEmployeeRequest) (*domain.Employee, string, error)

	// DeleteEmployee removes the employee unconditionally.
	DeleteEmployee(ctx context.Context, employeeID string) error
}
