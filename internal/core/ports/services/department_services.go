package services

import (
	"context"

	"github.com/lilad25/intranet-portal/internal/core/domain"
	"github.com/lilad25/intranet-portal/internal/dto"
)

// DepartmentSvcFacade exposes admin department management.
type DepartmentSvcFacade interface {
	// ListDepartments returns all departments plus a department-id →
	// referencing-employee-count map for table rendering.
	ListDepartments(ctx context.Context) ([]domain.Department, map[string]int, error)

	// SaveDepartment creates when req.ID is empty and edits in place otherwise.
	SaveDepartment(ctx context.Context, req dto.SaveDepartmentRequest) (*domain.Department, error)

	// DeleteDepartment removes the department; refused with
	// apperrors.ErrReference while any employee references it.
	DeleteDepartment(ctx context.Context, departmentID string) error
}
