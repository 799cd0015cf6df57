package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lilad25/intranet-portal/internal/apperrors"
	"github.com/lilad25/intranet-portal/internal/core/domain"
	"github.com/lilad25/intranet-portal/internal/core/store"
	"github.com/lilad25/intranet-portal/internal/dto"
)

// DepartmentService implements admin department management against the store.
type DepartmentService struct {
	store *store.Store
}

// NewDepartmentService creates a DepartmentService.
func NewDepartmentService(s *store.Store) *DepartmentService {
	return &DepartmentService{store: s}
}

// ListDepartments returns all departments plus the per-department count of
// referencing employees.
func (s *DepartmentService) ListDepartments(ctx context.Context) ([]domain.Department, map[string]int, error) {
	var departments []domain.Department
	counts := map[string]int{}
	err := s.store.View(func(snap *domain.Snapshot) error {
		departments = make([]domain.Department, len(snap.Departments))
		copy(departments, snap.Departments)
		for _, d := range snap.Departments {
			counts[d.ID] = snap.CountEmployeesInDepartment(d.ID)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return departments, counts, nil
}

// SaveDepartment creates when req.ID is empty and edits in place otherwise.
func (s *DepartmentService) SaveDepartment(ctx context.Context, req dto.SaveDepartmentRequest) (*domain.Department, error) {
	var saved domain.Department
	err := s.store.Update(ctx, func(snap *domain.Snapshot) error {
		if req.ID != "" {
			department := snap.FindDepartmentByID(req.ID)
			if department == nil {
				return fmt.Errorf("department %q: %w", req.ID, apperrors.ErrNotFound)
			}
			department.Name = req.Name
			department.Description = req.Description
			saved = *department
			return nil
		}

		saved = domain.Department{
			ID:          uuid.NewString(),
			Name:        req.Name,
			Description: req.Description,
		}
		snap.Departments = append(snap.Departments, saved)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// DeleteDepartment removes the department. The delete is refused while any
// employee still references it; that guard is the only referential-integrity
// enforcement in the system.
func (s *DepartmentService) DeleteDepartment(ctx context.Context, departmentID string) error {
	return s.store.Update(ctx, func(snap *domain.Snapshot) error {
		if snap.FindDepartmentByID(departmentID) == nil {
			return fmt.Errorf("department %q: %w", departmentID, apperrors.ErrNotFound)
		}
		if n := snap.CountEmployeesInDepartment(departmentID); n > 0 {
			return fmt.Errorf("department has %d employee(s): %w", n, apperrors.ErrReference)
		}

		kept := snap.Departments[:0]
		for _, d := range snap.Departments {
			if d.ID != departmentID {
				kept = append(kept, d)
			}
		}
		snap.Departments = kept
		return nil
	})
}
