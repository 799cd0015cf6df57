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

// EmployeeService implements admin employee management against the store.
type EmployeeService struct {
	store *store.Store
}

// NewEmployeeService creates an EmployeeService.
func NewEmployeeService(s *store.Store) *EmployeeService {
	return &EmployeeService{store: s}
}

// ListEmployees returns all employees plus a department-id → name map so the
// handler can resolve department names at render time.
func (s *EmployeeService) ListEmployees(ctx context.Context) ([]domain.Employee, map[string]string, error) {
	var employees []domain.Employee
	names := map[string]string{}
	err := s.store.View(func(snap *domain.Snapshot) error {
		employees = make([]domain.Employee, len(snap.Employees))
		copy(employees, snap.Employees)
		for _, d := range snap.Departments {
			names[d.ID] = d.Name
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return employees, names, nil
}

// SaveEmployee creates when req.ID is empty and edits in place otherwise. The
// referenced user e-mail must match an existing account and a non-empty
// department id must match an existing department, or nothing is persisted.
// The matched account's id is snapshotted into the employee; it is not kept
// in sync afterwards.
func (s *EmployeeService) SaveEmployee(ctx context.Context, req dto.SaveEmployeeRequest) (*domain.Employee, string, error) {
	var saved domain.Employee
	var departmentName string
	err := s.store.Update(ctx, func(snap *domain.Snapshot) error {
		account := snap.FindAccountByEmail(req.UserEmail)
		if account == nil {
			return fmt.Errorf("user email %q matches no account: %w", req.UserEmail, apperrors.ErrReference)
		}
		if req.DepartmentID != "" {
			d := snap.FindDepartmentByID(req.DepartmentID)
			if d == nil {
				return fmt.Errorf("department %q does not exist: %w", req.DepartmentID, apperrors.ErrReference)
			}
			departmentName = d.Name
		}

		if req.ID != "" {
			employee := snap.FindEmployeeByID(req.ID)
			if employee == nil {
				return fmt.Errorf("employee %q: %w", req.ID, apperrors.ErrNotFound)
			}
			employee.EmployeeID = req.EmployeeID
			employee.UserEmail = req.UserEmail
			employee.UserID = account.ID
			employee.Position = req.Position
			employee.DepartmentID = req.DepartmentID
			employee.HireDate = req.HireDate
			saved = *employee
			return nil
		}

		saved = domain.Employee{
			ID:           uuid.NewString(),
			EmployeeID:   req.EmployeeID,
			UserEmail:    req.UserEmail,
			UserID:       account.ID,
			Position:     req.Position,
			DepartmentID: req.DepartmentID,
			HireDate:     req.HireDate,
		}
		snap.Employees = append(snap.Employees, saved)
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	return &saved, departmentName, nil
}

// DeleteEmployee removes the employee unconditionally.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	return s.store.Update(ctx, func(snap *domain.Snapshot) error {
		if snap.FindEmployeeByID(employeeID) == nil {
			return fmt.Errorf("employee %q: %w", employeeID, apperrors.ErrNotFound)
		}

		kept := snap.Employees[:0]
		for _, e := range snap.Employees {
			if e.ID != employeeID {
				kept = append(kept, e)
			}
		}
		snap.Employees = kept
		return nil
	})
}
