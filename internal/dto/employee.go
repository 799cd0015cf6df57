package dto

import (
	"github.com/lilad25/intranet-portal/internal/core/domain"
)

// SaveEmployeeRequest is the employee form; empty ID creates, present ID edits
// in place. UserEmail must match an existing account or the save is refused.
type SaveEmployeeRequest struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId" binding:"required"`
	UserEmail    string `json:"userEmail" binding:"required,email"`
	Position     string `json:"position" binding:"required"`
	DepartmentID string `json:"departmentId"`
	HireDate     string `json:"hireDate" binding:"required,hiredate"`
}

// EmployeeResponse is an employee row with the department name resolved at
// render time.
type EmployeeResponse struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employeeId"`
	UserEmail      string `json:"userEmail"`
	UserID         string `json:"userId"`
	Position       string `json:"position"`
	DepartmentID   string `json:"departmentId"`
	DepartmentName string `json:"departmentName"`
	HireDate       string `json:"hireDate"`
}

// ListEmployeesResponse wraps the rendered employee rows.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// SaveEmployeeResponse returns the saved employee plus a notice.
type SaveEmployeeResponse struct {
	Employee EmployeeResponse `json:"employee"`
	Notice   *Notification    `json:"notice,omitempty"`
}

// ToEmployeeResponse maps a domain employee, resolving the department name.
// "N/A" mirrors the table rendering for an unassigned or vanished department.
func ToEmployeeResponse(e *domain.Employee, departmentName string) EmployeeResponse {
	if departmentName == "" {
		departmentName = "N/A"
	}
	return EmployeeResponse{
		ID:             e.ID,
		EmployeeID:     e.EmployeeID,
		UserEmail:      e.UserEmail,
		UserID:         e.UserID,
		Position:       e.Position,
		DepartmentID:   e.DepartmentID,
		DepartmentName: departmentName,
		HireDate:       e.HireDate,
	}
}
