package dto

import (
	"github.com/lilad25/intranet-portal/internal/core/domain"
)

// SaveDepartmentRequest is the department form; empty ID creates, present ID
// edits in place.
type SaveDepartmentRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// DepartmentResponse is a department row with its referencing-employee count.
type DepartmentResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	EmployeeCount int    `json:"employeeCount"`
}

// ListDepartmentsResponse wraps the rendered department rows.
type ListDepartmentsResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}

// SaveDepartmentResponse returns the saved department plus a notice.
type SaveDepartmentResponse struct {
	Department DepartmentResponse `json:"department"`
	Notice     *Notification      `json:"notice,omitempty"`
}

// ToDepartmentResponse maps a domain department with its employee count.
func ToDepartmentResponse(d *domain.Department, employeeCount int) DepartmentResponse {
	return DepartmentResponse{
		ID:            d.ID,
		Name:          d.Name,
		Description:   d.Description,
		EmployeeCount: employeeCount,
	}
}
