package domain

// Employee is an HR record tied to an account by e-mail.
//
// UserID is a snapshot of the referenced account's id taken when the employee
// is saved. It is not recomputed if the account's e-mail later changes, so the
// pair can drift apart; the portal has always behaved this way.
type Employee struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"` // free-text business identifier, not unique
	UserEmail    string `json:"userEmail"`
	UserID       string `json:"userId"`
	Position     string `json:"position"`
	DepartmentID string `json:"departmentId"` // empty when unassigned
	HireDate     string `json:"hireDate"`     // YYYY-MM-DD
}
