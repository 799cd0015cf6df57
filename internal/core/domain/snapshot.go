package domain

// Snapshot is the root container holding all four entity collections.
// It is serialized and persisted as a whole on every mutation.
type Snapshot struct {
	Accounts    []Account    `json:"accounts"`
	Departments []Department `json:"departments"`
	Employees   []Employee   `json:"employees"`
	Requests    []Request    `json:"requests"`
}

// FindAccountByID returns the account with the given id, or nil.
func (s *Snapshot) FindAccountByID(id string) *Account {
	for i := range s.Accounts {
		if s.Accounts[i].ID == id {
			return &s.Accounts[i]
		}
	}
	return nil
}

// FindAccountByEmail returns the account with the exact (case-sensitive)
// e-mail, or nil.
func (s *Snapshot) FindAccountByEmail(email string) *Account {
	for i := range s.Accounts {
		if s.Accounts[i].Email == email {
			return &s.Accounts[i]
		}
	}
	return nil
}

// FindDepartmentByID returns the department with the given id, or nil.
func (s *Snapshot) FindDepartmentByID(id string) *Department {
	for i := range s.Departments {
		if s.Departments[i].ID == id {
			return &s.Departments[i]
		}
	}
	return nil
}

// FindEmployeeByID returns the employee with the given id, or nil.
func (s *Snapshot) FindEmployeeByID(id string) *Employee {
	for i := range s.Employees {
		if s.Employees[i].ID == id {
			return &s.Employees[i]
		}
	}
	return nil
}

// CountEmployeesInDepartment returns how many employees reference the
// department id.
func (s *Snapshot) CountEmployeesInDepartment(departmentID string) int {
	n := 0
	for i := range s.Employees {
		if s.Employees[i].DepartmentID == departmentID {
			n++
		}
	}
	return n
}

// HasEmployeeForAccount reports whether any employee record references the
// account id through its UserID snapshot.
func (s *Snapshot) HasEmployeeForAccount(accountID string) bool {
	for i := range s.Employees {
		if s.Employees[i].UserID == accountID {
			return true
		}
	}
	return false
}
