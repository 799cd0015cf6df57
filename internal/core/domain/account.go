package domain

// Role distinguishes admin accounts from regular users.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// Account represents a portal login account.
// Passwords are stored and compared as plain strings; this is a demo portal
// with no password security model.
type Account struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"` // unique, case-sensitive equality
	Password  string `json:"password"`
	Role      Role   `json:"role"`
	Verified  bool   `json:"verified"`
}

// FullName returns the display name used across the portal.
func (a Account) FullName() string {
	return a.FirstName + " " + a.LastName
}
