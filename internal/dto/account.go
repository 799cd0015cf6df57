package dto

import (
	"github.com/lilad25/intranet-portal/internal/core/domain"
)

// SaveAccountRequest is the admin account form. An empty ID creates a new
// account; a present ID edits the existing one in place. Password is optional
// on edit (blank keeps the current one) and defaults on create.
type SaveAccountRequest struct {
	ID        string      `json:"id"`
	FirstName string      `json:"firstName" binding:"required"`
	LastName  string      `json:"lastName" binding:"required"`
	Email     string      `json:"email" binding:"required,email"`
	Role      domain.Role `json:"role" binding:"required,oneof=Admin User"`
	Verified  bool        `json:"verified"`
	Password  string      `json:"password"`
}

// ResetPasswordRequest carries the admin password reset form.
type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// AccountResponse is the account as rendered in the admin table. The password
// is never echoed back.
type AccountResponse struct {
	ID          string      `json:"id"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Email       string      `json:"email"`
	Role        domain.Role `json:"role"`
	Verified    bool        `json:"verified"`
	CurrentUser bool        `json:"currentUser,omitempty"`
}

// ListAccountsResponse wraps the rendered account rows.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// SaveAccountResponse returns the saved account plus a notice.
type SaveAccountResponse struct {
	Account AccountResponse `json:"account"`
	Notice  *Notification   `json:"notice,omitempty"`
}

// DeleteAccountResponse carries the outcome notice; Warning is set when an
// employee record still references the deleted account.
type DeleteAccountResponse struct {
	Notice  *Notification `json:"notice,omitempty"`
	Warning *Notification `json:"warning,omitempty"`
}

// ToAccountResponse maps a domain account, marking the caller's own row.
func ToAccountResponse(a *domain.Account, currentAccountID string) AccountResponse {
	return AccountResponse{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Email:       a.Email,
		Role:        a.Role,
		Verified:    a.Verified,
		CurrentUser: currentAccountID != "" && a.ID == currentAccountID,
	}
}
