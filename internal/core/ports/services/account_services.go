package services

import (
	"context"

	"github.com/lilad25/intranet-portal/internal/core/domain"
	"github.com/lilad25/intranet-portal/internal/dto"
)

// AccountSvcFacade exposes admin account management.
type AccountSvcFacade interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// SaveAccount creates when req.ID is empty (checking e-mail uniqueness,
	// defaulting a blank password) and edits in place otherwise (a blank
	// password keeps the current one).
	SaveAccount(ctx context.Context, req dto.SaveAccountRequest) (*domain.Account, error)

	// DeleteAccount removes the account. Deleting the actor's own account is
	// refused with apperrors.ErrForbidden. hasEmployee reports the
	// non-blocking warning that an employee record still references the
	// deleted account.
	DeleteAccount(ctx context.Context, accountID, actorAccountID string) (hasEmployee bool, err error)

	// ResetPassword sets a new password for the account; minimum 6 characters.
	ResetPassword(ctx context.Context, accountID, newPassword string) error
}
