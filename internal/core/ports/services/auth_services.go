package services

import (
	"context"

	"github.com/lilad25/intranet-portal/internal/core/domain"
	"github.com/lilad25/intranet-portal/internal/dto"
)

// AuthSvcFacade exposes registration, the simulated e-mail verification, and
// session lifecycle operations.
type AuthSvcFacade interface {
	// Register creates an unverified User-role account and records its e-mail
	// as pending verification. Returns apperrors.ErrDuplicate when the e-mail
	// is already taken (case-sensitive exact match).
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.Account, error)

	// VerifyPendingEmail marks the account behind the pending-verification
	// marker as verified and clears the marker.
	VerifyPendingEmail(ctx context.Context) (*domain.Account, error)

	// Login succeeds only on an exact e-mail+password match against a verified
	// account. Any failure surfaces as apperrors.ErrAuth without further
	// detail. On success the session marker is set to the account's e-mail.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.Account, error)

	// Logout clears the session marker.
	Logout(ctx context.Context) error

	// RestoreSession resolves the persisted session marker back to a verified
	// account, discarding the marker when it no longer matches one.
	RestoreSession(ctx context.Context) (*domain.Account, error)

	// AccountByID resolves an account for middleware and the profile view.
	AccountByID(ctx context.Context, accountID string) (*domain.Account, error)
}
