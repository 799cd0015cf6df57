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

// AuthService implements registration, simulated e-mail verification and
// session lifecycle against the store.
type AuthService struct {
	store *store.Store
}

// NewAuthService creates an AuthService.
func NewAuthService(s *store.Store) *AuthService {
	return &AuthService{store: s}
}

// Register creates an unverified User-role account and records the e-mail as
// pending verification. Duplicate e-mails (case-sensitive exact match) are
// refused and nothing is appended.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.Account, error) {
	account := domain.Account{
		ID:        uuid.NewString(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      domain.RoleUser,
		Verified:  false,
	}

	err := s.store.Update(ctx, func(snap *domain.Snapshot) error {
		if snap.FindAccountByEmail(req.Email) != nil {
			return fmt.Errorf("email %q already registered: %w", req.Email, apperrors.ErrDuplicate)
		}
		snap.Accounts = append(snap.Accounts, account)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.store.SetPendingEmail(ctx, req.Email); err != nil {
		return nil, fmt.Errorf("failed to record pending verification: %w", err)
	}
	return &account, nil
}

// VerifyPendingEmail marks the account behind the pending-verification marker
// as verified and clears the marker. Without a marker, or when the marker no
// longer matches an account, nothing changes.
func (s *AuthService) VerifyPendingEmail(ctx context.Context) (*domain.Account, error) {
	email, err := s.store.PendingEmail(ctx)
	if err != nil {
		return nil, fmt.Errorf("no pending verification: %w", err)
	}

	var verified domain.Account
	err = s.store.Update(ctx, func(snap *domain.Snapshot) error {
		account := snap.FindAccountByEmail(email)
		if account == nil {
			return fmt.Errorf("pending email %q matches no account: %w", email, apperrors.ErrNotFound)
		}
		account.Verified = true
		verified = *account
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.store.ClearPendingEmail(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear pending verification: %w", err)
	}
	return &verified, nil
}

// Login succeeds only on an exact e-mail+password match against a verified
// account. Wrong credentials and an unverified account intentionally produce
// the same apperrors.ErrAuth. On success the session marker records the
// account's e-mail.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*domain.Account, error) {
	var match *domain.Account
	_ = s.store.View(func(snap *domain.Snapshot) error {
		for i := range snap.Accounts {
			a := &snap.Accounts[i]
			if a.Email == req.Email && a.Password == req.Password && a.Verified {
				copied := *a
				match = &copied
				break
			}
		}
		return nil
	})

	if match == nil {
		return nil, apperrors.ErrAuth
	}

	if err := s.store.SetSessionEmail(ctx, match.Email); err != nil {
		return nil, fmt.Errorf("failed to record session: %w", err)
	}
	return match, nil
}

// Logout clears the session marker.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.store.ClearSessionEmail(ctx)
}

// RestoreSession resolves the persisted session marker back to a verified
// account. A stale marker (no account, or account no longer verified) is
// discarded.
func (s *AuthService) RestoreSession(ctx context.Context) (*domain.Account, error) {
	email, err := s.store.SessionEmail(ctx)
	if err != nil {
		return nil, err
	}

	var match *domain.Account
	_ = s.store.View(func(snap *domain.Snapshot) error {
		if a := snap.FindAccountByEmail(email); a != nil && a.Verified {
			copied := *a
			match = &copied
		}
		return nil
	})

	if match == nil {
		if err := s.store.ClearSessionEmail(ctx); err != nil {
			return nil, fmt.Errorf("failed to discard stale session marker: %w", err)
		}
		return nil, apperrors.ErrNotFound
	}
	return match, nil
}

// AccountByID resolves an account for middleware and the profile view.
func (s *AuthService) AccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	var match *domain.Account
	_ = s.store.View(func(snap *domain.Snapshot) error {
		if a := snap.FindAccountByID(accountID); a != nil {
			copied := *a
			match = &copied
		}
		return nil
	})

	if match == nil {
		return nil, apperrors.ErrNotFound
	}
	return match, nil
}
