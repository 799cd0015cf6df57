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

// DefaultAccountPassword is applied when an admin creates an account without
// setting a password.
const DefaultAccountPassword = "Password123!"

// AccountService implements admin account management against the store.
type AccountService struct {
	store *store.Store
}

// NewAccountService creates an AccountService.
func NewAccountService(s *store.Store) *AccountService {
	return &AccountService{store: s}
}

// ListAccounts returns all accounts.
func (s *AccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	err := s.store.View(func(snap *domain.Snapshot) error {
		accounts = make([]domain.Account, len(snap.Accounts))
		copy(accounts, snap.Accounts)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// SaveAccount creates a new account when req.ID is empty, refusing duplicate
// e-mails and defaulting a blank password. With an ID present it mutates the
// existing account in place, keeping the current password when the form left
// it blank.
func (s *AccountService) SaveAccount(ctx context.Context, req dto.SaveAccountRequest) (*domain.Account, error) {
	var saved domain.Account
	err := s.store.Update(ctx, func(snap *domain.Snapshot) error {
		if req.ID != "" {
			account := snap.FindAccountByID(req.ID)
			if account == nil {
				return fmt.Errorf("account %q: %w", req.ID, apperrors.ErrNotFound)
			}
			account.FirstName = req.FirstName
			account.LastName = req.LastName
			account.Email = req.Email
			account.Role = req.Role
			account.Verified = req.Verified
			if req.Password != "" {
				account.Password = req.Password
			}
			saved = *account
			return nil
		}

		if snap.FindAccountByEmail(req.Email) != nil {
			return fmt.Errorf("email %q already exists: %w", req.Email, apperrors.ErrDuplicate)
		}
		password := req.Password
		if password == "" {
			password = DefaultAccountPassword
		}
		saved = domain.Account{
			ID:        uuid.NewString(),
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Password:  password,
			Role:      req.Role,
			Verified:  req.Verified,
		}
		snap.Accounts = append(snap.Accounts, saved)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// DeleteAccount removes the account. Deleting the actor's own account is
// refused and leaves the collection unchanged. hasEmployee reports, without
// blocking the delete, that an employee record still references the account.
func (s *AccountService) DeleteAccount(ctx context.Context, accountID, actorAccountID string) (bool, error) {
	if accountID == actorAccountID {
		return false, fmt.Errorf("cannot delete own account: %w", apperrors.ErrForbidden)
	}

	var hasEmployee bool
	err := s.store.Update(ctx, func(snap *domain.Snapshot) error {
		if snap.FindAccountByID(accountID) == nil {
			return fmt.Errorf("account %q: %w", accountID, apperrors.ErrNotFound)
		}
		hasEmployee = snap.HasEmployeeForAccount(accountID)

		kept := snap.Accounts[:0]
		for _, a := range snap.Accounts {
			if a.ID != accountID {
				kept = append(kept, a)
			}
		}
		snap.Accounts = kept
		return nil
	})
	if err != nil {
		return false, err
	}
	return hasEmployee, nil
}

// ResetPassword sets a new password for the account. The minimum length check
// lives here so every caller gets it.
func (s *AccountService) ResetPassword(ctx context.Context, accountID, newPassword string) error {
	if len(newPassword) < 6 {
		return fmt.Errorf("password must be at least 6 characters: %w", apperrors.ErrValidation)
	}

	return s.store.Update(ctx, func(snap *domain.Snapshot) error {
		account := snap.FindAccountByID(accountID)
		if account == nil {
			return fmt.Errorf("account %q: %w", accountID, apperrors.ErrNotFound)
		}
		account.Password = newPassword
		return nil
	})
}
