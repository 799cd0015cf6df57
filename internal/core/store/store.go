package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/lilad25/intranet-portal/internal/core/domain"
	portsrepo "github.com/lilad25/intranet-portal/internal/core/ports/repositories"
)

// Marker keys for the persisted scalars living next to the snapshot blob.
const (
	sessionMarkerKey      = "auth_token"
	pendingEmailMarkerKey = "unverified_email"
)

// Seed data constants. The admin credentials are well known by design; this is
// a demo portal.
const (
	SeedAdminEmail    = "admin@example.com"
	SeedAdminPassword = "Password123!"
)

// Store holds the root container in memory and persists it wholesale through
// the snapshot repository on every mutation. The portal logic itself is
// single-actor, but HTTP handlers run concurrently, so access to the snapshot
// goes through an RWMutex. Persistence stays last-write-wins with no merge.
type Store struct {
	mu      sync.RWMutex
	snap    *domain.Snapshot
	repo    portsrepo.SnapshotRepository
	markers portsrepo.MarkerRepository
	logger  *slog.Logger
}

// New creates a Store over the given repositories. Call Load before use.
func New(repo portsrepo.SnapshotRepository, markers portsrepo.MarkerRepository, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		repo:    repo,
		markers: markers,
		logger:  logger,
	}
}

// Load reads the persisted snapshot into memory. When nothing is persisted yet
// or the stored blob cannot be decoded, the store reseeds defaults and
// persists them, matching first-run bootstrap behavior.
func (s *Store) Load(ctx context.Context) error {
	snap, err := s.repo.LoadSnapshot(ctx)
	if err != nil {
		s.logger.Warn("No usable persisted state, seeding defaults", slog.String("reason", err.Error()))
		return s.Seed(ctx)
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
	return nil
}

// Seed resets the root container to the fixed defaults (one verified admin
// account and two departments) and persists it.
func (s *Store) Seed(ctx context.Context) error {
	snap := seedSnapshot()
	if err := s.repo.SaveSnapshot(ctx, snap); err != nil {
		return fmt.Errorf("failed to persist seed data: %w", err)
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
	return nil
}

// Update runs fn against the snapshot under the write lock and persists the
// whole container when fn succeeds. When fn returns an error nothing is
// persisted and prior state is untouched: every mutation either fully applies
// or not at all.
func (s *Store) Update(ctx context.Context, fn func(snap *domain.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.snap); err != nil {
		return err
	}
	if err := s.repo.SaveSnapshot(ctx, s.snap); err != nil {
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}
	return nil
}

// View runs fn against the snapshot under the read lock. fn must not mutate
// or retain the snapshot.
func (s *Store) View(fn func(snap *domain.Snapshot) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.snap)
}

// SessionEmail returns the persisted logged-in marker, apperrors.ErrNotFound
// when no session is recorded.
func (s *Store) SessionEmail(ctx context.Context) (string, error) {
	return s.markers.GetMarker(ctx, sessionMarkerKey)
}

// SetSessionEmail records the logged-in account's e-mail.
func (s *Store) SetSessionEmail(ctx context.Context, email string) error {
	return s.markers.SetMarker(ctx, sessionMarkerKey, email)
}

// ClearSessionEmail removes the logged-in marker.
func (s *Store) ClearSessionEmail(ctx context.Context) error {
	return s.markers.ClearMarker(ctx, sessionMarkerKey)
}

// PendingEmail returns the most recently registered, not yet verified e-mail.
func (s *Store) PendingEmail(ctx context.Context) (string, error) {
	return s.markers.GetMarker(ctx, pendingEmailMarkerKey)
}

// SetPendingEmail records an e-mail as awaiting verification.
func (s *Store) SetPendingEmail(ctx context.Context, email string) error {
	return s.markers.SetMarker(ctx, pendingEmailMarkerKey, email)
}

// ClearPendingEmail removes the pending verification marker.
func (s *Store) ClearPendingEmail(ctx context.Context) error {
	return s.markers.ClearMarker(ctx, pendingEmailMarkerKey)
}

func seedSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Accounts: []domain.Account{
			{
				ID:        "acc_1",
				FirstName: "Admin",
				LastName:  "User",
				Email:     SeedAdminEmail,
				Password:  SeedAdminPassword,
				Role:      domain.RoleAdmin,
				Verified:  true,
			},
		},
		Departments: []domain.Department{
			{ID: "dept_1", Name: "Engineering", Description: "Software Development"},
			{ID: "dept_2", Name: "HR", Description: "Human Resources"},
		},
		Employees: []domain.Employee{},
		Requests:  []domain.Request{},
	}
}
