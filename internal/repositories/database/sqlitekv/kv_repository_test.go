package sqlitekv_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilad25/intranet-portal/internal/apperrors"
	"github.com/lilad25/intranet-portal/internal/core/domain"
	"github.com/lilad25/intranet-portal/internal/repositories/database/sqlitekv"
)

func newTestRepo(t *testing.T) (*sqlitekv.Repository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portal_test.db")
	repo, err := sqlitekv.New(path)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo, path
}

func sampleSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Accounts: []domain.Account{
			{
				ID:        "acc_1",
				FirstName: "Admin",
				LastName:  "User",
				Email:     "admin@example.com",
				Password:  "Password123!",
				Role:      domain.RoleAdmin,
				Verified:  true,
			},
		},
		Departments: []domain.Department{
			{ID: "dept_1", Name: "Engineering", Description: "Software Development"},
		},
		Employees: []domain.Employee{},
		Requests:  []domain.Request{},
	}
}

func TestLoadSnapshot_Empty(t *testing.T) {
	repo, _ := newTestRepo(t)

	snap, err := repo.LoadSnapshot(context.Background())
	assert.Nil(t, snap)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSnapshotRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	snap := sampleSnapshot()

	require.NoError(t, repo.SaveSnapshot(ctx, snap))

	loaded, err := repo.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap, loaded)
}

func TestSaveSnapshot_LastWriteWins(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	first := sampleSnapshot()
	require.NoError(t, repo.SaveSnapshot(ctx, first))

	second := sampleSnapshot()
	second.Departments = append(second.Departments,
		domain.Department{ID: "dept_2", Name: "HR", Description: "Human Resources"})
	require.NoError(t, repo.SaveSnapshot(ctx, second))

	loaded, err := repo.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, loaded)
	assert.Len(t, loaded.Departments, 2)
}

func TestLoadSnapshot_CorruptBlob(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	// The snapshot and the markers share the kv table, so a marker write to
	// the snapshot key plants an undecodable blob.
	require.NoError(t, repo.SetMarker(ctx, sqlitekv.SnapshotKey, "{not json"))

	snap, err := repo.LoadSnapshot(ctx)
	assert.Nil(t, snap)
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSnapshot_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "portal_test.db")

	repo, err := sqlitekv.New(path)
	require.NoError(t, err)
	snap := sampleSnapshot()
	require.NoError(t, repo.SaveSnapshot(ctx, snap))
	require.NoError(t, repo.Close())

	reopened, err := sqlitekv.New(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap, loaded)
}

func TestMarkers(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.GetMarker(ctx, "auth_token")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, repo.SetMarker(ctx, "auth_token", "admin@example.com"))
	value, err := repo.GetMarker(ctx, "auth_token")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", value)

	// Replacing an existing marker keeps a single row per key.
	require.NoError(t, repo.SetMarker(ctx, "auth_token", "other@example.com"))
	value, err = repo.GetMarker(ctx, "auth_token")
	require.NoError(t, err)
	assert.Equal(t, "other@example.com", value)

	require.NoError(t, repo.ClearMarker(ctx, "auth_token"))
	_, err = repo.GetMarker(ctx, "auth_token")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestClearMarker_Absent(t *testing.T) {
	repo, _ := newTestRepo(t)

	assert.NoError(t, repo.ClearMarker(context.Background(), "unverified_email"))
}

func TestMarkers_IndependentOfSnapshot(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveSnapshot(ctx, sampleSnapshot()))
	require.NoError(t, repo.SetMarker(ctx, "unverified_email", "new@example.com"))
	require.NoError(t, repo.ClearMarker(ctx, "unverified_email"))

	loaded, err := repo.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded.Accounts, 1)
}
