package repositories

import (
	"context"

	"github.com/lilad25/intranet-portal/internal/core/domain"
)

// SnapshotRepository persists the whole root container as one JSON document
// under a fixed key. Saves are atomic single-row writes; the last save wins.
type SnapshotRepository interface {
	// LoadSnapshot returns the persisted snapshot, apperrors.ErrNotFound when
	// nothing has been persisted yet, or an error when the stored blob cannot
	// be decoded.
	LoadSnapshot(ctx context.Context) (*domain.Snapshot, error)
	SaveSnapshot(ctx context.Context, snap *domain.Snapshot) error
}

// MarkerRepository stores small persisted scalars next to the snapshot: the
// logged-in session marker and the pending e-mail verification marker.
type MarkerRepository interface {
	// GetMarker returns apperrors.ErrNotFound when the marker is absent.
	GetMarker(ctx context.Context, key string) (string, error)
	SetMarker(ctx context.Context, key, value string) error
	ClearMarker(ctx context.Context, key string) error
}
