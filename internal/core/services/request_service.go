package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lilad25/intranet-portal/internal/apperrors"
	"github.com/lilad25/intranet-portal/internal/core/domain"
	"github.com/lilad25/intranet-portal/internal/core/store"
	"github.com/lilad25/intranet-portal/internal/dto"
)

// RequestService implements the self-service request flow against the store.
type RequestService struct {
	store *store.Store
	now   func() time.Time
}

// NewRequestService creates a RequestService.
func NewRequestService(s *store.Store) *RequestService {
	return &RequestService{store: s, now: time.Now}
}

// SubmitRequest drops item rows with a blank name or non-positive quantity,
// refuses an empty result, and appends a Pending request dated today for the
// submitter. Requests never leave Pending; there is no review flow.
func (s *RequestService) SubmitRequest(ctx context.Context, submitterEmail string, req dto.CreateRequestRequest) (*domain.Request, error) {
	items := make([]domain.RequestItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Name == "" || item.Quantity <= 0 {
			continue
		}
		items = append(items, domain.RequestItem{Name: item.Name, Quantity: item.Quantity})
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("request needs at least one item: %w", apperrors.ErrValidation)
	}

	request := domain.Request{
		ID:            uuid.NewString(),
		Type:          req.Type,
		Items:         items,
		Status:        domain.RequestPending,
		Date:          s.now().Format("2006-01-02"),
		EmployeeEmail: submitterEmail,
	}

	err := s.store.Update(ctx, func(snap *domain.Snapshot) error {
		snap.Requests = append(snap.Requests, request)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// ListMyRequests returns the submitter's own requests, matched by e-mail.
func (s *RequestService) ListMyRequests(ctx context.Context, submitterEmail string) ([]domain.Request, error) {
	var mine []domain.Request
	err := s.store.View(func(snap *domain.Snapshot) error {
		for _, r := range snap.Requests {
			if r.EmployeeEmail == submitterEmail {
				mine = append(mine, r)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mine, nil
}
