package services

import (
	"context"

	"github.com/lilad25/intranet-portal/internal/core/domain"
	"github.com/lilad25/intranet-portal/internal/dto"
)

// RequestSvcFacade exposes the self-service request flow. There is no review
// or approval surface; submitted requests stay Pending.
type RequestSvcFacade interface {
	// SubmitRequest filters out item rows with a blank name or non-positive
	// quantity, refuses an empty result with apperrors.ErrValidation, and
	// otherwise appends a Pending request dated today for the submitter.
	SubmitRequest(ctx context.Context, submitterEmail string, req dto.CreateRequestRequest) (*domain.Request, error)

	// ListMyRequests returns the submitter's own requests.
	ListMyRequests(ctx context.Context, submitterEmail string) ([]domain.Request, error)
}
