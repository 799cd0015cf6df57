package dto

import (
	"fmt"
	"strings"

	"github.com/lilad25/intranet-portal/internal/core/domain"
)

// RequestItemInput is one form row of a request. Rows with a blank name or a
// missing quantity are dropped before validation, matching the form behavior.
type RequestItemInput struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// CreateRequestRequest is the request submission form.
type CreateRequestRequest struct {
	Type  string             `json:"type" binding:"required"`
	Items []RequestItemInput `json:"items" binding:"required"`
}

// RequestResponse is a row of the submitter's own request list. ItemsText is
// the items joined as "Name (qty)" for table display.
type RequestResponse struct {
	ID        string               `json:"id"`
	Type      string               `json:"type"`
	Items     []domain.RequestItem `json:"items"`
	ItemsText string               `json:"itemsText"`
	Status    domain.RequestStatus `json:"status"`
	Date      string               `json:"date"`
}

// ListRequestsResponse wraps the caller's request rows.
type ListRequestsResponse struct {
	Requests []RequestResponse `json:"requests"`
}

// CreateRequestResponse returns the submitted request plus a notice.
type CreateRequestResponse struct {
	Request RequestResponse `json:"request"`
	Notice  *Notification   `json:"notice,omitempty"`
}

// ToRequestResponse maps a domain request for the submitter's list.
func ToRequestResponse(r *domain.Request) RequestResponse {
	parts := make([]string, len(r.Items))
	for i, item := range r.Items {
		parts[i] = fmt.Sprintf("%s (%d)", item.Name, item.Quantity)
	}
	return RequestResponse{
		ID:        r.ID,
		Type:      r.Type,
		Items:     r.Items,
		ItemsText: strings.Join(parts, ", "),
		Status:    r.Status,
		Date:      r.Date,
	}
}
