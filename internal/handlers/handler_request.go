package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lilad25/intranet-portal/internal/apperrors"
	"github.com/lilad25/intranet-portal/internal/core/domain"
	portssvc "github.com/lilad25/intranet-portal/internal/core/ports/services"
	"github.com/lilad25/intranet-portal/internal/dto"
	"github.com/lilad25/intranet-portal/internal/middleware"
)

// requestHandler handles the self-service request flow. It needs the auth
// facade to resolve the caller's account e-mail, which is the join key on
// requests.
type requestHandler struct {
	requestService portssvc.RequestSvcFacade
	authService    portssvc.AuthSvcFacade
}

func newRequestHandler(rs portssvc.RequestSvcFacade, as portssvc.AuthSvcFacade) *requestHandler {
	return &requestHandler{requestService: rs, authService: as}
}

// registerRequestRoutes registers the self-service request routes.
func registerRequestRoutes(rg *gin.RouterGroup, requestService portssvc.RequestSvcFacade, authService portssvc.AuthSvcFacade) {
	h := newRequestHandler(requestService, authService)

	requests := rg.Group("/requests")
	{
		requests.GET("", h.listMyRequests)
		requests.POST("", h.submitRequest)
	}
}

// currentAccount resolves the authenticated caller, writing the error
// response itself on failure.
func (h *requestHandler) currentAccount(c *gin.Context) *domain.Account {
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return nil
	}
	account, err := h.authService.AccountByID(c.Request.Context(), accountID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return nil
	}
	return account
}

// listMyRequests godoc
// @Summary List the caller's requests
// @Description Returns only the requests submitted under the caller's e-mail.
// @Tags requests
// @Produce json
// @Success 200 {object} dto.ListRequestsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /requests [get]
func (h *requestHandler) listMyRequests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	account := h.currentAccount(c)
	if account == nil {
		return
	}

	requests, err := h.requestService.ListMyRequests(c.Request.Context(), account.Email)
	if err != nil {
		logger.Error("Failed to list requests", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list requests"})
		return
	}

	rows := make([]dto.RequestResponse, len(requests))
	for i := range requests {
		rows[i] = dto.ToRequestResponse(&requests[i])
	}
	c.JSON(http.StatusOK, dto.ListRequestsResponse{Requests: rows})
}

// submitRequest godoc
// @Summary Submit a request
// @Description Item rows with a blank name or non-positive quantity are dropped; an empty result is refused. The request is appended as Pending, dated today, attributed to the caller's e-mail.
// @Tags requests
// @Accept json
// @Produce json
// @Param request body dto.CreateRequestRequest true "Request form"
// @Success 201 {object} dto.CreateRequestResponse
// @Failure 400 {object} dto.ErrorResponse "No usable items"
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /requests [post]
func (h *requestHandler) submitRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	account := h.currentAccount(c)
	if account == nil {
		return
	}

	var req dto.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	request, err := h.requestService.SubmitRequest(c.Request.Context(), account.Email, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Please add at least one item"})
			return
		}
		logger.Error("Failed to submit request", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to submit request"})
		return
	}

	logger.Info("Request submitted", slog.String("request_id", request.ID))
	c.JSON(http.StatusCreated, dto.CreateRequestResponse{
		Request: dto.ToRequestResponse(request),
		Notice:  dto.Notice("Request submitted successfully", dto.SeveritySuccess),
	})
}
