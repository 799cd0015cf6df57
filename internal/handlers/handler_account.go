package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lilad25/intranet-portal/internal/apperrors"
	portssvc "github.com/lilad25/intranet-portal/internal/core/ports/services"
	"github.com/lilad25/intranet-portal/internal/dto"
	"github.com/lilad25/intranet-portal/internal/middleware"
)

// accountHandler handles HTTP requests for admin account management.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: as}
}

// registerAccountRoutes registers all account admin routes.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.POST("", h.saveAccount)
		accounts.DELETE("/:id", h.deleteAccount)
		accounts.POST("/:id/reset-password", h.resetPassword)
	}
}

// listAccounts godoc
// @Summary List accounts
// @Description Returns all accounts; the caller's own row is marked.
// @Tags accounts
// @Produce json
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actorID, _ := middleware.GetAccountIDFromContext(c)

	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list accounts"})
		return
	}

	rows := make([]dto.AccountResponse, len(accounts))
	for i := range accounts {
		rows[i] = dto.ToAccountResponse(&accounts[i], actorID)
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: rows})
}

// saveAccount godoc
// @Summary Create or edit an account
// @Description Creates when no id is given (blank password defaults); edits in place otherwise (blank password keeps the current one).
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.SaveAccountRequest true "Account form"
// @Success 200 {object} dto.SaveAccountResponse "Edited"
// @Success 201 {object} dto.SaveAccountResponse "Created"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "E-mail already exists"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) saveAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	account, err := h.accountService.SaveAccount(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Email already exists"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Account not found"})
		default:
			logger.Error("Failed to save account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to save account"})
		}
		return
	}

	actorID, _ := middleware.GetAccountIDFromContext(c)
	status := http.StatusOK
	if req.ID == "" {
		status = http.StatusCreated
	}
	c.JSON(status, dto.SaveAccountResponse{
		Account: dto.ToAccountResponse(account, actorID),
		Notice:  dto.Notice("Account saved successfully", dto.SeveritySuccess),
	})
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Refuses deleting the caller's own account. Warns, without blocking, when an employee record references the account.
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} dto.DeleteAccountResponse
// @Failure 403 {object} dto.ErrorResponse "Own account"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /accounts/{id} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	hasEmployee, err := h.accountService.DeleteAccount(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Cannot delete your own account"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Account not found"})
		default:
			logger.Error("Failed to delete account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete account"})
		}
		return
	}

	resp := dto.DeleteAccountResponse{
		Notice: dto.Notice("Account deleted successfully", dto.SeveritySuccess),
	}
	if hasEmployee {
		resp.Warning = dto.Notice("This account has an associated employee record which will need to be managed separately.", dto.SeverityWarning)
	}
	c.JSON(http.StatusOK, resp)
}

// resetPassword godoc
// @Summary Reset an account's password
// @Description Sets a new password for the account; minimum 6 characters.
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param password body dto.ResetPasswordRequest true "New password"
// @Success 200 {object} dto.DeleteAccountResponse
// @Failure 400 {object} dto.ErrorResponse "Too short"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /accounts/{id}/reset-password [post]
func (h *accountHandler) resetPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Password must be at least 6 characters"})
		return
	}

	err := h.accountService.ResetPassword(c.Request.Context(), c.Param("id"), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Password must be at least 6 characters"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Account not found"})
		default:
			logger.Error("Failed to reset password", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to reset password"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.DeleteAccountResponse{
		Notice: dto.Notice("Password reset successfully", dto.SeveritySuccess),
	})
}
