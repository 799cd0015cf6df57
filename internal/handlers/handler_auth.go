package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/lilad25/intranet-portal/internal/apperrors"
	portssvc "github.com/lilad25/intranet-portal/internal/core/ports/services"
	"github.com/lilad25/intranet-portal/internal/core/routing"
	"github.com/lilad25/intranet-portal/internal/dto"
	"github.com/lilad25/intranet-portal/internal/middleware"
	"github.com/lilad25/intranet-portal/internal/platform/config"
	"github.com/lilad25/intranet-portal/internal/utils"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	authService portssvc.AuthSvcFacade
	jwtSecret   string
	jwtDuration time.Duration
	jwtIssuer   string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: as,
		jwtSecret:   cfg.JWTSecret,
		jwtDuration: cfg.JWTExpiryDuration,
		jwtIssuer:   cfg.JWTIssuer,
	}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, authService portssvc.AuthSvcFacade) {
	h := NewAuthHandler(authService, cfg)

	// Rate limit login: 5 requests per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/verify-email", h.VerifyEmail)
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.Login)
	}
}

// registerSessionRoutes sets up the authenticated session routes.
func registerSessionRoutes(rg *gin.RouterGroup, cfg *config.Config, authService portssvc.AuthSvcFacade) {
	h := NewAuthHandler(authService, cfg)

	auth := rg.Group("/auth")
	{
		auth.GET("/session", h.Session)
		auth.POST("/logout", h.Logout)
	}
	rg.GET("/profile", h.Profile)
}

// Register godoc
// @Summary Register a new account
// @Description Creates an unverified account and records its e-mail as pending verification.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration form"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "E-mail already registered"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	account, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Email already registered"})
			return
		}
		logger.Error("Failed to register account", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to register"})
		return
	}

	logger.Info("Account registered", slog.String("new_account_id", account.ID))
	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Account:  dto.ToAccountResponse(account, ""),
		Redirect: string(routing.RouteVerifyEmail),
		Notice:   dto.Notice("Account created! Please verify your email.", dto.SeveritySuccess),
	})
}

// VerifyEmail godoc
// @Summary Simulated e-mail verification
// @Description Marks the pending-registration account as verified. No real mail is sent anywhere.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.VerifyEmailResponse
// @Failure 404 {object} dto.ErrorResponse "Nothing pending verification"
// @Router /auth/verify-email [post]
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	account, err := h.authService.VerifyPendingEmail(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "No email pending verification"})
			return
		}
		logger.Error("Failed to verify email", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to verify email"})
		return
	}

	logger.Info("Email verified", slog.String("account_id", account.ID))
	c.JSON(http.StatusOK, dto.VerifyEmailResponse{
		Redirect: string(routing.RouteLogin),
		Notice:   dto.Notice("Email verified! You can now log in.", dto.SeveritySuccess),
	})
}

// Login godoc
// @Summary Log in
// @Description Authenticates by exact e-mail+password match against a verified account and returns a bearer token. Wrong credentials and an unverified account produce the same error.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login form"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	account, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrAuth) {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid credentials or email not verified"})
			return
		}
		logger.Error("Login failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to log in"})
		return
	}

	token, err := utils.GenerateJWT(account.ID, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate token"})
		return
	}

	logger.Info("Login successful", slog.String("account_id", account.ID))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:    token,
		Account:  dto.ToAccountResponse(account, account.ID),
		Redirect: string(routing.RouteProfile),
		Notice:   dto.Notice("Login successful!", dto.SeveritySuccess),
	})
}

// Logout godoc
// @Summary Log out
// @Description Clears the persisted session marker.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.LogoutResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.authService.Logout(c.Request.Context()); err != nil {
		logger.Error("Failed to log out", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to log out"})
		return
	}

	c.JSON(http.StatusOK, dto.LogoutResponse{
		Redirect: string(routing.RouteHome),
		Notice:   dto.Notice("Logged out successfully", dto.SeverityInfo),
	})
}

// Session godoc
// @Summary Restore session
// @Description Resolves the persisted session marker back to an account; a stale marker is discarded.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Security BearerAuth
// @Router /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	account, err := h.authService.RestoreSession(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusOK, dto.SessionResponse{Authenticated: false})
			return
		}
		logger.Error("Failed to restore session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to restore session"})
		return
	}

	resp := dto.ToAccountResponse(account, account.ID)
	c.JSON(http.StatusOK, dto.SessionResponse{Authenticated: true, Account: &resp})
}

// Profile godoc
// @Summary Current account profile
// @Description Returns the authenticated account's name, e-mail and role.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	account, err := h.authService.AccountByID(c.Request.Context(), accountID)
	if err != nil {
		logger.Warn("Session account no longer exists", slog.String("account_id", accountID))
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(account))
}
