package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lilad25/intranet-portal/internal/core/domain"
	portssvc "github.com/lilad25/intranet-portal/internal/core/ports/services"
	"github.com/lilad25/intranet-portal/internal/core/routing"
	"github.com/lilad25/intranet-portal/internal/dto"
	"github.com/lilad25/intranet-portal/internal/platform/config"
	"github.com/lilad25/intranet-portal/internal/utils"
)

// navigationHandler resolves navigation tokens through the pure routing core.
type navigationHandler struct {
	authService portssvc.AuthSvcFacade
	jwtSecret   string
}

func newNavigationHandler(as portssvc.AuthSvcFacade, cfg *config.Config) *navigationHandler {
	return &navigationHandler{authService: as, jwtSecret: cfg.JWTSecret}
}

// registerNavigationRoutes sets up the public navigation resolver. The bearer
// token is optional here: an absent or invalid one simply means no session.
func registerNavigationRoutes(r *gin.Engine, cfg *config.Config, authService portssvc.AuthSvcFacade) {
	h := newNavigationHandler(authService, cfg)
	r.GET("/api/v1/navigation/:token", h.resolve)
}

// resolve godoc
// @Summary Resolve a navigation token
// @Description Maps a page token to the page to show, applying the authentication and admin gates. Unknown tokens fall back to the home page.
// @Tags navigation
// @Produce json
// @Param token path string true "Navigation token, e.g. profile or accounts; use home for the root page"
// @Success 200 {object} dto.NavigationResponse
// @Router /navigation/{token} [get]
func (h *navigationHandler) resolve(c *gin.Context) {
	session := h.sessionFromBearer(c)
	decision := routing.Resolve(routing.Parse(c.Param("token")), session)

	if decision.Redirected {
		resp := dto.NavigationResponse{Redirect: string(decision.Page)}
		if decision.Notice != "" {
			resp.Notice = dto.Notice(decision.Notice, dto.SeverityDanger)
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	c.JSON(http.StatusOK, dto.NavigationResponse{Page: string(decision.Page)})
}

// sessionFromBearer resolves an optional Authorization header to the session
// account; any failure along the way counts as unauthenticated.
func (h *navigationHandler) sessionFromBearer(c *gin.Context) *domain.Account {
	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return nil
	}

	claims, err := utils.ParseAndValidateJWT(parts[1], h.jwtSecret)
	if err != nil {
		return nil
	}

	account, err := h.authService.AccountByID(c.Request.Context(), claims.Subject)
	if err != nil {
		return nil
	}
	return account
}
