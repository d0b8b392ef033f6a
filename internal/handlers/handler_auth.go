package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/debt_tracker_app/internal/apperrors"
	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/debt_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/debt_tracker_app/internal/dto"
	"github.com/SscSPs/debt_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService   portssvc.UserSvcFacade
	tokenService  portssvc.TokenSvcFacade
	googleService portssvc.GoogleOAuthHandlerSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade, gs portssvc.GoogleOAuthHandlerSvcFacade) *AuthHandler {
	return &AuthHandler{
		userService:   us,
		tokenService:  ts,
		googleService: gs,
	}
}

// RegisterAuthRoutes sets up the public login routes and the authenticated /auth/me.
// limit guards the credential endpoints; it may be nil.
func RegisterAuthRoutes(public, authed *gin.RouterGroup, services *portssvc.ServiceContainer, limit gin.HandlerFunc) {
	h := NewAuthHandler(services.User, services.TokenService, services.GoogleOAuthHandler)

	guarded := []gin.HandlerFunc{}
	if limit != nil {
		guarded = append(guarded, limit)
	}

	auth := public.Group("/auth")
	{
		auth.POST("/login", append(guarded, h.Login)...)
		auth.POST("/google/exchange-code", append(guarded, h.ExchangeCodeGoogle)...)
	}
	authed.GET("/auth/me", h.Me)
}

// Login godoc
// @Summary User login
// @Description Authenticates a user by email and password and returns a JWT carrying the user's roles.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} apperrors.AppError
// @Failure 401 {object} apperrors.AppError "Invalid credentials"
// @Failure 429 {object} apperrors.AppError "RATE_LIMITED"
// @Failure 500 {object} apperrors.AppError
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	h.issueToken(c, user)
}

// ExchangeCodeGoogle godoc
// @Summary Sign in with Google
// @Description Exchanges a Google authorization code and signs in the provisioned user with the same verified email.
// @Tags auth
// @Accept json
// @Produce json
// @Param code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} apperrors.AppError
// @Failure 401 {object} apperrors.AppError "Unverified or unknown account"
// @Failure 404 {object} apperrors.AppError "Google sign-in disabled"
// @Router /auth/google/exchange-code [post]
func (h *AuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	if h.googleService == nil || !h.googleService.Enabled() {
		respondError(c, apperrors.NewNotFoundError(apperrors.CodeNotFound, "google sign-in is not enabled"))
		return
	}

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	identity, err := h.googleService.ExchangeCodeForIdentity(ctx, req.Code)
	if err != nil {
		logger.Warn("Google code exchange failed", slog.String("error", err.Error()))
		respondError(c, apperrors.NewUnauthorizedError("google authentication failed"))
		return
	}
	if !identity.EmailVerified || identity.Email == "" {
		respondError(c, apperrors.NewUnauthorizedError("google account email is not verified"))
		return
	}

	// accounts are provisioned by a superadmin; Google only proves the email
	user, err := h.userService.GetUserByEmail(ctx, identity.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Google sign-in for unknown email", slog.String("google_sub", identity.Subject))
			respondError(c, apperrors.NewUnauthorizedError("no account for this google user"))
			return
		}
		respondError(c, err)
		return
	}
	h.issueToken(c, user)
}

// Me godoc
// @Summary Current user
// @Description Returns the user the bearer token belongs to.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} apperrors.AppError
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *AuthHandler) issueToken(c *gin.Context, user *domain.User) {
	token, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, apperrors.NewInternalServerError("failed to generate token"))
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, User: dto.ToUserResponse(user)})
}
