package middleware

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/debt_tracker_app/internal/apperrors"
	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	"github.com/SscSPs/debt_tracker_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware creates a Gin middleware handler that validates JWT tokens.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			abortWith(c, apperrors.NewUnauthorizedError("Authorization header required"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			abortWith(c, apperrors.NewUnauthorizedError("Authorization header format must be Bearer {token}"))
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			abortWith(c, apperrors.NewUnauthorizedError(msg))
			return
		}

		userID := claims.Subject
		if userID == "" {
			logger.Error("User ID (subject) missing from valid token")
			abortWith(c, apperrors.NewUnauthorizedError("Invalid token claims"))
			return
		}

		roles := make([]domain.Role, 0, len(claims.Roles))
		for _, r := range claims.Roles {
			if role := domain.Role(r); role.IsValid() {
				roles = append(roles, role)
			}
		}

		ctx := WithIdentity(c.Request.Context(), userID, roles)
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", userID)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles rejects requests whose token carries none of the given roles.
func RequireRoles(allowed ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !domain.HasAnyRole(GetRolesFromContext(c), allowed...) {
			GetLoggerFromCtx(c.Request.Context()).Warn("Role check failed", slog.Any("required_any", allowed))
			abortWith(c, apperrors.NewForbiddenError("Insufficient permissions"))
			return
		}
		c.Next()
	}
}

func abortWith(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(appErr.Code, appErr)
}
