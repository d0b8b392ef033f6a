package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/debt_tracker_app/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// NewIPRateLimit creates a per client IP rate limiting middleware from a
// formatted rate such as "5-M" (five requests per minute).
func NewIPRateLimit(formattedRate string) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(formattedRate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", formattedRate, err)
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)
	return RateLimit(ipLimiter), nil
}

// RateLimit wraps limitergin.NewMiddleware with the API's error bodies and logging.
func RateLimit(limiterInstance *limiter.Limiter) gin.HandlerFunc {
	return limitergin.NewMiddleware(limiterInstance,
		limitergin.WithErrorHandler(func(c *gin.Context, err error) {
			GetLoggerFromCtx(c.Request.Context()).Error("Failed to get rate limit context",
				slog.String("ip", c.ClientIP()), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				apperrors.NewInternalServerError("Internal server error during rate limit check"))
		}),
		limitergin.WithLimitReachedHandler(func(c *gin.Context) {
			GetLoggerFromCtx(c.Request.Context()).Warn("Rate limit exceeded", slog.String("ip", c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, &apperrors.AppError{
				Code:      http.StatusTooManyRequests,
				ErrorCode: apperrors.CodeRateLimited,
				Message:   "Too many requests. Please try again later.",
			})
		}),
	)
}
