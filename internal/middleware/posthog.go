package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/debt_tracker_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health":  true,
	"/ready":   true,
	"/metrics": true,
}

// namedEvents gives business names to the routes product analytics cares about.
var namedEvents = map[string]string{
	"POST /api/v1/debts":          "debt_recorded",
	"POST /api/v1/payments":       "payment_recorded",
	"POST /api/v1/clients":        "client_created",
	"POST /api/v1/reports/render": "report_previewed",
	"POST /api/v1/reports/pdf":    "report_downloaded",
	"POST /api/v1/users":          "user_created",
}

// PosthogEventName maps a method and matched route to an analytics event name,
// e.g. GET /api/v1/clients/:id becomes "get_api_v1_clients_id".
func PosthogEventName(method, route string) string {
	if route == "" {
		return ""
	}
	if name, ok := namedEvents[method+" "+route]; ok {
		return name
	}
	name := strings.Trim(route, "/")
	name = strings.ReplaceAll(name, ":", "")
	name = strings.ReplaceAll(name, "/", "_")
	return strings.ToLower(method) + "_" + name
}

// PosthogMiddleware tracks successful authenticated API calls with PostHog.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		eventName := PosthogEventName(c.Request.Method, c.FullPath())
		if eventName == "" {
			return
		}

		roles := GetRolesFromContext(c)
		roleNames := make([]string, len(roles))
		for i, r := range roles {
			roleNames[i] = string(r)
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"route":       c.FullPath(),
			"status_code": c.Writer.Status(),
			"roles":       roleNames,
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}
