package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/crypto_wallet_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains routes that are polled by the dashboard and would only add noise.
var pathsToSkip = map[string]bool{
	"/health":                     true,
	"/api/v1/prices/market":       true,
	"/api/v1/prices/:base/:quote": true,
}

// PosthogMiddleware tracks successful API calls of authenticated users.
// Event names are derived from the route template, e.g. "api_v1_wallets_:walletID_close".
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() || pathsToSkip[c.FullPath()] {
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

		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		for _, param := range c.Params {
			props[param.Key] = param.Value
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}

// PosthogEvent sends a named business event for the authenticated user.
func PosthogEvent(c *gin.Context, posthogClient *utils.PosthogClientWrapper, eventName string, properties map[string]any) {
	if !posthogClient.IsInitialized() {
		return
	}

	userID, exists := GetUserIDFromContext(c)
	if !exists {
		return
	}

	if properties == nil {
		properties = make(map[string]any)
	}
	properties["path"] = c.Request.URL.Path

	posthogClient.Enqueue(userID, eventName, properties)
}
