// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// unmatchedRoute labels requests that did not match any registered route.
const unmatchedRoute = "unmatched"

// RequestObserver records served HTTP requests.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, duration time.Duration)
}

// RequestMetrics returns a Gin middleware that reports every request to observer.
// Requests are labelled by route template, not by raw path.
func RequestMetrics(observer RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		observer.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
