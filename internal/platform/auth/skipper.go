package auth

import (
	"github.com/labstack/echo/v4"
)

// publicPaths lists URL paths that bypass authentication. These are
// infrastructure endpoints (health checks) and the identity endpoints
// that must be reachable without a token.
var publicPaths = map[string]bool{
	"/health":            true,
	"/health/db":         true,
	"/api/v1/register":   true,
	"/api/v1/login":      true,
}

// AuthSkipper returns true for requests whose path should skip
// authentication. Pass this as the Skipper on JWTConfig so health
// checks, registration, and login remain accessible without a bearer
// token.
func AuthSkipper(c echo.Context) bool {
	return publicPaths[c.Path()]
}

// IsPublicPath reports whether the given path bypasses authentication.
func IsPublicPath(path string) bool {
	return publicPaths[path]
}
