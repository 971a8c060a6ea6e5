package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/emre/advisehub/internal/pkg/auth"
	"github.com/emre/advisehub/internal/pkg/logger"
)

// AdvisorNameKey is the context key holding the authenticated advisor name
const AdvisorNameKey = "advisorName"

// AdvisorMiddleware attaches advisor identity to requests
type AdvisorMiddleware struct {
	jwtService *auth.JWTService
}

// NewAdvisorMiddleware creates a new advisor identity middleware
func NewAdvisorMiddleware(jwtService *auth.JWTService) *AdvisorMiddleware {
	return &AdvisorMiddleware{jwtService: jwtService}
}

// Identify extracts the advisor name from a bearer token when one is
// present. It never aborts the request: endpoints are not gated, the claim
// only attributes bypass grants to an advisor.
func (m *AdvisorMiddleware) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.jwtService == nil {
			c.Next()
			return
		}

		token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.Next()
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			logger.Debug().Err(err).Msg("Ignoring invalid advisor token")
			c.Next()
			return
		}

		c.Set(AdvisorNameKey, claims.AdvisorName)
		c.Next()
	}
}

// AdvisorName returns the advisor name attached to the request, if any
func AdvisorName(c *gin.Context) string {
	if name, ok := c.Get(AdvisorNameKey); ok {
		if s, ok := name.(string); ok {
			return s
		}
	}
	return ""
}
