package middleware

import (
	"net/http"
	"strings"
	"time"

	"marketplace-backend/internal/core/domain"
	"marketplace-backend/internal/core/ports"
	"marketplace-backend/pkg/apperror"
	"marketplace-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// Context keys
	CtxUserID  = "user_id"
	CtxEmail   = "email"
	CtxProfile = "profile"
)

// CORS allows the browser client to call the API from any origin and
// short-circuits preflight requests.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Stripe-Signature")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

// BearerAuth verifies the Authorization header and stores the caller's
// identity in the request context.
func BearerAuth(verifier ports.IdentityVerifier, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(c, apperror.ErrUnauthenticated())
			c.Abort()
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), authHeader[7:])
		if err != nil {
			log.Debug().Err(err).Msg("bearer token rejected")
			response.Error(c, apperror.ErrUnauthenticated())
			c.Abort()
			return
		}

		c.Set(CtxUserID, identity.UserID)
		c.Set(CtxEmail, identity.Email)
		c.Next()
	}
}

// LoadProfile resolves the caller's marketplace profile, creating it with the
// default role on first authenticated request. Requires BearerAuth upstream.
func LoadProfile(profileRepo ports.ProfileRepository, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := MustUserID(c)
		email := c.GetString(CtxEmail)

		profile, err := profileRepo.EnsureExists(c.Request.Context(), userID, email)
		if err != nil {
			log.Error().Err(err).Str("user_id", userID.String()).Msg("profile load failed")
			response.Error(c, apperror.InternalError(err))
			c.Abort()
			return
		}

		c.Set(CtxProfile, profile)
		c.Next()
	}
}

// RejectBanned blocks callers whose profile role is banned. Requires
// LoadProfile upstream.
func RejectBanned() gin.HandlerFunc {
	return func(c *gin.Context) {
		if MustProfile(c).IsBanned() {
			response.Error(c, apperror.ErrBanned())
			c.Abort()
			return
		}
		c.Next()
	}
}

// MustUserID returns the caller id stored by BearerAuth. Only valid on routes
// behind that middleware.
func MustUserID(c *gin.Context) uuid.UUID {
	return c.MustGet(CtxUserID).(uuid.UUID)
}

// MustProfile returns the profile stored by LoadProfile. Only valid on routes
// behind that middleware.
func MustProfile(c *gin.Context) *domain.Profile {
	return c.MustGet(CtxProfile).(*domain.Profile)
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// MaxBodySize limits the request body to n bytes.
func MaxBodySize(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}
