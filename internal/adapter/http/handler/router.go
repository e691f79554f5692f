package handler

import (
	"marketplace-backend/internal/adapter/http/middleware"
	redisStore "marketplace-backend/internal/adapter/storage/redis"
	"marketplace-backend/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	CheckoutSvc      ports.CheckoutService
	ConnectSvc       ports.ConnectService
	SettlementSvc    ports.SettlementService
	AdminSvc         ports.AdminService
	WebhookVerifier  ports.WebhookVerifier
	IdentityVerifier ports.IdentityVerifier
	ProfileRepo      ports.ProfileRepository
	RateLimitStore   *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers   []ports.HealthChecker
	Metrics          *middleware.HTTPMetrics // nil = metrics disabled
	MetricsRegistry  *prometheus.Registry    // nil = /metrics endpoint disabled
	SiteURL          string
	Logger           zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.CORS())
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	if deps.Metrics != nil {
		r.Use(deps.Metrics.Handler())
	}

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	if deps.MetricsRegistry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.MetricsRegistry, promhttp.HandlerOpts{})))
	}

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// Shared middleware chains
	bearerAuth := middleware.BearerAuth(deps.IdentityVerifier, deps.Logger)
	loadProfile := middleware.LoadProfile(deps.ProfileRepo, deps.Logger)
	rejectBanned := middleware.RejectBanned()

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Webhook delivery (signature-verified, no bearer token) ---
	webhookHandler := NewWebhookHandler(deps.WebhookVerifier, deps.SettlementSvc, deps.Logger)
	v1.POST("/webhooks/stripe", rl("webhook"), webhookHandler.HandleEvent)

	// --- Buyer routes ---
	checkoutHandler := NewCheckoutHandler(deps.CheckoutSvc)
	v1.POST("/checkout", bearerAuth, loadProfile, rejectBanned, rl("checkout"), checkoutHandler.InitiateCheckout)

	// --- Seller onboarding routes ---
	connectHandler := NewConnectHandler(deps.ConnectSvc, deps.SiteURL)
	connect := v1.Group("/connect", bearerAuth, loadProfile, rejectBanned)
	{
		connect.POST("/link", rl("connect"), connectHandler.CreateLink)
		// Registered on both verbs: the web client polls with GET, the
		// onboarding-return page re-checks with POST.
		connect.GET("/status", rl("connect"), connectHandler.GetStatus)
		connect.POST("/status", rl("connect"), connectHandler.GetStatus)
	}

	// --- Admin actions ---
	// RejectBanned is deliberately absent: the role gate lives in the
	// handler, and bootstrap_admin must stay reachable before any admin
	// exists.
	adminHandler := NewAdminHandler(deps.AdminSvc)
	v1.POST("/admin", bearerAuth, loadProfile, rl("admin"), adminHandler.HandleAction)

	return r
}
