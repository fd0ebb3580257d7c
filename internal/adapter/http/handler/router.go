package handler

import (
	"net/http"
	"time"

	"stellar-wallet-core/internal/adapter/http/dto"
	"stellar-wallet-core/internal/adapter/http/middleware"
	redisStore "stellar-wallet-core/internal/adapter/storage/redis"
	"stellar-wallet-core/internal/core/ports"
	"stellar-wallet-core/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Sessions  ports.SessionService
	Keys      ports.KeyStore
	Network   ports.NetworkService
	Fees      ports.FeeService
	Builder   ports.TransactionBuilder
	Paths     ports.PathFinder
	Signer    ports.SigningService
	Submitter ports.Submitter
	Security  ports.SecurityService
	Flow      ports.WalletFlow
	Tokens    ports.TokenService

	NetworkPassphrase string
	Defaults          dto.Defaults
	RequestTimeout    time.Duration // 0 = no per-request deadline

	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	Metrics        *metrics.Metrics   // nil = metrics disabled
	MetricsHandler http.Handler
	MetricsPath    string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBodyBytes))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware())
	}
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.MetricsHandler != nil {
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(deps.MetricsHandler))
	}

	rules := middleware.DefaultRateLimitRules()
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
	timeout := middleware.Timeout(deps.RequestTimeout)

	v1 := r.Group("/api/v1")

	// --- Public routes ---
	sessionHandler := NewSessionHandler(deps.Sessions)
	v1.POST("/session", rl("session"), timeout, sessionHandler.Open)

	// --- Session-authenticated routes ---
	authed := v1.Group("", middleware.JWTAuth(deps.Tokens, deps.Logger))

	accountHandler := NewAccountHandler(deps.Network, deps.Fees)
	authed.GET("/accounts/:address", rl("read"), timeout, accountHandler.GetAccount)
	authed.GET("/fees", rl("read"), timeout, accountHandler.GetFees)

	keyHandler := NewKeyHandler(deps.Keys)
	keys := authed.Group("/keys", rl("keys"), timeout)
	{
		keys.POST("", keyHandler.Store)
		keys.GET("/:id", keyHandler.Exists)
		keys.DELETE("/:id", keyHandler.Remove)
	}

	txHandler := NewTransactionHandler(deps.Builder, deps.Paths, deps.Signer, deps.Submitter, deps.Flow,
		deps.NetworkPassphrase, deps.Defaults)
	transactions := authed.Group("/transactions")
	{
		transactions.POST("/payment", rl("build"), timeout, txHandler.BuildPayment)
		transactions.POST("/trustline", rl("build"), timeout, txHandler.BuildTrustline)
		transactions.POST("/sign", rl("sign"), timeout, txHandler.Sign)
		// Submission runs until a definitive result or envelope expiry.
		transactions.POST("/submit", rl("submit"), txHandler.Submit)
	}
	swaps := authed.Group("/swaps", rl("build"), timeout)
	{
		swaps.POST("/quote", txHandler.Quote)
		swaps.POST("", txHandler.BuildSwap)
	}
	authed.POST("/payments/send", rl("submit"), txHandler.Send)

	securityHandler := NewSecurityHandler(deps.Security)
	security := authed.Group("/security", rl("security"), timeout)
	{
		security.POST("/asset", securityHandler.ScanAsset)
		security.POST("/assets", securityHandler.ScanAssets)
		security.POST("/site", securityHandler.ScanSite)
		security.POST("/transaction", securityHandler.ScanTransaction)
	}

	return r
}
