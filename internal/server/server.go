// Package server wires the HTTP surface: routing, request translation, and
// envelope-shaped responses over the storage and auth layers.
package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Wichtowski/whobought/internal/auth"
	"github.com/Wichtowski/whobought/internal/middleware"
	"github.com/Wichtowski/whobought/internal/responses"
	"github.com/Wichtowski/whobought/internal/storage"
)

const apiVersion = "1.0.0"

// Server holds the handler dependencies. Everything is injected; nothing is
// global.
type Server struct {
	store         storage.Store
	authenticator *auth.PasswordAuthenticator
	tokens        *auth.TokenManager
	logger        *slog.Logger
}

// New creates a server over the given store and auth components.
func New(store storage.Store, authenticator *auth.PasswordAuthenticator, tokens *auth.TokenManager, logger *slog.Logger) *Server {
	return &Server{
		store:         store,
		authenticator: authenticator,
		tokens:        tokens,
		logger:        logger,
	}
}

// Handler builds the full route table.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Metrics(), middleware.CORS())

	r.GET("/", s.root)
	r.GET("/health", s.health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", s.register)
	authGroup.POST("/login", s.login)
	authGroup.POST("/token", s.tokenLogin)
	authGroup.GET("/me", middleware.RequireAuth(s.tokens), s.me)

	// User listing and creation are open, matching the public registration
	// surface; everything else requires a bearer token.
	users := api.Group("/users")
	users.GET("", s.listUsers)
	users.POST("", s.createUser)
	users.GET("/:id", s.getUser)

	protected := api.Group("", middleware.RequireAuth(s.tokens))

	items := protected.Group("/items")
	items.GET("", s.listItems)
	items.POST("", s.createItem)
	items.GET("/:id", s.getItem)
	items.PUT("/:id", s.updateItem)
	items.DELETE("/:id", s.deleteItem)

	groups := protected.Group("/groups")
	groups.GET("", s.listGroups)
	groups.POST("", s.createGroup)
	groups.GET("/:id", s.getGroup)
	groups.PUT("/:id", s.updateGroup)
	groups.DELETE("/:id", s.deleteGroup)
	groups.GET("/:id/balances", s.groupBalances)

	purchases := protected.Group("/purchases")
	purchases.GET("", s.listPurchases)
	purchases.POST("", s.createPurchase)
	purchases.GET("/:id", s.getPurchase)
	purchases.PUT("/:id", s.updatePurchase)
	purchases.DELETE("/:id", s.deletePurchase)

	payments := protected.Group("/payments")
	payments.GET("", s.listPayments)
	payments.POST("", s.createPayment)
	payments.GET("/:id", s.getPayment)
	payments.PUT("/:id", s.updatePayment)
	payments.DELETE("/:id", s.deletePayment)

	return r
}

func (s *Server) root(c *gin.Context) {
	responses.OK(c, gin.H{
		"name":    "WhoBought API",
		"version": apiVersion,
	}, "Welcome to WhoBought API")
}

// health reports whether the backing store is reachable. A failing ping
// degrades the report but the endpoint itself stays 200: the process is up.
func (s *Server) health(c *gin.Context) {
	status := "healthy"
	dbStatus := "connected"
	message := "Service is healthy"

	if err := s.store.Ping(c.Request.Context()); err != nil {
		s.logger.Warn("Health check: store unreachable", "error", err)
		status = "degraded"
		dbStatus = "disconnected"
		message = "Database connection is unavailable"
	}

	responses.OK(c, gin.H{
		"status":    status,
		"version":   apiVersion,
		"db_status": dbStatus,
	}, message)
}
