package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"tulynx-storefront/internal/cart"
	"tulynx-storefront/internal/catalog"
	"tulynx-storefront/internal/checkout"
	"tulynx-storefront/internal/repository/message"
	authsvc "tulynx-storefront/internal/service/auth"
	ordersvc "tulynx-storefront/internal/service/order"
)

// Deps carries everything the routes need.
type Deps struct {
	Catalog  *catalog.Catalog
	Carts    *cart.Store
	Checkout *checkout.Service
	Auth     *authsvc.Service
	Orders   *ordersvc.Service
	Messages message.Repository
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

// New builds a Server with the full API surface.
func New(addr string, logger *log.Logger, db *pgxpool.Pool, mongoDB *mongo.Database, deps Deps) *Server {
	router := buildRouter(logger, db, mongoDB, deps)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(db *pgxpool.Pool, mongoDB *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if db != nil {
			if err := db.Ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not reachable"})
				return
			}
		}
		if mongoDB != nil {
			if err := mongoDB.Client().Ping(ctx, readpref.Primary()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "document store not reachable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
