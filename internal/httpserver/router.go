package httpserver

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, mongoDB *mongo.Database, deps Deps) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", "X-Cart-ID"},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db, mongoDB))

	api := router.Group("/api")

	api.GET("/perfumes", listPerfumesHandler(deps.Catalog))
	api.GET("/perfumes/bestsellers", bestSellersHandler(deps.Catalog))
	api.GET("/perfumes/:id", getPerfumeHandler(deps.Catalog))

	api.POST("/newsletter", newsletterHandler(deps.Messages))
	api.POST("/contact", contactHandler(deps.Messages))

	api.POST("/auth/send-otp", sendOTPHandler(deps.Auth))
	api.POST("/auth/verify-otp", verifyOTPHandler(deps.Auth))
	api.POST("/auth/logout", logoutHandler(deps.Auth))

	cartGroup := api.Group("/cart", cartIDMiddleware(deps.Carts))
	cartGroup.GET("", getCartHandler(deps.Carts))
	cartGroup.POST("/items", addCartItemHandler(deps.Carts, deps.Catalog))
	cartGroup.PUT("/items/:productId", updateCartItemHandler(deps.Carts))
	cartGroup.DELETE("/items/:productId", removeCartItemHandler(deps.Carts))
	cartGroup.DELETE("", clearCartHandler(deps.Carts))
	cartGroup.POST("/toggle", toggleCartHandler(deps.Carts))

	api.POST("/checkout", startCheckoutHandler(deps.Checkout))
	api.GET("/checkout/:id", getCheckoutHandler(deps.Checkout))
	api.POST("/checkout/:id/customer", checkoutCustomerHandler(deps.Checkout))
	api.POST("/checkout/:id/shipping", checkoutShippingHandler(deps.Checkout))
	api.POST("/checkout/:id/payment", checkoutPaymentHandler(deps.Checkout))
	api.POST("/checkout/:id/back", checkoutBackHandler(deps.Checkout))
	api.POST("/checkout/:id/submit", checkoutSubmitHandler(deps.Checkout))

	orders := api.Group("/orders", authMiddleware(deps.Auth))
	orders.GET("", listOrdersHandler(deps.Orders))
	orders.GET("/:id", getOrderHandler(deps.Orders))
	orders.POST("/:id/cancel", cancelOrderHandler(deps.Orders))
	orders.GET("/:id/invoice", orderInvoiceHandler(deps.Orders))

	return router
}
