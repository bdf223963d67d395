package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tulynx-storefront/internal/checkout"
	"tulynx-storefront/internal/domain"
	authsvc "tulynx-storefront/internal/service/auth"
	ordersvc "tulynx-storefront/internal/service/order"
)

// respondError maps service errors onto the API's status codes. Orders
// belonging to another customer answer 404 so order ids are not probeable.
func respondError(c *gin.Context, err error) {
	var vErr *checkout.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Msg, "field": vErr.Field})
	case errors.Is(err, checkout.ErrInvalidTransition),
		errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, authsvc.ErrInvalidPhone),
		errors.Is(err, authsvc.ErrInvalidOTP):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, ordersvc.ErrForbidden):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
