package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tulynx-storefront/internal/cart"
	"tulynx-storefront/internal/catalog"
)

const cartIDHeader = "X-Cart-ID"

const cartIDKey = "cartID"

// cartIDMiddleware resolves the caller's cart. A request without the header
// gets a fresh cart whose id is echoed back in the response header; a
// request naming an unknown cart answers 404 so the client can drop the
// stale id.
func cartIDMiddleware(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(cartIDHeader)
		if id == "" {
			snap := carts.Create()
			id = snap.ID
		} else if _, err := carts.Snapshot(id); err != nil {
			respondError(c, err)
			c.Abort()
			return
		}
		c.Header(cartIDHeader, id)
		c.Set(cartIDKey, id)
		c.Next()
	}
}

func cartID(c *gin.Context) string {
	return c.GetString(cartIDKey)
}

func getCartHandler(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := carts.Snapshot(cartID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

func addCartItemHandler(carts *cart.Store, cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "productId is required")
			return
		}
		p, err := cat.Get(req.ProductID)
		if err != nil {
			respondError(c, err)
			return
		}
		snap, err := carts.Apply(cartID(c), func(ct *cart.Cart) {
			ct.AddItem(p.ID, cart.DisplaySnapshot{
				Name:           p.Name,
				UnitPriceCents: p.PriceCents,
				Image:          p.Image,
			})
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func updateCartItemHandler(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "quantity is required")
			return
		}
		productID := c.Param("productId")
		snap, err := carts.Apply(cartID(c), func(ct *cart.Cart) {
			ct.UpdateQuantity(productID, req.Quantity)
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

func removeCartItemHandler(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("productId")
		snap, err := carts.Apply(cartID(c), func(ct *cart.Cart) {
			ct.RemoveItem(productID)
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

func clearCartHandler(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := carts.Apply(cartID(c), func(ct *cart.Cart) {
			ct.Clear()
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

func toggleCartHandler(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := carts.Apply(cartID(c), func(ct *cart.Cart) {
			ct.ToggleVisibility()
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}
