package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tulynx-storefront/internal/invoice"
	ordersvc "tulynx-storefront/internal/service/order"
)

func listOrdersHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := ordersvc.ListQuery{
			Status:    c.Query("status"),
			Search:    c.Query("search"),
			SortBy:    c.Query("sortBy"),
			SortOrder: c.Query("sortOrder"),
		}
		orders, err := svc.List(c.Request.Context(), authPhone(c), q)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func getOrderHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := svc.Get(c.Request.Context(), authPhone(c), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

func cancelOrderHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := svc.Cancel(c.Request.Context(), authPhone(c), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

func orderInvoiceHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := svc.Get(c.Request.Context(), authPhone(c), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		pdf, err := invoice.Render(*o)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", o.OrderID))
		c.Data(http.StatusOK, "application/pdf", pdf)
	}
}
