package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tulynx-storefront/internal/checkout"
	"tulynx-storefront/internal/domain"
)

type startCheckoutRequest struct {
	CartID string `json:"cartId" binding:"required"`
}

// wizardResponse is the wire view of a checkout session. Card number and
// CVV never leave the server; the payment step echoes only the last 4.
type wizardResponse struct {
	ID        string                 `json:"id"`
	State     checkout.State         `json:"state"`
	Customer  domain.CustomerInfo    `json:"customer"`
	Shipping  domain.ShippingAddress `json:"shipping"`
	Payment   paymentView            `json:"payment"`
	Totals    *checkout.Totals       `json:"totals,omitempty"`
	OrderID   string                 `json:"orderId,omitempty"`
	LastError string                 `json:"lastError,omitempty"`
}

type paymentView struct {
	Method    string `json:"method,omitempty"`
	CardLast4 string `json:"cardLast4,omitempty"`
	CardName  string `json:"cardName,omitempty"`
	UPIID     string `json:"upiId,omitempty"`
	BankName  string `json:"bankName,omitempty"`
	Delivery  string `json:"delivery,omitempty"`
	PromoCode string `json:"promoCode,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

func toWizardResponse(w *checkout.Wizard, svc *checkout.Service) wizardResponse {
	resp := wizardResponse{
		ID:       w.ID,
		State:    w.State,
		Customer: w.Customer,
		Shipping: w.Shipping,
		Payment: paymentView{
			Method:    w.Payment.Method,
			CardLast4: last4(w.Payment.CardNumber),
			CardName:  w.Payment.CardName,
			UPIID:     w.Payment.UPIID,
			BankName:  w.Payment.BankName,
			Delivery:  w.Payment.Delivery,
			PromoCode: w.Payment.PromoCode,
			Notes:     w.Payment.Notes,
		},
		OrderID:   w.OrderID,
		LastError: w.LastError,
	}
	// After success the cart is empty; the order record carries the final
	// totals instead.
	if w.State != checkout.StateSucceeded {
		if totals, err := svc.Totals(w.ID); err == nil {
			resp.Totals = &totals
		}
	}
	return resp
}

func last4(cardNumber string) string {
	digits := make([]byte, 0, len(cardNumber))
	for i := 0; i < len(cardNumber); i++ {
		if cardNumber[i] >= '0' && cardNumber[i] <= '9' {
			digits = append(digits, cardNumber[i])
		}
	}
	if len(digits) < 4 {
		return ""
	}
	return string(digits[len(digits)-4:])
}

func startCheckoutHandler(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req startCheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "cartId is required")
			return
		}
		w, err := svc.Start(req.CartID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, toWizardResponse(w, svc))
	}
}

func getCheckoutHandler(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		w, err := svc.Get(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toWizardResponse(w, svc))
	}
}

func checkoutCustomerHandler(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in domain.CustomerInfo
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "invalid customer payload")
			return
		}
		w, err := svc.SubmitCustomer(c.Param("id"), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toWizardResponse(w, svc))
	}
}

func checkoutShippingHandler(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in domain.ShippingAddress
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "invalid shipping payload")
			return
		}
		w, err := svc.SubmitShipping(c.Param("id"), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toWizardResponse(w, svc))
	}
}

func checkoutPaymentHandler(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in checkout.PaymentInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "invalid payment payload")
			return
		}
		w, err := svc.SetPayment(c.Param("id"), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toWizardResponse(w, svc))
	}
}

func checkoutBackHandler(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		w, err := svc.Back(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toWizardResponse(w, svc))
	}
}

func checkoutSubmitHandler(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		w, err := svc.Submit(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		if w.State == checkout.StateFailed {
			c.JSON(http.StatusBadGateway, gin.H{
				"error":     w.LastError,
				"retryable": true,
				"wizard":    toWizardResponse(w, svc),
			})
			return
		}
		c.JSON(http.StatusOK, toWizardResponse(w, svc))
	}
}
