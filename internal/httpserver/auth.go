package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	authsvc "tulynx-storefront/internal/service/auth"
)

const phoneKey = "authPhone"

type sendOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
}

func sendOTPHandler(svc *authsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req sendOTPRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "phone is required")
			return
		}
		if err := svc.SendOTP(c.Request.Context(), req.Phone); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "sent"})
	}
}

type verifyOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

func verifyOTPHandler(svc *authsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req verifyOTPRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "phone and code are required")
			return
		}
		token, err := svc.VerifyOTP(c.Request.Context(), req.Phone, req.Code)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "phone": req.Phone})
	}
}

func logoutHandler(svc *authsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			svc.Logout(token)
		}
		c.JSON(http.StatusOK, gin.H{"status": "logged out"})
	}
}

// authMiddleware requires a valid bearer session token and stores the
// phone number it resolves to.
func authMiddleware(svc *authsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		phone, err := svc.Authenticate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(phoneKey, phone)
		c.Next()
	}
}

func authPhone(c *gin.Context) string {
	return c.GetString(phoneKey)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
