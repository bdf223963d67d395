package httpserver

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"tulynx-storefront/internal/repository/message"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type newsletterRequest struct {
	Email string `json:"email" binding:"required"`
}

func newsletterHandler(messages message.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req newsletterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "email is required")
			return
		}
		email := strings.ToLower(strings.TrimSpace(req.Email))
		if !emailRe.MatchString(email) {
			badRequest(c, "invalid email address")
			return
		}
		if err := messages.SaveNewsletterSignup(c.Request.Context(), email); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "subscribed"})
	}
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

func contactHandler(messages message.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "name, email and message are required")
			return
		}
		if !emailRe.MatchString(strings.TrimSpace(req.Email)) {
			badRequest(c, "invalid email address")
			return
		}
		in := message.ContactMessage{
			Name:    strings.TrimSpace(req.Name),
			Email:   strings.TrimSpace(req.Email),
			Subject: strings.TrimSpace(req.Subject),
			Message: strings.TrimSpace(req.Message),
		}
		if err := messages.SaveContact(c.Request.Context(), in); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "received"})
	}
}
