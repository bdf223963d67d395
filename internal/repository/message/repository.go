package message

import "context"

// ContactMessage is one contact-form submission.
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type Repository interface {
	SaveContact(ctx context.Context, in ContactMessage) error
	// SaveNewsletterSignup records an email address once; repeat signups
	// are accepted silently.
	SaveNewsletterSignup(ctx context.Context, email string) error
}
