package message

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) SaveContact(ctx context.Context, in ContactMessage) error {
	const q = `
INSERT INTO contact_messages (name, email, subject, message)
VALUES ($1, $2, $3, $4)
`
	if _, err := r.pool.Exec(ctx, q, in.Name, in.Email, in.Subject, in.Message); err != nil {
		return err
	}
	r.logger.Printf("contact message from %s", in.Email)
	return nil
}

func (r *postgresRepo) SaveNewsletterSignup(ctx context.Context, email string) error {
	const q = `
INSERT INTO newsletter_signups (email)
VALUES ($1)
ON CONFLICT (email) DO NOTHING
`
	if _, err := r.pool.Exec(ctx, q, email); err != nil {
		return err
	}
	r.logger.Printf("newsletter signup %s", email)
	return nil
}
