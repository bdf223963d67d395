package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"regexp"
	"strings"
	"time"

	"tulynx-storefront/internal/notify"
	"tulynx-storefront/internal/otp"
)

var (
	// ErrInvalidPhone is returned for phone numbers that are not 10 digits.
	ErrInvalidPhone = errors.New("invalid phone number")
	// ErrInvalidOTP is returned when the code is wrong, expired or absent.
	ErrInvalidOTP = errors.New("invalid or expired otp")
	// ErrInvalidToken indicates the session token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

var phoneRe = regexp.MustCompile(`^[0-9]{10}$`)

// Service handles the phone/OTP login flow and the sessions it produces.
type Service struct {
	store      otp.Store
	sms        notify.SMSSender
	sessions   *sessionManager
	otpTTL     time.Duration
	sessionTTL time.Duration
	logger     *log.Logger
}

func New(store otp.Store, sms notify.SMSSender, otpTTL, sessionTTL time.Duration, logger *log.Logger) *Service {
	return &Service{
		store:      store,
		sms:        sms,
		sessions:   newSessionManager(),
		otpTTL:     otpTTL,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// SendOTP stores a fresh 6-digit code for the phone number and hands it to
// the SMS boundary. A resend replaces the earlier code.
func (s *Service) SendOTP(ctx context.Context, phone string) error {
	phone = strings.TrimSpace(phone)
	if !phoneRe.MatchString(phone) {
		return ErrInvalidPhone
	}
	code, err := generateCode()
	if err != nil {
		return err
	}
	if err := s.store.Put(ctx, phone, code, s.otpTTL); err != nil {
		return err
	}
	return s.sms.SendSMS(ctx, phone, fmt.Sprintf("Your Tulynx login code is %s", code))
}

// VerifyOTP checks the code, consumes it, and issues a session token.
func (s *Service) VerifyOTP(ctx context.Context, phone, code string) (string, error) {
	phone = strings.TrimSpace(phone)
	if !phoneRe.MatchString(phone) {
		return "", ErrInvalidPhone
	}
	stored, err := s.store.Get(ctx, phone)
	if err != nil || stored != strings.TrimSpace(code) {
		return "", ErrInvalidOTP
	}
	if err := s.store.Delete(ctx, phone); err != nil {
		s.logger.Printf("delete otp for %s: %v", phone, err)
	}
	return s.sessions.Issue(phone, s.sessionTTL)
}

// Authenticate resolves a session token to the phone number it was issued
// for.
func (s *Service) Authenticate(token string) (string, error) {
	phone, ok := s.sessions.Validate(token)
	if !ok {
		return "", ErrInvalidToken
	}
	return phone, nil
}

// Logout revokes a session token; revoking an unknown token is a no-op.
func (s *Service) Logout(token string) {
	s.sessions.Revoke(token)
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
