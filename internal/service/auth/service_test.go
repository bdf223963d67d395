package auth

import (
	"context"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"tulynx-storefront/internal/otp"
)

type stubSMS struct {
	phone    string
	messages []string
	err      error
}

func (s *stubSMS) SendSMS(_ context.Context, phone, message string) error {
	s.phone = phone
	s.messages = append(s.messages, message)
	return s.err
}

func newTestService(t *testing.T) (*Service, *stubSMS, *otp.MemoryStore) {
	t.Helper()
	store := otp.NewMemoryStore(time.Minute)
	t.Cleanup(store.Close)
	sms := &stubSMS{}
	logger := log.New(io.Discard, "", 0)
	return New(store, sms, 5*time.Minute, time.Hour, logger), sms, store
}

func lastCode(t *testing.T, sms *stubSMS) string {
	t.Helper()
	if len(sms.messages) == 0 {
		t.Fatal("no sms sent")
	}
	msg := sms.messages[len(sms.messages)-1]
	fields := strings.Fields(msg)
	code := fields[len(fields)-1]
	if len(code) != 6 {
		t.Fatalf("expected 6-digit code in %q, got %q", msg, code)
	}
	return code
}

func TestSendOTPValidatesPhone(t *testing.T) {
	svc, sms, _ := newTestService(t)

	for _, phone := range []string{"", "12345", "12345678901", "abcdefghij", "555-123-456"} {
		if err := svc.SendOTP(context.Background(), phone); err != ErrInvalidPhone {
			t.Fatalf("phone %q: expected ErrInvalidPhone, got %v", phone, err)
		}
	}
	if len(sms.messages) != 0 {
		t.Fatalf("expected no sms, got %d", len(sms.messages))
	}
}

func TestSendAndVerifyOTP(t *testing.T) {
	svc, sms, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.SendOTP(ctx, "5551234567"); err != nil {
		t.Fatalf("send otp: %v", err)
	}
	if sms.phone != "5551234567" {
		t.Fatalf("sms sent to %q", sms.phone)
	}

	token, err := svc.VerifyOTP(ctx, "5551234567", lastCode(t, sms))
	if err != nil {
		t.Fatalf("verify otp: %v", err)
	}
	if token == "" {
		t.Fatal("expected session token")
	}

	phone, err := svc.Authenticate(token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if phone != "5551234567" {
		t.Fatalf("expected phone 5551234567, got %q", phone)
	}
}

func TestVerifyOTPWrongCode(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.SendOTP(ctx, "5551234567"); err != nil {
		t.Fatalf("send otp: %v", err)
	}
	if _, err := svc.VerifyOTP(ctx, "5551234567", "000000"); err != ErrInvalidOTP {
		t.Fatalf("expected ErrInvalidOTP, got %v", err)
	}
}

func TestVerifyOTPUnknownPhone(t *testing.T) {
	svc, _, _ := newTestService(t)

	if _, err := svc.VerifyOTP(context.Background(), "5550000000", "123456"); err != ErrInvalidOTP {
		t.Fatalf("expected ErrInvalidOTP, got %v", err)
	}
}

func TestOTPConsumedOnVerify(t *testing.T) {
	svc, sms, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.SendOTP(ctx, "5551234567"); err != nil {
		t.Fatalf("send otp: %v", err)
	}
	code := lastCode(t, sms)
	if _, err := svc.VerifyOTP(ctx, "5551234567", code); err != nil {
		t.Fatalf("first verify: %v", err)
	}
	if _, err := svc.VerifyOTP(ctx, "5551234567", code); err != ErrInvalidOTP {
		t.Fatalf("expected replay to fail with ErrInvalidOTP, got %v", err)
	}
}

func TestResendReplacesCode(t *testing.T) {
	svc, sms, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.SendOTP(ctx, "5551234567"); err != nil {
		t.Fatalf("first send: %v", err)
	}
	first := lastCode(t, sms)
	if err := svc.SendOTP(ctx, "5551234567"); err != nil {
		t.Fatalf("second send: %v", err)
	}
	second := lastCode(t, sms)

	if first != second {
		if _, err := svc.VerifyOTP(ctx, "5551234567", first); err != ErrInvalidOTP {
			t.Fatalf("expected stale code to fail, got %v", err)
		}
	}
	if _, err := svc.VerifyOTP(ctx, "5551234567", second); err != nil {
		t.Fatalf("latest code should verify: %v", err)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, sms, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.SendOTP(ctx, "5551234567"); err != nil {
		t.Fatalf("send otp: %v", err)
	}
	token, err := svc.VerifyOTP(ctx, "5551234567", lastCode(t, sms))
	if err != nil {
		t.Fatalf("verify otp: %v", err)
	}

	svc.Logout(token)
	if _, err := svc.Authenticate(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken after logout, got %v", err)
	}
	svc.Logout(token)
}

func TestAuthenticateUnknownToken(t *testing.T) {
	svc, _, _ := newTestService(t)
	if _, err := svc.Authenticate("not-a-token"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
