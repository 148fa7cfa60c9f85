package services

import (
	"context"
	"testing"
	"time"
)

func TestGenerateOTPIsFourDigits(t *testing.T) {
	for i := 0; i < 50; i++ {
		code := GenerateOTP()
		if len(code) != 4 {
			t.Fatalf("code %q is not 4 digits", code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("code %q contains non-digit", code)
			}
		}
	}
}

func TestOTPVerifyAndConsume(t *testing.T) {
	svc := &OTPService{store: newMemoryOTPStore()}
	ctx := context.Background()

	if err := svc.Issue(ctx, "alice@example.com", "4321"); err != nil {
		t.Fatalf("Issue: %v", err)
	}

	ok, err := svc.Verify(ctx, "alice@example.com", "0000")
	if err != nil || ok {
		t.Fatalf("wrong code verified: ok=%v err=%v", ok, err)
	}

	// Verify does not burn the code.
	ok, err = svc.Verify(ctx, "alice@example.com", "4321")
	if err != nil || !ok {
		t.Fatalf("Verify: ok=%v err=%v", ok, err)
	}
	ok, err = svc.Verify(ctx, "alice@example.com", "4321")
	if err != nil || !ok {
		t.Fatalf("second Verify: ok=%v err=%v", ok, err)
	}

	// Consume does.
	ok, err = svc.Consume(ctx, "alice@example.com", "4321")
	if err != nil || !ok {
		t.Fatalf("Consume: ok=%v err=%v", ok, err)
	}
	ok, err = svc.Verify(ctx, "alice@example.com", "4321")
	if err != nil || ok {
		t.Fatalf("code survived Consume: ok=%v err=%v", ok, err)
	}
}

func TestOTPUnknownEmail(t *testing.T) {
	svc := &OTPService{store: newMemoryOTPStore()}
	ok, err := svc.Verify(context.Background(), "nobody@example.com", "1234")
	if err != nil || ok {
		t.Fatalf("verified code that was never issued: ok=%v err=%v", ok, err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := newMemoryOTPStore()
	store.cache.Add("bob@example.com", otpEntry{
		Code:      "9999",
		ExpiresAt: time.Now().Add(-time.Second),
	})

	code, err := store.Get(context.Background(), "bob@example.com")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if code != "" {
		t.Fatalf("expired code returned: %q", code)
	}
}
