package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/redis/go-redis/v9"
)

const (
	// OTPTTL is how long a password-reset code stays valid.
	OTPTTL = 10 * time.Minute

	// DemoOTP is issued when no mailer is configured so the reset flow
	// stays usable in local setups.
	DemoOTP = "1234"

	otpKeyPrefix = "otp:reset:"
)

// GenerateOTP returns a random 4-digit reset code.
func GenerateOTP() string {
	return fmt.Sprintf("%04d", rand.Intn(10000))
}

type otpStore interface {
	Set(ctx context.Context, email, code string) error
	Get(ctx context.Context, email string) (string, error) // "" when absent/expired
	Delete(ctx context.Context, email string) error
}

// redisOTPStore keeps codes in redis and lets the TTL do the expiry.
type redisOTPStore struct {
	rdb *redis.Client
}

func (s *redisOTPStore) Set(ctx context.Context, email, code string) error {
	return s.rdb.Set(ctx, otpKeyPrefix+email, code, OTPTTL).Err()
}

func (s *redisOTPStore) Get(ctx context.Context, email string) (string, error) {
	code, err := s.rdb.Get(ctx, otpKeyPrefix+email).Result()
	if err == redis.Nil {
		return "", nil
	}
	return code, err
}

func (s *redisOTPStore) Delete(ctx context.Context, email string) error {
	return s.rdb.Del(ctx, otpKeyPrefix+email).Err()
}

type otpEntry struct {
	Code      string
	ExpiresAt time.Time
}

// memoryOTPStore is the single-process fallback when redis is not
// configured.
type memoryOTPStore struct {
	cache *lru.Cache[string, otpEntry]
}

func newMemoryOTPStore() *memoryOTPStore {
	l, _ := lru.New[string, otpEntry](500)
	return &memoryOTPStore{cache: l}
}

func (s *memoryOTPStore) Set(_ context.Context, email, code string) error {
	s.cache.Add(email, otpEntry{Code: code, ExpiresAt: time.Now().Add(OTPTTL)})
	return nil
}

func (s *memoryOTPStore) Get(_ context.Context, email string) (string, error) {
	entry, ok := s.cache.Get(email)
	if !ok {
		return "", nil
	}
	if time.Now().After(entry.ExpiresAt) {
		s.cache.Remove(email)
		return "", nil
	}
	return entry.Code, nil
}

func (s *memoryOTPStore) Delete(_ context.Context, email string) error {
	s.cache.Remove(email)
	return nil
}

// OTPService issues and checks password-reset codes keyed by email.
type OTPService struct {
	store otpStore
}

func NewOTPService() *OTPService {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return &OTPService{store: newMemoryOTPStore()}
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	slog.Info("OTP store using redis", "addr", addr)
	return &OTPService{store: &redisOTPStore{rdb: rdb}}
}

func (s *OTPService) Issue(ctx context.Context, email, code string) error {
	return s.store.Set(ctx, email, code)
}

// Verify reports whether the code matches the one on file.
func (s *OTPService) Verify(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.store.Get(ctx, email)
	if err != nil {
		return false, err
	}
	return stored != "" && stored == code, nil
}

// Consume verifies the code and burns it on success.
func (s *OTPService) Consume(ctx context.Context, email, code string) (bool, error) {
	ok, err := s.Verify(ctx, email, code)
	if err != nil || !ok {
		return false, err
	}
	if err := s.store.Delete(ctx, email); err != nil {
		return false, err
	}
	return true, nil
}
