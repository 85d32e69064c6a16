package utils

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	otpLength      = 4
	otpTTL         = 5 * time.Minute
	otpMaxAttempts = 3
)

var (
	ErrOTPInvalid  = errors.New("invalid OTP")
	ErrOTPExpired  = errors.New("OTP expired or not issued")
	ErrOTPAttempts = errors.New("too many OTP attempts")
)

// OTPStore issues one-time codes and verifies them. A code survives for five
// minutes and three attempts; a successful verification consumes it.
type OTPStore interface {
	Issue(ctx context.Context, key string) (string, error)
	Verify(ctx context.Context, key, code string) error
}

func GenerateOTP(length int) string {
	digits := "0123456789"
	var otp strings.Builder
	for i := 0; i < length; i++ {
		otp.WriteByte(digits[rand.Intn(len(digits))])
	}
	return otp.String()
}

var (
	defaultStore OTPStore
	storeOnce    sync.Once
)

// DefaultOTPStore is redis-backed when REDIS_ADDR is set, in-memory
// otherwise.
func DefaultOTPStore() OTPStore {
	storeOnce.Do(func() {
		if addr := os.Getenv("REDIS_ADDR"); addr != "" {
			defaultStore = NewRedisOTPStore(redis.NewClient(&redis.Options{Addr: addr}))
		} else {
			defaultStore = NewMemoryOTPStore()
		}
	})
	return defaultStore
}

type otpRecord struct {
	code      string
	expiresAt time.Time
	attempts  int
}

type memoryOTPStore struct {
	mu      sync.Mutex
	records map[string]*otpRecord
	now     func() time.Time
}

func NewMemoryOTPStore() *memoryOTPStore {
	return &memoryOTPStore{
		records: make(map[string]*otpRecord),
		now:     time.Now,
	}
}

func (s *memoryOTPStore) Issue(_ context.Context, key string) (string, error) {
	code := GenerateOTP(otpLength)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = &otpRecord{code: code, expiresAt: s.now().Add(otpTTL)}
	return code, nil
}

func (s *memoryOTPStore) Verify(_ context.Context, key, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[key]
	if !ok {
		return ErrOTPExpired
	}
	if s.now().After(record.expiresAt) {
		delete(s.records, key)
		return ErrOTPExpired
	}

	record.attempts++
	if record.attempts > otpMaxAttempts {
		delete(s.records, key)
		return ErrOTPAttempts
	}
	if record.code != code {
		return ErrOTPInvalid
	}

	delete(s.records, key)
	return nil
}

type redisOTPStore struct {
	client *redis.Client
}

func NewRedisOTPStore(client *redis.Client) *redisOTPStore {
	return &redisOTPStore{client: client}
}

func (s *redisOTPStore) Issue(ctx context.Context, key string) (string, error) {
	code := GenerateOTP(otpLength)
	if err := s.client.Set(ctx, "otp:"+key, code, otpTTL).Err(); err != nil {
		return "", err
	}
	s.client.Del(ctx, "otp:"+key+":attempts")
	return code, nil
}

func (s *redisOTPStore) Verify(ctx context.Context, key, code string) error {
	otpKey := "otp:" + key
	attemptsKey := otpKey + ":attempts"

	stored, err := s.client.Get(ctx, otpKey).Result()
	if errors.Is(err, redis.Nil) {
		return ErrOTPExpired
	}
	if err != nil {
		return err
	}

	attempts, err := s.client.Incr(ctx, attemptsKey).Result()
	if err != nil {
		return err
	}
	s.client.Expire(ctx, attemptsKey, otpTTL)
	if attempts > otpMaxAttempts {
		s.client.Del(ctx, otpKey, attemptsKey)
		return ErrOTPAttempts
	}

	if stored != code {
		return ErrOTPInvalid
	}

	s.client.Del(ctx, otpKey, attemptsKey)
	return nil
}
