package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// OTPEntry is a pending one-time password
type OTPEntry struct {
	Hash      []byte
	ExpiresAt time.Time
	Attempts  int
}

// OTPStore keeps pending one-time passwords by identifier. Get returns
// ErrOTPNotFound for unknown identifiers.
type OTPStore interface {
	Save(ctx context.Context, key string, entry OTPEntry) error
	Get(ctx context.Context, key string) (*OTPEntry, error)
	IncrementAttempts(ctx context.Context, key string) error
	Delete(ctx context.Context, key string) error
}

// MemoryOTPStore keeps OTPs in process memory. Entries are removed when
// verified, on expiry checks, or by Sweep.
type MemoryOTPStore struct {
	mu      sync.Mutex
	entries map[string]OTPEntry
}

// NewMemoryOTPStore creates an empty in-memory store
func NewMemoryOTPStore() *MemoryOTPStore {
	return &MemoryOTPStore{entries: make(map[string]OTPEntry)}
}

func (m *MemoryOTPStore) Save(_ context.Context, key string, entry OTPEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = entry
	return nil
}

func (m *MemoryOTPStore) Get(_ context.Context, key string) (*OTPEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return nil, ErrOTPNotFound
	}
	return &e, nil
}

func (m *MemoryOTPStore) IncrementAttempts(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return ErrOTPNotFound
	}
	e.Attempts++
	m.entries[key] = e
	return nil
}

func (m *MemoryOTPStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

// Sweep drops entries that expired before now and returns how many were dropped
func (m *MemoryOTPStore) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for k, e := range m.entries {
		if now.After(e.ExpiresAt) {
			delete(m.entries, k)
			n++
		}
	}
	return n
}

// otpGrace keeps expired entries in Redis a little longer so verification can
// report expiry instead of a missing code.
const otpGrace = time.Minute

// RedisOTPStore keeps OTPs in Redis hashes under a key prefix
type RedisOTPStore struct {
	client *redis.Client
	prefix string
}

// NewRedisOTPStore creates a Redis-backed store
func NewRedisOTPStore(client *redis.Client) *RedisOTPStore {
	return &RedisOTPStore{client: client, prefix: "otp:"}
}

func (r *RedisOTPStore) Save(ctx context.Context, key string, entry OTPEntry) error {
	k := r.prefix + key
	ttl := time.Until(entry.ExpiresAt) + otpGrace

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, k)
		pipe.HSet(ctx, k,
			"hash", entry.Hash,
			"expires_at", entry.ExpiresAt.UnixMilli(),
			"attempts", entry.Attempts,
		)
		pipe.Expire(ctx, k, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save OTP: %w", err)
	}
	return nil
}

func (r *RedisOTPStore) Get(ctx context.Context, key string) (*OTPEntry, error) {
	vals, err := r.client.HGetAll(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) || (err == nil && len(vals) == 0) {
		return nil, ErrOTPNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load OTP: %w", err)
	}

	expires, err := strconv.ParseInt(vals["expires_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt OTP entry: %w", err)
	}
	attempts, err := strconv.Atoi(vals["attempts"])
	if err != nil {
		return nil, fmt.Errorf("corrupt OTP entry: %w", err)
	}

	return &OTPEntry{
		Hash:      []byte(vals["hash"]),
		ExpiresAt: time.UnixMilli(expires),
		Attempts:  attempts,
	}, nil
}

func (r *RedisOTPStore) IncrementAttempts(ctx context.Context, key string) error {
	if err := r.client.HIncrBy(ctx, r.prefix+key, "attempts", 1).Err(); err != nil {
		return fmt.Errorf("failed to count OTP attempt: %w", err)
	}
	return nil
}

func (r *RedisOTPStore) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete OTP: %w", err)
	}
	return nil
}
