// File: services/booking/lock.go
package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// EquipmentLocker serializes the check-and-book sequence per equipment
// identifier so two concurrent requests cannot both pass the availability
// check before either commits.
type EquipmentLocker interface {
	// Acquire blocks until the lock for equipmentID is held or ctx is done.
	// The returned release function must be called exactly once.
	Acquire(ctx context.Context, equipmentID string) (func(), error)
}

// MemoryLocker is an in-process keyed mutex. Sufficient for a single
// instance and for tests.
type MemoryLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{locks: make(map[string]*sync.Mutex)}
}

func (l *MemoryLocker) Acquire(ctx context.Context, equipmentID string) (func(), error) {
	l.mu.Lock()
	m, ok := l.locks[equipmentID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[equipmentID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock, nil
}

const (
	lockKeyPrefix     = "equipment:lock:"
	lockTTL           = 10 * time.Second
	lockRetryInterval = 50 * time.Millisecond
)

// RedisLocker is a Redis advisory lock (SET NX with TTL) keyed by equipment
// identifier, so the guarantee holds across service instances.
type RedisLocker struct {
	client *redis.Client
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{client: client}
}

func (l *RedisLocker) Acquire(ctx context.Context, equipmentID string) (func(), error) {
	key := lockKeyPrefix + equipmentID
	token := uuid.New().String()

	for {
		ok, err := l.client.SetNX(ctx, key, token, lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire equipment lock: %w", err)
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}

	release := func() {
		// Only delete the lock if we still own it; an expired lock may have
		// been re-acquired by another request.
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		val, err := l.client.Get(ctx, key).Result()
		if err == nil && val == token {
			_ = l.client.Del(ctx, key).Err()
		}
	}
	return release, nil
}
