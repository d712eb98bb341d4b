// File: utils/session_lock.go
package utils

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const sessionLockPrefix = "vetchat:turn:"

// ErrTurnInProgress is returned when another turn already holds the lock for
// a session and it was not released within the wait window.
var ErrTurnInProgress = errors.New("a turn is already in progress for this session")

// SessionLocker serializes message turns per session so concurrent requests
// against one sessionId never race on the conversation read-modify-write.
type SessionLocker interface {
	Acquire(ctx context.Context, sessionID string) (release func(), err error)
}

// RedisSessionLocker implements SessionLocker with SET NX PX on Redis.
type RedisSessionLocker struct {
	client *redis.Client
	ttl    time.Duration
	wait   time.Duration
}

func NewRedisSessionLocker(client *redis.Client, ttl, wait time.Duration) *RedisSessionLocker {
	return &RedisSessionLocker{client: client, ttl: ttl, wait: wait}
}

// Acquire takes the per-session lock, polling until the wait window elapses.
// The returned release func deletes the lock only if this caller still owns it.
func (l *RedisSessionLocker) Acquire(ctx context.Context, sessionID string) (func(), error) {
	key := sessionLockPrefix + sessionID
	token := uuid.New().String()
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return nil, ErrTurnInProgress
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}

	release := func() {
		// Only delete if we still own the lock; the TTL may have expired and
		// another turn taken it over.
		current, err := l.client.Get(context.Background(), key).Result()
		if err == nil && current == token {
			l.client.Del(context.Background(), key)
		}
	}
	return release, nil
}
