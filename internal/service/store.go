package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	sessionTTL = 24 * time.Hour
	// submitTTL bounds how long the in-flight marker can outlive a crashed
	// submission before the session becomes submittable again.
	submitTTL = 30 * time.Second
)

// RedisSessionStore keeps wizard sessions in Redis with a 24h TTL. Sessions
// are abandoned-by-expiry: a draft the nutritionist walks away from simply
// ages out.
type RedisSessionStore struct {
	redis *redis.Client
}

func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{redis: rdb}
}

func sessionKey(id string) string {
	return fmt.Sprintf("consulta:sessao:%s", id)
}

func submitKey(id string) string {
	return sessionKey(id) + ":submetendo"
}

// Save writes a new session to Redis.
func (s *RedisSessionStore) Save(ctx context.Context, sess *WizardSession) error {
	sess.CreatedAt = time.Now()
	sess.UpdatedAt = sess.CreatedAt

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.redis.Set(ctx, sessionKey(sess.ID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save session to Redis: %w", err)
	}
	return nil
}

// Get retrieves a session; a missing or expired key maps to
// ErrSessionNotFound.
func (s *RedisSessionStore) Get(ctx context.Context, id string) (*WizardSession, error) {
	data, err := s.redis.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session from Redis: %w", err)
	}

	var sess WizardSession
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &sess, nil
}

// Update rewrites an existing session and refreshes its TTL.
func (s *RedisSessionStore) Update(ctx context.Context, sess *WizardSession) error {
	sess.UpdatedAt = time.Now()

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.redis.Set(ctx, sessionKey(sess.ID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to update session in Redis: %w", err)
	}
	return nil
}

// Delete removes the session and its in-flight marker.
func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.redis.Del(ctx, sessionKey(id), submitKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session from Redis: %w", err)
	}
	return nil
}

// BeginSubmit atomically claims the submission slot for the session. A false
// return means another submission already holds it.
func (s *RedisSessionStore) BeginSubmit(ctx context.Context, id string) (bool, error) {
	ok, err := s.redis.SetNX(ctx, submitKey(id), "1", submitTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire submit marker: %w", err)
	}
	return ok, nil
}

// EndSubmit releases the slot so a failed submission can be retried.
func (s *RedisSessionStore) EndSubmit(ctx context.Context, id string) error {
	if err := s.redis.Del(ctx, submitKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to release submit marker: %w", err)
	}
	return nil
}
