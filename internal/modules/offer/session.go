package offer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"estateoffice/internal/pkg/wizard"

	"github.com/redis/go-redis/v9"
)

// Session is one open wizard. It lives in Redis with a TTL: an abandoned
// wizard evaporates and reopening the dialog always starts a fresh one.
type Session struct {
	ID             string       `json:"id"`
	State          wizard.State `json:"state"`
	Form           Form         `json:"form"`
	IdempotencyKey string       `json:"idempotency_key"`
	Submitted      bool         `json:"submitted"`
	OfferID        int64        `json:"offer_id,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
}

type SessionStore interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

const sessionKeyPrefix = "offer:session:"

type RedisSessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSessionStore(rdb *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb, ttl: ttl}
}

func (s *RedisSessionStore) Save(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionKeyPrefix+sess.ID, data, s.ttl).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.rdb.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+id).Err()
}
