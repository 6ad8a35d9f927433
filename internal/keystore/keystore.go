package keystore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/sanjaydhan/scriba/internal/infra/redis"
	"github.com/sanjaydhan/scriba/internal/models"
)

const (
	answerKeyPrefix = "answer_key:"
	reportPrefix    = "mcq_report:"
)

// Store keeps processed answer keys and batch reports in redis under TTL'd
// keys. Nothing here is durable by contract; expiry is the cleanup.
type Store struct {
	rdb *goredis.Client
	ttl time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Store {
	return &Store{
		rdb: client.Client,
		ttl: ttl,
	}
}

// SaveAnswerKey stores a normalized answer key under its generated id.
func (s *Store) SaveAnswerKey(ctx context.Context, id string, key models.AnswerKey) error {
	data, err := json.Marshal(key)
	if err != nil {
		return fmt.Errorf("failed to marshal answer key: %w", err)
	}

	if err := s.rdb.Set(ctx, answerKeyPrefix+id, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store answer key: %w", err)
	}

	log.Trace().
		Str("answerKeyID", id).
		Msg("Answer key cached")

	return nil
}

// GetAnswerKey returns the cached key for id, or nil when absent or expired.
func (s *Store) GetAnswerKey(ctx context.Context, id string) (models.AnswerKey, error) {
	data, err := s.rdb.Get(ctx, answerKeyPrefix+id).Bytes()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read answer key: %w", err)
	}

	var key models.AnswerKey
	if err := json.Unmarshal(data, &key); err != nil {
		return nil, fmt.Errorf("failed to decode cached answer key: %w", err)
	}

	return key, nil
}

// SaveReport caches a batch report under its analysis id.
func (s *Store) SaveReport(ctx context.Context, id string, report any) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := s.rdb.Set(ctx, reportPrefix+id, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store report: %w", err)
	}

	return nil
}

// GetReport returns the cached report JSON for id, or nil when absent.
func (s *Store) GetReport(ctx context.Context, id string) (json.RawMessage, error) {
	data, err := s.rdb.Get(ctx, reportPrefix+id).Bytes()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	return json.RawMessage(data), nil
}
