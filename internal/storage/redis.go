package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"credcheck/internal/domain"
)

// ErrCacheMiss is returned when no document is cached for a URL.
var ErrCacheMiss = errors.New("cache miss")

// RedisStore caches fetched Documents so a URL analyzed moments ago is not
// downloaded again. Only Documents are stored, never analysis results.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(addr string, ttl time.Duration) *RedisStore {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	return &RedisStore{client: rdb, ttl: ttl}
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// GetDocument returns the cached Document for a URL, or ErrCacheMiss.
func (s *RedisStore) GetDocument(ctx context.Context, url string) (*domain.Document, error) {
	raw, err := s.client.Get(ctx, documentKey(url)).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode cached document: %w", err)
	}
	return &doc, nil
}

// SetDocument caches a Document with the configured TTL.
func (s *RedisStore) SetDocument(ctx context.Context, doc *domain.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return s.client.Set(ctx, documentKey(doc.URL), raw, s.ttl).Err()
}

// documentKey hashes the URL so arbitrary user input never becomes a raw
// Redis key.
func documentKey(url string) string {
	h := sha256.Sum256([]byte(url))
	return "doc:" + hex.EncodeToString(h[:])
}
