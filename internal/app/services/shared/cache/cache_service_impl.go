package cache

import (
	"context"
	"time"

	"github.com/goccy/go-json"

	"valoredash-service/internal/app/contracts"
	"valoredash-service/internal/pkg/exceptions"
)

type cacheService struct {
	redisRepo contracts.RedisRepository
}

// NewCacheService builds a TTL cache on top of redis. Values are stored as
// JSON so any serializable type can pass through.
func NewCacheService(redisRepo contracts.RedisRepository) contracts.CacheService {
	return &cacheService{redisRepo: redisRepo}
}

func (s *cacheService) Get(ctx context.Context, key string, target interface{}) (bool, error) {
	raw, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return false, exceptions.ErrCannotParseJSON(err)
	}
	return true, nil
}

func (s *cacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return s.redisRepo.Set(ctx, key, value, ttl)
}

func (s *cacheService) Invalidate(ctx context.Context, key string) error {
	return s.redisRepo.Delete(ctx, key)
}
