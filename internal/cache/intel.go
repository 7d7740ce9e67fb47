// Redis 기반 위협 인텔 조회 캐시
//
// 환경변수:
//   - REDIS_ADDR: Redis 주소 (비어 있으면 캐시 비활성, 매번 직접 조회)
//   - INTEL_CACHE_TTL: 캐시 TTL (기본: 1h)
//
// 캐시 실패는 직접 조회로 넘어가며 조사 자체를 실패시키지 않는다.

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/soc-lens/backend/internal/config"
	"github.com/soc-lens/backend/internal/model"
)

const intelKeyPrefix = "soclens:intel:"

type IntelCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIntelCache - Redis 연결 생성 및 ping 확인
func NewIntelCache(cfg config.RedisConfig) (*IntelCache, error) {
	client := redis.NewClient(&redis.Options{Addr: cfg.Addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis intel cache: %w", err)
	}

	ttl := cfg.IntelTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &IntelCache{client: client, ttl: ttl}, nil
}

// Get - 캐시 조회. 미스와 에러는 동일하게 (nil, false)
func (c *IntelCache) Get(ctx context.Context, ip string) (*model.ThreatIntel, bool) {
	raw, err := c.client.Get(ctx, intelKeyPrefix+ip).Bytes()
	if err != nil {
		return nil, false
	}
	var intel model.ThreatIntel
	if err := json.Unmarshal(raw, &intel); err != nil {
		return nil, false
	}
	return &intel, true
}

// Set - 조회 결과 캐시 저장. 실패해도 무시
func (c *IntelCache) Set(ctx context.Context, ip string, intel *model.ThreatIntel) {
	if intel == nil {
		return
	}
	raw, err := json.Marshal(intel)
	if err != nil {
		return
	}
	c.client.Set(ctx, intelKeyPrefix+ip, raw, c.ttl)
}
