package bootstrap

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shanuka19697/LMS-sub001/config"
	"github.com/shanuka19697/LMS-sub001/internal/adapters/sessiontoken"
	"github.com/shanuka19697/LMS-sub001/internal/core"
	"github.com/shanuka19697/LMS-sub001/internal/data"
)

// BuildSessionCodec creates the signed session token codec from auth
// configuration. The codec both issues and verifies, so the auth service
// and the request middleware share one instance.
func BuildSessionCodec(cfg config.AuthConfig) (*sessiontoken.Codec, error) {
	codec, err := sessiontoken.New(cfg.SessionSecret, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("create session codec: %w", err)
	}
	return codec, nil
}

// BuildPageCache creates the Redis-backed page cache. Returns a nil
// interface when no Redis client is configured; the services and page
// handlers treat a nil cache as disabled and render every request.
//
//nolint:ireturn // Returning core.PageCache keeps the nil-means-disabled contract explicit.
func BuildPageCache(client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) core.PageCache {
	if client == nil {
		if logger != nil {
			logger.Warn("page cache disabled: redis client not configured")
		}
		return nil
	}
	return data.NewPageCacheRepo(client, ttl)
}
