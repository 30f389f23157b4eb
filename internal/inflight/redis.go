package inflight

import (
	"context"
	"fmt"
	"time"

	"github.com/actuallystonmai/course-finder/internal/domain"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisGuard shares the in-flight slot across replicas.
type RedisGuard struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisGuard(client *redis.Client, ttl time.Duration) *RedisGuard {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisGuard{client: client, ttl: ttl}
}

func buildKey(session string) string {
	return fmt.Sprintf("finder:inflight:%s", session)
}

func (g *RedisGuard) Acquire(ctx context.Context, session string) (string, error) {
	token := newToken()
	ok, err := g.client.SetNX(ctx, buildKey(session), token, g.ttl).Result()
	if err != nil {
		return "", fmt.Errorf("acquire in-flight slot: %w", err)
	}
	if !ok {
		return "", domain.ErrSubmissionInFlight
	}
	return token, nil
}

func (g *RedisGuard) Release(ctx context.Context, session, token string) error {
	if err := releaseScript.Run(ctx, g.client, []string{buildKey(session)}, token).Err(); err != nil {
		return fmt.Errorf("release in-flight slot %s: %w", session, err)
	}
	return nil
}

// Ping connectivity
func (g *RedisGuard) Ping(ctx context.Context) error {
	return g.client.Ping(ctx).Err()
}
