// Package inflight keeps at most one outstanding submission per session.
package inflight

import (
	"context"
	"sync"
	"time"

	"github.com/actuallystonmai/course-finder/internal/domain"
	"github.com/google/uuid"
)

const DefaultTTL = 30 * time.Second

// Guard hands out a single-slot token per session. Acquire fails with
// domain.ErrSubmissionInFlight while another token is live; Release only
// frees the slot when the token still matches.
type Guard interface {
	Acquire(ctx context.Context, session string) (string, error)
	Release(ctx context.Context, session, token string) error
}

func newToken() string {
	return uuid.NewString()
}

type slot struct {
	token   string
	expires time.Time
}

// MemoryGuard is a process-local Guard.
type MemoryGuard struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	slots map[string]slot
}

func NewMemoryGuard(ttl time.Duration) *MemoryGuard {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryGuard{
		ttl:   ttl,
		now:   time.Now,
		slots: make(map[string]slot),
	}
}

func (g *MemoryGuard) Acquire(_ context.Context, session string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if s, ok := g.slots[session]; ok && now.Before(s.expires) {
		return "", domain.ErrSubmissionInFlight
	}

	token := newToken()
	g.slots[session] = slot{token: token, expires: now.Add(g.ttl)}
	g.sweep(now)
	return token, nil
}

func (g *MemoryGuard) Release(_ context.Context, session, token string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if s, ok := g.slots[session]; ok && s.token == token {
		delete(g.slots, session)
	}
	return nil
}

// sweep drops expired slots so abandoned sessions do not accumulate.
func (g *MemoryGuard) sweep(now time.Time) {
	for session, s := range g.slots {
		if !now.Before(s.expires) {
			delete(g.slots, session)
		}
	}
}
