// Package ratelimit throttles command invocations per caller. Each caller id
// gets its own token bucket; hosts attach the limiter to commands as a form
// middleware so spamming one command cannot starve the dispatch path.
package ratelimit

import (
	"sync"

	"golang.org/x/time/rate"

	"github.com/John-DND/RegularCommands/pkg/commands"
)

const limitedMessage = "You are sending commands too quickly. Slow down."

// PerCaller tracks one token bucket per caller id. Buckets are created
// lazily on first use and share the same rate and burst.
type PerCaller struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	buckets map[commands.CallerID]*rate.Limiter
}

// NewPerCaller creates a limiter allowing perSecond sustained invocations
// with the given burst per caller.
func NewPerCaller(perSecond float64, burst int) *PerCaller {
	if perSecond <= 0 {
		perSecond = 1
	}
	if burst < 1 {
		burst = 1
	}
	return &PerCaller{
		limit:   rate.Limit(perSecond),
		burst:   burst,
		buckets: make(map[commands.CallerID]*rate.Limiter),
	}
}

// Allow reports whether the caller may invoke a command now, consuming one
// token if so.
func (p *PerCaller) Allow(id commands.CallerID) bool {
	p.mu.Lock()
	bucket, ok := p.buckets[id]
	if !ok {
		bucket = rate.NewLimiter(p.limit, p.burst)
		p.buckets[id] = bucket
	}
	p.mu.Unlock()
	return bucket.Allow()
}

// Forget drops the caller's bucket, e.g. when an entity disconnects.
func (p *PerCaller) Forget(id commands.CallerID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.buckets, id)
}

// Middleware returns a form middleware that rejects invocations once the
// caller's bucket is exhausted. Console callers are never limited.
func (p *PerCaller) Middleware() commands.Middleware {
	return func(f commands.Form) commands.Form {
		return commands.WrapForm(f, func(ctx *commands.Context, args []any) string {
			id := ctx.Caller().ID()
			if id.Category != commands.CategoryConsole && !p.Allow(id) {
				return limitedMessage
			}
			return f.Execute(ctx, args)
		})
	}
}
