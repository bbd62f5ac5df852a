// Package ratelimit throttles requests per client address.
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ClientLimiter keeps one token bucket per client host.
type ClientLimiter struct {
	mu   sync.Mutex
	m    map[string]*entry
	r    rate.Limit
	b    int
	idle time.Duration
	now  func() time.Time
}

type entry struct {
	lim  *rate.Limiter
	seen time.Time
}

// New allows reqPerSec sustained requests per client with the given burst.
// A non-positive rate disables limiting.
func New(reqPerSec float64, burst int) *ClientLimiter {
	r := rate.Limit(reqPerSec)
	if reqPerSec <= 0 {
		r = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &ClientLimiter{
		m:    make(map[string]*entry),
		r:    r,
		b:    burst,
		idle: 10 * time.Minute,
		now:  time.Now,
	}
}

func (cl *ClientLimiter) limiterFor(key string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	now := cl.now()
	if e, ok := cl.m[key]; ok {
		e.seen = now
		return e.lim
	}
	cl.evictIdle(now)
	lim := rate.NewLimiter(cl.r, cl.b)
	cl.m[key] = &entry{lim: lim, seen: now}
	return lim
}

func (cl *ClientLimiter) evictIdle(now time.Time) {
	for k, e := range cl.m {
		if now.Sub(e.seen) > cl.idle {
			delete(cl.m, k)
		}
	}
}

// Sweep drops clients idle for longer than the idle window and returns how
// many remain.
func (cl *ClientLimiter) Sweep() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.evictIdle(cl.now())
	return len(cl.m)
}

// Allow reports whether a request from key may proceed now.
func (cl *ClientLimiter) Allow(key string) bool {
	return cl.limiterFor(key).AllowN(cl.now(), 1)
}

// AllowRequest keys the request by its remote host.
func (cl *ClientLimiter) AllowRequest(r *http.Request) bool {
	return cl.Allow(ClientKey(r))
}

// ClientKey returns the host part of the request's remote address.
func ClientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	host = strings.TrimSpace(host)
	if host == "" {
		return "_"
	}
	return host
}
