package http

import (
	"net"
	"net/http"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-device-keeper/models"
)

// limiterCapacity bounds how many owners keep a limiter; the least recently
// seen owner loses its limiter first.
const limiterCapacity = 1024

type ownerLimiter struct {
	mu       sync.Mutex
	limiters *lru.Cache[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

// newOwnerLimiter returns nil when limit is not positive.
func newOwnerLimiter(limit float64, burst int) *ownerLimiter {
	if limit <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}

	cache, err := lru.New[string, *rate.Limiter](limiterCapacity)
	if err != nil {
		return nil
	}
	return &ownerLimiter{limiters: cache, limit: rate.Limit(limit), burst: burst}
}

func (l *ownerLimiter) allow(key string) bool {
	l.mu.Lock()
	lim, ok := l.limiters.Get(key)
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters.Add(key, lim)
	}
	l.mu.Unlock()

	return lim.Allow()
}

// withRateLimit limits requests per owner id header, or per remote host for
// callers that send none.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.allow(limiterKey(r)) {
			writeResult(w, r, ErrRateLimited)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func limiterKey(r *http.Request) string {
	if owner := r.Header.Get(models.OwnerHeader); owner != "" {
		return "owner:" + owner
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "addr:" + host
}
