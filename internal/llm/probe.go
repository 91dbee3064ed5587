package llm

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// HTTPProber checks internet reachability by issuing a HEAD request to a
// well-known URL. Results are cached briefly so routing decisions made in
// quick succession do not each pay a network round trip.
type HTTPProber struct {
	url    string
	client *http.Client

	mu        sync.Mutex
	lastCheck time.Time
	lastState bool
}

// probeCacheTTL bounds how stale a cached reachability answer may be.
const probeCacheTTL = 10 * time.Second

// NewHTTPProber creates a prober against the given URL with a hard timeout.
func NewHTTPProber(url string, timeout time.Duration) *HTTPProber {
	if url == "" {
		url = defaultProbeURL
	}
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	return &HTTPProber{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (p *HTTPProber) Online(ctx context.Context) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if time.Since(p.lastCheck) < probeCacheTTL {
		return p.lastState
	}

	p.lastState = p.check(ctx)
	p.lastCheck = time.Now()
	return p.lastState
}

func (p *HTTPProber) check(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.url, nil)
	if err != nil {
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode < http.StatusInternalServerError
}
