package server

import (
	"log/slog"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// clientWindow counts one client's traffic in its current window
type clientWindow struct {
	started  time.Time
	requests int
	rejected int
}

// ClientMonitor rate-limits clients over fixed windows and flags clients
// that keep sending bad requests. At most MaxTrackedClients are tracked;
// the least recently seen client is forgotten first.
type ClientMonitor struct {
	mu      sync.Mutex
	clients *expirable.LRU[string, *clientWindow]
	limit   int
	window  time.Duration
	now     func() time.Time
}

// NewClientMonitor allows RateLimitRequests per RateLimitWindow
func NewClientMonitor() *ClientMonitor {
	return NewClientMonitorWithLimit(RateLimitRequests, RateLimitWindow)
}

// NewClientMonitorWithLimit allows limit requests per window
func NewClientMonitorWithLimit(limit int, window time.Duration) *ClientMonitor {
	return &ClientMonitor{
		clients: expirable.NewLRU[string, *clientWindow](MaxTrackedClients, nil, window),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// current returns ip's window, opening a new one when the last has lapsed.
// Caller holds mu.
func (m *ClientMonitor) current(ip string) *clientWindow {
	now := m.now()
	if w, ok := m.clients.Get(ip); ok && now.Sub(w.started) < m.window {
		return w
	}
	w := &clientWindow{started: now}
	m.clients.Add(ip, w)
	return w
}

// Allow counts a request and reports whether ip is still under its limit.
func (m *ClientMonitor) Allow(ip string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	w := m.current(ip)
	w.requests++
	if w.requests <= m.limit {
		return true
	}
	if (w.requests-m.limit)%RateLimitLogEvery == 1 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", w.requests)
	}
	return false
}

// Reject counts a request the API refused with a client error
func (m *ClientMonitor) Reject(ip string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w := m.current(ip)
	w.rejected++
	if w.rejected == RejectedRequestsAlertFrom {
		slog.Warn(SecurityAlertRejectedRequests, "ip", ip, "count", w.rejected)
	}
}

// Counts reports ip's requests and rejections in its current window
func (m *ClientMonitor) Counts(ip string) (requests, rejected int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.clients.Peek(ip); ok && m.now().Sub(w.started) < m.window {
		return w.requests, w.rejected
	}
	return 0, 0
}
