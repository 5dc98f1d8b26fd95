package web

import (
	"sync"
	"sync/atomic"
	"time"
)

// notFoundRoute labels requests that matched no route
const notFoundRoute = "not_found"

// Metrics tracks request statistics using atomic operations for thread-safety
type Metrics struct {
	RequestsTotal atomic.Int64
	ClientErrors  atomic.Int64
	ServerErrors  atomic.Int64
	StartTime     time.Time

	mu       sync.Mutex
	perRoute map[string]int64
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
		perRoute:  make(map[string]int64),
	}
}

// Record counts one finished request
func (m *Metrics) Record(route string, status int) {
	m.RequestsTotal.Add(1)
	switch {
	case status >= 500:
		m.ServerErrors.Add(1)
	case status >= 400:
		m.ClientErrors.Add(1)
	}

	if route == "" {
		route = notFoundRoute
	}
	m.mu.Lock()
	m.perRoute[route]++
	m.mu.Unlock()
}

// RouteCount returns how many requests a route has served
func (m *Metrics) RouteCount(route string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.perRoute[route]
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	RequestsTotal int64            `json:"requests_total"`
	ClientErrors  int64            `json:"client_errors"`
	ServerErrors  int64            `json:"server_errors"`
	PerRoute      map[string]int64 `json:"per_route"`
	StartTime     time.Time        `json:"start_time"`
	Uptime        string           `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	m.mu.Lock()
	perRoute := make(map[string]int64, len(m.perRoute))
	for k, v := range m.perRoute {
		perRoute[k] = v
	}
	m.mu.Unlock()

	return MetricsSnapshot{
		RequestsTotal: m.RequestsTotal.Load(),
		ClientErrors:  m.ClientErrors.Load(),
		ServerErrors:  m.ServerErrors.Load(),
		PerRoute:      perRoute,
		StartTime:     m.StartTime,
		Uptime:        time.Since(m.StartTime).String(),
	}
}
