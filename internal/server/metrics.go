package server

import (
	"encoding/json"
	"sync"
	"time"
)

// Metrics holds request-level counters exposed on /metrics.
type Metrics struct {
	mu sync.RWMutex

	SearchRuns       int            `json:"search_runs"`
	RepliesGenerated int            `json:"replies_generated"`
	FaqRuns          int            `json:"faq_runs"`
	ErrorCount       int            `json:"error_count"`
	HitsByPlatform   map[string]int `json:"hits_by_platform"`
	LastSearch       time.Time      `json:"last_search"`
	LastReply        time.Time      `json:"last_reply"`
}

// NewMetrics creates empty metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		HitsByPlatform: make(map[string]int),
	}
}

func (m *Metrics) recordSearch(hitsByPlatform map[string]int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SearchRuns++
	m.LastSearch = time.Now()
	for platform, count := range hitsByPlatform {
		m.HitsByPlatform[platform] += count
	}
}

func (m *Metrics) recordReply() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.RepliesGenerated++
	m.LastReply = time.Now()
}

func (m *Metrics) recordFaqRun() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.FaqRuns++
}

func (m *Metrics) recordError() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ErrorCount++
}

// JSON returns the current metrics serialized for the /metrics endpoint.
func (m *Metrics) JSON() []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, _ := json.MarshalIndent(m, "", "  ")
	return data
}
