package store

import (
	"sort"
	"sync"
	"time"

	"github.com/brandpulse/social-monitor/internal/models"
)

// MemoryStore keeps all records in process memory. IDs are assigned from a
// per-record-type monotonically increasing counter and state does not
// survive a restart. Unbounded growth is an accepted limitation.
type MemoryStore struct {
	mu sync.RWMutex

	alerts        map[int]models.Alert
	searchResults map[int]models.SearchResult
	replies       map[int]models.GeneratedReply

	nextAlertID        int
	nextSearchResultID int
	nextReplyID        int
}

var (
	_ AlertStore        = (*MemoryStore)(nil)
	_ SearchResultStore = (*MemoryStore)(nil)
	_ ReplyStore        = (*MemoryStore)(nil)
)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		alerts:             make(map[int]models.Alert),
		searchResults:      make(map[int]models.SearchResult),
		replies:            make(map[int]models.GeneratedReply),
		nextAlertID:        1,
		nextSearchResultID: 1,
		nextReplyID:        1,
	}
}

// CreateAlert assigns an id and creation timestamp and stores the alert.
func (s *MemoryStore) CreateAlert(alert models.Alert) models.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()

	alert.ID = s.nextAlertID
	s.nextAlertID++
	alert.CreatedAt = time.Now()
	alert.LastRun = nil
	s.alerts[alert.ID] = alert

	return alert
}

// GetAlert returns the alert with the given id.
func (s *MemoryStore) GetAlert(id int) (models.Alert, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	alert, ok := s.alerts[id]
	return alert, ok
}

// ListAlerts returns all alerts ordered by id.
func (s *MemoryStore) ListAlerts() []models.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	alerts := make([]models.Alert, 0, len(s.alerts))
	for _, alert := range s.alerts {
		alerts = append(alerts, alert)
	}
	sort.Slice(alerts, func(i, j int) bool { return alerts[i].ID < alerts[j].ID })

	return alerts
}

// UpdateAlert replaces a stored alert. Returns false if the id is unknown.
func (s *MemoryStore) UpdateAlert(alert models.Alert) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.alerts[alert.ID]; !ok {
		return false
	}
	s.alerts[alert.ID] = alert

	return true
}

// DeleteAlert removes an alert. Returns false if the id is unknown.
func (s *MemoryStore) DeleteAlert(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.alerts[id]; !ok {
		return false
	}
	delete(s.alerts, id)

	return true
}

// CreateSearchResult assigns an id and creation timestamp and stores the record.
func (s *MemoryStore) CreateSearchResult(result models.SearchResult) models.SearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	result.ID = s.nextSearchResultID
	s.nextSearchResultID++
	result.CreatedAt = time.Now()
	s.searchResults[result.ID] = result

	return result
}

// ListSearchResults returns stored results ordered by id, optionally
// filtered by type tag.
func (s *MemoryStore) ListSearchResults(resultType string) []models.SearchResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]models.SearchResult, 0, len(s.searchResults))
	for _, result := range s.searchResults {
		if resultType != "" && result.Type != resultType {
			continue
		}
		results = append(results, result)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })

	return results
}

// CreateReply assigns an id and creation timestamp and stores the reply.
func (s *MemoryStore) CreateReply(reply models.GeneratedReply) models.GeneratedReply {
	s.mu.Lock()
	defer s.mu.Unlock()

	reply.ID = s.nextReplyID
	s.nextReplyID++
	reply.CreatedAt = time.Now()
	s.replies[reply.ID] = reply

	return reply
}

// GetReply returns the reply with the given id.
func (s *MemoryStore) GetReply(id int) (models.GeneratedReply, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reply, ok := s.replies[id]
	return reply, ok
}

// ListReplies returns all replies, newest first.
func (s *MemoryStore) ListReplies() []models.GeneratedReply {
	s.mu.RLock()
	defer s.mu.RUnlock()

	replies := make([]models.GeneratedReply, 0, len(s.replies))
	for _, reply := range s.replies {
		replies = append(replies, reply)
	}
	sort.Slice(replies, func(i, j int) bool { return replies[i].ID > replies[j].ID })

	return replies
}

// SetFeedback records like/dislike feedback on a stored reply. Returns
// false if the id is unknown.
func (s *MemoryStore) SetFeedback(id int, feedback string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	reply, ok := s.replies[id]
	if !ok {
		return false
	}
	reply.Feedback = feedback
	s.replies[id] = reply

	return true
}
