package reports

import (
	"encoding/json"
	"testing"

	"github.com/brandpulse/social-monitor/internal/models"
	"github.com/brandpulse/social-monitor/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockArchive is a mock implementation of the archive interface.
type MockArchive struct {
	mock.Mock
}

func (m *MockArchive) Store(filename string, data []byte) error {
	args := m.Called(filename, data)
	return args.Error(0)
}

func (m *MockArchive) Retrieve(filename string) ([]byte, error) {
	args := m.Called(filename)
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockArchive) List(prefix string) ([]string, error) {
	args := m.Called(prefix)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockArchive) Delete(filename string) error {
	args := m.Called(filename)
	return args.Error(0)
}

func seedResults(s *store.MemoryStore) {
	s.CreateSearchResult(models.SearchResult{
		Type:  "brand-opportunity",
		Query: "globex -acme",
		Results: []models.SearchHit{
			{Title: "a", Platform: "Reddit", Sentiment: "negative"},
			{Title: "b", Platform: "Quora", Sentiment: "neutral"},
		},
		Platforms: []string{"Reddit", "Quora"},
	})
	s.CreateSearchResult(models.SearchResult{
		Type:  "thread-discovery",
		Query: "crm tips",
		Results: []models.SearchHit{
			{Title: "c", Platform: "Reddit"},
		},
		Platforms: []string{"Reddit"},
	})
}

func TestService_Build(t *testing.T) {
	results := store.NewMemoryStore()
	seedResults(results)

	report := NewService(results, nil).Build()

	assert.Equal(t, 2, report.TotalRuns)
	assert.Equal(t, 3, report.TotalHits)
	assert.Equal(t, 1, report.RunsByType["brand-opportunity"])
	assert.Equal(t, 1, report.RunsByType["thread-discovery"])
	assert.Equal(t, 2, report.HitsByPlatform["Reddit"])
	assert.Equal(t, 1, report.HitsByPlatform["Quora"])
	assert.Equal(t, 1, report.SentimentBreakdown["negative"])

	require.Len(t, report.RecentRuns, 2)
	assert.Equal(t, "crm tips", report.RecentRuns[0].Query)
}

func TestService_ExportWithoutArchive(t *testing.T) {
	results := store.NewMemoryStore()
	seedResults(results)

	report, filename, err := NewService(results, nil).Export()
	require.NoError(t, err)
	assert.Empty(t, filename)
	assert.Equal(t, 2, report.TotalRuns)
}

func TestService_ExportArchivesSnapshot(t *testing.T) {
	results := store.NewMemoryStore()
	seedResults(results)

	archive := &MockArchive{}
	archive.On("Store", mock.AnythingOfType("string"), mock.AnythingOfType("[]uint8")).Return(nil)

	report, filename, err := NewService(results, archive).Export()
	require.NoError(t, err)
	assert.Contains(t, filename, "report-")
	assert.Equal(t, 2, report.TotalRuns)

	archive.AssertNumberOfCalls(t, "Store", 1)
	data := archive.Calls[0].Arguments.Get(1).([]byte)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 3, decoded.TotalHits)
}
