package musicbrainz

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recordingJSON = `{
	"created": "2024-01-01T00:00:00.000Z",
	"count": 1,
	"offset": 0,
	"recordings": [{
		"id": "b1a9c0e9-d987-4042-ae91-78d6a3267d69",
		"title": "Bohemian Rhapsody",
		"score": 100,
		"artist-credit": [{"name": "Queen", "artist": {"id": "0383dadf", "name": "Queen"}}],
		"releases": [{"id": "r1", "title": "A Night at the Opera", "date": "1975-11-21"}]
	}]
}`

func TestClient_SearchRecording(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recording", r.URL.Path)
		assert.Equal(t, "queen bohemian rhapsody", r.URL.Query().Get("query"))
		assert.Equal(t, "json", r.URL.Query().Get("fmt"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "test-agent/1.0", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(recordingJSON))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithUserAgent("test-agent/1.0"), WithRateLimit(0))
	result, err := client.SearchRecording(context.Background(), "queen bohemian rhapsody", 5)

	require.NoError(t, err)
	require.Len(t, result.Recordings, 1)
	rec := result.Recordings[0]
	assert.Equal(t, "Bohemian Rhapsody", rec.Title)
	assert.Equal(t, 100, rec.Score)
	assert.Equal(t, "Queen", rec.Artist())
	assert.Equal(t, "A Night at the Opera", rec.Album())
	assert.Equal(t, "1975", rec.Year())
}

func TestRecording_Fallbacks(t *testing.T) {
	var r Recording
	assert.Equal(t, "Unknown Artist", r.Artist())
	assert.Equal(t, "Unknown Album", r.Album())
	assert.Equal(t, "", r.Year())
}

func TestClient_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithRateLimit(0))
	_, err := client.SearchRecording(context.Background(), "x", 5)
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestClient_LimiterSpacesRequests(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"recordings":[]}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithRateLimit(20))

	start := time.Now()
	for range 3 {
		_, err := client.SearchRecording(context.Background(), "x", 1)
		require.NoError(t, err)
	}

	assert.Equal(t, int32(3), calls.Load())
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond, "3 requests at 20/s need two 50ms gaps")
}

func TestClient_LimiterRespectsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"recordings":[]}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithRateLimit(0.1))
	_, err := client.SearchRecording(context.Background(), "x", 1)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = client.SearchRecording(ctx, "x", 1)
	assert.Error(t, err)
}

func TestClients_DoNotShareLimiter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"recordings":[]}`))
	}))
	defer server.Close()

	a := NewClient(WithBaseURL(server.URL), WithRateLimit(0.1))
	b := NewClient(WithBaseURL(server.URL), WithRateLimit(0.1))

	_, err := a.SearchRecording(context.Background(), "x", 1)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err = b.SearchRecording(ctx, "x", 1)
	assert.NoError(t, err, "a fresh client has its own budget")
}
