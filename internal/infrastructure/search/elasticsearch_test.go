package search_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-blog-api/internal/domain/event"
	"github.com/oksasatya/go-ddd-blog-api/internal/infrastructure/search"
)

type recorded struct {
	Method string
	Path   string
	Body   string
}

type fakeES struct {
	mu       sync.Mutex
	requests []recorded
	status   int
	body     string
}

func (f *fakeES) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, recorded{Method: r.Method, Path: r.URL.Path, Body: string(b)})
	status, body := f.status, f.body
	f.mu.Unlock()

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	if body == "" {
		body = `{}`
	}
	_, _ = io.WriteString(w, body)
}

func (f *fakeES) last() recorded {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func newIndex(t *testing.T, f *fakeES) *search.Index {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return search.NewIndex(es, "users", "posts", nil)
}

func TestIndex_Handle_IndexesDocument(t *testing.T) {
	f := &fakeES{status: http.StatusCreated}
	idx := newIndex(t, f)

	ev := event.New(event.UserCreated, "01HZX3Q7Y8K2M4N6P8R0S2T4V6", map[string]any{"name": "Alice", "email": "alice@example.com"})
	require.NoError(t, idx.Handle(context.Background(), ev))

	req := f.last()
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/users/_doc/01HZX3Q7Y8K2M4N6P8R0S2T4V6", req.Path)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(req.Body), &doc))
	assert.Equal(t, "Alice", doc["name"])
}

func TestIndex_Handle_DeleteMissingIsNotAnError(t *testing.T) {
	f := &fakeES{status: http.StatusNotFound, body: `{"result":"not_found"}`}
	idx := newIndex(t, f)

	ev := event.New(event.PostDeleted, "01HZX3Q7Y8K2M4N6P8R0S2T4V6", nil)
	require.NoError(t, idx.Handle(context.Background(), ev))

	req := f.last()
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/posts/_doc/01HZX3Q7Y8K2M4N6P8R0S2T4V6", req.Path)
}

func TestIndex_Handle_ServerErrorIsReturned(t *testing.T) {
	f := &fakeES{status: http.StatusBadRequest, body: `{"error":"mapper_parsing_exception"}`}
	idx := newIndex(t, f)

	ev := event.New(event.PostUpdated, "01HZX3Q7Y8K2M4N6P8R0S2T4V6", map[string]any{"title": "x"})
	assert.Error(t, idx.Handle(context.Background(), ev))
}

func TestIndex_SearchPosts(t *testing.T) {
	f := &fakeES{body: `{"hits":{"hits":[{"_id":"a","_source":{"id":"a","title":"Hello"}},{"_id":"b","_source":{"id":"b","title":"Hello again"}}]}}`}
	idx := newIndex(t, f)

	got, err := idx.SearchPosts(context.Background(), "hello", 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Hello", got[0]["title"])

	req := f.last()
	assert.Equal(t, "/posts/_search", req.Path)

	var q map[string]any
	require.NoError(t, json.Unmarshal([]byte(req.Body), &q))
	assert.EqualValues(t, 10, q["size"])
}

func TestIndex_NotConfigured(t *testing.T) {
	var idx *search.Index
	got, err := idx.SearchUsers(context.Background(), "alice", 5)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)

	assert.NoError(t, idx.Handle(context.Background(), event.New(event.UserDeleted, "x", nil)))
}
