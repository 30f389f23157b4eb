package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/actuallystonmai/course-finder/internal/domain"
	"github.com/actuallystonmai/course-finder/internal/logger"
	"github.com/actuallystonmai/course-finder/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// multi flattens repeated and comma-separated query values.
func multi(r *http.Request, key string) []string {
	var out []string
	for _, v := range r.URL.Query()[key] {
		out = append(out, strings.Split(v, ",")...)
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(context.Background(), Config{
		APIKey:   "test-key",
		Endpoint: srv.URL + "/",
	}, logger.Discard())
	require.NoError(t, err)
	return c
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(context.Background(), Config{}, logger.Discard())
	assert.ErrorIs(t, err, domain.ErrMissingCredential)
}

func TestSearch(t *testing.T) {
	var searchCalls, detailCalls atomic.Int32

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch {
		case strings.HasSuffix(r.URL.Path, "/youtube/v3/search"):
			searchCalls.Add(1)
			assert.Equal(t, "golang full course tutorial", q.Get("q"))
			assert.Equal(t, []string{"snippet"}, multi(r, "part"))
			assert.Equal(t, "video", q.Get("type"))
			assert.Equal(t, "long", q.Get("videoDuration"))
			assert.Equal(t, "9", q.Get("maxResults"))
			assert.Equal(t, "relevance", q.Get("order"))
			assert.Equal(t, "test-key", q.Get("key"))

			writeJSON(w, http.StatusOK, map[string]any{
				"items": []map[string]any{
					{"id": map[string]any{"kind": "youtube#video", "videoId": "vid1"}},
					{"id": map[string]any{"kind": "youtube#video", "videoId": "vid2"}},
				},
			})
		case strings.HasSuffix(r.URL.Path, "/youtube/v3/videos"):
			detailCalls.Add(1)
			assert.ElementsMatch(t, []string{"contentDetails", "snippet"}, multi(r, "part"))
			assert.Equal(t, []string{"vid1", "vid2"}, multi(r, "id"))

			writeJSON(w, http.StatusOK, map[string]any{
				"items": []map[string]any{
					{
						"id": "vid1",
						"snippet": map[string]any{
							"title":        "Go Programming Basics",
							"channelTitle": "Gopher TV",
							"description":  strings.Repeat("x", 200),
						},
						"contentDetails": map[string]any{"duration": "PT1H30M5S"},
					},
					{
						"id": "vid2",
						"snippet": map[string]any{
							"title":        "Concurrency Patterns",
							"channelTitle": "Gopher TV",
							"description":  "channels and select",
						},
						"contentDetails": map[string]any{"duration": "PT45M"},
					},
				},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
		}
	})

	courses, err := c.Search(context.Background(), "golang")
	require.NoError(t, err)
	require.Len(t, courses, 2)

	assert.Equal(t, int32(1), searchCalls.Load())
	assert.Equal(t, int32(1), detailCalls.Load())

	first := courses[0]
	assert.Equal(t, "Go Programming Basics", first.Title)
	assert.Equal(t, "Gopher TV", first.Channel)
	assert.Equal(t, strings.Repeat("x", 150)+"...", first.Description)
	assert.Equal(t, "https://www.youtube.com/watch?v=vid1", first.URL)
	assert.Equal(t, "1h 30m", first.Duration)
	assert.Equal(t, domain.LevelBeginner, first.Level)

	second := courses[1]
	assert.Equal(t, "channels and select...", second.Description)
	assert.Equal(t, "45m", second.Duration)
	assert.Equal(t, domain.LevelIntermediate, second.Level)
}

func TestSearchFillsMissingMetadata(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/search") {
			writeJSON(w, http.StatusOK, map[string]any{
				"items": []map[string]any{{"id": map[string]any{"videoId": "v"}}},
			})
			return
		}
		// no channelTitle, no contentDetails
		writeJSON(w, http.StatusOK, map[string]any{
			"items": []map[string]any{
				{"id": "v", "snippet": map[string]any{"title": "T"}},
			},
		})
	})

	courses, err := c.Search(context.Background(), "golang")
	require.NoError(t, err)
	require.Len(t, courses, 1)

	got := courses[0]
	assert.True(t, got.Complete(), "course should be complete: %+v", got)
	assert.Equal(t, "T", got.Title)
	assert.Equal(t, model.UnknownChannel, got.Channel)
	assert.Equal(t, model.NotAvailable, got.Duration)
	assert.Equal(t, "https://www.youtube.com/watch?v=v", got.URL)
}

func TestSearchNoResultsSkipsDetails(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/videos") {
			t.Error("details call should not be made without ids")
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": []any{}})
	})

	courses, err := c.Search(context.Background(), "obscure")
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestSearchPropagatesUpstreamMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, map[string]any{
			"error": map[string]any{
				"code":    403,
				"message": "The request cannot be completed because you have exceeded your quota.",
			},
		})
	})

	_, err := c.Search(context.Background(), "golang")
	require.Error(t, err)
	assert.True(t, IsUpstreamError(err))
	assert.Equal(t, "The request cannot be completed because you have exceeded your quota.", UserMessage(err))
}

func TestSearchDetailsFailureFailsWhole(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/search") {
			writeJSON(w, http.StatusOK, map[string]any{
				"items": []map[string]any{{"id": map[string]any{"videoId": "vid1"}}},
			})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	})

	courses, err := c.Search(context.Background(), "golang")
	assert.Nil(t, courses)
	require.Error(t, err)
	assert.True(t, IsUpstreamError(err))
	assert.Equal(t, fallbackMessage, UserMessage(err))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, fallbackMessage, UserMessage(errors.New("dial tcp: refused")))
	assert.Equal(t, "quota", UserMessage(&UpstreamError{Msg: "quota", Err: errors.New("x")}))

	wrapped := &UpstreamError{Msg: "quota", Err: context.DeadlineExceeded}
	assert.ErrorIs(t, wrapped, context.DeadlineExceeded)
}
