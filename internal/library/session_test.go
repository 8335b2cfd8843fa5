package library

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/fjnwajei/story-reader-app/pkg/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI is an in-memory stand-in for the story library server.
type fakeAPI struct {
	stories []client.Story
	nextID  uint
}

func newFakeAPI(stories ...client.Story) *fakeAPI {
	api := &fakeAPI{stories: stories, nextID: 1}
	for _, s := range stories {
		if s.ID >= api.nextID {
			api.nextID = s.ID + 1
		}
	}
	return api
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/stories", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			summaries := make([]client.StorySummary, 0, len(f.stories))
			for _, s := range f.stories {
				summaries = append(summaries, client.StorySummary{ID: s.ID, Title: s.Title})
			}
			_ = json.NewEncoder(w).Encode(summaries)
		case http.MethodPost:
			var story client.Story
			_ = json.NewDecoder(r.Body).Decode(&story)
			if story.Title == "" || story.FullText == "" {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "Missing title or full_text"})
				return
			}
			story.ID = f.nextID
			f.nextID++
			f.stories = append(f.stories, story)
			_ = json.NewEncoder(w).Encode(story)
		}
	})
	mux.HandleFunc("/api/stories/", func(w http.ResponseWriter, r *http.Request) {
		rawID := strings.TrimPrefix(r.URL.Path, "/api/stories/")
		id, _ := strconv.Atoi(rawID)
		switch r.Method {
		case http.MethodGet:
			for _, s := range f.stories {
				if s.ID == uint(id) {
					_ = json.NewEncoder(w).Encode(s)
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Story not found"})
		case http.MethodDelete:
			kept := f.stories[:0]
			for _, s := range f.stories {
				if s.ID != uint(id) {
					kept = append(kept, s)
				}
			}
			f.stories = kept
			_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
		}
	})
	return mux
}

func newTestSession(t *testing.T, api *fakeAPI) *Session {
	t.Helper()
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)
	return NewSession(client.New(srv.URL))
}

func TestSession_RefreshDecoratesSummaries(t *testing.T) {
	t.Parallel()

	session := newTestSession(t, newFakeAPI(
		client.Story{ID: 1, Title: "First", FullText: "First body"},
		client.Story{ID: 2, Title: "Second", FullText: "Second body"},
	))

	require.NoError(t, session.Refresh(context.Background()))

	cards := session.Cards()
	require.Len(t, cards, 2)
	assert.Equal(t, "Fantasy", cards[1].Genre)
	assert.Equal(t, "Adventure", cards[0].Genre)
	// Default sort is popular, so the later list entry leads.
	assert.Equal(t, uint(2), cards[0].ID)
}

func TestSession_ToggleRead(t *testing.T) {
	t.Parallel()

	session := newTestSession(t, newFakeAPI(
		client.Story{ID: 1, Title: "First", FullText: "b"},
		client.Story{ID: 2, Title: "Second", FullText: "b"},
	))
	require.NoError(t, session.Refresh(context.Background()))

	assert.True(t, session.ToggleRead(2))
	assert.False(t, session.ToggleRead(99))

	session.View().Status = StatusRead
	cards := session.Cards()
	require.Len(t, cards, 1)
	assert.Equal(t, uint(2), cards[0].ID)

	// Toggling again flips it back to unread.
	assert.True(t, session.ToggleRead(2))
	assert.Empty(t, session.Cards())
}

func TestSession_OpenFetchesFullText(t *testing.T) {
	t.Parallel()

	session := newTestSession(t, newFakeAPI(
		client.Story{ID: 1, Title: "First", FullText: "The whole body."},
	))

	story, err := session.Open(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "The whole body.", story.FullText)

	_, err = session.Open(context.Background(), 404)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestSession_CreateRefreshesAndDropsReadMarks(t *testing.T) {
	t.Parallel()

	session := newTestSession(t, newFakeAPI(
		client.Story{ID: 1, Title: "First", FullText: "b"},
	))
	require.NoError(t, session.Refresh(context.Background()))
	require.True(t, session.ToggleRead(1))

	story, err := session.Create(context.Background(), "New Story", "New body")
	require.NoError(t, err)
	assert.Equal(t, "New Story", story.Title)

	// The post-create refresh rebuilds every summary, so the earlier read
	// mark is gone and the new story appears.
	view := session.View()
	require.Len(t, view.Stories, 2)
	for _, s := range view.Stories {
		assert.False(t, s.Read)
	}
}

func TestSession_CreateRejectedByServer(t *testing.T) {
	t.Parallel()

	session := newTestSession(t, newFakeAPI())

	_, err := session.Create(context.Background(), "", "")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}
