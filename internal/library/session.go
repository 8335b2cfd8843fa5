package library

import (
	"context"

	"github.com/fjnwajei/story-reader-app/pkg/client"
)

// Session binds a view to the API for the lifetime of a reading session.
// All state is in memory: read marks and filter selections are lost when
// the session ends, exactly like a page reload.
type Session struct {
	api  *client.Client
	view View
}

// NewSession creates an empty session over the given API client. Call
// Refresh to load the story list.
func NewSession(api *client.Client) *Session {
	return &Session{
		api:  api,
		view: NewView(nil),
	}
}

// View exposes the current view state.
func (s *Session) View() *View {
	return &s.view
}

// Refresh discards the in-memory story list and re-fetches summaries from
// the API. All decoration is recomputed from scratch, so any read marks
// are lost.
func (s *Session) Refresh(ctx context.Context) error {
	refs, err := s.api.ListStories(ctx)
	if err != nil {
		return err
	}
	s.view.Stories = Decorate(refs)
	return nil
}

// Cards returns the filtered, sorted display list for the current view.
func (s *Session) Cards() []Summary {
	return s.view.Project()
}

// ToggleRead flips the read mark on the story with the given id and
// reports whether it was found. The mark lives only in this session and
// is never sent to the server.
func (s *Session) ToggleRead(id uint) bool {
	for i := range s.view.Stories {
		if s.view.Stories[i].ID == id {
			s.view.Stories[i].Read = !s.view.Stories[i].Read
			return true
		}
	}
	return false
}

// Open fetches the full story, including its text, for the detail view.
// Summaries omit the text, so this is always a separate fetch.
func (s *Session) Open(ctx context.Context, id uint) (*client.Story, error) {
	return s.api.GetStory(ctx, id)
}

// Create posts a new story and then refreshes the whole list. The refresh
// recomputes every demo field, so read marks on all stories are lost.
func (s *Session) Create(ctx context.Context, title, fullText string) (*client.Story, error) {
	story, err := s.api.CreateStory(ctx, title, fullText)
	if err != nil {
		return nil, err
	}
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	return story, nil
}

// Delete removes a story and refreshes the list.
func (s *Session) Delete(ctx context.Context, id uint) error {
	if err := s.api.DeleteStory(ctx, id); err != nil {
		return err
	}
	return s.Refresh(ctx)
}
