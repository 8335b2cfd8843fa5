// Package client is an HTTP client for the story library API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// StorySummary is a list entry: id and title only. Full text is fetched
// separately via GetStory.
type StorySummary struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// Story is the full persisted record.
type Story struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	FullText string `json:"full_text"`
}

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string `json:"error"`
	Code       string `json:"code"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("api: status %d", e.StatusCode)
}

// Client talks to a story library API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API at baseURL (e.g. "http://localhost:8081").
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
}

// NewWithHTTPClient creates a client using the given http.Client.
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	c := New(baseURL)
	if httpClient != nil {
		c.httpClient = httpClient
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// ListStories fetches all story summaries.
func (c *Client) ListStories(ctx context.Context) ([]StorySummary, error) {
	var summaries []StorySummary
	if err := c.do(ctx, http.MethodGet, "/api/stories", nil, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// GetStory fetches the full story by id.
func (c *Client) GetStory(ctx context.Context, id uint) (*Story, error) {
	var story Story
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/stories/%d", id), nil, &story); err != nil {
		return nil, err
	}
	return &story, nil
}

// CreateStory posts a new story and returns the persisted record.
func (c *Client) CreateStory(ctx context.Context, title, fullText string) (*Story, error) {
	var story Story
	req := Story{Title: title, FullText: fullText}
	if err := c.do(ctx, http.MethodPost, "/api/stories", req, &story); err != nil {
		return nil, err
	}
	return &story, nil
}

// UpdateStory replaces both fields of the story wholesale.
func (c *Client) UpdateStory(ctx context.Context, id uint, title, fullText string) (*Story, error) {
	var story Story
	req := Story{Title: title, FullText: fullText}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/stories/%d", id), req, &story); err != nil {
		return nil, err
	}
	return &story, nil
}

// DeleteStory removes the story. The API reports success even for ids
// that never existed.
func (c *Client) DeleteStory(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/stories/%d", id), nil, nil)
}
