// Package service contains the business rules sitting between the HTTP
// layer and the repository.
package service

import (
	"context"
	"errors"

	"github.com/fjnwajei/story-reader-app/internal/models"
	"github.com/fjnwajei/story-reader-app/internal/repository"

	"gorm.io/gorm"
)

// StoryService validates input and orchestrates story store operations.
type StoryService struct {
	storyRepo repository.StoryRepository
}

// CreateStoryInput carries the fields for a new story.
type CreateStoryInput struct {
	Title    string
	FullText string
}

// UpdateStoryInput carries the wholesale replacement values for a story.
type UpdateStoryInput struct {
	ID       uint
	Title    string
	FullText string
}

// NewStoryService creates a new story service
func NewStoryService(storyRepo repository.StoryRepository) *StoryService {
	return &StoryService{storyRepo: storyRepo}
}

// CreateStory persists a new story after checking both fields are present.
func (s *StoryService) CreateStory(ctx context.Context, in CreateStoryInput) (*models.Story, error) {
	if in.Title == "" || in.FullText == "" {
		return nil, models.NewValidationError("Missing title or full_text")
	}

	story := &models.Story{
		Title:    in.Title,
		FullText: in.FullText,
	}
	if err := s.storyRepo.Create(ctx, story); err != nil {
		return nil, models.NewInternalError(err)
	}
	return story, nil
}

// GetStory fetches the full story by id.
func (s *StoryService) GetStory(ctx context.Context, id uint) (*models.Story, error) {
	story, err := s.storyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Story", id)
		}
		return nil, models.NewInternalError(err)
	}
	return story, nil
}

// ListStories returns all stories projected to id and title.
func (s *StoryService) ListStories(ctx context.Context) ([]models.StorySummary, error) {
	summaries, err := s.storyRepo.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return summaries, nil
}

// UpdateStory replaces both fields of the story wholesale. When no row
// matches the id, the update is a silent no-op and the requested values
// are still returned; the response alone cannot tell the two apart.
func (s *StoryService) UpdateStory(ctx context.Context, in UpdateStoryInput) (*models.Story, error) {
	if in.Title == "" || in.FullText == "" {
		return nil, models.NewValidationError("Missing title or full_text")
	}

	if err := s.storyRepo.Update(ctx, in.ID, in.Title, in.FullText); err != nil {
		return nil, models.NewInternalError(err)
	}

	return &models.Story{
		ID:       in.ID,
		Title:    in.Title,
		FullText: in.FullText,
	}, nil
}

// DeleteStory removes the story. Deletion is idempotent: unknown ids
// report success.
func (s *StoryService) DeleteStory(ctx context.Context, id uint) error {
	if err := s.storyRepo.Delete(ctx, id); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
