// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"github.com/fjnwajei/story-reader-app/internal/models"

	"gorm.io/gorm"
)

// StoryRepository defines the interface for story data operations
type StoryRepository interface {
	Create(ctx context.Context, story *models.Story) error
	GetByID(ctx context.Context, id uint) (*models.Story, error)
	List(ctx context.Context) ([]models.StorySummary, error)
	Update(ctx context.Context, id uint, title, fullText string) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// storyRepository implements StoryRepository
type storyRepository struct {
	db *gorm.DB
}

// NewStoryRepository creates a new story repository
func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) Create(ctx context.Context, story *models.Story) error {
	return r.db.WithContext(ctx).Create(story).Error
}

func (r *storyRepository) GetByID(ctx context.Context, id uint) (*models.Story, error) {
	var story models.Story
	if err := r.db.WithContext(ctx).First(&story, id).Error; err != nil {
		return nil, err
	}
	return &story, nil
}

// List returns every story projected to id and title. Full text is
// deliberately withheld from list views. No explicit ordering; rows come
// back in the store's default (rowid) order.
func (r *storyRepository) List(ctx context.Context) ([]models.StorySummary, error) {
	summaries := make([]models.StorySummary, 0)
	err := r.db.WithContext(ctx).
		Model(&models.Story{}).
		Select("id", "title").
		Find(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// Update replaces both fields wholesale. Matching zero rows is not an
// error: callers cannot distinguish "updated" from "no such row".
func (r *storyRepository) Update(ctx context.Context, id uint, title, fullText string) error {
	return r.db.WithContext(ctx).
		Model(&models.Story{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":     title,
			"full_text": fullText,
		}).Error
}

// Delete removes the story row. Deleting an unknown id is a no-op and
// reports success.
func (r *storyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Story{}, id).Error
}

func (r *storyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Story{}).Count(&count).Error
	return count, err
}
