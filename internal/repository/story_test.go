package repository

import (
	"context"
	"testing"

	"github.com/fjnwajei/story-reader-app/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Story{}))
	return db
}

func TestStoryRepository_CreateGetRoundtrip(t *testing.T) {
	t.Parallel()

	repo := NewStoryRepository(setupTestDB(t))
	ctx := context.Background()
	faker := gofakeit.New(0)

	for i := 0; i < 10; i++ {
		title := faker.BookTitle()
		fullText := faker.Paragraph(2, 4, 12, " ")

		story := &models.Story{Title: title, FullText: fullText}
		require.NoError(t, repo.Create(ctx, story))
		require.NotZero(t, story.ID)

		got, err := repo.GetByID(ctx, story.ID)
		require.NoError(t, err)
		assert.Equal(t, title, got.Title)
		assert.Equal(t, fullText, got.FullText)
	}
}

func TestStoryRepository_IDsAreMonotonic(t *testing.T) {
	t.Parallel()

	repo := NewStoryRepository(setupTestDB(t))
	ctx := context.Background()

	var lastID uint
	for i := 0; i < 5; i++ {
		story := &models.Story{Title: "Story", FullText: "Body"}
		require.NoError(t, repo.Create(ctx, story))
		assert.Greater(t, story.ID, lastID)
		lastID = story.ID
	}
}

func TestStoryRepository_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewStoryRepository(setupTestDB(t))

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestStoryRepository_ListProjectsIDAndTitle(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewStoryRepository(db)
	ctx := context.Background()

	first := &models.Story{Title: "First", FullText: "First body"}
	second := &models.Story{Title: "Second", FullText: "Second body"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	summaries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, first.ID, summaries[0].ID)
	assert.Equal(t, "First", summaries[0].Title)
	assert.Equal(t, second.ID, summaries[1].ID)
	assert.Equal(t, "Second", summaries[1].Title)
}

func TestStoryRepository_ListEmpty(t *testing.T) {
	t.Parallel()

	repo := NewStoryRepository(setupTestDB(t))

	summaries, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, summaries)
	assert.NotNil(t, summaries, "list must serialize as [] not null")
}

func TestStoryRepository_UpdateReplacesBothFields(t *testing.T) {
	t.Parallel()

	repo := NewStoryRepository(setupTestDB(t))
	ctx := context.Background()

	story := &models.Story{Title: "Old Title", FullText: "Old body"}
	require.NoError(t, repo.Create(ctx, story))

	require.NoError(t, repo.Update(ctx, story.ID, "New Title", "New body"))

	got, err := repo.GetByID(ctx, story.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Title", got.Title)
	assert.Equal(t, "New body", got.FullText)
}

func TestStoryRepository_UpdateUnknownIDIsNoOp(t *testing.T) {
	t.Parallel()

	repo := NewStoryRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Update(ctx, 999, "Ghost", "Nothing here"))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "a no-op update must not create rows")
}

func TestStoryRepository_DeleteIsIdempotent(t *testing.T) {
	t.Parallel()

	repo := NewStoryRepository(setupTestDB(t))
	ctx := context.Background()

	story := &models.Story{Title: "Doomed", FullText: "Soon gone"}
	require.NoError(t, repo.Create(ctx, story))

	require.NoError(t, repo.Delete(ctx, story.ID))
	_, err := repo.GetByID(ctx, story.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Deleting again, or deleting an id that never existed, still succeeds.
	require.NoError(t, repo.Delete(ctx, story.ID))
	require.NoError(t, repo.Delete(ctx, 12345))
}
