package server

import (
	"errors"

	"github.com/fjnwajei/story-reader-app/internal/models"
	"github.com/fjnwajei/story-reader-app/internal/service"

	"github.com/gofiber/fiber/v2"
)

// storyRequest is the JSON body for create and update.
type storyRequest struct {
	Title    string `json:"title"`
	FullText string `json:"full_text"`
}

// respondServiceError maps the service error taxonomy onto HTTP status codes.
func respondServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "VALIDATION_ERROR":
			return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
		case "NOT_FOUND":
			return models.RespondWithError(c, fiber.StatusNotFound, appErr)
		}
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError, err)
}

// ListStories handles GET /api/stories
func (s *Server) ListStories(c *fiber.Ctx) error {
	summaries, err := s.storyService.ListStories(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(summaries)
}

// GetStory handles GET /api/stories/:id
func (s *Server) GetStory(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	story, err := s.storyService.GetStory(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(story)
}

// CreateStory handles POST /api/stories
func (s *Server) CreateStory(c *fiber.Ctx) error {
	var req storyRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	story, err := s.storyService.CreateStory(c.Context(), service.CreateStoryInput{
		Title:    req.Title,
		FullText: req.FullText,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(story)
}

// UpdateStory handles PUT /api/stories/:id. The response echoes the
// requested values whether or not a row matched; callers cannot tell an
// update from a no-op.
func (s *Server) UpdateStory(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req storyRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	story, err := s.storyService.UpdateStory(c.Context(), service.UpdateStoryInput{
		ID:       id,
		Title:    req.Title,
		FullText: req.FullText,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(story)
}

// DeleteStory handles DELETE /api/stories/:id. Delete is idempotent, so
// unknown ids still report success.
func (s *Server) DeleteStory(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if err := s.storyService.DeleteStory(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
