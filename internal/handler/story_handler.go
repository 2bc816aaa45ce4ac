package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clothesguard/api/internal/model"
	"github.com/clothesguard/api/internal/repository"
)

// StoryHandler handles usage-log endpoints. Note the key split inherited
// from the API contract: full update resolves the external story_id,
// content patch and delete resolve the internal id.
type StoryHandler struct {
	storyRepo *repository.StoryRepository
}

func NewStoryHandler(storyRepo *repository.StoryRepository) *StoryHandler {
	return &StoryHandler{storyRepo: storyRepo}
}

// GetAll godoc
// @Summary List all stories
// @Tags Stories
// @Produce json
// @Success 200 {array} model.Story
// @Failure 500 {object} model.ErrorResponse
// @Router /stories [get]
func (h *StoryHandler) GetAll(c *gin.Context) {
	stories, err := h.storyRepo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to fetch stories"})
		return
	}
	c.JSON(http.StatusOK, stories)
}

// GetOne godoc
// @Summary Fetch a story by external id
// @Tags Stories
// @Produce json
// @Param story_id path string true "External story id"
// @Success 200 {object} model.Story
// @Failure 404 {object} model.ErrorResponse
// @Router /stories/{story_id} [get]
func (h *StoryHandler) GetOne(c *gin.Context) {
	story, err := h.storyRepo.GetOne(c.Param("story_id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Story not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to fetch story"})
		return
	}
	c.JSON(http.StatusOK, story)
}

// GetByTitle godoc
// @Summary Fetch a story by title
// @Tags Stories
// @Produce json
// @Param title path string true "Story title"
// @Success 200 {object} model.Story
// @Failure 404 {object} model.ErrorResponse
// @Router /stories/title/{title} [get]
func (h *StoryHandler) GetByTitle(c *gin.Context) {
	story, err := h.storyRepo.GetByTitle(c.Param("title"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Story not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to fetch story"})
		return
	}
	c.JSON(http.StatusOK, story)
}

// Create godoc
// @Summary Create a new story
// @Tags Stories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.CreateStoryRequest true "Story payload"
// @Success 201 {object} model.Story
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /stories [post]
func (h *StoryHandler) Create(c *gin.Context) {
	var req model.CreateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	story := model.Story{
		StoryID:      req.StoryID,
		Title:        req.Title,
		Dia:          req.Dia,
		HorasUso:     req.HorasUso,
		Indicaciones: req.Indicaciones,
		DiasActivos:  req.DiasActivos,
	}

	if err := h.storyRepo.Insert(&story); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Story with that id already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to create story"})
		return
	}

	c.JSON(http.StatusCreated, story)
}

// Update godoc
// @Summary Replace story fields by external id
// @Tags Stories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param story_id path string true "External story id"
// @Param body body model.UpdateStoryRequest true "Fields to replace"
// @Success 200 {object} model.Story
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /stories/{story_id} [put]
func (h *StoryHandler) Update(c *gin.Context) {
	var req model.UpdateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	story, err := h.storyRepo.UpdateOne(c.Param("story_id"), req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Story not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to update story"})
		return
	}

	c.JSON(http.StatusOK, story)
}

// UpdateContent godoc
// @Summary Patch story notes by internal id
// @Tags Stories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Internal story id"
// @Param body body model.UpdateStoryContentRequest true "New content"
// @Success 200 {object} model.Story
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /stories/{id}/content [patch]
func (h *StoryHandler) UpdateContent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid story id"})
		return
	}

	var req model.UpdateStoryContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	story, err := h.storyRepo.UpdateContent(id, req.Content)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Story not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to update story content"})
		return
	}

	c.JSON(http.StatusOK, story)
}

// Delete godoc
// @Summary Remove a story by internal id
// @Tags Stories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Internal story id"
// @Success 200 {object} model.SuccessResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /stories/{id} [delete]
func (h *StoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid story id"})
		return
	}

	story, err := h.storyRepo.DeleteOne(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Story not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to delete story"})
		return
	}

	c.JSON(http.StatusOK, model.SuccessResponse{Message: "Story deleted", Data: story})
}
