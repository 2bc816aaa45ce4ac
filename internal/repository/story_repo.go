package repository

import (
	"github.com/google/uuid"

	"github.com/clothesguard/api/internal/model"
	"gorm.io/gorm"
)

// StoryRepository handles database operations for Story. Full updates
// resolve the external story_id; the content patch and delete resolve
// the internal id, matching the inherited route contract.
type StoryRepository struct {
	db *gorm.DB
}

func NewStoryRepository(db *gorm.DB) *StoryRepository {
	return &StoryRepository{db: db}
}

// GetAll returns every story
func (r *StoryRepository) GetAll() ([]model.Story, error) {
	var stories []model.Story
	err := r.db.Find(&stories).Error
	return stories, translate(err)
}

// GetOne finds a story by external story_id
func (r *StoryRepository) GetOne(storyID string) (*model.Story, error) {
	var story model.Story
	if err := r.db.Where("story_id = ?", storyID).First(&story).Error; err != nil {
		return nil, translate(err)
	}
	return &story, nil
}

// GetByTitle finds a story by title
func (r *StoryRepository) GetByTitle(title string) (*model.Story, error) {
	var story model.Story
	if err := r.db.Where("title = ?", title).First(&story).Error; err != nil {
		return nil, translate(err)
	}
	return &story, nil
}

// Insert persists a new story
func (r *StoryRepository) Insert(story *model.Story) error {
	return translate(r.db.Create(story).Error)
}

// UpdateOne replaces the supplied fields of the story with the given
// external story_id and returns the updated record.
func (r *StoryRepository) UpdateOne(storyID string, req model.UpdateStoryRequest) (*model.Story, error) {
	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Dia != nil {
		updates["dia"] = *req.Dia
	}
	if req.HorasUso != "" {
		updates["horas_uso"] = req.HorasUso
	}
	if req.Indicaciones != nil {
		updates["indicaciones"] = *req.Indicaciones
	}
	if req.DiasActivos != nil {
		updates["dias_activos"] = *req.DiasActivos
	}

	if len(updates) > 0 {
		result := r.db.Model(&model.Story{}).Where("story_id = ?", storyID).Updates(updates)
		if result.Error != nil {
			return nil, translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return r.GetOne(storyID)
}

// UpdateContent patches the free-text notes of a story by internal id
func (r *StoryRepository) UpdateContent(id uuid.UUID, content string) (*model.Story, error) {
	result := r.db.Model(&model.Story{}).
		Where("id = ?", id).
		Update("indicaciones", content)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var story model.Story
	if err := r.db.Where("id = ?", id).First(&story).Error; err != nil {
		return nil, translate(err)
	}
	return &story, nil
}

// DeleteOne removes a story by internal id and returns the deleted record
func (r *StoryRepository) DeleteOne(id uuid.UUID) (*model.Story, error) {
	var story model.Story
	if err := r.db.Where("id = ?", id).First(&story).Error; err != nil {
		return nil, translate(err)
	}
	if err := r.db.Delete(&story).Error; err != nil {
		return nil, translate(err)
	}
	return &story, nil
}
