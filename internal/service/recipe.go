package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/platemind/backend/internal/model"
)

// RecipeService persists and retrieves generated recipes.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

func (s *RecipeService) Create(recipe *model.Recipe) error {
	return s.db.Create(recipe).Error
}

// ListByOwner returns the owner's recipes, newest first.
func (s *RecipeService) ListByOwner(userID string) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&recipes).Error
	return recipes, err
}

// ListRecent returns the global feed, newest first.
func (s *RecipeService) ListRecent(limit int) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := s.db.Order("created_at DESC").Limit(limit).Find(&recipes).Error
	return recipes, err
}

// GetByID returns nil without error when no recipe matches.
func (s *RecipeService) GetByID(id string) (*model.Recipe, error) {
	var recipe model.Recipe
	err := s.db.First(&recipe, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// DeleteByOwner removes a recipe only when it belongs to userID. Returns
// whether a row was deleted.
func (s *RecipeService) DeleteByOwner(id, userID string) (bool, error) {
	result := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Recipe{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
