package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platemind/backend/internal/model"
	"github.com/platemind/backend/internal/types"
)

// RecipeCompleter produces raw model output for a compiled prompt.
type RecipeCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// GeneratorService turns a generation request into a complete recipe. It
// prefers the LLM backend and falls back to the deterministic mock recipes
// whenever the backend is unconfigured, fails, or returns unusable output.
// Generate never returns an error.
type GeneratorService struct {
	backend RecipeCompleter
	mock    *MockRecipeService
	logger  *zap.Logger
}

func NewGeneratorService(backend RecipeCompleter, mock *MockRecipeService, logger *zap.Logger) *GeneratorService {
	return &GeneratorService{
		backend: backend,
		mock:    mock,
		logger:  logger,
	}
}

// Generate produces a recipe owned by userID. Anonymous callers pass
// model.AnonymousUserID.
func (s *GeneratorService) Generate(ctx context.Context, req types.RecipeRequest, userID string) *model.Recipe {
	fields := s.generateFields(ctx, req)

	now := time.Now().UTC()
	return &model.Recipe{
		ID:                  uuid.New(),
		CreatedAt:           now,
		UpdatedAt:           now,
		Title:               fields.Title,
		Description:         fields.Description,
		Ingredients:         model.JSONBIngredients(fields.Ingredients),
		Instructions:        model.JSONBStringArray(fields.Instructions),
		PrepTime:            fields.PrepTime,
		CookTime:            fields.CookTime,
		Servings:            fields.Servings,
		Difficulty:          fields.Difficulty,
		Cuisine:             fields.Cuisine,
		DietaryRestrictions: model.JSONBStringArray(fields.DietaryRestrictions),
		Nutrition:           model.JSONBNutrition(fields.Nutrition),
		ImageURL:            RecipeImageURL(fields.Title),
		YoutubeSearchTerm:   fields.YoutubeSearchTerm,
		UserID:              userID,
	}
}

func (s *GeneratorService) generateFields(ctx context.Context, req types.RecipeRequest) GeneratedRecipe {
	if s.backend == nil {
		return s.mock.Synthesize(req)
	}

	prompt := BuildRecipePrompt(req)
	content, err := s.backend.Complete(ctx, prompt)
	if err != nil {
		s.logger.Warn("llm completion failed, using mock recipe", zap.Error(err))
		return s.mock.Synthesize(req)
	}

	parsed, err := decodeRecipe(content)
	if err != nil {
		s.logger.Warn("llm returned unparseable recipe, using mock recipe", zap.Error(err))
		return s.mock.Synthesize(req)
	}

	return normalizeRecipe(parsed, req)
}

// parsedRecipe holds whichever recipe fields the model output actually
// contained. Pointers distinguish absent from zero.
type parsedRecipe struct {
	Title               *string
	Description         *string
	Ingredients         *[]model.Ingredient
	Instructions        *[]string
	PrepTime            *int
	CookTime            *int
	Servings            *int
	Difficulty          *string
	Cuisine             *string
	DietaryRestrictions *[]string
	Nutrition           *model.NutritionInfo
	YoutubeSearchTerm   *string
}

// decodeRecipe parses model output. The content must be a single JSON
// object; anything else fails the decode rather than being partially
// recovered. Fields with unexpected shapes are dropped, not fatal.
func decodeRecipe(content string) (parsedRecipe, error) {
	var parsed parsedRecipe

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &fields); err != nil {
		return parsed, err
	}
	if fields == nil {
		return parsed, errors.New("completion content is not a JSON object")
	}

	decodeField(fields, "title", &parsed.Title)
	decodeField(fields, "description", &parsed.Description)
	decodeField(fields, "ingredients", &parsed.Ingredients)
	decodeField(fields, "instructions", &parsed.Instructions)
	decodeField(fields, "prepTime", &parsed.PrepTime)
	decodeField(fields, "cookTime", &parsed.CookTime)
	decodeField(fields, "servings", &parsed.Servings)
	decodeField(fields, "difficulty", &parsed.Difficulty)
	decodeField(fields, "cuisine", &parsed.Cuisine)
	decodeField(fields, "dietaryRestrictions", &parsed.DietaryRestrictions)
	decodeField(fields, "nutritionInfo", &parsed.Nutrition)
	decodeField(fields, "youtubeSearchTerm", &parsed.YoutubeSearchTerm)

	return parsed, nil
}

// decodeField unmarshals a single field, leaving dst nil when the field is
// absent or has the wrong shape.
func decodeField[T any](fields map[string]json.RawMessage, key string, dst **T) {
	raw, ok := fields[key]
	if !ok {
		return
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return
	}
	*dst = &value
}

// normalizeRecipe fills every missing field from the fixed defaults, with
// request constraints taking precedence over defaults for servings,
// difficulty, cuisine, and dietary restrictions.
func normalizeRecipe(parsed parsedRecipe, req types.RecipeRequest) GeneratedRecipe {
	out := GeneratedRecipe{
		Title:        "Generated Recipe",
		Description:  "A delicious recipe created just for you.",
		Instructions: []string{"Prepare and enjoy your meal!"},
		PrepTime:     15,
		CookTime:     30,
		Servings:     4,
		Difficulty:   "easy",
		Cuisine:      "International",
		Nutrition: model.NutritionInfo{
			Calories: 350,
			Protein:  20,
			Carbs:    40,
			Fat:      12,
			Fiber:    6,
			Sugar:    8,
			Sodium:   500,
		},
		DietaryRestrictions: []string{},
	}

	out.Ingredients = make([]model.Ingredient, 0, len(req.Ingredients))
	for _, name := range req.Ingredients {
		out.Ingredients = append(out.Ingredients, model.Ingredient{Name: name, Amount: 1, Unit: "piece"})
	}

	if req.Servings != 0 {
		out.Servings = req.Servings
	}
	if req.Difficulty != "" {
		out.Difficulty = req.Difficulty
	}
	if req.Cuisine != "" {
		out.Cuisine = req.Cuisine
	}
	if req.DietaryRestrictions != nil {
		out.DietaryRestrictions = req.DietaryRestrictions
	}

	// Empty strings, empty lists, and non-positive numbers count as absent,
	// so the defaults above survive a degenerate but well-formed response.
	if parsed.Title != nil && *parsed.Title != "" {
		out.Title = *parsed.Title
	}
	if parsed.Description != nil && *parsed.Description != "" {
		out.Description = *parsed.Description
	}
	if parsed.Ingredients != nil && len(*parsed.Ingredients) > 0 {
		out.Ingredients = *parsed.Ingredients
	}
	if parsed.Instructions != nil && len(*parsed.Instructions) > 0 {
		out.Instructions = *parsed.Instructions
	}
	if parsed.PrepTime != nil && *parsed.PrepTime > 0 {
		out.PrepTime = *parsed.PrepTime
	}
	if parsed.CookTime != nil && *parsed.CookTime > 0 {
		out.CookTime = *parsed.CookTime
	}
	if parsed.Servings != nil && *parsed.Servings > 0 {
		out.Servings = *parsed.Servings
	}
	if parsed.Difficulty != nil && *parsed.Difficulty != "" {
		out.Difficulty = *parsed.Difficulty
	}
	if parsed.Cuisine != nil && *parsed.Cuisine != "" {
		out.Cuisine = *parsed.Cuisine
	}
	if parsed.DietaryRestrictions != nil {
		out.DietaryRestrictions = *parsed.DietaryRestrictions
	}
	if parsed.Nutrition != nil {
		out.Nutrition = *parsed.Nutrition
	}
	if parsed.YoutubeSearchTerm != nil {
		out.YoutubeSearchTerm = *parsed.YoutubeSearchTerm
	}

	return out
}
