package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/platemind/backend/internal/model"
	"github.com/platemind/backend/internal/types"
)

type stubCompleter struct {
	content string
	err     error
	calls   int
}

func (s *stubCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	s.calls++
	return s.content, s.err
}

func newTestGenerator(backend RecipeCompleter) *GeneratorService {
	return NewGeneratorService(backend, NewMockRecipeService(), zap.NewNop())
}

func TestGeneratorService_NilBackendUsesMock(t *testing.T) {
	req := types.RecipeRequest{Ingredients: []string{"chicken biryani"}}
	generator := newTestGenerator(nil)

	recipe := generator.Generate(context.Background(), req, model.AnonymousUserID)

	require.NotNil(t, recipe)
	assert.Equal(t, "Chicken Biryani", recipe.Title)
	assert.Equal(t, model.AnonymousUserID, recipe.UserID)
}

func TestGeneratorService_BackendErrorFallsBack(t *testing.T) {
	backend := &stubCompleter{err: errors.New("upstream unavailable")}
	generator := newTestGenerator(backend)

	recipe := generator.Generate(context.Background(), types.RecipeRequest{Ingredients: []string{"pad thai"}}, model.AnonymousUserID)

	assert.Equal(t, 1, backend.calls)
	assert.Equal(t, "Pad Thai", recipe.Title)
}

func TestGeneratorService_MalformedOutputFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "plain prose", content: "Sorry, I can't help with that."},
		{name: "empty string", content: ""},
		{name: "broken json", content: `{"title": "Oops"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &stubCompleter{content: tt.content}
			generator := newTestGenerator(backend)

			recipe := generator.Generate(context.Background(), types.RecipeRequest{Ingredients: []string{"fried rice"}}, model.AnonymousUserID)

			assert.Equal(t, "Chicken Fried Rice", recipe.Title)
		})
	}
}

func TestGeneratorService_ParsesBackendOutput(t *testing.T) {
	backend := &stubCompleter{content: `{
		"title": "Lemon Garlic Salmon",
		"description": "Bright and quick.",
		"ingredients": [{"name": "salmon fillet", "amount": 2, "unit": "pieces", "notes": "skin on"}],
		"instructions": ["Season the salmon.", "Pan-sear for 4 minutes per side."],
		"prepTime": 10,
		"cookTime": 12,
		"servings": 2,
		"difficulty": "medium",
		"cuisine": "Mediterranean",
		"dietaryRestrictions": ["pescatarian"],
		"nutritionInfo": {"calories": 410, "protein": 38, "carbs": 4, "fat": 26, "fiber": 1, "sugar": 1, "sodium": 420},
		"youtubeSearchTerm": "how to make lemon garlic salmon"
	}`}
	generator := newTestGenerator(backend)

	recipe := generator.Generate(context.Background(), types.RecipeRequest{Ingredients: []string{"lemon garlic salmon"}}, model.AnonymousUserID)

	assert.Equal(t, "Lemon Garlic Salmon", recipe.Title)
	assert.Equal(t, "Bright and quick.", recipe.Description)
	require.Len(t, recipe.Ingredients, 1)
	assert.Equal(t, "salmon fillet", recipe.Ingredients[0].Name)
	assert.Equal(t, "skin on", recipe.Ingredients[0].Notes)
	assert.Equal(t, 10, recipe.PrepTime)
	assert.Equal(t, 12, recipe.CookTime)
	assert.Equal(t, 2, recipe.Servings)
	assert.Equal(t, "medium", recipe.Difficulty)
	assert.Equal(t, "Mediterranean", recipe.Cuisine)
	assert.Equal(t, model.JSONBStringArray{"pescatarian"}, recipe.DietaryRestrictions)
	assert.Equal(t, float64(410), recipe.Nutrition.Calories)
}

func TestGeneratorService_WrappedJSONFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "fenced json", content: "Here is your recipe:\n```json\n{\"title\": \"Miso Soup\"}\n```\nEnjoy!"},
		{name: "prose around json", content: "Sure! {\"title\": \"Miso Soup\"} Enjoy!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &stubCompleter{content: tt.content}
			generator := newTestGenerator(backend)

			recipe := generator.Generate(context.Background(), types.RecipeRequest{Ingredients: []string{"pad thai"}}, model.AnonymousUserID)

			assert.Equal(t, 1, backend.calls)
			assert.Equal(t, "Pad Thai", recipe.Title)
		})
	}
}

func TestGeneratorService_FillsDefaults(t *testing.T) {
	t.Run("missing fields get fixed defaults", func(t *testing.T) {
		backend := &stubCompleter{content: `{"title": "Bare Bones"}`}
		generator := newTestGenerator(backend)

		req := types.RecipeRequest{Ingredients: []string{"something", "something else"}}
		recipe := generator.Generate(context.Background(), req, model.AnonymousUserID)

		assert.Equal(t, "Bare Bones", recipe.Title)
		assert.Equal(t, "A delicious recipe created just for you.", recipe.Description)
		require.Len(t, recipe.Ingredients, 2)
		assert.Equal(t, model.Ingredient{Name: "something", Amount: 1, Unit: "piece"}, recipe.Ingredients[0])
		assert.Equal(t, model.JSONBStringArray{"Prepare and enjoy your meal!"}, recipe.Instructions)
		assert.Equal(t, 15, recipe.PrepTime)
		assert.Equal(t, 30, recipe.CookTime)
		assert.Equal(t, 4, recipe.Servings)
		assert.Equal(t, "easy", recipe.Difficulty)
		assert.Equal(t, "International", recipe.Cuisine)
		assert.Equal(t, model.JSONBNutrition{
			Calories: 350, Protein: 20, Carbs: 40, Fat: 12, Fiber: 6, Sugar: 8, Sodium: 500,
		}, recipe.Nutrition)
	})

	t.Run("empty parsed fields get fixed defaults", func(t *testing.T) {
		backend := &stubCompleter{content: `{"title": "", "ingredients": [], "instructions": [], "servings": 0, "prepTime": -5, "difficulty": ""}`}
		generator := newTestGenerator(backend)

		req := types.RecipeRequest{Ingredients: []string{"something"}}
		recipe := generator.Generate(context.Background(), req, model.AnonymousUserID)

		assert.Equal(t, "Generated Recipe", recipe.Title)
		require.Len(t, recipe.Ingredients, 1)
		assert.Equal(t, model.Ingredient{Name: "something", Amount: 1, Unit: "piece"}, recipe.Ingredients[0])
		assert.Equal(t, model.JSONBStringArray{"Prepare and enjoy your meal!"}, recipe.Instructions)
		assert.Equal(t, 4, recipe.Servings)
		assert.Equal(t, 15, recipe.PrepTime)
		assert.Equal(t, "easy", recipe.Difficulty)
	})

	t.Run("request constraints beat fixed defaults", func(t *testing.T) {
		backend := &stubCompleter{content: `{"title": "Bare Bones"}`}
		generator := newTestGenerator(backend)

		req := types.RecipeRequest{
			Ingredients:         []string{"something"},
			Servings:            2,
			Difficulty:          "hard",
			Cuisine:             "French",
			DietaryRestrictions: []string{"vegan"},
		}
		recipe := generator.Generate(context.Background(), req, model.AnonymousUserID)

		assert.Equal(t, 2, recipe.Servings)
		assert.Equal(t, "hard", recipe.Difficulty)
		assert.Equal(t, "French", recipe.Cuisine)
		assert.Equal(t, model.JSONBStringArray{"vegan"}, recipe.DietaryRestrictions)
	})

	t.Run("parsed values beat request constraints", func(t *testing.T) {
		backend := &stubCompleter{content: `{"servings": 6, "cuisine": "Thai"}`}
		generator := newTestGenerator(backend)

		req := types.RecipeRequest{Ingredients: []string{"something"}, Servings: 2, Cuisine: "French"}
		recipe := generator.Generate(context.Background(), req, model.AnonymousUserID)

		assert.Equal(t, 6, recipe.Servings)
		assert.Equal(t, "Thai", recipe.Cuisine)
	})

	t.Run("wrong field shapes fall back to defaults", func(t *testing.T) {
		backend := &stubCompleter{content: `{"title": "Odd Shapes", "servings": "six", "instructions": "just cook it"}`}
		generator := newTestGenerator(backend)

		recipe := generator.Generate(context.Background(), types.RecipeRequest{Ingredients: []string{"something"}}, model.AnonymousUserID)

		assert.Equal(t, "Odd Shapes", recipe.Title)
		assert.Equal(t, 4, recipe.Servings)
		assert.Equal(t, model.JSONBStringArray{"Prepare and enjoy your meal!"}, recipe.Instructions)
	})
}

func TestGeneratorService_AssignsIdentity(t *testing.T) {
	generator := newTestGenerator(nil)
	userID := uuid.NewString()

	recipe := generator.Generate(context.Background(), types.RecipeRequest{Ingredients: []string{"burger"}}, userID)

	assert.NotEqual(t, uuid.Nil, recipe.ID)
	assert.False(t, recipe.CreatedAt.IsZero())
	assert.False(t, recipe.UpdatedAt.IsZero())
	assert.Equal(t, userID, recipe.UserID)
	assert.NotEmpty(t, recipe.ImageURL)
}

func TestGeneratorService_DistinctIDs(t *testing.T) {
	generator := newTestGenerator(nil)
	req := types.RecipeRequest{Ingredients: []string{"burger"}}

	first := generator.Generate(context.Background(), req, model.AnonymousUserID)
	second := generator.Generate(context.Background(), req, model.AnonymousUserID)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.Title, second.Title)
}
