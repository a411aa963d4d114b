package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platemind/backend/internal/types"
)

func synthesize(input string) GeneratedRecipe {
	return NewMockRecipeService().Synthesize(types.RecipeRequest{Ingredients: []string{input}})
}

func TestMockRecipeService_KeywordDishes(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		title      string
		cuisine    string
		difficulty string
	}{
		{
			name:       "shawarma",
			input:      "How to make chicken shawarma?",
			title:      "🥙 Chicken Shawarma",
			cuisine:    "Middle Eastern",
			difficulty: "easy",
		},
		{
			name:       "chicken pizza",
			input:      "chicken and cheese pizza please",
			title:      "🍕 Chicken Supreme Pizza",
			cuisine:    "Italian-American",
			difficulty: "easy",
		},
		{
			name:       "chocolate cake",
			input:      "a rich chocolate cake",
			title:      "🍫 Chocolate Cake",
			cuisine:    "American",
			difficulty: "easy",
		},
		{
			name:       "beef burger",
			input:      "classic burger recipe",
			title:      "🍔 Classic Beef Burger",
			cuisine:    "American",
			difficulty: "easy",
		},
		{
			name:       "chicken burger",
			input:      "grilled chicken burger",
			title:      "🍗 Grilled Chicken Burger",
			cuisine:    "American",
			difficulty: "easy",
		},
		{
			name:       "bare burger falls through to egg burger",
			input:      "burger",
			title:      "Anday Wala Burger (Egg Burger)",
			cuisine:    "Pakistani",
			difficulty: "easy",
		},
		{
			name:       "biryani",
			input:      "chicken biryani",
			title:      "Chicken Biryani",
			cuisine:    "Pakistani/Indian",
			difficulty: "medium",
		},
		{
			name:       "fried rice",
			input:      "easy fried rice",
			title:      "Chicken Fried Rice",
			cuisine:    "Chinese",
			difficulty: "easy",
		},
		{
			name:       "pad thai",
			input:      "pad thai",
			title:      "Pad Thai",
			cuisine:    "Thai",
			difficulty: "easy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipe := synthesize(tt.input)
			assert.Equal(t, tt.title, recipe.Title)
			assert.Equal(t, tt.cuisine, recipe.Cuisine)
			assert.Equal(t, tt.difficulty, recipe.Difficulty)
			assert.NotEmpty(t, recipe.Ingredients)
			assert.NotEmpty(t, recipe.Instructions)
		})
	}
}

func TestMockRecipeService_Precedence(t *testing.T) {
	t.Run("chicken pizza beats bare burger keywords", func(t *testing.T) {
		// Contains both "chicken" and "pizza", so the pizza template must
		// win even though "burger" appears later in the text.
		recipe := synthesize("chicken pizza not a burger")
		assert.Equal(t, "🍕 Chicken Supreme Pizza", recipe.Title)
	})

	t.Run("beef burger beats bare burger", func(t *testing.T) {
		recipe := synthesize("hamburger")
		assert.Equal(t, "🍔 Classic Beef Burger", recipe.Title)
	})

	t.Run("shawarma beats cuisine fallbacks", func(t *testing.T) {
		recipe := synthesize("shawarma with curry flavors")
		assert.Equal(t, "🥙 Chicken Shawarma", recipe.Title)
	})
}

func TestMockRecipeService_CuisineFallbacks(t *testing.T) {
	t.Run("indian keywords", func(t *testing.T) {
		recipe := synthesize("paneer masala")
		assert.Equal(t, "Paneer masala Recipe", recipe.Title)
		assert.Equal(t, "Indian", recipe.Cuisine)
		require.NotEmpty(t, recipe.Ingredients)
		assert.Equal(t, "paneer masala", recipe.Ingredients[0].Name)
	})

	t.Run("chinese keywords", func(t *testing.T) {
		recipe := synthesize("tofu stir fry")
		assert.Equal(t, "Chinese", recipe.Cuisine)
		assert.Equal(t, "Tofu stir fry Recipe", recipe.Title)
	})

	t.Run("italian keywords", func(t *testing.T) {
		recipe := synthesize("creamy mushroom pasta")
		assert.Equal(t, "Italian", recipe.Cuisine)
	})

	t.Run("generic international catch-all", func(t *testing.T) {
		recipe := synthesize("grilled halloumi skewers")
		assert.Equal(t, "International", recipe.Cuisine)
		assert.Equal(t, "Grilled halloumi skewers Recipe", recipe.Title)
	})
}

func TestMockRecipeService_DishNameCleanup(t *testing.T) {
	t.Run("strips filler words and question marks", func(t *testing.T) {
		recipe := synthesize("How to make pancakes?")
		assert.Equal(t, "Pancakes Recipe", recipe.Title)
	})

	t.Run("empty input yields placeholder title", func(t *testing.T) {
		recipe := synthesize("")
		assert.Equal(t, "Delicious Recipe", recipe.Title)
		require.NotEmpty(t, recipe.Ingredients)
		assert.Equal(t, "main ingredient", recipe.Ingredients[0].Name)
	})

	t.Run("input that is all filler yields placeholder title", func(t *testing.T) {
		recipe := synthesize("recipe ingredients?")
		assert.Equal(t, "Delicious Recipe", recipe.Title)
	})
}

func TestMockRecipeService_DerivedText(t *testing.T) {
	recipe := synthesize("chicken shawarma")

	assert.Contains(t, recipe.Description, "An authentic and delicious")
	assert.Contains(t, recipe.Description, "chicken shawarma with traditional flavors")
	assert.NotContains(t, recipe.Description, "🥙")

	assert.Contains(t, recipe.YoutubeSearchTerm, "how to make")
	assert.Contains(t, recipe.YoutubeSearchTerm, "recipe authentic")
	assert.NotContains(t, recipe.YoutubeSearchTerm, "🥙")
}

func TestMockRecipeService_Deterministic(t *testing.T) {
	req := types.RecipeRequest{Ingredients: []string{"chicken biryani for a party"}}
	svc := NewMockRecipeService()

	first := svc.Synthesize(req)
	second := svc.Synthesize(req)

	assert.Equal(t, first, second)
}

func TestMockRecipeService_AlwaysComplete(t *testing.T) {
	inputs := []string{"", "burger", "quantum soup", "How to make sushi?", "pad thai"}

	for _, input := range inputs {
		recipe := synthesize(input)
		assert.NotEmpty(t, recipe.Title)
		assert.NotEmpty(t, recipe.Description)
		assert.NotEmpty(t, recipe.Instructions)
		assert.Positive(t, recipe.PrepTime)
		assert.Positive(t, recipe.CookTime)
		assert.Positive(t, recipe.Servings)
		assert.NotEmpty(t, recipe.Cuisine)
		assert.NotNil(t, recipe.DietaryRestrictions)
		assert.Positive(t, recipe.Nutrition.Calories)
	}
}
