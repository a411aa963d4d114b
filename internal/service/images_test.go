package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecipeImageURL(t *testing.T) {
	t.Run("exact match", func(t *testing.T) {
		assert.Equal(t, "/images/The_BEST_Fried_Rice_Recipe_Ready_in_15_Minutes_0.jpg", RecipeImageURL("fried rice"))
	})

	t.Run("emoji and case are ignored", func(t *testing.T) {
		assert.Equal(t, "/images/Chicken_Shawarma_Recipe_0.jpg", RecipeImageURL("🥙 Chicken Shawarma"))
	})

	t.Run("partial match on longer titles", func(t *testing.T) {
		assert.Equal(t, "/images/Hyderabad_Chicken_Biryani_0.jpg", RecipeImageURL("Best Chicken Biryani Ever"))
	})

	t.Run("title contained in a key", func(t *testing.T) {
		assert.Equal(t, "/images/Easy_Spaghetti_Bolognese_0.jpg", RecipeImageURL("spaghetti bolognese"))
	})

	t.Run("unknown dish falls back to default", func(t *testing.T) {
		assert.Equal(t, defaultRecipeImage, RecipeImageURL("xyzzy"))
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, RecipeImageURL("Chocolate Cake Recipe"), RecipeImageURL("Chocolate Cake Recipe"))
	})
}
