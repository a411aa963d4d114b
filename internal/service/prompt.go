package service

import (
	"fmt"
	"strings"

	"github.com/platemind/backend/internal/types"
)

// BuildRecipePrompt compiles a generation request into the user prompt sent
// to the chat completions API. Pure function of the request.
func BuildRecipePrompt(req types.RecipeRequest) string {
	servings := req.Servings
	if servings == 0 {
		servings = 4
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "easy"
	}

	cuisine := req.Cuisine
	if cuisine == "" {
		cuisine = "any"
	}

	restrictions := "none"
	if len(req.DietaryRestrictions) > 0 {
		restrictions = strings.Join(req.DietaryRestrictions, ", ")
	}

	return fmt.Sprintf(`The user asked: %q

Please create a complete recipe based on this request. Extract the dish name and create a detailed recipe with:
- Proper ingredient list with specific amounts and measurements
- Detailed step-by-step cooking instructions
- Realistic cooking times and serving information
- Nutritional information

Requirements:
- Servings: %d
- Difficulty: %s
- Cuisine: %s
- Dietary restrictions: %s

Return ONLY a valid JSON object with this exact structure:
{
  "title": "Proper dish name (e.g., Anday Wala Burger)",
  "description": "Brief description of the dish",
  "ingredients": [
    {"name": "specific ingredient", "amount": 2, "unit": "pieces"},
    {"name": "another ingredient", "amount": 1, "unit": "cup"}
  ],
  "instructions": [
    "Detailed step 1 with specific instructions",
    "Detailed step 2 with cooking methods and times",
    "More detailed steps..."
  ],
  "prepTime": 15,
  "cookTime": 25,
  "servings": 4,
  "difficulty": "easy",
  "cuisine": "relevant cuisine",
  "dietaryRestrictions": [],
  "nutritionInfo": {
    "calories": 450,
    "protein": 20,
    "carbs": 35,
    "fat": 18,
    "fiber": 4,
    "sugar": 6,
    "sodium": 800
  },
  "youtubeSearchTerm": "how to make [dish name] recipe"
}`, req.Prompt(), servings, difficulty, cuisine, restrictions)
}
