package types

// RecipeRequest is the payload accepted by the generation endpoint. The first
// element of Ingredients carries the user's free-text request; the remaining
// fields are optional constraints.
type RecipeRequest struct {
	Ingredients         []string `json:"ingredients"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	Cuisine             string   `json:"cuisine"`
	Difficulty          string   `json:"difficulty"`
	PrepTime            int      `json:"prepTime"`
	Servings            int      `json:"servings"`
	MealType            string   `json:"mealType"`
}

// Prompt returns the free-text request embedded in the ingredients list.
func (r RecipeRequest) Prompt() string {
	if len(r.Ingredients) == 0 {
		return ""
	}
	return r.Ingredients[0]
}
