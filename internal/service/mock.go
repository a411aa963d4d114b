package service

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/platemind/backend/internal/model"
	"github.com/platemind/backend/internal/types"
)

// GeneratedRecipe is the normalized output of the generation pipeline before
// the orchestrator assigns identity and ownership.
type GeneratedRecipe struct {
	Title               string              `json:"title"`
	Description         string              `json:"description"`
	Ingredients         []model.Ingredient  `json:"ingredients"`
	Instructions        []string            `json:"instructions"`
	PrepTime            int                 `json:"prepTime"`
	CookTime            int                 `json:"cookTime"`
	Servings            int                 `json:"servings"`
	Difficulty          string              `json:"difficulty"`
	Cuisine             string              `json:"cuisine"`
	DietaryRestrictions []string            `json:"dietaryRestrictions"`
	Nutrition           model.NutritionInfo `json:"nutritionInfo"`
	YoutubeSearchTerm   string              `json:"youtubeSearchTerm"`
}

var fillerPattern = regexp.MustCompile(`(?i)how to make|recipe|ingredients|\?`)

var dishEmojiPattern = regexp.MustCompile(`🍫|🥙|🍕|🍜|🍣|🌮|🍛|🥘|🥗|🍲`)

// MockRecipeService produces recipes from a fixed keyword table. It is the
// deterministic stand-in used whenever the LLM backend is unavailable or
// returns something unusable.
type MockRecipeService struct {
	dishes []dishTemplate
}

// dishTemplate pairs a keyword predicate with a recipe builder. Templates are
// tried in order and the first match wins, so more specific dishes must come
// before the generic ones.
type dishTemplate struct {
	match func(input string) bool
	build func(input, cleaned string) GeneratedRecipe
}

func NewMockRecipeService() *MockRecipeService {
	return &MockRecipeService{dishes: dishTable()}
}

// Synthesize builds a recipe for the request. Total and deterministic: the
// same request always yields the same recipe.
func (s *MockRecipeService) Synthesize(req types.RecipeRequest) GeneratedRecipe {
	userInput := req.Prompt()
	input := strings.ToLower(userInput)
	cleaned := strings.TrimSpace(fillerPattern.ReplaceAllString(userInput, ""))

	for _, dish := range s.dishes {
		if dish.match(input) {
			return dish.build(input, cleaned)
		}
	}

	// The table ends with a catch-all, so this is unreachable.
	return newMockRecipe(derivedDishName(cleaned), "International", 15, 25, 4, nil, nil, model.NutritionInfo{}, "easy")
}

// derivedDishName turns the cleaned request text into a display title.
func derivedDishName(cleaned string) string {
	if cleaned == "" {
		return "Delicious Recipe"
	}
	runes := []rune(cleaned)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes) + " Recipe"
}

func stripDishEmojis(s string) string {
	return dishEmojiPattern.ReplaceAllString(s, "")
}

// newMockRecipe standardizes recipe creation across the dish table.
func newMockRecipe(
	dishName string,
	cuisine string,
	prepTime, cookTime, servings int,
	ingredients []model.Ingredient,
	instructions []string,
	nutrition model.NutritionInfo,
	difficulty string,
) GeneratedRecipe {
	return GeneratedRecipe{
		Title:               dishName,
		Description:         "An authentic and delicious " + stripDishEmojis(strings.ToLower(dishName)) + " with traditional flavors and detailed preparation steps.",
		Ingredients:         ingredients,
		Instructions:        instructions,
		PrepTime:            prepTime,
		CookTime:            cookTime,
		Servings:            servings,
		Difficulty:          difficulty,
		Cuisine:             cuisine,
		DietaryRestrictions: []string{},
		Nutrition:           nutrition,
		YoutubeSearchTerm:   "how to make " + stripDishEmojis(dishName) + " recipe authentic",
	}
}

func dishTable() []dishTemplate {
	return []dishTemplate{
		{
			match: func(input string) bool {
				return strings.Contains(input, "chicken shawarma") || strings.Contains(input, "shawarma")
			},
			build: func(input, cleaned string) GeneratedRecipe {
				return newMockRecipe(
					"🥙 Chicken Shawarma",
					"Middle Eastern",
					30, 20, 4,
					[]model.Ingredient{
						{Name: "chicken thighs (boneless)", Amount: 2, Unit: "lbs (900g)"},
						{Name: "plain Greek yogurt", Amount: 0.5, Unit: "cup"},
						{Name: "lemon juice", Amount: 3, Unit: "tbsp"},
						{Name: "olive oil", Amount: 3, Unit: "tbsp"},
						{Name: "garlic cloves (minced)", Amount: 4, Unit: "pieces"},
						{Name: "ground cumin", Amount: 2, Unit: "tsp"},
						{Name: "paprika", Amount: 2, Unit: "tsp"},
						{Name: "ground coriander", Amount: 1, Unit: "tsp"},
						{Name: "turmeric", Amount: 1, Unit: "tsp"},
						{Name: "cinnamon", Amount: 0.5, Unit: "tsp"},
						{Name: "cayenne pepper", Amount: 0.25, Unit: "tsp"},
						{Name: "salt", Amount: 1.5, Unit: "tsp"},
						{Name: "black pepper", Amount: 0.5, Unit: "tsp"},
						{Name: "pita bread", Amount: 4, Unit: "pieces"},
						{Name: "red onion (sliced)", Amount: 0.5, Unit: "medium"},
						{Name: "cucumber (diced)", Amount: 1, Unit: "medium"},
						{Name: "tomatoes (diced)", Amount: 2, Unit: "medium"},
						{Name: "tahini sauce", Amount: 0.25, Unit: "cup"},
					},
					[]string{
						"In a bowl, mix yogurt, lemon juice, olive oil, garlic, and all spices to make marinade.",
						"Cut chicken into thin strips and marinate for at least 30 minutes (or overnight).",
						"Heat a large skillet or grill pan over medium-high heat.",
						"Cook marinated chicken for 6-8 minutes until golden and cooked through.",
						"Warm pita bread in a dry pan or oven.",
						"Slice chicken into smaller pieces if needed.",
						"Fill pita bread with chicken, onions, cucumber, and tomatoes.",
						"Drizzle with tahini sauce and serve immediately.",
						"Serve with pickles and hot sauce on the side.",
					},
					model.NutritionInfo{Calories: 420, Protein: 35, Carbs: 25, Fat: 22, Fiber: 3, Sugar: 8, Sodium: 890},
					"easy",
				)
			},
		},
		{
			match: func(input string) bool {
				return strings.Contains(input, "chicken") &&
					(strings.Contains(input, "pizza") || strings.Contains(input, "cheese pizza"))
			},
			build: func(input, cleaned string) GeneratedRecipe {
				return newMockRecipe(
					"🍕 Chicken Supreme Pizza",
					"Italian-American",
					20, 15, 4,
					[]model.Ingredient{
						{Name: "pizza dough", Amount: 1, Unit: "ball (store-bought or homemade)"},
						{Name: "tomato sauce", Amount: 0.5, Unit: "cup"},
						{Name: "mozzarella cheese (shredded)", Amount: 2, Unit: "cups"},
						{Name: "cheddar cheese (shredded)", Amount: 0.5, Unit: "cup"},
						{Name: "cooked chicken breast (diced)", Amount: 1.5, Unit: "cups"},
						{Name: "red onion (sliced)", Amount: 0.25, Unit: "medium"},
						{Name: "bell peppers (sliced)", Amount: 0.5, Unit: "cup"},
						{Name: "mushrooms (sliced)", Amount: 0.5, Unit: "cup"},
						{Name: "olive oil", Amount: 2, Unit: "tbsp"},
						{Name: "garlic powder", Amount: 1, Unit: "tsp"},
						{Name: "Italian seasoning", Amount: 1, Unit: "tsp"},
						{Name: "salt", Amount: 0.5, Unit: "tsp"},
						{Name: "black pepper", Amount: 0.25, Unit: "tsp"},
					},
					[]string{
						"Preheat oven to 475°F (245°C).",
						"Roll out pizza dough on a floured surface to desired thickness.",
						"Transfer dough to a pizza pan or baking sheet.",
						"Brush dough with olive oil and sprinkle with garlic powder.",
						"Spread tomato sauce evenly, leaving a border for crust.",
						"Sprinkle mozzarella cheese over the sauce.",
						"Add diced chicken, onions, bell peppers, and mushrooms.",
						"Top with cheddar cheese and season with Italian seasoning, salt, and pepper.",
						"Bake for 12-15 minutes until crust is golden and cheese is bubbly.",
						"Let cool for 2-3 minutes before slicing and serving.",
					},
					model.NutritionInfo{Calories: 320, Protein: 18, Carbs: 35, Fat: 12, Fiber: 2, Sugar: 4, Sodium: 720},
					"easy",
				)
			},
		},
		{
			match: func(input string) bool {
				return strings.Contains(input, "chocolate cake") ||
					(strings.Contains(input, "cake") && strings.Contains(input, "chocolate"))
			},
			build: func(input, cleaned string) GeneratedRecipe {
				return newMockRecipe(
					"🍫 Chocolate Cake",
					"American",
					15, 30, 8,
					[]model.Ingredient{
						{Name: "all-purpose flour", Amount: 1.75, Unit: "cups (220g)"},
						{Name: "unsweetened cocoa powder", Amount: 0.75, Unit: "cup (65g)"},
						{Name: "granulated sugar", Amount: 2, Unit: "cups (400g)"},
						{Name: "baking powder", Amount: 1.5, Unit: "tsp"},
						{Name: "baking soda", Amount: 1.5, Unit: "tsp"},
						{Name: "salt", Amount: 0.5, Unit: "tsp"},
						{Name: "large eggs", Amount: 2, Unit: "pieces"},
						{Name: "whole milk", Amount: 1, Unit: "cup (240ml)"},
						{Name: "vegetable oil", Amount: 0.5, Unit: "cup (120ml)"},
						{Name: "vanilla extract", Amount: 2, Unit: "tsp"},
						{Name: "boiling water (or hot coffee)", Amount: 1, Unit: "cup (240ml)"},
					},
					[]string{
						"Preheat oven to 350°F (175°C). Grease and flour two 9-inch round cake pans.",
						"In a large bowl, whisk together flour, cocoa powder, sugar, baking powder, baking soda, and salt.",
						"Add eggs, milk, oil, and vanilla. Beat on medium speed for 2 minutes.",
						"Slowly stir in the boiling water (batter will be thin).",
						"Divide batter into prepared pans and bake for 25–30 minutes.",
						"Cool in pans for 10 minutes, then transfer to wire racks.",
						"Frost when completely cool.",
					},
					model.NutritionInfo{Calories: 360, Protein: 5, Carbs: 50, Fat: 15, Fiber: 3, Sugar: 35, Sodium: 280},
					"easy",
				)
			},
		},
		{
			match: func(input string) bool {
				return strings.Contains(input, "beef burger") ||
					strings.Contains(input, "classic burger") ||
					strings.Contains(input, "hamburger")
			},
			build: func(input, cleaned string) GeneratedRecipe {
				return newMockRecipe(
					"🍔 Classic Beef Burger",
					"American",
					15, 15, 4,
					[]model.Ingredient{
						{Name: "ground beef (80/20)", Amount: 1.5, Unit: "lbs (680g)"},
						{Name: "burger buns", Amount: 4, Unit: "pieces"},
						{Name: "American cheese slices", Amount: 4, Unit: "pieces"},
						{Name: "lettuce leaves", Amount: 4, Unit: "pieces"},
						{Name: "tomato (sliced)", Amount: 1, Unit: "large"},
						{Name: "red onion (sliced)", Amount: 0.5, Unit: "medium"},
						{Name: "dill pickles", Amount: 8, Unit: "slices"},
						{Name: "mayonnaise", Amount: 3, Unit: "tbsp"},
						{Name: "ketchup", Amount: 2, Unit: "tbsp"},
						{Name: "mustard", Amount: 1, Unit: "tbsp"},
						{Name: "salt", Amount: 1, Unit: "tsp"},
						{Name: "black pepper", Amount: 0.5, Unit: "tsp"},
						{Name: "garlic powder", Amount: 0.5, Unit: "tsp"},
						{Name: "onion powder", Amount: 0.5, Unit: "tsp"},
						{Name: "olive oil or butter", Amount: 1, Unit: "tbsp"},
					},
					[]string{
						"Divide ground beef into 4 equal portions and form into patties slightly larger than buns.",
						"Season both sides of patties with salt, pepper, garlic powder, and onion powder.",
						"Heat a grill pan or skillet over medium-high heat and add oil or butter.",
						"Cook burger patties for 3-4 minutes on first side without pressing down.",
						"Flip patties and cook for another 3-4 minutes for medium doneness.",
						"In the last minute, place cheese slices on patties to melt.",
						"Toast burger buns cut-side down in the same pan until golden.",
						"Spread mayonnaise on bottom bun, add lettuce leaf.",
						"Place cooked beef patty with melted cheese on lettuce.",
						"Add tomato slices, onion, and pickles.",
						"Spread ketchup and mustard on top bun, close burger.",
						"Serve immediately with fries or onion rings.",
					},
					model.NutritionInfo{Calories: 540, Protein: 28, Carbs: 35, Fat: 32, Fiber: 3, Sugar: 6, Sodium: 920},
					"easy",
				)
			},
		},
		{
			match: func(input string) bool {
				return strings.Contains(input, "chicken burger") || strings.Contains(input, "grilled chicken burger")
			},
			build: func(input, cleaned string) GeneratedRecipe {
				return newMockRecipe(
					"🍗 Grilled Chicken Burger",
					"American",
					20, 15, 4,
					[]model.Ingredient{
						{Name: "chicken breast (boneless)", Amount: 4, Unit: "pieces (6oz each)"},
						{Name: "burger buns", Amount: 4, Unit: "pieces"},
						{Name: "Swiss cheese slices", Amount: 4, Unit: "pieces"},
						{Name: "lettuce leaves", Amount: 4, Unit: "pieces"},
						{Name: "tomato (sliced)", Amount: 1, Unit: "large"},
						{Name: "red onion (sliced)", Amount: 0.5, Unit: "medium"},
						{Name: "avocado (sliced)", Amount: 1, Unit: "large"},
						{Name: "mayonnaise", Amount: 3, Unit: "tbsp"},
						{Name: "olive oil", Amount: 2, Unit: "tbsp"},
						{Name: "lemon juice", Amount: 1, Unit: "tbsp"},
						{Name: "garlic powder", Amount: 1, Unit: "tsp"},
						{Name: "paprika", Amount: 1, Unit: "tsp"},
						{Name: "salt", Amount: 1, Unit: "tsp"},
						{Name: "black pepper", Amount: 0.5, Unit: "tsp"},
						{Name: "dried thyme", Amount: 0.5, Unit: "tsp"},
					},
					[]string{
						"Pound chicken breasts to even 1/2-inch thickness.",
						"Mix olive oil, lemon juice, garlic powder, paprika, thyme, salt, and pepper.",
						"Marinate chicken in the mixture for at least 15 minutes.",
						"Heat grill pan or skillet over medium-high heat.",
						"Cook chicken for 6-7 minutes per side until internal temp reaches 165°F.",
						"In the last minute, place cheese on chicken to melt.",
						"Toast burger buns until golden.",
						"Spread mayonnaise on both sides of buns.",
						"Layer bottom bun with lettuce, grilled chicken with melted cheese.",
						"Add tomato slices, red onion, and avocado.",
						"Top with upper bun and serve immediately.",
						"Serve with sweet potato fries or coleslaw.",
					},
					model.NutritionInfo{Calories: 420, Protein: 35, Carbs: 32, Fat: 18, Fiber: 3, Sugar: 5, Sodium: 780},
					"easy",
				)
			},
		},
		{
			match: func(input string) bool {
				return strings.Contains(input, "burger") || strings.Contains(input, "anday wala")
			},
			build: func(input, cleaned string) GeneratedRecipe {
				return newMockRecipe(
					"Anday Wala Burger (Egg Burger)",
					"Pakistani",
					15, 25, 4,
					[]model.Ingredient{
						{Name: "burger buns", Amount: 4, Unit: "pieces"},
						{Name: "eggs", Amount: 4, Unit: "pieces"},
						{Name: "onion (sliced)", Amount: 1, Unit: "medium"},
						{Name: "tomato (sliced)", Amount: 1, Unit: "medium"},
						{Name: "lettuce leaves", Amount: 4, Unit: "pieces"},
						{Name: "cheese slices", Amount: 4, Unit: "pieces"},
						{Name: "mayonnaise", Amount: 3, Unit: "tbsp"},
						{Name: "ketchup", Amount: 2, Unit: "tbsp"},
						{Name: "butter", Amount: 2, Unit: "tbsp"},
						{Name: "salt", Amount: 1, Unit: "tsp"},
						{Name: "black pepper", Amount: 0.5, Unit: "tsp"},
						{Name: "oil for frying", Amount: 2, Unit: "tbsp"},
					},
					[]string{
						"Heat oil in a non-stick pan over medium heat.",
						"Crack eggs and season with salt and pepper. Cook sunny-side up.",
						"Toast burger buns with butter until golden.",
						"Slice onions and tomatoes. Wash lettuce leaves.",
						"Spread mayonnaise on bottom bun, ketchup on top bun.",
						"Layer: lettuce, cooked egg, cheese, onion, tomato.",
						"Cover with top bun and serve immediately.",
					},
					model.NutritionInfo{Calories: 450, Protein: 20, Carbs: 35, Fat: 18, Fiber: 4, Sugar: 6, Sodium: 800},
					"easy",
				)
			},
		},
		{
			match: func(input string) bool {
				return strings.Contains(input, "biryani")
			},
			build: func(input, cleaned string) GeneratedRecipe {
				return newMockRecipe(
					"Chicken Biryani",
					"Pakistani/Indian",
					30, 45, 6,
					[]model.Ingredient{
						{Name: "basmati rice", Amount: 2, Unit: "cups"},
						{Name: "chicken (cut in pieces)", Amount: 1, Unit: "kg"},
						{Name: "yogurt", Amount: 0.5, Unit: "cup"},
						{Name: "ginger-garlic paste", Amount: 2, Unit: "tbsp"},
						{Name: "red chili powder", Amount: 1, Unit: "tsp"},
						{Name: "turmeric powder", Amount: 0.5, Unit: "tsp"},
						{Name: "garam masala", Amount: 1, Unit: "tsp"},
						{Name: "onions (fried)", Amount: 1, Unit: "cup"},
						{Name: "fresh mint leaves", Amount: 0.5, Unit: "cup"},
						{Name: "saffron soaked in milk", Amount: 0.25, Unit: "cup"},
						{Name: "ghee/oil", Amount: 4, Unit: "tbsp"},
						{Name: "salt", Amount: 2, Unit: "tsp"},
					},
					[]string{
						"Marinate chicken with yogurt, ginger-garlic paste, and spices for 30 minutes.",
						"Soak rice for 30 minutes, then drain.",
						"Cook marinated chicken until 70% done.",
						"Boil water with whole spices and cook rice until 70% done.",
						"Layer chicken and rice in a heavy-bottomed pot.",
						"Top with fried onions, mint, and saffron milk.",
						"Cover tightly and cook on high for 3-4 minutes, then low for 45 minutes.",
						"Rest for 10 minutes before serving.",
					},
					model.NutritionInfo{Calories: 480, Protein: 25, Carbs: 65, Fat: 12, Fiber: 2, Sugar: 8, Sodium: 900},
					"medium",
				)
			},
		},
		{
			match: func(input string) bool {
				return strings.Contains(input, "fried rice")
			},
			build: func(input, cleaned string) GeneratedRecipe {
				return newMockRecipe(
					"Chicken Fried Rice",
					"Chinese",
					15, 15, 4,
					[]model.Ingredient{
						{Name: "cooked rice (day-old)", Amount: 4, Unit: "cups"},
						{Name: "chicken breast (diced)", Amount: 2, Unit: "pieces"},
						{Name: "eggs", Amount: 3, Unit: "pieces"},
						{Name: "soy sauce", Amount: 4, Unit: "tbsp"},
						{Name: "sesame oil", Amount: 2, Unit: "tbsp"},
						{Name: "vegetable oil", Amount: 3, Unit: "tbsp"},
						{Name: "garlic (minced)", Amount: 3, Unit: "cloves"},
						{Name: "ginger (minced)", Amount: 1, Unit: "tbsp"},
						{Name: "green onions (chopped)", Amount: 4, Unit: "stalks"},
						{Name: "frozen peas and carrots", Amount: 1, Unit: "cup"},
						{Name: "salt", Amount: 0.5, Unit: "tsp"},
						{Name: "white pepper", Amount: 0.25, Unit: "tsp"},
					},
					[]string{
						"Heat 1 tbsp oil in a large wok over high heat.",
						"Scramble eggs and set aside.",
						"Cook diced chicken until golden. Set aside.",
						"Add remaining oil, garlic, and ginger. Stir-fry for 30 seconds.",
						"Add rice and break up clumps. Stir-fry for 3-4 minutes.",
						"Add peas and carrots, cook for 2 minutes.",
						"Return chicken and eggs to the pan.",
						"Add soy sauce, sesame oil, salt, and pepper. Toss together.",
						"Garnish with green onions and serve hot.",
					},
					model.NutritionInfo{Calories: 380, Protein: 22, Carbs: 45, Fat: 12, Fiber: 2, Sugar: 6, Sodium: 920},
					"easy",
				)
			},
		},
		{
			match: func(input string) bool {
				return strings.Contains(input, "pad thai")
			},
			build: func(input, cleaned string) GeneratedRecipe {
				return newMockRecipe(
					"Pad Thai",
					"Thai",
					20, 15, 4,
					[]model.Ingredient{
						{Name: "rice noodles (dried)", Amount: 8, Unit: "oz"},
						{Name: "shrimp or chicken", Amount: 200, Unit: "grams"},
						{Name: "eggs", Amount: 2, Unit: "pieces"},
						{Name: "bean sprouts", Amount: 1, Unit: "cup"},
						{Name: "green onions", Amount: 3, Unit: "stalks"},
						{Name: "garlic (minced)", Amount: 3, Unit: "cloves"},
						{Name: "tamarind paste", Amount: 2, Unit: "tbsp"},
						{Name: "fish sauce", Amount: 3, Unit: "tbsp"},
						{Name: "brown sugar", Amount: 2, Unit: "tbsp"},
						{Name: "lime juice", Amount: 2, Unit: "tbsp"},
						{Name: "vegetable oil", Amount: 3, Unit: "tbsp"},
						{Name: "crushed peanuts", Amount: 0.25, Unit: "cup"},
						{Name: "lime wedges", Amount: 4, Unit: "pieces"},
					},
					[]string{
						"Soak rice noodles in warm water until soft.",
						"Mix tamarind paste, fish sauce, brown sugar, and lime juice.",
						"Heat oil in a wok over high heat.",
						"Add garlic and protein, stir-fry until cooked.",
						"Push to one side, scramble eggs on the other side.",
						"Add drained noodles and sauce mixture.",
						"Stir-fry for 2-3 minutes until noodles are coated.",
						"Add bean sprouts and green onions, toss briefly.",
						"Serve with crushed peanuts and lime wedges.",
					},
					model.NutritionInfo{Calories: 450, Protein: 20, Carbs: 55, Fat: 15, Fiber: 3, Sugar: 12, Sodium: 1200},
					"easy",
				)
			},
		},
		{
			match: func(input string) bool {
				return strings.Contains(input, "indian") || strings.Contains(input, "curry") ||
					strings.Contains(input, "masala") || strings.Contains(input, "tandoori")
			},
			build: func(input, cleaned string) GeneratedRecipe {
				return newMockRecipe(
					derivedDishName(cleaned),
					"Indian",
					20, 30, 4,
					[]model.Ingredient{
						{Name: mainIngredientName(cleaned), Amount: 500, Unit: "grams"},
						{Name: "onions (chopped)", Amount: 2, Unit: "medium"},
						{Name: "tomatoes (chopped)", Amount: 2, Unit: "medium"},
						{Name: "ginger-garlic paste", Amount: 1, Unit: "tbsp"},
						{Name: "cumin seeds", Amount: 1, Unit: "tsp"},
						{Name: "turmeric powder", Amount: 0.5, Unit: "tsp"},
						{Name: "red chili powder", Amount: 1, Unit: "tsp"},
						{Name: "garam masala", Amount: 0.5, Unit: "tsp"},
						{Name: "cooking oil", Amount: 3, Unit: "tbsp"},
						{Name: "salt", Amount: 1, Unit: "tsp"},
					},
					[]string{
						"Heat oil in a pan and add cumin seeds until they sizzle.",
						"Add onions and cook until golden brown.",
						"Stir in ginger-garlic paste and cook for 1 minute.",
						"Add tomatoes, turmeric, red chili powder, and garam masala. Cook until soft.",
						"Add main ingredient and cook until tender.",
						"Season with salt and serve with rice or naan.",
					},
					model.NutritionInfo{Calories: 400, Protein: 15, Carbs: 20, Fat: 25, Fiber: 5, Sugar: 6, Sodium: 800},
					"easy",
				)
			},
		},
		{
			match: func(input string) bool {
				return strings.Contains(input, "chinese") || strings.Contains(input, "stir fry") ||
					strings.Contains(input, "asian")
			},
			build: func(input, cleaned string) GeneratedRecipe {
				return newMockRecipe(
					derivedDishName(cleaned),
					"Chinese",
					15, 15, 4,
					[]model.Ingredient{
						{Name: mainIngredientName(cleaned), Amount: 400, Unit: "grams"},
						{Name: "soy sauce", Amount: 3, Unit: "tbsp"},
						{Name: "sesame oil", Amount: 1, Unit: "tbsp"},
						{Name: "garlic (minced)", Amount: 3, Unit: "cloves"},
						{Name: "ginger (minced)", Amount: 1, Unit: "tbsp"},
						{Name: "green onions", Amount: 3, Unit: "stalks"},
						{Name: "vegetable oil", Amount: 2, Unit: "tbsp"},
						{Name: "cornstarch", Amount: 1, Unit: "tbsp"},
						{Name: "salt", Amount: 0.5, Unit: "tsp"},
					},
					[]string{
						"Marinate main ingredient with soy sauce and cornstarch for 15 minutes.",
						"Heat vegetable oil in a wok over high heat.",
						"Add garlic and ginger, stir-fry for 30 seconds.",
						"Add main ingredient and stir-fry until cooked through.",
						"Add green onions and sesame oil, toss for 1 minute.",
						"Season with salt and serve hot.",
					},
					model.NutritionInfo{Calories: 350, Protein: 20, Carbs: 15, Fat: 20, Fiber: 3, Sugar: 5, Sodium: 900},
					"easy",
				)
			},
		},
		{
			match: func(input string) bool {
				return strings.Contains(input, "italian") || strings.Contains(input, "pasta") ||
					strings.Contains(input, "sauce")
			},
			build: func(input, cleaned string) GeneratedRecipe {
				return newMockRecipe(
					derivedDishName(cleaned),
					"Italian",
					15, 25, 4,
					[]model.Ingredient{
						{Name: mainIngredientName(cleaned), Amount: 400, Unit: "grams"},
						{Name: "olive oil", Amount: 3, Unit: "tbsp"},
						{Name: "garlic (minced)", Amount: 4, Unit: "cloves"},
						{Name: "onion (diced)", Amount: 1, Unit: "medium"},
						{Name: "tomatoes (canned)", Amount: 400, Unit: "grams"},
						{Name: "fresh basil", Amount: 0.25, Unit: "cup"},
						{Name: "parmesan cheese", Amount: 0.5, Unit: "cup"},
						{Name: "salt", Amount: 1, Unit: "tsp"},
						{Name: "black pepper", Amount: 0.5, Unit: "tsp"},
					},
					[]string{
						"Heat olive oil in a pan and sauté onion and garlic until soft.",
						"Add tomatoes and simmer for 15 minutes.",
						"Cook main ingredient (e.g., pasta) according to package instructions.",
						"Combine sauce with main ingredient and stir in basil.",
						"Season with salt and pepper.",
						"Top with parmesan cheese and serve.",
					},
					model.NutritionInfo{Calories: 400, Protein: 12, Carbs: 50, Fat: 15, Fiber: 4, Sugar: 8, Sodium: 700},
					"easy",
				)
			},
		},
		{
			match: func(input string) bool { return true },
			build: func(input, cleaned string) GeneratedRecipe {
				return newMockRecipe(
					derivedDishName(cleaned),
					"International",
					15, 25, 4,
					[]model.Ingredient{
						{Name: mainIngredientName(cleaned), Amount: 2, Unit: "cups"},
						{Name: "onion (chopped)", Amount: 1, Unit: "medium"},
						{Name: "garlic (minced)", Amount: 2, Unit: "cloves"},
						{Name: "cooking oil", Amount: 2, Unit: "tbsp"},
						{Name: "salt", Amount: 1, Unit: "tsp"},
						{Name: "black pepper", Amount: 0.5, Unit: "tsp"},
					},
					[]string{
						"Prepare all ingredients by washing, chopping, and measuring them.",
						"Heat oil in a large pan over medium heat.",
						"Add onions and cook until softened, about 3-4 minutes.",
						"Add garlic and cook for another minute until fragrant.",
						"Add the main ingredients and cook according to their requirements.",
						"Season with salt and pepper to taste.",
						"Cook until ingredients are tender and flavors are well combined.",
						"Adjust seasoning if needed and serve hot.",
					},
					model.NutritionInfo{Calories: 350, Protein: 15, Carbs: 40, Fat: 12, Fiber: 4, Sugar: 6, Sodium: 500},
					"easy",
				)
			},
		},
	}
}

func mainIngredientName(cleaned string) string {
	if cleaned == "" {
		return "main ingredient"
	}
	return cleaned
}
