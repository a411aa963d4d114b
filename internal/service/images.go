package service

import (
	"regexp"
	"strings"
)

// imageEntry pairs a dish keyword with its stock image path. Kept as an
// ordered slice so partial-match resolution is deterministic.
type imageEntry struct {
	key string
	url string
}

const defaultRecipeImage = "/images/Best_Homemade_Pizza_Margherita_0.jpg"

var titleEmojiPattern = regexp.MustCompile(`🍫|🥙|🍕|🍜|🍣|🌮|🍛|🥘|🥗|🍲|🍰|🥞|🍪|🍗|🥩|🍝|🥤|🧁|🍔`)

var recipeImages = []imageEntry{
	// Asian cuisine
	{"ahi tuna poke bowl", "/images/Ahi_Tuna_Poke_Bowl_0.jpg"},
	{"chicken satay", "/images/Chicken_Satay_with_Peanut_Sauce_0.jpg"},
	{"kung pao chicken", "/images/Kung_Pao_Chicken_0.jpg"},
	{"chicken stir fry", "/images/Chicken_Stir_Fry_0.jpg"},
	{"fried rice", "/images/The_BEST_Fried_Rice_Recipe_Ready_in_15_Minutes_0.jpg"},
	{"chicken biryani", "/images/Hyderabad_Chicken_Biryani_0.jpg"},
	{"butter chicken", "/images/Butter_Chicken_in_20_minutes_0.jpg"},
	{"aloo gobi", "/images/Aloo_Gobi___Saut├⌐ed_Cauliflower_and_Potatoes_0.jpg"},
	{"indian chicken curry", "/images/Easy_Indian_Chicken_Curry___15_Minutes_0.jpg"},
	{"tandoori chicken", "/images/Oven_Baked_Indian_Tandoori_Chicken_0.jpg"},
	{"chicken tikka masala", "/images/Quick_Chicken_Tikka_Masala_in_20_mins_0.jpg"},
	{"chickpea curry", "/images/Chickpeas_Curry___Channa_Masala_0.jpg"},
	{"lamb curry", "/images/Indian_Lamb_Curry_0.jpg"},
	{"fish curry", "/images/Easiest_Fish_Curry___Just_6_ingredients_0.jpg"},

	// Italian cuisine
	{"spaghetti bolognese", "/images/Easy_Spaghetti_Bolognese_0.jpg"},
	{"pizza margherita", "/images/Best_Homemade_Pizza_Margherita_0.jpg"},
	{"pepperoni pizza", "/images/Homemade_Pepperoni_Pizza_from_Scratch_0.jpg"},
	{"chicken pasta", "/images/Chicken_Pasta_Recipe_0.jpg"},
	{"mushroom pasta", "/images/Mushroom_Pasta_in_15_minutes_0.jpg"},
	{"penne pasta lasagne", "/images/Penne_Pasta_Lasagne_0.jpg"},
	{"pizza dough", "/images/Best_Homemade_Pizza_Dough_0.jpg"},
	{"focaccia bread", "/images/Rosemary_Focaccia_Bread_0.jpg"},

	// American cuisine
	{"chocolate chip cookies", "/images/Chocolate_Chip_Cookies__BEST_EVER__0.jpg"},
	{"beef burger", "/images/Best_Juicy_Beef_Burgers_0.jpg"},
	{"chicken burgers", "/images/Homemade_Chicken_Burgers_0.jpg"},
	{"apple pie", "/images/Dutch_Apple_Pie_0.jpg"},
	{"chocolate cake", "/images/Baked_Chocolate_Cheesecake_0.jpg"},
	{"vanilla cake", "/images/BEST_Vanilla_Birthday_Cake_with_Vanilla_Buttercream_0.jpg"},
	{"strawberry cake", "/images/Moist_Strawberry_Cake_0.jpg"},
	{"carrot cake", "/images/Moist_Carrot_Cake_with_Cream_Cheese_Frosting_0.jpg"},
	{"red velvet cake", "/images/Best_Red_Velvet_Cake_0.jpg"},
	{"chocolate cupcakes", "/images/Moist_Chocolate_Cupcakes__one_bowl__0.jpg"},
	{"vanilla cupcakes", "/images/Best_Vanilla_Cupcakes_0.jpg"},

	// Middle Eastern cuisine
	{"chicken shawarma", "/images/Chicken_Shawarma_Recipe_0.jpg"},
	{"hummus", "/images/Hummus_with_Meat_0.jpg"},
	{"falafel", "/images/Gefilte_Fish_with_Beet_Horseradish_0.jpg"},
	{"kebabs", "/images/Ground_Beef_Kebabs_0.jpg"},
	{"lamb chops", "/images/Grilled_Lamb_Chops_with_Cilantro_Mint_Sauce_0.jpg"},
	{"roast leg of lamb", "/images/Roast_Leg_of_Lamb_0.jpg"},

	// Mexican cuisine
	{"beef tacos", "/images/Ground_Beef_Tacos_0.jpg"},
	{"beef enchiladas", "/images/Homemade_Beef_Enchiladas_0.jpg"},
	{"quesadillas", "/images/Cheese_Stuffed_Pita_Bread_0.jpg"},

	// Breakfast
	{"pancakes", "/images/Easy_Cinnamon_Rolls_from_Scratch_0.jpg"},
	{"cinnamon rolls", "/images/Easy_Cinnamon_Rolls_from_Scratch_0.jpg"},
	{"croissants", "/images/Homemade_Croissants_0.jpg"},
	{"avocado toast", "/images/Avocado_and_egg_sandwich_0.jpg"},

	// Soups and stews
	{"chicken soup", "/images/Chicken_Pot_Pie_Soup_0.jpg"},
	{"beef stew", "/images/Crock_Pot_Beef_Stew_0.jpg"},
	{"tomato soup", "/images/Fresh_Tomato_Sauce___20_mins_0.jpg"},
	{"mushroom soup", "/images/Homemade_Cream_of_Mushroom_Soup_0.jpg"},
	{"pumpkin soup", "/images/Easy_pumpkin_soup_0.jpg"},
	{"butternut squash soup", "/images/Roast_Butternut_Squash_Soup_Recipe_0.jpg"},
	{"broccoli soup", "/images/Cream_of_Broccoli_Soup_0.jpg"},
	{"potato soup", "/images/Slow_Cooker_Potato_Soup_0.jpg"},
	{"split pea soup", "/images/Slow_Cooker_Split_Pea_Soup_0.jpg"},

	// Seafood
	{"baked salmon", "/images/Honey_Garlic_Salmon_0.jpg"},
	{"fish and chips", "/images/Fish_Cakes_0.jpg"},
	{"tuna patties", "/images/Best_Tuna_Patties_0.jpg"},
	{"shrimp stir fry", "/images/Shrimp_Stir_Fry_0.jpg"},

	// Chicken dishes
	{"baked chicken", "/images/Perfect_Roast_Chicken_0.jpg"},
	{"chicken wings", "/images/Baked_Chicken_Drumsticks_0.jpg"},
	{"chicken thighs", "/images/Juicy_Baked_Chicken_Thighs_0.jpg"},
	{"honey mustard chicken", "/images/Honey_Mustard_Chicken_0.jpg"},
	{"lemon chicken", "/images/Simple_Easy_Lemon_Butter_Baked_Chicken_0.jpg"},
	{"paprika chicken", "/images/Sheet_Pan_Paprika_Chicken_0.jpg"},
	{"chicken schnitzel", "/images/Chicken_Schnitzel_0.jpg"},
	{"chicken croquettes", "/images/Chicken_Croquettes_0.jpg"},

	// Beef dishes
	{"beef steak", "/images/Standing_Prime_Rib_Roast_0.jpg"},
	{"beef roast", "/images/Beef_Chuck_Roast_0.jpg"},
	{"meatballs", "/images/Spaghetti_and_Meatballs_0.jpg"},
	{"beef bourguignon", "/images/The_BEST_Beef_Burgundy_aka_Beef_Bourguignon_0.jpg"},

	// Vegetarian dishes
	{"vegetable curry", "/images/Black_Bean_Coconut_Curry__Vegan__0.jpg"},
	{"quinoa salad", "/images/Easy_Couscous_Salad_in_10_minutes_0.jpg"},
	{"stuffed mushrooms", "/images/Breadcrumb_Stuffed_Mushrooms_0.jpg"},
	{"vegetable stir fry", "/images/Quick_One_Pot_Vegetable_Rice_0.jpg"},
	{"roasted vegetables", "/images/Roasted_Asparagus_with_Parmesan_0.jpg"},

	// Desserts
	{"chocolate brownies", "/images/Dark_Chocolate_Fudge_Brownies_0.jpg"},
	{"apple crumble", "/images/Best_EVER_Apple_Crumble_Tart_0.jpg"},
	{"cheesecake", "/images/Blueberry_Cheesecake___Baked_0.jpg"},
	{"tiramisu", "/images/The_BEST_Skinny_Tiramisu_EVER_0.jpg"},
	{"ice cream", "/images/Chocolate_Ice_Cream_No_Churn__3_Ingredients__0.jpg"},
	{"strawberry ice cream", "/images/Strawberry_Ice_Cream___No_Churn_0.jpg"},
	{"chocolate mousse", "/images/Easy_Chocolate_Mousse_0.jpg"},
	{"strawberry mousse", "/images/Best_Strawberry_Mousse_0.jpg"},
	{"macarons", "/images/French_Macarons___No_Fail_Recipe_0.jpg"},
	{"donuts", "/images/Homemade_Fried_Cinnamon_Sugar_Donuts_0.jpg"},

	// Bread and baked goods
	{"sandwich bread", "/images/The_BEST_White_Sandwich_Bread_Recipe_0.jpg"},
	{"dinner rolls", "/images/Soft_Dinner_Rolls___Homemade_0.jpg"},
	{"bagels", "/images/Homemade_Cloverleaf_Rolls_0.jpg"},
	{"muffins", "/images/Pumpkin_Spice_Muffins_with_Oat_Streusel_0.jpg"},
	{"scones", "/images/Hot_Cross_Buns_0.jpg"},

	// Beverages
	{"smoothies", "/images/Strawberry_Banana_Smoothie_0.jpg"},
	{"milkshakes", "/images/Strawberry_Banana_Milkshake_0.jpg"},
	{"hot chocolate", "/images/Homemade_Hot_Chocolate_0.jpg"},
	{"coffee", "/images/Homemade_Mocha_Frappuccino_0.jpg"},
	{"lemonade", "/images/Easy_Watermelon_Lemonade_0.jpg"},
	{"cocktails", "/images/Strawberry_Vodka_Cocktail_0.jpg"},

	// Healthy options
	{"quinoa bowl", "/images/Chickpeas_Salad_0.jpg"},
	{"green smoothie", "/images/Blueberry_Banana_Smoothie_0.jpg"},
	{"salad bowl", "/images/Avocado_Salad_0.jpg"},
	{"protein shake", "/images/Banana_Date_Smoothie_0.jpg"},
	{"granola", "/images/Homemade_Granola___Blueberry_Almond_Granola_0.jpg"},
	{"energy balls", "/images/No_Bake_Energy_Bites_with_Granola_and_Dates_0.jpg"},

	// International specialties
	{"paella", "/images/Turmeric_Rice_with_Chicken_and_Peas_0.jpg"},
	{"ramen", "/images/Thai_Shrimp_Soup_with_noodles_0.jpg"},
	{"pad thai", "/images/Ginger_Chicken_Stir_Fry_Recipe_0.jpg"},
	{"sushi", "/images/Ahi_Tuna_Poke_Bowl_0.jpg"},
	{"french onion soup", "/images/Homemade_Cream_of_Mushroom_Soup_0.jpg"},
	{"greek salad", "/images/Tomato_Mozzarella_Salad_0.jpg"},
	{"shepherd pie", "/images/Shepherd_s_Pie___Meat_Pie_with_Mashed_Potatoes_0.jpg"},
	{"cottage pie", "/images/Cottage_Pie___Ground_Beef_with_Mashed_Potatoes_0.jpg"},
	{"quiche", "/images/The_BEST_Mushroom_Quiche_0.jpg"},
	{"risotto", "/images/Rice_Pilaf_with_Fruit_and_Nuts_0.jpg"},

	// Seasonal specialties
	{"pumpkin pie", "/images/Pumpkin_Pie_Chocolate_Tarts_Recipe_0.jpg"},
	{"hot cross buns", "/images/Hot_Cross_Buns_0.jpg"},
	{"gingerbread", "/images/Classic_Gingerbread_Cake_Recipe_0.jpg"},
	{"eggnog", "/images/Homemade_Classic_Eggnog_Recipe_0.jpg"},
	{"mulled wine", "/images/Homemade_Mulled_Wine_0.jpg"},
	{"pumpkin spice", "/images/Pumpkin_Spice_Cake_with_Cream_Cheese_Frosting_0.jpg"},
	{"cranberry sauce", "/images/Saut├⌐ed_Asparagus_with_Cranberry_and_Nuts_0.jpg"},
}

// commonImageKeywords is the last-resort scan before falling back to the
// default image.
var commonImageKeywords = []string{
	"chicken", "beef", "pork", "fish", "salmon", "tuna", "shrimp",
	"pasta", "pizza", "burger", "sandwich", "salad", "soup", "stew",
	"curry", "stir fry", "cake", "cookie", "pie", "bread", "rice",
	"noodles", "quinoa", "vegetable", "fruit", "chocolate", "vanilla",
	"strawberry", "apple", "banana", "smoothie", "ice cream",
}

// RecipeImageURL resolves a recipe title to a stock image path. Resolution
// order: exact match, substring match in either direction, common keyword
// scan, default image.
func RecipeImageURL(title string) string {
	name := strings.TrimSpace(titleEmojiPattern.ReplaceAllString(strings.ToLower(title), ""))

	for _, e := range recipeImages {
		if e.key == name {
			return e.url
		}
	}

	for _, e := range recipeImages {
		if strings.Contains(name, e.key) || strings.Contains(e.key, name) {
			return e.url
		}
	}

	for _, keyword := range commonImageKeywords {
		if !strings.Contains(name, keyword) {
			continue
		}
		for _, e := range recipeImages {
			if e.key == keyword {
				return e.url
			}
		}
	}

	return defaultRecipeImage
}
