package intent

import "grocery-assistant/internal/model"

// defaultTables are the hand-tuned built-in keyword tables. Weights are
// relative within a category; scores are normalized per category.
var defaultTables = map[model.IntentCategory][]Entry{
	model.IntentRecipe: {
		{"recipe", 3}, {"recipes", 3}, {"how to make", 3},
		{"cook", 2}, {"cooking", 2}, {"ingredient", 2}, {"ingredients", 2},
		{"bake", 2}, {"dinner idea", 2}, {"dish", 1.5}, {"prepare", 1.5},
		{"soup", 1}, {"pasta", 1}, {"make", 1},
	},
	model.IntentProductSearch: {
		{"find", 3}, {"where can i find", 3}, {"aisle", 3},
		{"looking for", 2.5}, {"in stock", 2.5},
		{"where", 2}, {"where is", 2}, {"locate", 2}, {"search", 2},
		{"do you have", 2}, {"price of", 2},
		{"carry", 1.5}, {"product", 1.5},
		{"milk", 1}, {"bread", 1}, {"eggs", 1},
	},
	model.IntentDealSearch: {
		{"deal", 3}, {"deals", 3}, {"sale", 3}, {"discount", 3},
		{"coupon", 3}, {"coupons", 3},
		{"on sale", 2}, {"offer", 2}, {"offers", 2}, {"promo", 2},
		{"bogo", 2}, {"price drop", 2},
		{"cheap", 1.5}, {"cheaper", 1.5}, {"save", 1.5}, {"savings", 1.5},
	},
	model.IntentListManagement: {
		{"list", 3}, {"shopping list", 3}, {"grocery list", 3},
		{"add", 2.5}, {"remove", 2.5}, {"cart", 2.5},
		{"my list", 2}, {"delete", 2}, {"check off", 2},
		{"quantity", 1.5}, {"update", 1.5}, {"clear", 1.5},
		{"put", 1},
	},
	model.IntentMealPlanning: {
		{"meal plan", 3}, {"meal planning", 3},
		{"plan", 2.5}, {"meals", 2.5},
		{"planning", 2}, {"meal", 2}, {"weekly", 2}, {"menu", 2},
		{"schedule", 2}, {"nutrition", 2},
		{"week", 1.5}, {"breakfast", 1.5}, {"lunch", 1.5}, {"dinner", 1.5},
		{"prep", 1.5}, {"calories", 1.5},
	},
	model.IntentStoreInfo: {
		{"store hours", 3}, {"hours", 3},
		{"open", 2.5},
		{"close", 2}, {"closing", 2}, {"opening", 2}, {"location", 2},
		{"address", 2}, {"parking", 2}, {"directions", 2}, {"nearest", 2},
		{"pharmacy", 1.5}, {"phone", 1.5}, {"store", 1.5},
	},
	model.IntentDietaryFilter: {
		{"vegetarian", 3}, {"vegan", 3}, {"gluten free", 3}, {"dairy free", 3},
		{"gluten", 2.5}, {"keto", 2.5}, {"allergy", 2.5}, {"allergic", 2.5},
		{"nut free", 2.5},
		{"halal", 2}, {"kosher", 2}, {"low carb", 2}, {"low sodium", 2},
		{"sugar free", 2}, {"diet", 2},
		{"organic", 1.5},
	},
	model.IntentGeneral: {
		{"hello", 3}, {"hi", 3}, {"hey", 3}, {"what can you do", 3},
		{"thanks", 2.5}, {"thank you", 2.5},
		{"good morning", 2}, {"how are you", 2}, {"bye", 2},
		{"help", 1.5},
	},
}

// DefaultLexicon returns the built-in lexicon.
func DefaultLexicon() *Lexicon {
	lx, err := NewLexicon(defaultTables)
	if err != nil {
		// The built-in tables are covered by tests; reaching this is a programming error.
		panic(err)
	}
	return lx
}
