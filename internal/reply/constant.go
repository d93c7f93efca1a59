package reply

import (
	"time"

	"grocery-assistant/internal/model"
)

// Log prefixes
const (
	LogPrefixSynthesize = "internal.reply.Synthesize"
	LogPrefixEnrich     = "internal.reply.enrich"
)

const DefaultEnrichmentTimeout = 3 * time.Second

// Canned replies
const (
	ReplyRecipe  = "Here's a recipe idea to get you cooking: tell me the main ingredient you have on hand and I'll add the rest of the ingredients to your list."
	ReplyProduct = "I can help you find that item. Open the store map to see its aisle, or add it to your list and I'll route you there."
	ReplyDeal    = "Here are this week's deals: check the weekly sale flyer and clip digital coupons for an extra discount."

	ReplyListAdd    = "Got it. I'll add that to your shopping list."
	ReplyListRemove = "Okay, I'll remove that from your shopping list."
	ReplyListClear  = "Ready to start over? Tap Clear List to empty your shopping list."
	ReplyListShow   = "Here's your shopping list. You can view it, share it with your household, or keep adding items."

	ReplyMealPlan = "Let's plan your meals for the week. I can generate a meal plan and add every ingredient to your list."

	ReplyStoreHours    = "Most stores are open from 7am to 10pm. Check the store hours for your location on the store map."
	ReplyStoreLocation = "Open the store map to see the nearest store location and get directions."
	ReplyStoreDefault  = "I can help with store hours, store location and directions."

	ReplyDietaryDetected = "I'll apply your dietary preferences and show %s options."
	ReplyDietaryDefault  = "Tell me about your dietary needs and I'll filter products and recipes to match."

	ReplyGeneral = "I'm here to help with your grocery shopping. Ask me for recipes, where to find products, current deals, or help with your list."
	ReplyUnknown = "I'm not sure I understood that. Try asking about recipes, products, deals, your shopping list, meal plans, or store info."
)

// Button titles that differ from the catalog defaults
const (
	TitleAddIngredients = "Add Ingredients to List"
)

// markers are the words a reply must contain for its category. An enriched
// reply without any of them gets the category's lead-in.
var markers = map[model.IntentCategory][]string{
	model.IntentRecipe:         {"recipe", "ingredient", "cook"},
	model.IntentProductSearch:  {"find", "aisle", "product", "item"},
	model.IntentDealSearch:     {"deal", "sale", "discount", "offer"},
	model.IntentListManagement: {"list"},
	model.IntentMealPlanning:   {"meal", "plan"},
	model.IntentStoreInfo:      {"store", "hours", "location"},
	model.IntentDietaryFilter:  {"diet", "dietary", "vegetarian", "vegan", "gluten", "allerg"},
	model.IntentGeneral:        nil,
}

var leadIns = map[model.IntentCategory]string{
	model.IntentRecipe:        "Recipe idea: ",
	model.IntentProductSearch: "Product tip: ",
}

// diets in filter-family order
var diets = []diet{
	{"vegetarian", model.ActionFilterVegetarian, []string{"vegetarian", "veggie"}},
	{"vegan", model.ActionFilterVegan, []string{"vegan", "plant"}},
	{"gluten-free", model.ActionFilterGlutenFree, []string{"gluten", "celiac", "coeliac"}},
	{"dairy-free", model.ActionFilterDairyFree, []string{"dairy", "lactose"}},
	{"keto", model.ActionFilterKeto, []string{"keto", "ketogenic"}},
}
