package model

// ChatAction is a dispatchable identifier attached to a bot reply.
// The hosting UI performs the effect; the assistant only names it.
type ChatAction string

// Pantry management.
const (
	ActionAddToPantry    ChatAction = "addToPantry"
	ActionCheckPantry    ChatAction = "checkPantry"
	ActionPantryExpiring ChatAction = "pantryExpiring"
)

// Shared list management.
const (
	ActionAddToList      ChatAction = "addToList"
	ActionViewList       ChatAction = "viewList"
	ActionShareList      ChatAction = "shareList"
	ActionRemoveFromList ChatAction = "removeFromList"
	ActionClearList      ChatAction = "clearList"
)

// Budget optimization.
const (
	ActionOptimizeBudget ChatAction = "optimizeBudget"
	ActionViewDeals      ChatAction = "viewDeals"
	ActionClipCoupon     ChatAction = "clipCoupon"
	ActionComparePrices  ChatAction = "comparePrices"
)

// Smart suggestions.
const (
	ActionSuggestRecipes     ChatAction = "suggestRecipes"
	ActionSuggestSubstitutes ChatAction = "suggestSubstitutes"
	ActionGenerateMealPlan   ChatAction = "generateMealPlan"
	ActionAddMealPlanToList  ChatAction = "addMealPlanToList"
)

// Navigation.
const (
	ActionShowRoute       ChatAction = "showRoute"
	ActionNavigateToAisle ChatAction = "navigateToAisle"
	ActionOpenStoreMap    ChatAction = "openStoreMap"
	ActionGetDirections   ChatAction = "getDirections"
)

// Filters.
const (
	ActionFilterVegetarian ChatAction = "filterVegetarian"
	ActionFilterVegan      ChatAction = "filterVegan"
	ActionFilterGlutenFree ChatAction = "filterGlutenFree"
	ActionFilterDairyFree  ChatAction = "filterDairyFree"
	ActionFilterKeto       ChatAction = "filterKeto"
)

// ChatActionButton is an immutable UI affordance bound to a ChatAction.
type ChatActionButton struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	Action ChatAction `json:"action"`
	Icon   string     `json:"icon"`
}
