package model

// IntentCategory is the classified purpose of a user's message.
type IntentCategory string

// Declaration order doubles as tie-break priority: earlier wins.
const (
	IntentRecipe         IntentCategory = "recipe"
	IntentProductSearch  IntentCategory = "productSearch"
	IntentDealSearch     IntentCategory = "dealSearch"
	IntentListManagement IntentCategory = "listManagement"
	IntentMealPlanning   IntentCategory = "mealPlanning"
	IntentStoreInfo      IntentCategory = "storeInfo"
	IntentDietaryFilter  IntentCategory = "dietaryFilter"
	IntentGeneral        IntentCategory = "general"
)

// IntentCategories lists every category in priority order.
var IntentCategories = []IntentCategory{
	IntentRecipe,
	IntentProductSearch,
	IntentDealSearch,
	IntentListManagement,
	IntentMealPlanning,
	IntentStoreInfo,
	IntentDietaryFilter,
	IntentGeneral,
}

// Priority returns the tie-break rank of c (lower wins), or -1 if c is unknown.
func (c IntentCategory) Priority() int {
	for i, v := range IntentCategories {
		if v == c {
			return i
		}
	}
	return -1
}

// IsValid reports whether c is one of the declared categories.
func (c IntentCategory) IsValid() bool {
	return c.Priority() >= 0
}

// ParseIntentCategory maps a textual identifier back to its category.
func ParseIntentCategory(s string) (IntentCategory, bool) {
	c := IntentCategory(s)
	return c, c.IsValid()
}

// ScoredIntent pairs a category with its normalized score.
type ScoredIntent struct {
	Intent IntentCategory `json:"intent"`
	Score  float64        `json:"score"`
}

// IntentResult is the outcome of classifying one message.
type IntentResult struct {
	PrimaryIntent    IntentCategory `json:"primary_intent"`
	Confidence       float64        `json:"confidence"`         // 0-1
	SecondaryIntents []ScoredIntent `json:"secondary_intents"` // descending, primary excluded
}

// SecondaryScore returns the score of c among the secondary intents, or 0.
func (r IntentResult) SecondaryScore(c IntentCategory) float64 {
	for _, s := range r.SecondaryIntents {
		if s.Intent == c {
			return s.Score
		}
	}
	return 0
}
