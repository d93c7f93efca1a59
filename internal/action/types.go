package action

import "grocery-assistant/internal/model"

// Family groups related actions.
type Family string

const (
	FamilyPantry      Family = "pantry"
	FamilySharedList  Family = "sharedList"
	FamilyBudget      Family = "budget"
	FamilySuggestions Family = "suggestions"
	FamilyNavigation  Family = "navigation"
	FamilyFilters     Family = "filters"
)

// Descriptor is the display metadata of one action.
type Descriptor struct {
	Action model.ChatAction `json:"action"`
	Family Family           `json:"family"`
	Title  string           `json:"title"`
	Icon   string           `json:"icon"`
}
