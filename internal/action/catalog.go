package action

import (
	"github.com/google/uuid"

	"grocery-assistant/internal/model"
)

// descriptors is the full action set in declaration order.
var descriptors = []Descriptor{
	{model.ActionAddToPantry, FamilyPantry, "Add to Pantry", "archivebox"},
	{model.ActionCheckPantry, FamilyPantry, "Check Pantry", "checklist"},
	{model.ActionPantryExpiring, FamilyPantry, "Expiring Soon", "clock.badge.exclamationmark"},

	{model.ActionAddToList, FamilySharedList, "Add to List", "cart.badge.plus"},
	{model.ActionViewList, FamilySharedList, "View List", "list.bullet"},
	{model.ActionShareList, FamilySharedList, "Share List", "square.and.arrow.up"},
	{model.ActionRemoveFromList, FamilySharedList, "Remove from List", "cart.badge.minus"},
	{model.ActionClearList, FamilySharedList, "Clear List", "trash"},

	{model.ActionOptimizeBudget, FamilyBudget, "Optimize Budget", "dollarsign.circle"},
	{model.ActionViewDeals, FamilyBudget, "View Deals", "tag"},
	{model.ActionClipCoupon, FamilyBudget, "Clip Coupon", "scissors"},
	{model.ActionComparePrices, FamilyBudget, "Compare Prices", "chart.bar"},

	{model.ActionSuggestRecipes, FamilySuggestions, "Smart Suggestions", "sparkles"},
	{model.ActionSuggestSubstitutes, FamilySuggestions, "Suggest Substitutes", "arrow.triangle.2.circlepath"},
	{model.ActionGenerateMealPlan, FamilySuggestions, "Generate Meal Plan", "calendar.badge.plus"},
	{model.ActionAddMealPlanToList, FamilySuggestions, "Add Meal Plan to List", "text.badge.plus"},

	{model.ActionShowRoute, FamilyNavigation, "Show Aisle Route", "map"},
	{model.ActionNavigateToAisle, FamilyNavigation, "Navigate to Aisle", "location"},
	{model.ActionOpenStoreMap, FamilyNavigation, "Open Store Map", "map.fill"},
	{model.ActionGetDirections, FamilyNavigation, "Get Directions", "car"},

	{model.ActionFilterVegetarian, FamilyFilters, "Vegetarian Only", "leaf"},
	{model.ActionFilterVegan, FamilyFilters, "Vegan Only", "leaf.fill"},
	{model.ActionFilterGlutenFree, FamilyFilters, "Gluten-Free Only", "xmark.seal"},
	{model.ActionFilterDairyFree, FamilyFilters, "Dairy-Free Only", "drop.triangle"},
	{model.ActionFilterKeto, FamilyFilters, "Keto Friendly", "flame"},
}

// Catalog is the fixed, read-only set of dispatchable actions.
type Catalog struct {
	byAction map[model.ChatAction]Descriptor
	newID    func() string
}

// New builds the catalog.
func New() *Catalog {
	byAction := make(map[model.ChatAction]Descriptor, len(descriptors))
	for _, d := range descriptors {
		byAction[d.Action] = d
	}
	return &Catalog{
		byAction: byAction,
		newID:    uuid.NewString,
	}
}

// All returns every action in declaration order.
func (c *Catalog) All() []model.ChatAction {
	out := make([]model.ChatAction, len(descriptors))
	for i, d := range descriptors {
		out[i] = d.Action
	}
	return out
}

// Descriptors returns the display metadata of every action in declaration order.
func (c *Catalog) Descriptors() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors)
	return out
}

// Lookup resolves a textual action identifier.
func (c *Catalog) Lookup(id string) (model.ChatAction, bool) {
	d, ok := c.byAction[model.ChatAction(id)]
	return d.Action, ok
}

// Metadata returns the descriptor of a.
func (c *Catalog) Metadata(a model.ChatAction) (Descriptor, bool) {
	d, ok := c.byAction[a]
	return d, ok
}

// Family returns the actions of f in declaration order.
func (c *Catalog) Family(f Family) []model.ChatAction {
	var out []model.ChatAction
	for _, d := range descriptors {
		if d.Family == f {
			out = append(out, d.Action)
		}
	}
	return out
}

// Button builds a button for a with its default title and icon.
func (c *Catalog) Button(a model.ChatAction) model.ChatActionButton {
	return c.ButtonWithTitle(a, "")
}

// ButtonWithTitle builds a button for a with a contextual title.
// An empty title falls back to the catalog default.
func (c *Catalog) ButtonWithTitle(a model.ChatAction, title string) model.ChatActionButton {
	d, ok := c.byAction[a]
	if !ok {
		d = Descriptor{Action: a, Title: string(a), Icon: "questionmark.circle"}
	}
	if title == "" {
		title = d.Title
	}
	return model.ChatActionButton{
		ID:     c.newID(),
		Title:  title,
		Action: a,
		Icon:   d.Icon,
	}
}
