package action_test

import (
	"testing"

	"grocery-assistant/internal/action"
	"grocery-assistant/internal/model"
)

func TestCatalog_Enumeration(t *testing.T) {
	c := action.New()

	all := c.All()
	if len(all) != 25 {
		t.Fatalf("expected 25 actions, got %d", len(all))
	}

	seen := make(map[model.ChatAction]bool)
	for _, a := range all {
		if seen[a] {
			t.Errorf("duplicate action %s", a)
		}
		seen[a] = true

		got, ok := c.Lookup(string(a))
		if !ok || got != a {
			t.Errorf("lookup %s: got %s, %v", a, got, ok)
		}

		d, ok := c.Metadata(a)
		if !ok || d.Title == "" || d.Icon == "" || d.Family == "" {
			t.Errorf("action %s has incomplete metadata: %+v", a, d)
		}
	}

	if _, ok := c.Lookup("launchRocket"); ok {
		t.Error("expected unknown id lookup to fail")
	}
}

func TestCatalog_Families(t *testing.T) {
	c := action.New()

	tcs := map[action.Family]int{
		action.FamilyPantry:      3,
		action.FamilySharedList:  5,
		action.FamilyBudget:      4,
		action.FamilySuggestions: 4,
		action.FamilyNavigation:  4,
		action.FamilyFilters:     5,
	}
	total := 0
	for f, want := range tcs {
		if got := len(c.Family(f)); got != want {
			t.Errorf("family %s: expected %d actions, got %d", f, want, got)
		}
		total += want
	}
	if total != len(c.All()) {
		t.Errorf("families do not partition the catalog")
	}
}

func TestCatalog_Buttons(t *testing.T) {
	c := action.New()

	b1 := c.Button(model.ActionAddToList)
	b2 := c.Button(model.ActionAddToList)
	if b1.ID == "" || b1.ID == b2.ID {
		t.Errorf("expected unique non-empty ids, got %q and %q", b1.ID, b2.ID)
	}
	if b1.Title != "Add to List" || b1.Icon != "cart.badge.plus" || b1.Action != model.ActionAddToList {
		t.Errorf("unexpected default button: %+v", b1)
	}

	custom := c.ButtonWithTitle(model.ActionAddToList, "Add Ingredients to List")
	if custom.Title != "Add Ingredients to List" || custom.Icon != b1.Icon {
		t.Errorf("unexpected custom button: %+v", custom)
	}
}
