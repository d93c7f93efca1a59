package intent_test

import (
	"math"
	"strings"
	"testing"

	"grocery-assistant/internal/intent"
	"grocery-assistant/internal/model"
)

func TestClassify_SamplePhrases(t *testing.T) {
	c := intent.New(nil)

	tcs := []struct {
		name   string
		want   model.IntentCategory
		inputs []string
	}{
		{name: "recipe", want: model.IntentRecipe, inputs: []string{
			"I need a recipe for pasta",
			"How to make chicken soup",
			"What can I cook with these ingredients?",
		}},
		{name: "product search", want: model.IntentProductSearch, inputs: []string{
			"Where can I find milk?",
			"Which aisle has the bread?",
			"Is oat milk in stock?",
		}},
		{name: "deal search", want: model.IntentDealSearch, inputs: []string{
			"Are there any deals on meat?",
			"Do you have any coupons this week?",
			"What's on sale today?",
		}},
		{name: "list management", want: model.IntentListManagement, inputs: []string{
			"Add milk to my list",
			"Remove eggs from my shopping list",
			"Clear my cart",
		}},
		{name: "meal planning", want: model.IntentMealPlanning, inputs: []string{
			"Help me plan meals for the week",
			"Create a weekly meal plan",
		}},
		{name: "store info", want: model.IntentStoreInfo, inputs: []string{
			"What are the store hours?",
			"When do you open on Sunday?",
		}},
		{name: "dietary filter", want: model.IntentDietaryFilter, inputs: []string{
			"I'm vegetarian",
			"Show me gluten-free options",
			"I follow a keto diet",
		}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			for _, in := range tc.inputs {
				got := c.Classify(in)
				if got.PrimaryIntent != tc.want && got.SecondaryScore(tc.want) <= 0.2 {
					t.Errorf("%q: expected %s (or secondary > 0.2), got %s (%.3f) secondaries %+v",
						in, tc.want, got.PrimaryIntent, got.Confidence, got.SecondaryIntents)
				}
			}
		})
	}
}

func TestClassify_Greetings(t *testing.T) {
	c := intent.New(nil)
	for _, in := range []string{"Hello there", "hi!", "Thanks a lot", "good morning"} {
		got := c.Classify(in)
		if got.PrimaryIntent != model.IntentGeneral && got.Confidence >= 0.3 {
			t.Errorf("%q: expected general or confidence < 0.3, got %s (%.3f)", in, got.PrimaryIntent, got.Confidence)
		}
	}
}

func TestClassify_NormalizedConfidence(t *testing.T) {
	lx := intent.DefaultLexicon()
	c := intent.New(lx)

	got := c.Classify("Add milk to my list")
	if got.PrimaryIntent != model.IntentListManagement {
		t.Fatalf("expected listManagement, got %s", got.PrimaryIntent)
	}

	// list (3) + add (2.5) + "my list" (2)
	want := 7.5 / lx.MaxScore(model.IntentListManagement)
	if math.Abs(got.Confidence-want) > 1e-9 {
		t.Errorf("expected confidence %.6f, got %.6f", want, got.Confidence)
	}

	// milk is a product keyword, so product search shows up as secondary.
	if got.SecondaryScore(model.IntentProductSearch) <= 0 {
		t.Errorf("expected productSearch secondary, got %+v", got.SecondaryIntents)
	}
}

func TestClassify_NoMatchFallsBackToGeneral(t *testing.T) {
	c := intent.New(nil)

	inputs := []string{
		"",
		"   ",
		"?!?!...",
		"🥦🥕🍎",
		"zxqv plorb",
		strings.Repeat("lorem ipsum ", 5000),
	}
	for _, in := range inputs {
		got := c.Classify(in)
		if got.PrimaryIntent != model.IntentGeneral || got.Confidence != 0 {
			t.Errorf("%.20q: expected general/0, got %s/%.3f", in, got.PrimaryIntent, got.Confidence)
		}
		if len(got.SecondaryIntents) != 0 {
			t.Errorf("%.20q: expected no secondaries, got %+v", in, got.SecondaryIntents)
		}
	}
}

func TestClassify_Invariants(t *testing.T) {
	c := intent.New(nil)

	inputs := []string{
		"Find vegan recipes on sale near the nearest store and add them to my list",
		"RECIPE RECIPE RECIPE",
		"where where where is the aisle",
		"Café crème brûlée recipe",
		"add\tremove\nclear list",
		"help",
	}
	for _, in := range inputs {
		got := c.Classify(in)
		if !got.PrimaryIntent.IsValid() {
			t.Errorf("%q: invalid primary %q", in, got.PrimaryIntent)
		}
		if got.Confidence < 0 || got.Confidence > 1 {
			t.Errorf("%q: confidence out of range: %f", in, got.Confidence)
		}

		prev := got.Confidence
		for _, s := range got.SecondaryIntents {
			if s.Intent == got.PrimaryIntent {
				t.Errorf("%q: primary %s repeated in secondaries", in, s.Intent)
			}
			if s.Score <= 0 || s.Score > prev {
				t.Errorf("%q: secondary %s score %f breaks ordering (prev %f)", in, s.Intent, s.Score, prev)
			}
			prev = s.Score
		}
	}
}

func TestClassify_TieBreakByDeclarationOrder(t *testing.T) {
	lx, err := intent.NewLexicon(map[model.IntentCategory][]intent.Entry{
		model.IntentGeneral:       {{Phrase: "banana", Weight: 1}},
		model.IntentProductSearch: {{Phrase: "banana", Weight: 1}},
		model.IntentRecipe:        {{Phrase: "banana", Weight: 2}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := intent.New(lx).Classify("banana")
	if got.PrimaryIntent != model.IntentRecipe {
		t.Fatalf("expected recipe to win tie, got %s", got.PrimaryIntent)
	}
	if got.Confidence != 1 {
		t.Errorf("expected confidence 1, got %f", got.Confidence)
	}
	if len(got.SecondaryIntents) != 2 {
		t.Fatalf("expected 2 secondaries, got %+v", got.SecondaryIntents)
	}
	if got.SecondaryIntents[0].Intent != model.IntentProductSearch || got.SecondaryIntents[1].Intent != model.IntentGeneral {
		t.Errorf("expected productSearch before general, got %+v", got.SecondaryIntents)
	}
}

func TestClassify_PhraseMatchesWholeWordsOnly(t *testing.T) {
	lx, err := intent.NewLexicon(map[model.IntentCategory][]intent.Entry{
		model.IntentStoreInfo: {{Phrase: "store hours", Weight: 1}},
		model.IntentRecipe:    {{Phrase: "cook", Weight: 1}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := intent.New(lx)

	if got := c.Classify("bookstore hours"); got.PrimaryIntent != model.IntentGeneral {
		t.Errorf("expected phrase not to match inside a word, got %s", got.PrimaryIntent)
	}
	if got := c.Classify("cookies"); got.PrimaryIntent != model.IntentGeneral {
		t.Errorf("expected single token not to match as prefix, got %s", got.PrimaryIntent)
	}
	if got := c.Classify("What are the STORE   hours?"); got.PrimaryIntent != model.IntentStoreInfo {
		t.Errorf("expected phrase match across extra whitespace, got %s", got.PrimaryIntent)
	}
}
