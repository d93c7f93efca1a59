package intent

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"grocery-assistant/internal/model"
)

func TestDefaultLexicon_CoversEveryCategory(t *testing.T) {
	lx := DefaultLexicon()
	for _, cat := range model.IntentCategories {
		if lx.MaxScore(cat) <= 0 {
			t.Errorf("category %s has no attainable score", cat)
		}
		if len(lx.Entries(cat)) == 0 {
			t.Errorf("category %s has no entries", cat)
		}
	}
}

func TestNewLexicon_Validation(t *testing.T) {
	tcs := []struct {
		name    string
		tables  map[model.IntentCategory][]Entry
		wantErr error
	}{
		{
			name:    "unknown category",
			tables:  map[model.IntentCategory][]Entry{"weather": {{"rain", 1}}},
			wantErr: ErrUnknownCategory,
		},
		{
			name:    "zero weight",
			tables:  map[model.IntentCategory][]Entry{model.IntentRecipe: {{"recipe", 0}}},
			wantErr: ErrInvalidWeight,
		},
		{
			name:    "NaN weight",
			tables:  map[model.IntentCategory][]Entry{model.IntentRecipe: {{"recipe", math.NaN()}}},
			wantErr: ErrInvalidWeight,
		},
		{
			name:    "punctuation-only phrase",
			tables:  map[model.IntentCategory][]Entry{model.IntentRecipe: {{"?!", 1}}},
			wantErr: ErrEmptyPhrase,
		},
		{
			name:    "phrase too long",
			tables:  map[model.IntentCategory][]Entry{model.IntentRecipe: {{"one two three four five six seven", 1}}},
			wantErr: ErrPhraseTooLong,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLexicon(tc.tables)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestNewLexicon_NormalizesAndDeduplicates(t *testing.T) {
	lx, err := NewLexicon(map[model.IntentCategory][]Entry{
		model.IntentDietaryFilter: {{"Gluten-Free", 3}, {"gluten free", 3}, {"vegan", 2}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := lx.Entries(model.IntentDietaryFilter)
	if len(entries) != 2 {
		t.Fatalf("expected duplicate phrase to be dropped, got %+v", entries)
	}
	if entries[0].Phrase != "gluten free" {
		t.Errorf("expected normalized phrase, got %q", entries[0].Phrase)
	}
	if lx.MaxScore(model.IntentDietaryFilter) != 5 {
		t.Errorf("expected max score 5, got %f", lx.MaxScore(model.IntentDietaryFilter))
	}
	if lx.MaxScore(model.IntentGeneral) != 0 {
		t.Errorf("expected absent category to have max 0")
	}
}

func TestLoadLexicon_OverridesOnlyListedCategories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	data := []byte(`
categories:
  dealSearch:
    - phrase: "markdown"
      weight: 2
    - phrase: "clearance sale"
      weight: 3
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	lx, err := LoadLexicon(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := lx.MaxScore(model.IntentDealSearch); got != 5 {
		t.Errorf("expected overridden dealSearch max 5, got %f", got)
	}
	if got, want := lx.MaxScore(model.IntentRecipe), DefaultLexicon().MaxScore(model.IntentRecipe); got != want {
		t.Errorf("expected recipe defaults kept (%f), got %f", want, got)
	}
}

func TestLoadLexicon_Errors(t *testing.T) {
	if _, err := LoadLexicon(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	if _, err := ParseLexicon([]byte("categories: [not, a, map]")); err == nil {
		t.Error("expected error for malformed yaml")
	}

	_, err := ParseLexicon([]byte("categories:\n  weather:\n    - phrase: rain\n      weight: 1\n"))
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestTokenize(t *testing.T) {
	got := tokenize("I'm LOOKING for Jalapeño-peppers, 2 lbs!")
	want := []string{"i", "m", "looking", "for", "jalapeño", "peppers", "2", "lbs"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
