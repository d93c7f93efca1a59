package intent

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"grocery-assistant/internal/model"
)

// lexiconFile is the on-disk YAML shape:
//
//	categories:
//	  recipe:
//	    - phrase: "how to make"
//	      weight: 3
type lexiconFile struct {
	Categories map[string][]Entry `yaml:"categories"`
}

// LoadLexicon reads a YAML override file. Categories present in the file
// replace the built-in table for that category; the rest keep their defaults.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: read lexicon: %w", LogPrefixLoadLexicon, err)
	}
	return ParseLexicon(data)
}

// ParseLexicon is LoadLexicon for in-memory YAML.
func ParseLexicon(data []byte) (*Lexicon, error) {
	var f lexiconFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%s: parse lexicon yaml: %w", LogPrefixLoadLexicon, err)
	}

	tables := make(map[model.IntentCategory][]Entry, len(defaultTables))
	for cat, entries := range defaultTables {
		tables[cat] = entries
	}
	for name, entries := range f.Categories {
		cat, ok := model.ParseIntentCategory(name)
		if !ok {
			return nil, fmt.Errorf("%s: %w: %q", LogPrefixLoadLexicon, ErrUnknownCategory, name)
		}
		tables[cat] = entries
	}

	lx, err := NewLexicon(tables)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixLoadLexicon, err)
	}
	return lx, nil
}
