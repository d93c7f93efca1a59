package reply

import (
	"fmt"
	"time"

	"grocery-assistant/internal/action"
	"grocery-assistant/internal/model"
	"grocery-assistant/internal/textgen"
	"grocery-assistant/pkg/log"
)

// ResponseSynthesizer dispatches on the primary intent through a fixed
// handler table. gen may be nil, in which case every reply is canned.
type ResponseSynthesizer struct {
	gen      textgen.Generator
	catalog  *action.Catalog
	timeout  time.Duration
	handlers map[model.IntentCategory]handler
	l        log.Logger
}

var _ Synthesizer = (*ResponseSynthesizer)(nil)

// New builds the synthesizer and checks that every intent has a handler.
func New(gen textgen.Generator, catalog *action.Catalog, cfg Config, l log.Logger) (*ResponseSynthesizer, error) {
	if catalog == nil {
		catalog = action.New()
	}
	if cfg.EnrichmentTimeout <= 0 {
		cfg.EnrichmentTimeout = DefaultEnrichmentTimeout
	}

	s := &ResponseSynthesizer{
		gen:     gen,
		catalog: catalog,
		timeout: cfg.EnrichmentTimeout,
		l:       l,
	}
	s.handlers = map[model.IntentCategory]handler{
		model.IntentRecipe:         s.recipe,
		model.IntentProductSearch:  s.productSearch,
		model.IntentDealSearch:     s.dealSearch,
		model.IntentListManagement: s.listManagement,
		model.IntentMealPlanning:   s.mealPlanning,
		model.IntentStoreInfo:      s.storeInfo,
		model.IntentDietaryFilter:  s.dietaryFilter,
		model.IntentGeneral:        s.general,
	}

	for _, c := range model.IntentCategories {
		if _, ok := s.handlers[c]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingHandler, c)
		}
	}
	return s, nil
}
