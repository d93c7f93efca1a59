package reply

import (
	"context"
	"fmt"
	"strings"

	"grocery-assistant/internal/intent"
	"grocery-assistant/internal/model"
	"grocery-assistant/internal/textgen"
)

// Synthesize produces the reply and buttons for a classified message.
// The reply is never empty.
func (s *ResponseSynthesizer) Synthesize(ctx context.Context, text string, result model.IntentResult) (string, []model.ChatActionButton) {
	h, ok := s.handlers[result.PrimaryIntent]
	if !ok {
		s.l.Warnf(ctx, "%s: unknown intent %q, using general", LogPrefixSynthesize, result.PrimaryIntent)
		h = s.handlers[model.IntentGeneral]
	}

	in := input{
		text:   text,
		tokens: tokenSet(text),
		result: result,
	}

	reply, buttons := h(ctx, in)
	if strings.TrimSpace(reply) == "" {
		reply = ReplyUnknown
	}
	if buttons == nil {
		buttons = []model.ChatActionButton{}
	}
	return reply, buttons
}

func (s *ResponseSynthesizer) recipe(ctx context.Context, in input) (string, []model.ChatActionButton) {
	reply := s.enrichOr(ctx, textgen.KindRecipeSuggestion, model.IntentRecipe, in.text, ReplyRecipe)
	return reply, []model.ChatActionButton{
		s.catalog.ButtonWithTitle(model.ActionAddToList, TitleAddIngredients),
		s.catalog.Button(model.ActionShowRoute),
		s.catalog.Button(model.ActionSuggestSubstitutes),
	}
}

func (s *ResponseSynthesizer) productSearch(ctx context.Context, in input) (string, []model.ChatActionButton) {
	reply := s.enrichOr(ctx, textgen.KindProductGuidance, model.IntentProductSearch, in.text, ReplyProduct)
	return reply, []model.ChatActionButton{
		s.catalog.Button(model.ActionAddToList),
		s.catalog.Button(model.ActionNavigateToAisle),
		s.catalog.Button(model.ActionComparePrices),
	}
}

func (s *ResponseSynthesizer) dealSearch(ctx context.Context, in input) (string, []model.ChatActionButton) {
	return ReplyDeal, []model.ChatActionButton{
		s.catalog.Button(model.ActionClipCoupon),
		s.catalog.Button(model.ActionViewDeals),
		s.catalog.Button(model.ActionOptimizeBudget),
	}
}

func (s *ResponseSynthesizer) listManagement(ctx context.Context, in input) (string, []model.ChatActionButton) {
	buttons := []model.ChatActionButton{
		s.catalog.Button(model.ActionViewList),
		s.catalog.Button(model.ActionShareList),
	}

	switch {
	case in.has("clear", "empty", "reset"):
		return ReplyListClear, append(buttons, s.catalog.Button(model.ActionClearList))
	case in.has("remove", "delete", "drop"):
		return ReplyListRemove, buttons
	case in.has("add", "put", "need"):
		return ReplyListAdd, buttons
	default:
		return ReplyListShow, buttons
	}
}

func (s *ResponseSynthesizer) mealPlanning(ctx context.Context, in input) (string, []model.ChatActionButton) {
	return ReplyMealPlan, []model.ChatActionButton{
		s.catalog.Button(model.ActionGenerateMealPlan),
		s.catalog.Button(model.ActionAddMealPlanToList),
	}
}

func (s *ResponseSynthesizer) storeInfo(ctx context.Context, in input) (string, []model.ChatActionButton) {
	buttons := []model.ChatActionButton{
		s.catalog.Button(model.ActionOpenStoreMap),
		s.catalog.Button(model.ActionGetDirections),
	}

	switch {
	case in.has("hours", "open", "close", "closing", "opening"):
		return ReplyStoreHours, buttons
	case in.has("where", "location", "nearest", "near", "address", "directions"):
		return ReplyStoreLocation, buttons
	default:
		return ReplyStoreDefault, buttons
	}
}

func (s *ResponseSynthesizer) dietaryFilter(ctx context.Context, in input) (string, []model.ChatActionButton) {
	var names []string
	var buttons []model.ChatActionButton
	for _, d := range diets {
		if in.has(d.keyword...) {
			names = append(names, d.name)
			buttons = append(buttons, s.catalog.Button(d.action))
		}
	}

	if len(names) == 0 {
		return ReplyDietaryDefault, []model.ChatActionButton{
			s.catalog.Button(model.ActionFilterVegetarian),
			s.catalog.Button(model.ActionFilterVegan),
		}
	}
	return fmt.Sprintf(ReplyDietaryDetected, joinNames(names)), buttons
}

func (s *ResponseSynthesizer) general(ctx context.Context, in input) (string, []model.ChatActionButton) {
	canned := ReplyGeneral
	if in.result.Confidence == 0 {
		canned = ReplyUnknown
	}
	reply := s.enrichOr(ctx, textgen.KindGeneralResponse, model.IntentGeneral, in.text, canned)

	if in.result.Confidence == 0 {
		return reply, []model.ChatActionButton{}
	}
	return reply, []model.ChatActionButton{
		s.catalog.Button(model.ActionSuggestRecipes),
		s.catalog.Button(model.ActionViewDeals),
	}
}

func tokenSet(text string) map[string]struct{} {
	tokens := intent.Tokens(text)
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// joinNames renders "a", "a and b", "a, b and c".
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
