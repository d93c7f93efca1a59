package textgen

import "time"

// Log prefixes
const (
	LogPrefixGenerate = "internal.textgen.Generate"
)

// Defaults applied by New when Config leaves a field zero
const (
	DefaultCacheSize       = 512
	DefaultCacheTTL        = 10 * time.Minute
	DefaultRateLimitPerMin = 30
	DefaultTemperature     = 0.4
	DefaultMaxTokens       = 300
)

// MaxQueryRunes caps the user text forwarded to the model.
const MaxQueryRunes = 1000

const promptStyle = ` Answer in at most three short sentences of plain text. No markdown, no lists, no emojis. Never invent prices or aisle numbers.`

var systemPrompts = map[Kind]string{
	KindRecipeSuggestion: `You are the cooking helper inside a grocery shopping app. Suggest one recipe that fits the user's request and name its key ingredients.` + promptStyle,
	KindProductGuidance:  `You are the product guide inside a grocery shopping app. Help the user find the item they ask about: which store section or department it usually lives in and what to look for on the shelf.` + promptStyle,
	KindGeneralResponse:  `You are a friendly grocery shopping assistant. You can help with recipes, finding products, deals, shopping lists, meal plans, store info and dietary filters. Reply to the user briefly and steer them toward one of those.` + promptStyle,
}
