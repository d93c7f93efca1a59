package intent

// Log prefixes
const (
	LogPrefixLoadLexicon = "internal.intent.LoadLexicon"
)

// Lexicon file limits
const (
	MaxEntriesPerCategory = 200
	MaxPhraseTokens       = 6
)
