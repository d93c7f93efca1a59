package intent

import "errors"

var (
	// ErrUnknownCategory is returned when a lexicon names a category that does not exist.
	ErrUnknownCategory = errors.New("unknown intent category")

	// ErrInvalidWeight is returned for zero, negative or non-finite weights.
	ErrInvalidWeight = errors.New("invalid lexicon weight")

	// ErrEmptyPhrase is returned for entries that normalize to no tokens.
	ErrEmptyPhrase = errors.New("empty lexicon phrase")

	// ErrPhraseTooLong is returned for phrases longer than MaxPhraseTokens words.
	ErrPhraseTooLong = errors.New("lexicon phrase too long")

	// ErrTooManyEntries is returned when a category exceeds MaxEntriesPerCategory.
	ErrTooManyEntries = errors.New("too many lexicon entries")
)
