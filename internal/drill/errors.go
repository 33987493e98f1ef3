package drill

import "errors"

// Sentinel errors for the drill package.
// Use errors.Is to check: errors.Is(err, drill.ErrEmptyDeck)
var (
	ErrEmptyDeck = errors.New("drill: deck has no cards")
)
