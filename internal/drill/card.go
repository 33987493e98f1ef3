package drill

import (
	"fmt"
	"strconv"
	"strings"
)

// Response records one attempt at a card: whether it was correct, the raw
// answer as given, and how long it took in seconds. Responses are immutable
// once created.
type Response struct {
	Correct bool    `json:"correct"`
	Answer  string  `json:"answer"`
	Elapsed float64 `json:"elapsed"`
}

// Checker validates a raw answer string for one card variant. It is the
// single capability a variant must provide; everything else on Card is
// variant-independent.
type Checker interface {
	// Check classifies raw input as Correct, Incorrect, or Invalid.
	// Invalid means the input could not be parsed, not that it was wrong.
	Check(raw string) Outcome
}

// Solution is optionally implemented by checkers that can render their
// expected answer as display text, used when summarizing a card.
type Solution interface {
	Solution() string
}

// IntAnswer checks answers against an expected integer. Input must be
// optionally-signed base-10 text; the caller is responsible for trimming
// surrounding whitespace before submission.
type IntAnswer struct {
	Want int64
}

// Check parses raw as an integer and compares it against Want.
func (a IntAnswer) Check(raw string) Outcome {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Invalid
	}
	if n == a.Want {
		return Correct
	}
	return Incorrect
}

// Solution renders the expected integer.
func (a IntAnswer) Solution() string {
	return strconv.FormatInt(a.Want, 10)
}

// Card is one drillable question with its attempt history. The history only
// ever grows by appending; no response is removed or mutated after creation.
type Card struct {
	prompt  string
	checker Checker
	history []Response
}

// NewCard creates a card with the given prompt and answer checker.
func NewCard(prompt string, checker Checker) *Card {
	return &Card{prompt: prompt, checker: checker}
}

// NewArithmetic creates an integer-arithmetic card.
func NewArithmetic(prompt string, answer int64) *Card {
	return NewCard(prompt, IntAnswer{Want: answer})
}

// RestoreCard rebuilds a card from persisted state, including its full
// response history.
func RestoreCard(prompt string, checker Checker, history []Response) *Card {
	c := NewCard(prompt, checker)
	c.history = append(c.history, history...)
	return c
}

// Prompt returns the display text for the question.
func (c *Card) Prompt() string {
	return c.prompt
}

// Checker returns the card's answer checker.
func (c *Card) Checker() Checker {
	return c.checker
}

// Check classifies raw input without recording anything.
func (c *Card) Check(raw string) Outcome {
	return c.checker.Check(raw)
}

// LogResponse checks raw input and, unless the outcome is Invalid, appends a
// response with the given elapsed time. The outcome is returned either way.
func (c *Card) LogResponse(raw string, elapsed float64) Outcome {
	outcome := c.checker.Check(raw)
	if outcome == Invalid {
		return outcome
	}
	c.history = append(c.history, Response{
		Correct: outcome == Correct,
		Answer:  raw,
		Elapsed: elapsed,
	})
	return outcome
}

// History returns a copy of the card's response history in chronological
// order.
func (c *Card) History() []Response {
	out := make([]Response, len(c.history))
	copy(out, c.history)
	return out
}

// ResetHistory discards all recorded responses, used when a persisted deck is
// loaded for a fresh practice session.
func (c *Card) ResetHistory() {
	c.history = nil
}

// IsMastered reports whether the card is currently mastered under the given
// time threshold, and if so the elapsed time of the qualifying response.
//
// A card is mastered when its history is non-empty, correct answers outnumber
// incorrect ones, and the most recent response is correct in strictly less
// than threshold seconds. A favorable overall record keeps one lucky fast
// guess from counting; the recency condition keeps stale mastery from
// counting.
func (c *Card) IsMastered(threshold float64) (bool, float64) {
	if len(c.history) == 0 {
		return false, 0
	}
	correct := 0
	for _, r := range c.history {
		if r.Correct {
			correct++
		}
	}
	if correct <= len(c.history)-correct {
		return false, 0
	}
	last := c.history[len(c.history)-1]
	if last.Correct && last.Elapsed < threshold {
		return true, last.Elapsed
	}
	return false, 0
}

// TotalTime returns the sum of all recorded elapsed times in seconds.
func (c *Card) TotalTime() float64 {
	total := 0.0
	for _, r := range c.history {
		total += r.Elapsed
	}
	return total
}

// BestTime returns the fastest correct response time. ok is false when the
// card has no correct responses.
func (c *Card) BestTime() (best float64, ok bool) {
	for _, r := range c.history {
		if !r.Correct {
			continue
		}
		if !ok || r.Elapsed < best {
			best, ok = r.Elapsed, true
		}
	}
	return best, ok
}

// WorseThan reports whether c should sort before other in a worst-first
// listing: fewer responses is worse; with equal counts, greater total time is
// worse. Ties are left to sort stability.
func (c *Card) WorseThan(other *Card) bool {
	if len(c.history) != len(other.history) {
		return len(c.history) < len(other.history)
	}
	return c.TotalTime() > other.TotalTime()
}

// Summary returns one report line for the card: the solved problem text, its
// attempt counts, and the best correct time.
func (c *Card) Summary() string {
	label := c.prompt
	if s, ok := c.checker.(Solution); ok {
		label += s.Solution()
	}

	correct := 0
	for _, r := range c.history {
		if r.Correct {
			correct++
		}
	}
	best, ok := c.BestTime()

	if len(c.history) == 1 && correct == 1 {
		return fmt.Sprintf("%s    (Best time = %.1f s)", label, best)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s    (%d correct out of %d attempts", label, correct, len(c.history))
	if ok {
		fmt.Fprintf(&b, "; best time = %.1f s", best)
	}
	b.WriteString(")")
	return b.String()
}
