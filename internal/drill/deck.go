package drill

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// DefaultThreshold is the mastery time threshold in seconds used when a deck
// source does not specify one.
const DefaultThreshold = 5

// Deck is an ordered group of cards sharing a mastery time threshold. It owns
// its cards for the duration of one practice session.
type Deck struct {
	cards     []*Card
	threshold float64
}

// New creates a deck over the given cards with the given mastery threshold in
// seconds.
func New(cards []*Card, threshold float64) *Deck {
	return &Deck{cards: cards, threshold: threshold}
}

// Cards returns the deck's cards in their current order.
func (d *Deck) Cards() []*Card {
	return d.cards
}

// Threshold returns the mastery time threshold in seconds.
func (d *Deck) Threshold() float64 {
	return d.threshold
}

// Next selects the card to present. While unmastered cards remain it picks
// one uniformly at random using a cryptographically strong source, so a
// learner cannot predict the order and game the drill. Once every card is
// mastered it returns the card with the slowest qualifying time, keeping the
// drill reinforcing the weakest-but-passing card.
//
// Calling Next on an empty deck is a caller error and returns ErrEmptyDeck;
// check Progress first.
func (d *Deck) Next() (*Card, error) {
	if len(d.cards) == 0 {
		return nil, ErrEmptyDeck
	}

	var unmastered []int
	for i, c := range d.cards {
		if ok, _ := c.IsMastered(d.threshold); !ok {
			unmastered = append(unmastered, i)
		}
	}
	if len(unmastered) > 0 {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(unmastered))))
		if err != nil {
			return nil, fmt.Errorf("drill: select card: %w", err)
		}
		return d.cards[unmastered[n.Int64()]], nil
	}

	slowest := d.cards[0]
	_, slowestTime := slowest.IsMastered(d.threshold)
	for _, c := range d.cards[1:] {
		if _, t := c.IsMastered(d.threshold); t > slowestTime {
			slowest, slowestTime = c, t
		}
	}
	return slowest, nil
}

// Progress returns how many cards are mastered and how many cards there are.
func (d *Deck) Progress() (completed, total int) {
	for _, c := range d.cards {
		if ok, _ := c.IsMastered(d.threshold); ok {
			completed++
		}
	}
	return completed, len(d.cards)
}

// Complete reports whether every card in the deck is mastered.
func (d *Deck) Complete() bool {
	completed, total := d.Progress()
	return completed == total
}

// TotalTime returns the sum of all recorded elapsed times across all cards.
func (d *Deck) TotalTime() float64 {
	total := 0.0
	for _, c := range d.cards {
		total += c.TotalTime()
	}
	return total
}

// ResetHistory clears every card's response history so mastery state starts
// empty, used when resuming a persisted deck as a fresh session.
func (d *Deck) ResetHistory() {
	for _, c := range d.cards {
		c.ResetHistory()
	}
}

// SortedWorstFirst returns the deck's cards ordered worst-first. The sort is
// stable, so cards that tie keep their original order.
func (d *Deck) SortedWorstFirst() []*Card {
	sorted := make([]*Card, len(d.cards))
	copy(sorted, d.cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].WorseThan(sorted[j])
	})
	return sorted
}

// Report renders a worst-first listing of every card with its attempt counts
// and best time, headed by the total practice time.
func (d *Deck) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Flashcard Deck (total time %s):\n\n", formatTotal(d.TotalTime()))
	for _, c := range d.SortedWorstFirst() {
		b.WriteString(c.Summary())
		b.WriteByte('\n')
	}
	return b.String()
}

// formatTotal renders seconds as "M minute(s) S second(s)" once the total
// reaches a minute, otherwise as fractional seconds.
func formatTotal(total float64) string {
	if total < 60 {
		return fmt.Sprintf("%.1f seconds", total)
	}
	minutes := int(total) / 60
	seconds := int(total) % 60
	return fmt.Sprintf("%d %s %d %s",
		minutes, pluralize("minute", minutes),
		seconds, pluralize("second", seconds))
}

func pluralize(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
