// Package deckfile persists decks as human-readable JSON snapshots.
//
// The document layout is deterministic: cards are written worst-first using
// the same comparator as the session report, so a re-decoded deck keeps its
// drill-priority order rather than the original generation order.
package deckfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/flashdrill/internal/drill"
)

// KindArithmetic tags integer-arithmetic cards in snapshot documents. Every
// persisted card carries an explicit kind so future variants can decode
// without guessing.
const KindArithmetic = "arithmetic"

// Document is the top-level snapshot layout.
type Document struct {
	MasteryThreshold float64     `json:"mastery_threshold"`
	Cards            []CardEntry `json:"cards"`
}

// CardEntry is one persisted card with its defining fields and full history.
type CardEntry struct {
	Kind      string           `json:"kind"`
	Prompt    string           `json:"prompt"`
	Answer    int64            `json:"answer"`
	Responses []drill.Response `json:"responses,omitempty"`
}

// Encode serializes a deck as an indented JSON snapshot, cards worst-first.
func Encode(d *drill.Deck) ([]byte, error) {
	doc := Document{
		MasteryThreshold: d.Threshold(),
		Cards:            make([]CardEntry, 0, len(d.Cards())),
	}
	for _, c := range d.SortedWorstFirst() {
		checker, ok := c.Checker().(drill.IntAnswer)
		if !ok {
			return nil, fmt.Errorf("deckfile: unsupported card variant %T", c.Checker())
		}
		doc.Cards = append(doc.Cards, CardEntry{
			Kind:      KindArithmetic,
			Prompt:    c.Prompt(),
			Answer:    checker.Want,
			Responses: c.History(),
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("deckfile: encode snapshot: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode reconstructs a deck from snapshot data. The document is validated
// against the snapshot schema before anything is built, so a malformed file
// never yields a partially-populated deck.
//
// Defaults for missing optional fields: mastery_threshold 5, kind
// "arithmetic", responses empty.
func Decode(data []byte) (*drill.Deck, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("deckfile: parse snapshot: %w", err)
	}
	schema, err := compileSchema()
	if err != nil {
		return nil, fmt.Errorf("deckfile: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("deckfile: snapshot failed validation: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("deckfile: decode snapshot: %w", err)
	}

	threshold := doc.MasteryThreshold
	if threshold == 0 {
		threshold = drill.DefaultThreshold
	}

	cards := make([]*drill.Card, 0, len(doc.Cards))
	for i, entry := range doc.Cards {
		kind := entry.Kind
		if kind == "" {
			kind = KindArithmetic
		}
		if kind != KindArithmetic {
			return nil, fmt.Errorf("deckfile: card %d has unknown kind %q", i, entry.Kind)
		}
		cards = append(cards, drill.RestoreCard(
			entry.Prompt,
			drill.IntAnswer{Want: entry.Answer},
			entry.Responses,
		))
	}
	return drill.New(cards, threshold), nil
}

// Save writes a deck snapshot to path.
func Save(path string, d *drill.Deck) error {
	data, err := Encode(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("deckfile: write snapshot: %w", err)
	}
	return nil
}

// Load reads and decodes a deck snapshot from path.
func Load(path string) (*drill.Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("deckfile: read snapshot: %w", err)
	}
	return Decode(data)
}
