package drill

import (
	"errors"
	"strings"
	"testing"
)

// masteredCard returns a card mastered under a threshold of 5 with the given
// qualifying time.
func masteredCard(prompt string, elapsed float64) *Card {
	return RestoreCard(prompt, IntAnswer{Want: 1}, []Response{
		{Correct: true, Answer: "1", Elapsed: elapsed},
	})
}

func TestDeck_Next_EmptyDeck(t *testing.T) {
	d := New(nil, 5)
	if _, err := d.Next(); !errors.Is(err, ErrEmptyDeck) {
		t.Fatalf("Next on empty deck: err = %v, want ErrEmptyDeck", err)
	}
}

func TestDeck_Next_NeverReturnsMasteredWhileUnmasteredRemain(t *testing.T) {
	mastered := masteredCard("mastered", 1.0)
	fresh1 := NewArithmetic("fresh1", 1)
	fresh2 := NewArithmetic("fresh2", 1)
	d := New([]*Card{mastered, fresh1, fresh2}, 5)

	// Selection is random; draw repeatedly and make sure the mastered card
	// never comes back.
	for i := 0; i < 200; i++ {
		c, err := d.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if c == mastered {
			t.Fatal("Next returned a mastered card while unmastered cards remain")
		}
	}
}

func TestDeck_Next_CoversAllUnmastered(t *testing.T) {
	cards := []*Card{
		NewArithmetic("a", 1),
		NewArithmetic("b", 1),
		NewArithmetic("c", 1),
	}
	d := New(cards, 5)

	seen := make(map[*Card]bool)
	for i := 0; i < 500 && len(seen) < len(cards); i++ {
		c, err := d.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		seen[c] = true
	}
	if len(seen) != len(cards) {
		t.Errorf("selection covered %d of %d unmastered cards", len(seen), len(cards))
	}
}

func TestDeck_Next_AllMasteredReturnsSlowest(t *testing.T) {
	fast := masteredCard("fast", 1.0)
	slow := masteredCard("slow", 4.5)
	mid := masteredCard("mid", 3.0)
	d := New([]*Card{fast, slow, mid}, 5)

	for i := 0; i < 10; i++ {
		c, err := d.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if c != slow {
			t.Fatalf("Next = %q, want the slowest mastered card", c.Prompt())
		}
	}
}

func TestDeck_Progress(t *testing.T) {
	d := New([]*Card{
		masteredCard("done", 2.0),
		NewArithmetic("todo", 1),
	}, 5)

	completed, total := d.Progress()
	if completed != 1 || total != 2 {
		t.Errorf("Progress = (%d, %d), want (1, 2)", completed, total)
	}
	if d.Complete() {
		t.Error("Complete = true with an unmastered card")
	}

	d.cards[1].LogResponse("1", 1.0)
	if !d.Complete() {
		t.Error("Complete = false after the last card was mastered")
	}
}

func TestDeck_ResetHistory(t *testing.T) {
	d := New([]*Card{masteredCard("a", 1.0), masteredCard("b", 2.0)}, 5)
	d.ResetHistory()

	if completed, _ := d.Progress(); completed != 0 {
		t.Errorf("completed = %d after reset, want 0", completed)
	}
	for _, c := range d.Cards() {
		if len(c.History()) != 0 {
			t.Errorf("card %q history not cleared", c.Prompt())
		}
	}
}

func TestDeck_Report_WorstFirstOrder(t *testing.T) {
	// fewer attempts sorts first, then greater total time.
	oneAttempt := RestoreCard("one + ", IntAnswer{Want: 1}, []Response{
		{Correct: true, Answer: "1", Elapsed: 2.0},
	})
	threeAttempts := RestoreCard("three + ", IntAnswer{Want: 1}, []Response{
		{Correct: false, Answer: "2", Elapsed: 0.4},
		{Correct: true, Answer: "1", Elapsed: 0.3},
		{Correct: true, Answer: "1", Elapsed: 0.3},
	})
	twoSlow := RestoreCard("twoslow + ", IntAnswer{Want: 1}, []Response{
		{Correct: true, Answer: "1", Elapsed: 5.0},
		{Correct: true, Answer: "1", Elapsed: 5.0},
	})
	twoFast := RestoreCard("twofast + ", IntAnswer{Want: 1}, []Response{
		{Correct: true, Answer: "1", Elapsed: 1.0},
		{Correct: true, Answer: "1", Elapsed: 1.0},
	})
	d := New([]*Card{threeAttempts, twoFast, oneAttempt, twoSlow}, 5)

	report := d.Report()
	order := []string{"one + ", "twoslow + ", "twofast + ", "three + "}
	pos := -1
	for _, prompt := range order {
		i := strings.Index(report, prompt)
		if i < 0 {
			t.Fatalf("report missing card %q:\n%s", prompt, report)
		}
		if i < pos {
			t.Fatalf("report order wrong, %q appeared too early:\n%s", prompt, report)
		}
		pos = i
	}
}

func TestFormatTotal(t *testing.T) {
	tests := []struct {
		total float64
		want  string
	}{
		{12.34, "12.3 seconds"},
		{59.9, "59.9 seconds"},
		{60, "1 minute 0 seconds"},
		{61, "1 minute 1 second"},
		{125.7, "2 minutes 5 seconds"},
	}
	for _, tt := range tests {
		if got := formatTotal(tt.total); got != tt.want {
			t.Errorf("formatTotal(%v) = %q, want %q", tt.total, got, tt.want)
		}
	}
}
