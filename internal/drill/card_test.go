package drill

import (
	"strings"
	"testing"
)

func TestIntAnswer_Check(t *testing.T) {
	tests := []struct {
		name string
		want int64
		raw  string
		out  Outcome
	}{
		{"exact match", 5, "5", Correct},
		{"wrong number", 5, "6", Incorrect},
		{"negative match", -3, "-3", Correct},
		{"explicit plus sign", 7, "+7", Correct},
		{"leading zeros", 7, "007", Correct},
		{"non-numeric", 5, "five", Invalid},
		{"empty input", 5, "", Invalid},
		{"decimal input", 5, "5.0", Invalid},
		{"embedded space", 5, "5 ", Invalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (IntAnswer{Want: tt.want}).Check(tt.raw); got != tt.out {
				t.Errorf("Check(%q) = %s, want %s", tt.raw, got, tt.out)
			}
		})
	}
}

func TestCard_LogResponse_AppendsOnlyValidAttempts(t *testing.T) {
	c := NewArithmetic("2 + 3 = ", 5)

	if got := c.LogResponse("5", 3.0); got != Correct {
		t.Fatalf("LogResponse(5) = %s, want correct", got)
	}
	if got := c.LogResponse("4", 2.0); got != Incorrect {
		t.Fatalf("LogResponse(4) = %s, want incorrect", got)
	}
	if got := c.LogResponse("five", 1.0); got != Invalid {
		t.Fatalf("LogResponse(five) = %s, want invalid", got)
	}

	h := c.History()
	if len(h) != 2 {
		t.Fatalf("history length = %d, want 2 (invalid input must not be recorded)", len(h))
	}
	want := []Response{
		{Correct: true, Answer: "5", Elapsed: 3.0},
		{Correct: false, Answer: "4", Elapsed: 2.0},
	}
	for i, r := range h {
		if r != want[i] {
			t.Errorf("history[%d] = %+v, want %+v", i, r, want[i])
		}
	}
}

func TestCard_HistoryReturnsCopy(t *testing.T) {
	c := NewArithmetic("1 + 1 = ", 2)
	c.LogResponse("2", 1.0)

	h := c.History()
	h[0].Correct = false
	h[0].Answer = "tampered"

	if got := c.History()[0]; !got.Correct || got.Answer != "2" {
		t.Errorf("history mutated through returned slice: %+v", got)
	}
}

func TestCard_IsMastered(t *testing.T) {
	tests := []struct {
		name      string
		responses []Response
		threshold float64
		want      bool
		wantTime  float64
	}{
		{
			name:      "empty history",
			responses: nil,
			threshold: 5,
			want:      false,
		},
		{
			name: "single fast correct",
			responses: []Response{
				{Correct: true, Answer: "5", Elapsed: 3.0},
			},
			threshold: 5,
			want:      true,
			wantTime:  3.0,
		},
		{
			name: "last correct but elapsed equals threshold",
			responses: []Response{
				{Correct: true, Answer: "5", Elapsed: 5.0},
			},
			threshold: 5,
			want:      false,
		},
		{
			name: "last fast correct but incorrect majority",
			responses: []Response{
				{Correct: false, Answer: "4", Elapsed: 2.0},
				{Correct: false, Answer: "6", Elapsed: 2.0},
				{Correct: true, Answer: "5", Elapsed: 1.0},
			},
			threshold: 5,
			want:      false,
		},
		{
			name: "equal correct and incorrect counts",
			responses: []Response{
				{Correct: false, Answer: "4", Elapsed: 2.0},
				{Correct: true, Answer: "5", Elapsed: 1.0},
			},
			threshold: 5,
			want:      false,
		},
		{
			name: "correct majority but last incorrect",
			responses: []Response{
				{Correct: true, Answer: "5", Elapsed: 1.0},
				{Correct: true, Answer: "5", Elapsed: 1.0},
				{Correct: false, Answer: "4", Elapsed: 1.0},
			},
			threshold: 5,
			want:      false,
		},
		{
			name: "correct majority but last too slow",
			responses: []Response{
				{Correct: true, Answer: "5", Elapsed: 1.0},
				{Correct: true, Answer: "5", Elapsed: 8.0},
			},
			threshold: 5,
			want:      false,
		},
		{
			name: "recovered after early misses",
			responses: []Response{
				{Correct: false, Answer: "4", Elapsed: 6.0},
				{Correct: true, Answer: "5", Elapsed: 4.0},
				{Correct: true, Answer: "5", Elapsed: 2.5},
			},
			threshold: 5,
			want:      true,
			wantTime:  2.5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := RestoreCard("2 + 3 = ", IntAnswer{Want: 5}, tt.responses)
			got, gotTime := c.IsMastered(tt.threshold)
			if got != tt.want {
				t.Errorf("IsMastered = %v, want %v", got, tt.want)
			}
			if gotTime != tt.wantTime {
				t.Errorf("mastery time = %v, want %v", gotTime, tt.wantTime)
			}
		})
	}
}

func TestCard_TotalTimeAndBestTime(t *testing.T) {
	c := RestoreCard("3 × 4 = ", IntAnswer{Want: 12}, []Response{
		{Correct: false, Answer: "11", Elapsed: 4.0},
		{Correct: true, Answer: "12", Elapsed: 3.0},
		{Correct: true, Answer: "12", Elapsed: 1.5},
	})

	if got := c.TotalTime(); got != 8.5 {
		t.Errorf("TotalTime = %v, want 8.5", got)
	}
	best, ok := c.BestTime()
	if !ok || best != 1.5 {
		t.Errorf("BestTime = %v, %v, want 1.5, true", best, ok)
	}

	none := NewArithmetic("1 + 1 = ", 2)
	none.LogResponse("3", 2.0)
	if _, ok := none.BestTime(); ok {
		t.Error("BestTime ok = true with no correct responses")
	}
}

func TestCard_WorseThan(t *testing.T) {
	// A: 1 response totaling 2.0s. B: 3 responses totaling 1.0s.
	// B is worse: fewer-attempts wins over total time only on ties.
	a := RestoreCard("a", IntAnswer{Want: 1}, []Response{
		{Correct: true, Answer: "1", Elapsed: 2.0},
	})
	b := RestoreCard("b", IntAnswer{Want: 1}, []Response{
		{Correct: false, Answer: "2", Elapsed: 0.4},
		{Correct: false, Answer: "3", Elapsed: 0.3},
		{Correct: true, Answer: "1", Elapsed: 0.3},
	})
	if !a.WorseThan(b) {
		t.Error("card with fewer responses must sort worse")
	}
	if b.WorseThan(a) {
		t.Error("card with more responses must not sort worse")
	}

	// Equal counts: greater total time is worse.
	slow := RestoreCard("slow", IntAnswer{Want: 1}, []Response{
		{Correct: true, Answer: "1", Elapsed: 9.0},
	})
	fast := RestoreCard("fast", IntAnswer{Want: 1}, []Response{
		{Correct: true, Answer: "1", Elapsed: 1.0},
	})
	if !slow.WorseThan(fast) {
		t.Error("with equal counts the slower card must sort worse")
	}
	if fast.WorseThan(slow) {
		t.Error("with equal counts the faster card must not sort worse")
	}
}

func TestCard_Summary(t *testing.T) {
	single := RestoreCard("2 + 3 = ", IntAnswer{Want: 5}, []Response{
		{Correct: true, Answer: "5", Elapsed: 3.0},
	})
	if got := single.Summary(); got != "2 + 3 = 5    (Best time = 3.0 s)" {
		t.Errorf("single-correct summary = %q", got)
	}

	multi := RestoreCard("2 + 3 = ", IntAnswer{Want: 5}, []Response{
		{Correct: false, Answer: "6", Elapsed: 4.0},
		{Correct: true, Answer: "5", Elapsed: 2.0},
	})
	if got := multi.Summary(); got != "2 + 3 = 5    (1 correct out of 2 attempts; best time = 2.0 s)" {
		t.Errorf("multi-attempt summary = %q", got)
	}

	missed := RestoreCard("2 + 3 = ", IntAnswer{Want: 5}, []Response{
		{Correct: false, Answer: "6", Elapsed: 4.0},
	})
	if got := missed.Summary(); strings.Contains(got, "best time") {
		t.Errorf("summary with no correct responses mentions best time: %q", got)
	}
}
