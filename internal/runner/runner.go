// Package runner drives one interactive practice session over a deck.
//
// The engine itself never touches a clock or a terminal; the runner is the
// caller the engine expects, measuring elapsed time and relaying outcomes.
package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/flashdrill/internal/drill"
	"github.com/abhisek/flashdrill/internal/store"
)

// Recorder receives session and attempt facts as they happen. *store.Store
// implements it; a nil Recorder disables history recording.
type Recorder interface {
	StartSession(ctx context.Context, rec store.SessionRecord) error
	AppendAttempt(ctx context.Context, rec store.AttemptRecord) error
	FinishSession(ctx context.Context, id string, durationSecs float64, mastered int) error
}

// Summary describes how a session ended.
type Summary struct {
	SessionID string
	Completed int
	Total     int
	Complete  bool
	Report    string
}

// Runner runs the select/answer/log loop until the deck is mastered or the
// input ends.
type Runner struct {
	Deck      *drill.Deck
	Profile   string
	Operation string

	In  io.Reader
	Out io.Writer
	Err io.Writer // warnings; defaults to os.Stderr

	Recorder Recorder         // optional
	Now      func() time.Time // defaults to time.Now
}

// Run drives the session. Reaching EOF on input abandons the session, which
// is legal at any point; the summary then reports Complete=false.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	now := r.Now
	if now == nil {
		now = time.Now
	}
	errw := r.Err
	if errw == nil {
		errw = os.Stderr
	}

	sessionID := uuid.NewString()
	if r.Recorder != nil {
		err := r.Recorder.StartSession(ctx, store.SessionRecord{
			ID:        sessionID,
			Profile:   r.Profile,
			Operation: r.Operation,
			StartedAt: now(),
			CardsTotal: func() int {
				_, total := r.Deck.Progress()
				return total
			}(),
		})
		if err != nil {
			fmt.Fprintf(errw, "warning: failed to record session start: %v\n", err)
		}
	}

	scanner := bufio.NewScanner(r.In)
	seq := 0
	for !r.Deck.Complete() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		card, err := r.Deck.Next()
		if err != nil {
			return nil, err
		}

		fmt.Fprint(r.Out, card.Prompt())
		start := now()
		if !scanner.Scan() {
			break
		}
		raw := strings.TrimSpace(scanner.Text())
		elapsed := now().Sub(start).Seconds()

		outcome := card.LogResponse(raw, elapsed)
		switch outcome {
		case drill.Correct:
			fmt.Fprintln(r.Out, "Correct!")
		case drill.Incorrect:
			fmt.Fprintln(r.Out, "Incorrect!")
		case drill.Invalid:
			// Not an attempt; prompt again without penalty.
			fmt.Fprintf(r.Out, "Invalid response (%s); try again.\n", raw)
			continue
		}

		seq++
		if r.Recorder != nil {
			err := r.Recorder.AppendAttempt(ctx, store.AttemptRecord{
				SessionID:   sessionID,
				Seq:         seq,
				Prompt:      card.Prompt(),
				GivenAnswer: raw,
				Correct:     outcome == drill.Correct,
				ElapsedSecs: elapsed,
			})
			if err != nil {
				fmt.Fprintf(errw, "warning: failed to record attempt: %v\n", err)
			}
		}

		completed, total := r.Deck.Progress()
		fmt.Fprintf(r.Out, "%d cards remaining\n\n", total-completed)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("runner: read input: %w", err)
	}

	completed, total := r.Deck.Progress()
	summary := &Summary{
		SessionID: sessionID,
		Completed: completed,
		Total:     total,
		Complete:  completed == total,
		Report:    r.Deck.Report(),
	}

	if summary.Complete {
		fmt.Fprintln(r.Out)
		fmt.Fprint(r.Out, summary.Report)
	}

	if r.Recorder != nil {
		if err := r.Recorder.FinishSession(ctx, sessionID, r.Deck.TotalTime(), completed); err != nil {
			fmt.Fprintf(errw, "warning: failed to record session end: %v\n", err)
		}
	}
	return summary, nil
}
