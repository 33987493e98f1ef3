package store

import (
	"context"
	"fmt"
	"time"
)

// SessionRecord is one practice session's summary row.
type SessionRecord struct {
	ID            string
	Profile       string
	Operation     string
	StartedAt     time.Time
	DurationSecs  float64
	CardsTotal    int
	CardsMastered int
}

// AttemptRecord is one recorded answer within a session. Seq orders attempts
// chronologically within their session.
type AttemptRecord struct {
	SessionID   string
	Seq         int
	Prompt      string
	GivenAnswer string
	Correct     bool
	ElapsedSecs float64
}

// StartSession inserts a new session row. Duration and mastered count start
// at zero and are filled in by FinishSession.
func (s *Store) StartSession(ctx context.Context, rec SessionRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, profile, operation, started_at, duration_secs, cards_total, cards_mastered)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Profile, rec.Operation, rec.StartedAt, rec.DurationSecs, rec.CardsTotal, rec.CardsMastered)
	if err != nil {
		return fmt.Errorf("insert session %s: %w", rec.ID, err)
	}
	return nil
}

// FinishSession records the final duration and mastered count for a session.
func (s *Store) FinishSession(ctx context.Context, id string, durationSecs float64, mastered int) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE sessions SET duration_secs = ?, cards_mastered = ? WHERE id = ?
	`, durationSecs, mastered, id)
	if err != nil {
		return fmt.Errorf("finish session %s: %w", id, err)
	}
	return nil
}

// AppendAttempt inserts one attempt row.
func (s *Store) AppendAttempt(ctx context.Context, rec AttemptRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO attempts (session_id, seq, prompt, given_answer, correct, elapsed_secs)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.SessionID, rec.Seq, rec.Prompt, rec.GivenAnswer, rec.Correct, rec.ElapsedSecs)
	if err != nil {
		return fmt.Errorf("insert attempt %d for session %s: %w", rec.Seq, rec.SessionID, err)
	}
	return nil
}

// RecentSessions returns up to limit sessions, newest first.
func (s *Store) RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, profile, operation, started_at, duration_secs, cards_total, cards_mastered
		FROM sessions ORDER BY started_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		if err := rows.Scan(&rec.ID, &rec.Profile, &rec.Operation, &rec.StartedAt,
			&rec.DurationSecs, &rec.CardsTotal, &rec.CardsMastered); err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return out, nil
}

// SessionAttempts returns a session's attempts in chronological order.
func (s *Store) SessionAttempts(ctx context.Context, sessionID string) ([]AttemptRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, seq, prompt, given_answer, correct, elapsed_secs
		FROM attempts WHERE session_id = ? ORDER BY seq
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query attempts for session %s: %w", sessionID, err)
	}
	defer rows.Close()

	var out []AttemptRecord
	for rows.Next() {
		var rec AttemptRecord
		if err := rows.Scan(&rec.SessionID, &rec.Seq, &rec.Prompt, &rec.GivenAnswer,
			&rec.Correct, &rec.ElapsedSecs); err != nil {
			return nil, fmt.Errorf("scan attempt row: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return out, nil
}
