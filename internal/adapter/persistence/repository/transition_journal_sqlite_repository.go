package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"depannel_dispatch/internal/domain/entities"
	"depannel_dispatch/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	defaultHistoryLimit = 50
	// fixed width so that lexical order on the at column is chronological
	journalTimeLayout = "2006-01-02T15:04:05.000000000Z"
)

// TransitionJournalSQLiteRepository appends transition attempts to the
// transitions table created by database.OpenSQLite.
type TransitionJournalSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.ITransitionJournal = (*TransitionJournalSQLiteRepository)(nil)

func NewTransitionJournalSQLiteRepository(db *sql.DB) *TransitionJournalSQLiteRepository {
	return &TransitionJournalSQLiteRepository{db: db}
}

func (r *TransitionJournalSQLiteRepository) Record(ctx context.Context, rec entities.TransitionRecord) error {
	if r == nil || r.db == nil {
		return errors.New("journal db is nil")
	}
	rec.InterventionID = strings.TrimSpace(rec.InterventionID)
	if rec.InterventionID == "" {
		return errors.New("intervention id is required")
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.At.IsZero() {
		rec.At = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO transitions
		(id, intervention_id, action, actor_id, actor_role, from_status, from_sub_status, to_status, to_sub_status, outcome, error, at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.InterventionID,
		rec.Action,
		rec.ActorID,
		string(rec.ActorRole),
		string(rec.FromStatus),
		nullString(string(rec.FromSubStatus)),
		nullString(string(rec.ToStatus)),
		nullString(string(rec.ToSubStatus)),
		string(rec.Outcome),
		nullString(rec.Error),
		rec.At.UTC().Format(journalTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert transition for intervention %s: %w", rec.InterventionID, err)
	}
	return nil
}

// ListByIntervention returns the newest records first. A non-positive
// limit falls back to defaultHistoryLimit.
func (r *TransitionJournalSQLiteRepository) ListByIntervention(ctx context.Context, interventionID string, limit int) ([]entities.TransitionRecord, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("journal db is nil")
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	rows, err := r.db.QueryContext(ctx, `SELECT id, intervention_id, action, actor_id, actor_role, from_status,
		from_sub_status, to_status, to_sub_status, outcome, error, at
		FROM transitions WHERE intervention_id = ? ORDER BY at DESC, rowid DESC LIMIT ?`,
		strings.TrimSpace(interventionID), limit)
	if err != nil {
		return nil, fmt.Errorf("query transitions for intervention %s: %w", interventionID, err)
	}
	defer rows.Close()

	out := []entities.TransitionRecord{}
	for rows.Next() {
		var (
			rec                         entities.TransitionRecord
			role, from, outcome, at     string
			fromSub, to, toSub, errText sql.NullString
		)
		if err := rows.Scan(&rec.ID, &rec.InterventionID, &rec.Action, &rec.ActorID, &role, &from,
			&fromSub, &to, &toSub, &outcome, &errText, &at); err != nil {
			return nil, fmt.Errorf("scan transition: %w", err)
		}
		rec.ActorRole = entities.Role(role)
		rec.FromStatus = entities.InterventionStatus(from)
		rec.FromSubStatus = entities.SubStatus(fromSub.String)
		rec.ToStatus = entities.InterventionStatus(to.String)
		rec.ToSubStatus = entities.SubStatus(toSub.String)
		rec.Outcome = entities.TransitionOutcome(outcome)
		rec.Error = errText.String
		rec.At, _ = time.Parse(journalTimeLayout, at)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transitions: %w", err)
	}
	return out, nil
}
