package moderation

import (
	"github.com/SirARLOTech/anti-link/model"
	"github.com/SirARLOTech/anti-link/storage"
	"github.com/jmoiron/sqlx"
)

// Ledger is the per-user warning history. Mutations against the same user
// are serialized so a removal index validated here is still valid when the
// delete runs.
type Ledger struct {
	db    *sqlx.DB
	locks *keyedLocks
}

// NewLedger creates a warning ledger backed by the moderation database.
func NewLedger(db *sqlx.DB) *Ledger {
	return &Ledger{db: db, locks: newKeyedLocks()}
}

// Add appends a warning to the user's history. The write is durable before
// Add returns nil.
func (l *Ledger) Add(guildID, userID string, rec model.WarningRecord) error {
	unlock := l.locks.Lock(guildID, userID)
	defer unlock()

	return storage.InsertWarning(l.db, guildID, userID, rec)
}

// List returns the user's warnings in insertion order. A user with no
// warnings yields an empty slice, not an error.
func (l *Ledger) List(guildID, userID string) ([]model.WarningRecord, error) {
	rows, err := storage.ListWarnings(l.db, guildID, userID)
	if err != nil {
		return nil, err
	}

	records := make([]model.WarningRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.Record())
	}
	return records, nil
}

// Remove deletes the warning at the given 0-based position in the user's
// current history and returns it. A stale index yields ErrIndexOutOfRange
// and leaves the ledger unchanged.
func (l *Ledger) Remove(guildID, userID string, index int) (model.WarningRecord, error) {
	unlock := l.locks.Lock(guildID, userID)
	defer unlock()

	rows, err := storage.ListWarnings(l.db, guildID, userID)
	if err != nil {
		return model.WarningRecord{}, err
	}
	if index < 0 || index >= len(rows) {
		return model.WarningRecord{}, ErrIndexOutOfRange
	}

	row := rows[index]
	if err := storage.DeleteWarning(l.db, row.ID); err != nil {
		return model.WarningRecord{}, err
	}
	return row.Record(), nil
}
