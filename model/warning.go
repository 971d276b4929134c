package model

import "time"

// WarningRecord is a single entry in a user's warning history. Records are
// immutable once written; the only mutation is deletion.
type WarningRecord struct {
	Moderator       string     `db:"moderator"`
	Reason          string     `db:"reason"`
	Punishment      Punishment `db:"punishment"`
	DurationMinutes int        `db:"duration_minutes"`
	CreatedAt       time.Time  `db:"created_at"`
}
