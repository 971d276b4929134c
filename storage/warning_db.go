package storage

import (
	"fmt"
	"time"

	"github.com/SirARLOTech/anti-link/model"
	"github.com/jmoiron/sqlx"
)

// WarningRow is a stored warning together with its stable row ID. Display
// indices are positions in the slice returned by ListWarnings; the ID exists
// so a removal validated against the current slice deletes exactly that row.
type WarningRow struct {
	ID              int64     `db:"id"`
	GuildID         string    `db:"guild_id"`
	UserID          string    `db:"user_id"`
	Moderator       string    `db:"moderator"`
	Reason          string    `db:"reason"`
	Punishment      string    `db:"punishment"`
	DurationMinutes int       `db:"duration_minutes"`
	CreatedAt       time.Time `db:"created_at"`
}

// Record converts the row to its domain record.
func (w WarningRow) Record() model.WarningRecord {
	return model.WarningRecord{
		Moderator:       w.Moderator,
		Reason:          w.Reason,
		Punishment:      model.ParsePunishment(w.Punishment),
		DurationMinutes: w.DurationMinutes,
		CreatedAt:       w.CreatedAt,
	}
}

// InsertWarning appends a warning to a user's history.
func InsertWarning(db *sqlx.DB, guildID, userID string, rec model.WarningRecord) error {
	row := WarningRow{
		GuildID:         guildID,
		UserID:          userID,
		Moderator:       rec.Moderator,
		Reason:          rec.Reason,
		Punishment:      string(rec.Punishment),
		DurationMinutes: rec.DurationMinutes,
		CreatedAt:       rec.CreatedAt,
	}

	query := `INSERT INTO warnings (guild_id, user_id, moderator, reason, punishment, duration_minutes, created_at)
              VALUES (:guild_id, :user_id, :moderator, :reason, :punishment, :duration_minutes, :created_at)`

	if _, err := db.NamedExec(query, row); err != nil {
		return fmt.Errorf("failed to insert warning for user %s in guild %s: %w", userID, guildID, err)
	}
	return nil
}

// ListWarnings returns a user's warnings in insertion order.
func ListWarnings(db *sqlx.DB, guildID, userID string) ([]WarningRow, error) {
	var rows []WarningRow
	query := "SELECT * FROM warnings WHERE guild_id = ? AND user_id = ? ORDER BY id ASC"
	if err := db.Select(&rows, query, guildID, userID); err != nil {
		return nil, fmt.Errorf("failed to list warnings for user %s in guild %s: %w", userID, guildID, err)
	}
	return rows, nil
}

// DeleteWarning removes a single warning by its row ID.
func DeleteWarning(db *sqlx.DB, id int64) error {
	result, err := db.Exec("DELETE FROM warnings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete warning %d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected for warning %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no warning found with id %d", id)
	}
	return nil
}
