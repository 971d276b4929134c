package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SirARLOTech/anti-link/model"
	"github.com/jmoiron/sqlx"
)

type suspensionRow struct {
	GuildID         string    `db:"guild_id"`
	UserID          string    `db:"user_id"`
	SuspendRoleID   string    `db:"suspend_role_id"`
	OriginalRoleIDs string    `db:"original_role_ids"`
	ExpiresAt       time.Time `db:"expires_at"`
}

func (r suspensionRow) toTask() model.SuspensionTask {
	var roles []string
	if r.OriginalRoleIDs != "" {
		roles = strings.Split(r.OriginalRoleIDs, ",")
	}
	return model.SuspensionTask{
		GuildID:         r.GuildID,
		UserID:          r.UserID,
		SuspendRoleID:   r.SuspendRoleID,
		OriginalRoleIDs: roles,
		ExpiresAt:       r.ExpiresAt,
	}
}

// SaveSuspension writes a suspension task as a whole-row replace, keyed by
// guild and user.
func SaveSuspension(db *sqlx.DB, task model.SuspensionTask) error {
	row := suspensionRow{
		GuildID:         task.GuildID,
		UserID:          task.UserID,
		SuspendRoleID:   task.SuspendRoleID,
		OriginalRoleIDs: strings.Join(task.OriginalRoleIDs, ","),
		ExpiresAt:       task.ExpiresAt,
	}

	query := `INSERT OR REPLACE INTO suspensions (guild_id, user_id, suspend_role_id, original_role_ids, expires_at)
              VALUES (:guild_id, :user_id, :suspend_role_id, :original_role_ids, :expires_at)`

	if _, err := db.NamedExec(query, row); err != nil {
		return fmt.Errorf("failed to save suspension for user %s in guild %s: %w", task.UserID, task.GuildID, err)
	}
	return nil
}

// GetSuspension fetches the suspension task for a user, or nil if none exists.
func GetSuspension(db *sqlx.DB, guildID, userID string) (*model.SuspensionTask, error) {
	var row suspensionRow
	query := "SELECT * FROM suspensions WHERE guild_id = ? AND user_id = ?"
	if err := db.Get(&row, query, guildID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get suspension for user %s in guild %s: %w", userID, guildID, err)
	}
	task := row.toTask()
	return &task, nil
}

// ListSuspensions returns every persisted suspension task. Used at boot to
// resume timers.
func ListSuspensions(db *sqlx.DB) ([]model.SuspensionTask, error) {
	var rows []suspensionRow
	if err := db.Select(&rows, "SELECT * FROM suspensions"); err != nil {
		return nil, fmt.Errorf("failed to list suspensions: %w", err)
	}

	tasks := make([]model.SuspensionTask, 0, len(rows))
	for _, r := range rows {
		tasks = append(tasks, r.toTask())
	}
	return tasks, nil
}

// DeleteSuspension removes a suspension task once restoration is confirmed
// or the suspension is cancelled.
func DeleteSuspension(db *sqlx.DB, guildID, userID string) error {
	_, err := db.Exec("DELETE FROM suspensions WHERE guild_id = ? AND user_id = ?", guildID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete suspension for user %s in guild %s: %w", userID, guildID, err)
	}
	return nil
}
