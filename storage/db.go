// Package storage holds the sqlite persistence layer for the moderation
// engine: guild policies, warning history and pending suspensions.
package storage

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Open connects to the moderation database and ensures all tables exist.
func Open(dbPath string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to moderation database: %w", err)
	}

	schema := `
    CREATE TABLE IF NOT EXISTS guild_policies (
        guild_id TEXT NOT NULL PRIMARY KEY,
        warn_role_id TEXT NOT NULL DEFAULT '',
        admin_role_id TEXT NOT NULL DEFAULT '',
        suspend_role_id TEXT NOT NULL DEFAULT '',
        link_enabled INTEGER NOT NULL DEFAULT 0,
        link_channel_id TEXT NOT NULL DEFAULT '',
        link_punishment TEXT NOT NULL DEFAULT 'None',
        link_duration_minutes INTEGER NOT NULL DEFAULT 0,
        link_warn_message TEXT NOT NULL DEFAULT '',
        warn_log_channel_id TEXT NOT NULL DEFAULT '',
        ban_bolo_channel_id TEXT NOT NULL DEFAULT '',
        general_log_channel_id TEXT NOT NULL DEFAULT ''
    );

    CREATE TABLE IF NOT EXISTS warnings (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        guild_id TEXT NOT NULL,
        user_id TEXT NOT NULL,
        moderator TEXT NOT NULL,
        reason TEXT NOT NULL,
        punishment TEXT NOT NULL,
        duration_minutes INTEGER NOT NULL DEFAULT 0,
        created_at DATETIME NOT NULL
    );
    CREATE INDEX IF NOT EXISTS idx_warnings_guild_user ON warnings (guild_id, user_id);

    CREATE TABLE IF NOT EXISTS suspensions (
        guild_id TEXT NOT NULL,
        user_id TEXT NOT NULL,
        suspend_role_id TEXT NOT NULL,
        original_role_ids TEXT NOT NULL DEFAULT '',
        expires_at DATETIME NOT NULL,
        PRIMARY KEY (guild_id, user_id)
    );`

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create moderation tables: %w", err)
	}

	return db, nil
}
