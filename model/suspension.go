package model

import "time"

// SuspensionTask is a pending role restoration. It is persisted for the whole
// lifetime of a suspension so that a restart never loses the restore.
type SuspensionTask struct {
	GuildID         string    `db:"guild_id"`
	UserID          string    `db:"user_id"`
	SuspendRoleID   string    `db:"suspend_role_id"`
	OriginalRoleIDs []string  `db:"-"`
	ExpiresAt       time.Time `db:"expires_at"`
}
