package model

// Punishment is the action applied when a rule is violated.
type Punishment string

const (
	PunishmentNone    Punishment = "None"
	PunishmentTimeout Punishment = "Timeout"
	PunishmentKick    Punishment = "Kick"
	PunishmentBan     Punishment = "Ban"
)

// ParsePunishment maps a command option value to a Punishment.
// Unknown values fall back to PunishmentNone.
func ParsePunishment(s string) Punishment {
	switch Punishment(s) {
	case PunishmentTimeout:
		return PunishmentTimeout
	case PunishmentKick:
		return PunishmentKick
	case PunishmentBan:
		return PunishmentBan
	default:
		return PunishmentNone
	}
}

// LinkRule governs which channel permits links and what happens elsewhere.
type LinkRule struct {
	Enabled          bool       `db:"link_enabled"`
	AllowedChannelID string     `db:"link_channel_id"`
	Punishment       Punishment `db:"link_punishment"`
	DurationMinutes  int        `db:"link_duration_minutes"`
	WarnMessage      string     `db:"link_warn_message"`
}

// LogChannels holds the per-guild log destinations. An empty ID disables
// that log.
type LogChannels struct {
	WarnLogChannelID    string `db:"warn_log_channel_id"`
	BanBoloChannelID    string `db:"ban_bolo_channel_id"`
	GeneralLogChannelID string `db:"general_log_channel_id"`
}

// GuildPolicy is the per-guild moderation configuration. One row per guild
// in the 'guild_policies' table.
type GuildPolicy struct {
	GuildID       string `db:"guild_id"`
	WarnRoleID    string `db:"warn_role_id"`
	AdminRoleID   string `db:"admin_role_id"`
	SuspendRoleID string `db:"suspend_role_id"`
	LinkRule      LinkRule
	LogChannels   LogChannels
}
