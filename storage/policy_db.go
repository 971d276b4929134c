package storage

import (
	"fmt"

	"github.com/SirARLOTech/anti-link/model"
	"github.com/jmoiron/sqlx"
)

// policyRow is the flat table shape of a GuildPolicy.
type policyRow struct {
	GuildID             string `db:"guild_id"`
	WarnRoleID          string `db:"warn_role_id"`
	AdminRoleID         string `db:"admin_role_id"`
	SuspendRoleID       string `db:"suspend_role_id"`
	LinkEnabled         bool   `db:"link_enabled"`
	LinkChannelID       string `db:"link_channel_id"`
	LinkPunishment      string `db:"link_punishment"`
	LinkDurationMinutes int    `db:"link_duration_minutes"`
	LinkWarnMessage     string `db:"link_warn_message"`
	WarnLogChannelID    string `db:"warn_log_channel_id"`
	BanBoloChannelID    string `db:"ban_bolo_channel_id"`
	GeneralLogChannelID string `db:"general_log_channel_id"`
}

func toPolicyRow(p model.GuildPolicy) policyRow {
	return policyRow{
		GuildID:             p.GuildID,
		WarnRoleID:          p.WarnRoleID,
		AdminRoleID:         p.AdminRoleID,
		SuspendRoleID:       p.SuspendRoleID,
		LinkEnabled:         p.LinkRule.Enabled,
		LinkChannelID:       p.LinkRule.AllowedChannelID,
		LinkPunishment:      string(p.LinkRule.Punishment),
		LinkDurationMinutes: p.LinkRule.DurationMinutes,
		LinkWarnMessage:     p.LinkRule.WarnMessage,
		WarnLogChannelID:    p.LogChannels.WarnLogChannelID,
		BanBoloChannelID:    p.LogChannels.BanBoloChannelID,
		GeneralLogChannelID: p.LogChannels.GeneralLogChannelID,
	}
}

func (r policyRow) toPolicy() model.GuildPolicy {
	return model.GuildPolicy{
		GuildID:       r.GuildID,
		WarnRoleID:    r.WarnRoleID,
		AdminRoleID:   r.AdminRoleID,
		SuspendRoleID: r.SuspendRoleID,
		LinkRule: model.LinkRule{
			Enabled:          r.LinkEnabled,
			AllowedChannelID: r.LinkChannelID,
			Punishment:       model.ParsePunishment(r.LinkPunishment),
			DurationMinutes:  r.LinkDurationMinutes,
			WarnMessage:      r.LinkWarnMessage,
		},
		LogChannels: model.LogChannels{
			WarnLogChannelID:    r.WarnLogChannelID,
			BanBoloChannelID:    r.BanBoloChannelID,
			GeneralLogChannelID: r.GeneralLogChannelID,
		},
	}
}

// SaveGuildPolicy writes a guild's policy as a whole-row replace.
func SaveGuildPolicy(db *sqlx.DB, p model.GuildPolicy) error {
	query := `INSERT OR REPLACE INTO guild_policies (
        guild_id, warn_role_id, admin_role_id, suspend_role_id,
        link_enabled, link_channel_id, link_punishment, link_duration_minutes, link_warn_message,
        warn_log_channel_id, ban_bolo_channel_id, general_log_channel_id
    ) VALUES (
        :guild_id, :warn_role_id, :admin_role_id, :suspend_role_id,
        :link_enabled, :link_channel_id, :link_punishment, :link_duration_minutes, :link_warn_message,
        :warn_log_channel_id, :ban_bolo_channel_id, :general_log_channel_id
    )`

	if _, err := db.NamedExec(query, toPolicyRow(p)); err != nil {
		return fmt.Errorf("failed to save policy for guild %s: %w", p.GuildID, err)
	}
	return nil
}

// LoadGuildPolicies reads every guild policy, keyed by guild ID.
func LoadGuildPolicies(db *sqlx.DB) (map[string]model.GuildPolicy, error) {
	var rows []policyRow
	if err := db.Select(&rows, "SELECT * FROM guild_policies"); err != nil {
		return nil, fmt.Errorf("failed to load guild policies: %w", err)
	}

	policies := make(map[string]model.GuildPolicy, len(rows))
	for _, r := range rows {
		policies[r.GuildID] = r.toPolicy()
	}
	return policies, nil
}
