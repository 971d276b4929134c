package moderation

import (
	"fmt"
	"sync"

	"github.com/SirARLOTech/anti-link/model"
	"github.com/SirARLOTech/anti-link/storage"
	"github.com/jmoiron/sqlx"
)

// LogKind selects one of a guild's log destinations.
type LogKind string

const (
	LogKindWarn    LogKind = "warn"
	LogKindBanBolo LogKind = "ban-bolo"
	LogKindGeneral LogKind = "general"
)

// PolicyStore holds every guild's moderation policy. Policies are loaded
// from the database once at boot; every mutation is persisted before it
// becomes visible to readers, so the in-memory map never runs ahead of disk.
type PolicyStore struct {
	db       *sqlx.DB
	mu       sync.RWMutex
	policies map[string]model.GuildPolicy
}

// NewPolicyStore loads all guild policies and returns the store.
func NewPolicyStore(db *sqlx.DB) (*PolicyStore, error) {
	policies, err := storage.LoadGuildPolicies(db)
	if err != nil {
		return nil, err
	}
	return &PolicyStore{db: db, policies: policies}, nil
}

// Get returns a copy of the guild's policy. The second return is false when
// the guild has never been configured.
func (s *PolicyStore) Get(guildID string) (model.GuildPolicy, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.policies[guildID]
	return p, ok
}

// GuildCount returns the number of configured guilds.
func (s *PolicyStore) GuildCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.policies)
}

// mutate applies fn to the guild's policy (creating a default one if the
// guild is new), persists the result, and only then updates the map.
func (s *PolicyStore) mutate(guildID string, fn func(*model.GuildPolicy)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.policies[guildID]
	if !ok {
		p = model.GuildPolicy{
			GuildID: guildID,
			LinkRule: model.LinkRule{
				Punishment:  model.PunishmentNone,
				WarnMessage: "Links are not allowed here!",
			},
		}
	}

	fn(&p)

	if err := storage.SaveGuildPolicy(s.db, p); err != nil {
		return err
	}
	s.policies[guildID] = p
	return nil
}

// SetLinkRule replaces the guild's link rule. A Timeout punishment requires
// a positive duration.
func (s *PolicyStore) SetLinkRule(guildID string, rule model.LinkRule) error {
	if rule.Punishment == model.PunishmentTimeout && rule.DurationMinutes <= 0 {
		return fmt.Errorf("timeout punishment requires a positive duration, got %d", rule.DurationMinutes)
	}
	return s.mutate(guildID, func(p *model.GuildPolicy) {
		p.LinkRule = rule
	})
}

// SetLogChannel sets or clears one of the guild's log destinations.
func (s *PolicyStore) SetLogChannel(guildID string, kind LogKind, channelID string, enabled bool) error {
	if !enabled {
		channelID = ""
	}
	return s.mutate(guildID, func(p *model.GuildPolicy) {
		switch kind {
		case LogKindWarn:
			p.LogChannels.WarnLogChannelID = channelID
		case LogKindBanBolo:
			p.LogChannels.BanBoloChannelID = channelID
		case LogKindGeneral:
			p.LogChannels.GeneralLogChannelID = channelID
		}
	})
}

// SetWarnRole sets the role allowed to issue and view warnings.
func (s *PolicyStore) SetWarnRole(guildID, roleID string) error {
	return s.mutate(guildID, func(p *model.GuildPolicy) {
		p.WarnRoleID = roleID
	})
}

// SetAdminRole sets the guild-configured admin role.
func (s *PolicyStore) SetAdminRole(guildID, roleID string) error {
	return s.mutate(guildID, func(p *model.GuildPolicy) {
		p.AdminRoleID = roleID
	})
}

// SetSuspendRole sets the role applied to suspended users.
func (s *PolicyStore) SetSuspendRole(guildID, roleID string) error {
	return s.mutate(guildID, func(p *model.GuildPolicy) {
		p.SuspendRoleID = roleID
	})
}
