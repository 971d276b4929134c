package utils

import (
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// HasRole reports whether the interaction member holds the given role.
// An empty role ID never matches, so an unconfigured warn role denies
// everyone instead of everyone passing.
func HasRole(member *discordgo.Member, roleID string) bool {
	if member == nil || roleID == "" {
		return false
	}
	for _, r := range member.Roles {
		if r == roleID {
			return true
		}
	}
	return false
}

// IsAdministrator reports whether the interaction member carries the native
// administrator permission.
func IsAdministrator(member *discordgo.Member) bool {
	return member != nil && member.Permissions&discordgo.PermissionAdministrator != 0
}

// IsGuildOwner reports whether the interaction user owns the guild.
func IsGuildOwner(s *discordgo.Session, guildID, userID string) bool {
	guild, err := s.State.Guild(guildID)
	if err != nil || guild == nil || guild.OwnerID == "" {
		guild, err = s.Guild(guildID)
		if err != nil {
			logrus.WithError(err).Warnf("Could not fetch guild %s for owner check", guildID)
			return false
		}
	}
	return guild.OwnerID == userID
}
