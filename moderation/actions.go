package moderation

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// PlatformActions is the outbound surface the engine needs from the chat
// platform. The bot package provides the discordgo-backed implementation;
// tests substitute an in-memory fake.
type PlatformActions interface {
	DeleteMessage(channelID, messageID string) error
	SendMessage(channelID, content string) (messageID string, err error)
	SendEmbed(channelID string, embed *discordgo.MessageEmbed) error
	SendDirectMessage(userID, content string) error

	TimeoutUser(guildID, userID string, until time.Time) error
	KickUser(guildID, userID, reason string) error
	BanUser(guildID, userID, reason string) error

	MemberRoles(guildID, userID string) ([]string, error)
	SetMemberRoles(guildID, userID string, roleIDs []string) error
}
