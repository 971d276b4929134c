package bot

import (
	"time"

	"github.com/SirARLOTech/anti-link/moderation"
	"github.com/bwmarrin/discordgo"
)

// sessionActions is the discordgo-backed implementation of the moderation
// engine's platform surface.
type sessionActions struct {
	s *discordgo.Session
}

// NewPlatformActions wraps a discord session as moderation.PlatformActions.
func NewPlatformActions(s *discordgo.Session) moderation.PlatformActions {
	return &sessionActions{s: s}
}

func (a *sessionActions) DeleteMessage(channelID, messageID string) error {
	return a.s.ChannelMessageDelete(channelID, messageID)
}

func (a *sessionActions) SendMessage(channelID, content string) (string, error) {
	msg, err := a.s.ChannelMessageSend(channelID, content)
	if err != nil {
		return "", err
	}
	return msg.ID, nil
}

func (a *sessionActions) SendEmbed(channelID string, embed *discordgo.MessageEmbed) error {
	_, err := a.s.ChannelMessageSendEmbed(channelID, embed)
	return err
}

func (a *sessionActions) SendDirectMessage(userID, content string) error {
	channel, err := a.s.UserChannelCreate(userID)
	if err != nil {
		return err
	}
	_, err = a.s.ChannelMessageSend(channel.ID, content)
	return err
}

func (a *sessionActions) TimeoutUser(guildID, userID string, until time.Time) error {
	return a.s.GuildMemberTimeout(guildID, userID, &until)
}

func (a *sessionActions) KickUser(guildID, userID, reason string) error {
	return a.s.GuildMemberDeleteWithReason(guildID, userID, reason)
}

func (a *sessionActions) BanUser(guildID, userID, reason string) error {
	return a.s.GuildBanCreateWithReason(guildID, userID, reason, 0)
}

func (a *sessionActions) MemberRoles(guildID, userID string) ([]string, error) {
	member, err := a.s.GuildMember(guildID, userID)
	if err != nil {
		return nil, err
	}
	return member.Roles, nil
}

func (a *sessionActions) SetMemberRoles(guildID, userID string, roleIDs []string) error {
	_, err := a.s.GuildMemberEdit(guildID, userID, &discordgo.GuildMemberParams{Roles: &roleIDs})
	return err
}
