package handlers

import (
	"fmt"
	"time"

	"github.com/SirARLOTech/anti-link/bot"
	"github.com/SirARLOTech/anti-link/utils"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// HandleOfficialMessageCommand posts an announcement embed to a channel in
// the bot's name, with optional pings as plain content above the embed.
func HandleOfficialMessageCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !requireModAccess(s, i, b) {
		return
	}

	opts := optionMap(i)
	channel := opts["channel"].ChannelValue(s)
	header := opts["header"].StringValue()
	message := opts["message"].StringValue()
	sender := opts["sender"].StringValue()

	pings := ""
	if opt, ok := opts["pings"]; ok {
		pings = opt.StringValue()
	}

	_, err := s.ChannelMessageSendComplex(channel.ID, &discordgo.MessageSend{
		Content: pings,
		Embeds: []*discordgo.MessageEmbed{{
			Title:       header,
			Description: message,
			Color:       0x5865F2,
			Footer:      &discordgo.MessageEmbedFooter{Text: "From: " + sender},
			Timestamp:   time.Now().Format(time.RFC3339),
		}},
	})
	if err != nil {
		logrus.WithError(err).Errorf("Failed to send official message to channel %s", channel.ID)
		utils.SendErrorResponse(s, i, "Failed to send the official message.")
		return
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("Official message sent to <#%s>.", channel.ID))
}
