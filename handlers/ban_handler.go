package handlers

import (
	"fmt"

	"github.com/SirARLOTech/anti-link/bot"
	"github.com/SirARLOTech/anti-link/utils"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// HandleBanCommand bans a user and posts a BOLO record if a channel is
// configured for it.
func HandleBanCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !requireModAccess(s, i, b) {
		return
	}

	opts := optionMap(i)
	target := opts["user"].UserValue(s)
	reason := opts["reason"].StringValue()

	if err := b.Orchestrator.ApplyBan(i.GuildID, target.ID, reason, i.Member.User.ID); err != nil {
		logrus.WithError(err).Errorf("Failed to ban user %s", target.ID)
		utils.SendErrorResponse(s, i, "Failed to ban the user.")
		return
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("Banned <@%s> for: %s", target.ID, reason))
}
