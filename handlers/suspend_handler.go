package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/SirARLOTech/anti-link/bot"
	"github.com/SirARLOTech/anti-link/moderation"
	"github.com/SirARLOTech/anti-link/utils"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// HandleSuspendCommand strips a user down to the suspension role for the
// given number of minutes. Their roles come back automatically when the
// suspension expires, even across a restart.
func HandleSuspendCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !requireModAccess(s, i, b) {
		return
	}

	policy, ok := b.Policies.Get(i.GuildID)
	if !ok || policy.SuspendRoleID == "" {
		utils.SendErrorResponse(s, i, "No suspension role is configured. Run /ro-suspend-config first.")
		return
	}

	opts := optionMap(i)
	target := opts["user"].UserValue(s)
	reason := opts["reason"].StringValue()
	minutes := int(opts["duration"].IntValue())
	if minutes <= 0 {
		utils.SendErrorResponse(s, i, "The duration must be a positive number of minutes.")
		return
	}

	duration := time.Duration(minutes) * time.Minute
	if err := b.Scheduler.Suspend(i.GuildID, target.ID, policy.SuspendRoleID, duration); err != nil {
		logrus.WithError(err).Errorf("Failed to suspend user %s", target.ID)
		utils.SendErrorResponse(s, i, "Failed to suspend the user.")
		return
	}

	expires := time.Now().Add(duration)
	utils.SendPublicEmbedResponse(s, i, &discordgo.MessageEmbed{
		Title: "⏸️ User Suspended",
		Color: 0xE67E22,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "User", Value: fmt.Sprintf("<@%s>", target.ID), Inline: true},
			{Name: "Reason", Value: reason, Inline: true},
			{Name: "Until", Value: fmt.Sprintf("<t:%d:f>", expires.Unix()), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Suspended by " + i.Member.User.Username},
	})
}

// HandleUnsuspendCommand ends a suspension early and restores the user's
// original roles.
func HandleUnsuspendCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !requireModAccess(s, i, b) {
		return
	}

	target := optionMap(i)["user"].UserValue(s)
	err := b.Scheduler.Cancel(i.GuildID, target.ID)
	if errors.Is(err, moderation.ErrNoSuchSuspension) {
		utils.SendErrorResponse(s, i, fmt.Sprintf("<@%s> is not suspended.", target.ID))
		return
	}
	if err != nil {
		logrus.WithError(err).Errorf("Failed to unsuspend user %s", target.ID)
		utils.SendErrorResponse(s, i, "Failed to end the suspension.")
		return
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("Suspension lifted; <@%s>'s roles were restored.", target.ID))
}
