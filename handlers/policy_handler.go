package handlers

import (
	"fmt"

	"github.com/SirARLOTech/anti-link/bot"
	"github.com/SirARLOTech/anti-link/model"
	"github.com/SirARLOTech/anti-link/moderation"
	"github.com/SirARLOTech/anti-link/utils"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// HandleWarnConfigCommand sets the warn authority role and the warn log
// channel in one step.
func HandleWarnConfigCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !requireModAccess(s, i, b) {
		return
	}

	opts := optionMap(i)
	role := opts["role"].RoleValue(s, i.GuildID)
	channel := opts["log_channel"].ChannelValue(s)

	if err := b.Policies.SetWarnRole(i.GuildID, role.ID); err != nil {
		logrus.WithError(err).Error("Failed to save warn role")
		utils.SendErrorResponse(s, i, "Failed to save the warn configuration.")
		return
	}
	if err := b.Policies.SetLogChannel(i.GuildID, moderation.LogKindWarn, channel.ID, true); err != nil {
		logrus.WithError(err).Error("Failed to save warn log channel")
		utils.SendErrorResponse(s, i, "Failed to save the warn configuration.")
		return
	}
	utils.SendSimpleResponse(s, i,
		fmt.Sprintf("Warn role set to <@&%s>, warn log channel set to <#%s>.", role.ID, channel.ID))
}

// HandleAntiLinkCommand configures the link rule for the guild.
func HandleAntiLinkCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !requireModAccess(s, i, b) {
		return
	}

	opts := optionMap(i)
	channel := opts["channel"].ChannelValue(s)
	punishment := model.ParsePunishment(opts["punishment"].StringValue())

	rule := model.LinkRule{
		Enabled:          true,
		AllowedChannelID: channel.ID,
		Punishment:       punishment,
	}
	if opt, ok := opts["duration"]; ok {
		rule.DurationMinutes = int(opt.IntValue())
	}
	if opt, ok := opts["message"]; ok {
		rule.WarnMessage = opt.StringValue()
	}
	if opt, ok := opts["enabled"]; ok {
		rule.Enabled = opt.BoolValue()
	}

	// Leaving the message option out keeps the current one.
	if rule.WarnMessage == "" {
		if policy, ok := b.Policies.Get(i.GuildID); ok && policy.LinkRule.WarnMessage != "" {
			rule.WarnMessage = policy.LinkRule.WarnMessage
		} else {
			rule.WarnMessage = "Links are not allowed here!"
		}
	}

	if err := b.Policies.SetLinkRule(i.GuildID, rule); err != nil {
		logrus.WithError(err).Error("Failed to save link rule")
		utils.SendErrorResponse(s, i, fmt.Sprintf("Failed to save the link rule: %v", err))
		return
	}

	state := "enabled"
	if !rule.Enabled {
		state = "disabled"
	}
	utils.SendSimpleResponse(s, i,
		fmt.Sprintf("Link rule %s. Links allowed in <#%s>, punishment: %s.", state, channel.ID, punishment))
}

// HandleSetLogChannelCommand points one of the log kinds at a channel, or
// clears it when enabled is false.
func HandleSetLogChannelCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !requireModAccess(s, i, b) {
		return
	}

	opts := optionMap(i)
	kind := moderation.LogKind(opts["kind"].StringValue())
	channel := opts["channel"].ChannelValue(s)
	enabled := true
	if opt, ok := opts["enabled"]; ok {
		enabled = opt.BoolValue()
	}

	if err := b.Policies.SetLogChannel(i.GuildID, kind, channel.ID, enabled); err != nil {
		logrus.WithError(err).Error("Failed to save log channel")
		utils.SendErrorResponse(s, i, fmt.Sprintf("Failed to save the log channel: %v", err))
		return
	}
	if enabled {
		utils.SendSimpleResponse(s, i, fmt.Sprintf("%s log set to <#%s>.", kind, channel.ID))
	} else {
		utils.SendSimpleResponse(s, i, fmt.Sprintf("%s log disabled.", kind))
	}
}

// HandleAdminRoleCommand sets the role that may manage the bot alongside
// native administrators.
func HandleAdminRoleCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !utils.IsAdministrator(i.Member) {
		utils.SendErrorResponse(s, i, "You do not have permission to use this command.")
		return
	}

	role := optionMap(i)["role"].RoleValue(s, i.GuildID)
	if err := b.Policies.SetAdminRole(i.GuildID, role.ID); err != nil {
		logrus.WithError(err).Error("Failed to save admin role")
		utils.SendErrorResponse(s, i, "Failed to save the admin role.")
		return
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("Admin role set to <@&%s>.", role.ID))
}

// HandleSuspendConfigCommand sets the role suspended users receive.
func HandleSuspendConfigCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !requireModAccess(s, i, b) {
		return
	}

	role := optionMap(i)["role"].RoleValue(s, i.GuildID)
	if err := b.Policies.SetSuspendRole(i.GuildID, role.ID); err != nil {
		logrus.WithError(err).Error("Failed to save suspend role")
		utils.SendErrorResponse(s, i, "Failed to save the suspension role.")
		return
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("Suspension role set to <@&%s>.", role.ID))
}
