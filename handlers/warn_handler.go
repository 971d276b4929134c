package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/SirARLOTech/anti-link/bot"
	"github.com/SirARLOTech/anti-link/model"
	"github.com/SirARLOTech/anti-link/moderation"
	"github.com/SirARLOTech/anti-link/utils"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// HandleWarnCommand records a warning against a user, optionally with a
// timeout and a DM.
func HandleWarnCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !requireWarnAccess(s, i, b) {
		return
	}

	opts := optionMap(i)
	target := opts["user"].UserValue(s)
	reason := opts["reason"].StringValue()
	punishment := model.ParsePunishment(opts["punishment"].StringValue())

	duration := 0
	if opt, ok := opts["duration"]; ok {
		duration = int(opt.IntValue())
	}
	dmUser := false
	if opt, ok := opts["dm_user"]; ok {
		dmUser = opt.BoolValue()
	}

	if punishment == model.PunishmentTimeout && duration <= 0 {
		utils.SendErrorResponse(s, i, "A timeout punishment needs a duration in minutes.")
		return
	}
	if punishment != model.PunishmentTimeout {
		duration = 0
	}

	rec := model.WarningRecord{
		Moderator:       i.Member.User.ID,
		Reason:          reason,
		Punishment:      punishment,
		DurationMinutes: duration,
		CreatedAt:       time.Now().UTC(),
	}

	punishErr, err := b.Orchestrator.ApplyWarning(i.GuildID, target.ID, guildName(s, i.GuildID), rec, dmUser)
	if err != nil {
		logrus.WithError(err).Error("Failed to record warning")
		utils.SendErrorResponse(s, i, "Failed to record the warning.")
		return
	}

	msg := fmt.Sprintf("Warned <@%s> for: %s", target.ID, reason)
	if punishment == model.PunishmentTimeout {
		msg += fmt.Sprintf(" (timeout %d min)", duration)
	}
	if punishErr != nil {
		logrus.WithError(punishErr).Warnf("Warning recorded but punishment failed for user %s", target.ID)
		msg += "\n⚠️ The warning was recorded but the timeout could not be applied."
	}
	utils.SendSimpleResponse(s, i, msg)
}

// HandleWarnLogsCommand lists a user's warning history.
func HandleWarnLogsCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !requireWarnAccess(s, i, b) {
		return
	}

	target := optionMap(i)["user"].UserValue(s)
	records, err := b.Ledger.List(i.GuildID, target.ID)
	if err != nil {
		logrus.WithError(err).Error("Failed to load warn logs")
		utils.SendErrorResponse(s, i, "Failed to load the warning history.")
		return
	}
	if len(records) == 0 {
		utils.SendSimpleResponse(s, i, fmt.Sprintf("<@%s> has no warnings.", target.ID))
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Warnings for %s", target.Username),
		Color: 0xE67E22,
	}
	for n, rec := range records {
		punishment := string(rec.Punishment)
		if rec.Punishment == model.PunishmentTimeout {
			punishment = fmt.Sprintf("%s (%d min)", rec.Punishment, rec.DurationMinutes)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: fmt.Sprintf("#%d · %s", n+1, rec.CreatedAt.Format("2006-01-02 15:04")),
			Value: fmt.Sprintf("**Reason:** %s\n**Punishment:** %s\n**Moderator:** <@%s>",
				rec.Reason, punishment, rec.Moderator),
		})
	}
	utils.SendEphemeralEmbedResponse(s, i, embed)
}

// HandleWarnRemoveCommand deletes one warning by the number /ro-warn-logs
// shows for it.
func HandleWarnRemoveCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !requireModAccess(s, i, b) {
		return
	}

	opts := optionMap(i)
	target := opts["user"].UserValue(s)
	index := int(opts["index"].IntValue())

	removed, err := b.Ledger.Remove(i.GuildID, target.ID, index-1)
	if errors.Is(err, moderation.ErrIndexOutOfRange) {
		utils.SendErrorResponse(s, i, fmt.Sprintf("<@%s> has no warning #%d.", target.ID, index))
		return
	}
	if err != nil {
		logrus.WithError(err).Error("Failed to remove warning")
		utils.SendErrorResponse(s, i, "Failed to remove the warning.")
		return
	}
	utils.SendSimpleResponse(s, i,
		fmt.Sprintf("Removed warning #%d from <@%s> (was: %s).", index, target.ID, removed.Reason))
}
