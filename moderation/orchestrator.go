package moderation

import (
	"fmt"
	"time"

	"github.com/SirARLOTech/anti-link/model"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// warnMessageTTL is how long the in-channel warning stays before the bot
// deletes it.
const warnMessageTTL = 5 * time.Second

const (
	colorOrange = 0xE67E22
	colorRed    = 0xED4245
)

// Orchestrator composes the evaluator, ledger and platform actions into the
// enforcement pipeline. For a link violation the order is fixed: delete the
// message, send the warn message, apply the punishment, emit the log record.
// A failure in a later step never rolls back or blocks an earlier one, and
// the log record is emitted either way.
type Orchestrator struct {
	actions  PlatformActions
	policies *PolicyStore
	ledger   *Ledger
	log      *logrus.Entry
}

// NewOrchestrator wires the enforcement pipeline.
func NewOrchestrator(actions PlatformActions, policies *PolicyStore, ledger *Ledger) *Orchestrator {
	return &Orchestrator{
		actions:  actions,
		policies: policies,
		ledger:   ledger,
		log:      logrus.WithField("module", "orchestrator"),
	}
}

// HandleMessage evaluates one inbound message and enforces the link rule on
// a violation. Bot-authored messages and guilds without a policy pass
// through untouched.
func (o *Orchestrator) HandleMessage(ev model.MessageEvent) {
	if ev.IsBot {
		return
	}
	policy, ok := o.policies.Get(ev.GuildID)
	if !ok {
		return
	}

	decision := Evaluate(ev, policy)
	if !decision.Violation {
		return
	}
	o.enforce(ev, decision, policy)
}

func (o *Orchestrator) enforce(ev model.MessageEvent, d Decision, policy model.GuildPolicy) {
	log := o.log.WithFields(logrus.Fields{"guild": ev.GuildID, "user": ev.AuthorID})

	if err := o.actions.DeleteMessage(ev.ChannelID, ev.MessageID); err != nil {
		log.WithError(err).Warn("failed to delete offending message")
	}

	warnText := fmt.Sprintf("<@%s>, %s", ev.AuthorID, d.WarnMessage)
	if msgID, err := o.actions.SendMessage(ev.ChannelID, warnText); err != nil {
		log.WithError(err).Warn("failed to send warn message")
	} else {
		channelID := ev.ChannelID
		time.AfterFunc(warnMessageTTL, func() {
			_ = o.actions.DeleteMessage(channelID, msgID)
		})
	}

	punishErr := o.applyPunishment(ev.GuildID, ev.AuthorID, d.Punishment, d.DurationMinutes)
	if punishErr != nil {
		log.WithError(punishErr).Warnf("failed to apply %s punishment", d.Punishment)
	}

	if policy.LogChannels.GeneralLogChannelID != "" {
		o.emitViolationLog(policy.LogChannels.GeneralLogChannelID, ev, d, punishErr)
	}
}

func (o *Orchestrator) applyPunishment(guildID, userID string, p model.Punishment, minutes int) error {
	switch p {
	case model.PunishmentTimeout:
		until := time.Now().Add(time.Duration(minutes) * time.Minute)
		return o.actions.TimeoutUser(guildID, userID, until)
	case model.PunishmentKick:
		return o.actions.KickUser(guildID, userID, "link rule violation")
	case model.PunishmentBan:
		return o.actions.BanUser(guildID, userID, "link rule violation")
	default:
		return nil
	}
}

func (o *Orchestrator) emitViolationLog(channelID string, ev model.MessageEvent, d Decision, punishErr error) {
	result := "applied"
	color := colorOrange
	if punishErr != nil {
		result = fmt.Sprintf("failed: %v", punishErr)
		color = colorRed
	}

	embed := &discordgo.MessageEmbed{
		Title: "🔗 Link Rule Violation",
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "User", Value: fmt.Sprintf("<@%s>", ev.AuthorID), Inline: true},
			{Name: "Channel", Value: fmt.Sprintf("<#%s>", ev.ChannelID), Inline: true},
			{Name: "Punishment", Value: string(d.Punishment), Inline: true},
			{Name: "Result", Value: result, Inline: true},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if err := o.actions.SendEmbed(channelID, embed); err != nil {
		o.log.WithError(err).Warn("failed to emit violation log")
	}
}

// ApplyWarning records a warning, optionally DMs the user, applies a timeout
// punishment if one was chosen, and posts to the warn log channel. The
// returned err is fatal (the warning was not recorded); punishErr reports a
// punishment that could not be applied after the warning was recorded.
func (o *Orchestrator) ApplyWarning(guildID, userID, guildName string, rec model.WarningRecord, dmUser bool) (punishErr, err error) {
	if err := o.ledger.Add(guildID, userID, rec); err != nil {
		return nil, err
	}

	if dmUser {
		// Best effort; a closed DM never fails the warning.
		dm := fmt.Sprintf("You were warned in **%s** for: %s", guildName, rec.Reason)
		if dmErr := o.actions.SendDirectMessage(userID, dm); dmErr != nil {
			o.log.WithError(dmErr).Debug("warning DM not delivered")
		}
	}

	if rec.Punishment == model.PunishmentTimeout && rec.DurationMinutes > 0 {
		until := time.Now().Add(time.Duration(rec.DurationMinutes) * time.Minute)
		punishErr = o.actions.TimeoutUser(guildID, userID, until)
	}

	if policy, ok := o.policies.Get(guildID); ok && policy.LogChannels.WarnLogChannelID != "" {
		o.emitWarnLog(policy.LogChannels.WarnLogChannelID, userID, rec, punishErr)
	}
	return punishErr, nil
}

func (o *Orchestrator) emitWarnLog(channelID, userID string, rec model.WarningRecord, punishErr error) {
	punishment := string(rec.Punishment)
	if rec.Punishment == model.PunishmentTimeout {
		punishment = fmt.Sprintf("%s (%d min)", rec.Punishment, rec.DurationMinutes)
	}
	if punishErr != nil {
		punishment += " (failed to apply)"
	}

	embed := &discordgo.MessageEmbed{
		Title: "⚠️ User Warned",
		Color: colorOrange,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "User", Value: fmt.Sprintf("<@%s>", userID), Inline: true},
			{Name: "Reason", Value: rec.Reason, Inline: true},
			{Name: "Punishment", Value: punishment, Inline: true},
		},
		Footer:    &discordgo.MessageEmbedFooter{Text: "Warned by " + rec.Moderator},
		Timestamp: rec.CreatedAt.Format(time.RFC3339),
	}
	if err := o.actions.SendEmbed(channelID, embed); err != nil {
		o.log.WithError(err).Warn("failed to emit warn log")
	}
}

// ApplyBan bans the user and posts a BOLO record to the configured channel.
// The ban itself is the primary action; a missing or failing BOLO channel
// does not undo it.
func (o *Orchestrator) ApplyBan(guildID, userID, reason, moderator string) error {
	if err := o.actions.BanUser(guildID, userID, reason); err != nil {
		return fmt.Errorf("failed to ban user %s in guild %s: %w", userID, guildID, err)
	}

	if policy, ok := o.policies.Get(guildID); ok && policy.LogChannels.BanBoloChannelID != "" {
		embed := &discordgo.MessageEmbed{
			Title: "🚨 Ban BOLO",
			Color: colorRed,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "User", Value: fmt.Sprintf("<@%s>", userID), Inline: true},
				{Name: "Reason", Value: reason, Inline: true},
				{Name: "Moderator", Value: moderator, Inline: true},
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}
		if err := o.actions.SendEmbed(policy.LogChannels.BanBoloChannelID, embed); err != nil {
			o.log.WithError(err).Warn("failed to emit ban BOLO")
		}
	}
	return nil
}
