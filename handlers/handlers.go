// Package handlers routes discord gateway events into the moderation engine.
package handlers

import (
	"github.com/SirARLOTech/anti-link/bot"
	"github.com/SirARLOTech/anti-link/utils"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// Register installs the command handler map and gateway event handlers.
func Register(b *bot.Bot) {
	b.CommandHandlers = commandHandlers(b)
	addHandlers(b)
}

func commandHandlers(b *bot.Bot) map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"ro-warn": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleWarnCommand(s, i, b)
		},
		"ro-warn-logs": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleWarnLogsCommand(s, i, b)
		},
		"ro-warn-remove": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleWarnRemoveCommand(s, i, b)
		},
		"ro-warn-config": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleWarnConfigCommand(s, i, b)
		},
		"ro-anti-link": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleAntiLinkCommand(s, i, b)
		},
		"ro-set-log-channel": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleSetLogChannelCommand(s, i, b)
		},
		"ro-admin-role": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleAdminRoleCommand(s, i, b)
		},
		"ro-suspend-config": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleSuspendConfigCommand(s, i, b)
		},
		"ro-suspend": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleSuspendCommand(s, i, b)
		},
		"ro-unsuspend": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleUnsuspendCommand(s, i, b)
		},
		"ro-ban": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleBanCommand(s, i, b)
		},
		"ro-official-message": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleOfficialMessageCommand(s, i, b)
		},
		"ro-status": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleStatusCommand(s, i, b)
		},
	}
}

func addHandlers(b *bot.Bot) {
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		logrus.Infof("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
	})
	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}
		if h, ok := b.CommandHandlers[i.ApplicationCommandData().Name]; ok {
			h(s, i)
		}
	})
	b.Session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		HandleMessageCreate(s, m, b)
	})
}

// optionMap flattens the interaction's options for lookup by name.
func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

// requireModAccess checks the native administrator permission or the guild's
// configured admin role. It sends the denial response itself.
func requireModAccess(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) bool {
	if utils.IsAdministrator(i.Member) {
		return true
	}
	if policy, ok := b.Policies.Get(i.GuildID); ok && utils.HasRole(i.Member, policy.AdminRoleID) {
		return true
	}
	utils.SendErrorResponse(s, i, "You do not have permission to use this command.")
	return false
}

// requireWarnAccess checks the guild's warn authority role. Administrators
// pass regardless, so warnings still work before /ro-warn-config is run.
func requireWarnAccess(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) bool {
	if utils.IsAdministrator(i.Member) {
		return true
	}
	if policy, ok := b.Policies.Get(i.GuildID); ok && utils.HasRole(i.Member, policy.WarnRoleID) {
		return true
	}
	utils.SendErrorResponse(s, i, "You do not have permission to use this command.")
	return false
}

func guildName(s *discordgo.Session, guildID string) string {
	guild, err := s.State.Guild(guildID)
	if err != nil || guild == nil {
		guild, err = s.Guild(guildID)
		if err != nil {
			return "this server"
		}
	}
	return guild.Name
}
