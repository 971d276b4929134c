// Package commands defines the bot's slash command set.
package commands

import "github.com/bwmarrin/discordgo"

var punishmentChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: "None", Value: "None"},
	{Name: "Timeout", Value: "Timeout"},
	{Name: "Kick", Value: "Kick"},
	{Name: "Ban", Value: "Ban"},
}

var logKindChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: "Warn log", Value: "warn"},
	{Name: "Ban BOLO", Value: "ban-bolo"},
	{Name: "General log", Value: "general"},
}

// Generate returns the full application command set.
func Generate() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "ro-warn",
			Description: "Warn a user and record it in their history.",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionUser, Name: "user", Description: "User to warn", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "reason", Description: "Reason for the warning", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "punishment", Description: "None or Timeout", Required: true, Choices: punishmentChoices[:2]},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "duration", Description: "Duration in minutes (if timeout)", Required: false},
				{Type: discordgo.ApplicationCommandOptionBoolean, Name: "dm_user", Description: "Send a DM with the warning", Required: false},
			},
		},
		{
			Name:        "ro-warn-logs",
			Description: "View a user's warning history.",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionUser, Name: "user", Description: "User to view warn logs for", Required: true},
			},
		},
		{
			Name:        "ro-warn-remove",
			Description: "Remove a warning by its position in the list.",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionUser, Name: "user", Description: "User to remove a warning from", Required: true},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "index", Description: "Warning number as shown by /ro-warn-logs", Required: true},
			},
		},
		{
			Name:        "ro-warn-config",
			Description: "Set the warn authority role and warn log channel.",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionRole, Name: "role", Description: "Role that can use /ro-warn", Required: true},
				{Type: discordgo.ApplicationCommandOptionChannel, Name: "log_channel", Description: "Channel to log warnings", Required: true},
			},
		},
		{
			Name:        "ro-anti-link",
			Description: "Configure the link rule.",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionChannel, Name: "channel", Description: "Channel where links are allowed", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "punishment", Description: "What happens on a violation", Required: true, Choices: punishmentChoices},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "duration", Description: "If Timeout, how long (minutes)", Required: false},
				{Type: discordgo.ApplicationCommandOptionString, Name: "message", Description: "Warn message to display", Required: false},
				{Type: discordgo.ApplicationCommandOptionBoolean, Name: "enabled", Description: "Enable or disable the rule", Required: false},
			},
		},
		{
			Name:        "ro-set-log-channel",
			Description: "Set or clear one of the log destinations.",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "kind", Description: "Which log to configure", Required: true, Choices: logKindChoices},
				{Type: discordgo.ApplicationCommandOptionChannel, Name: "channel", Description: "Destination channel", Required: true},
				{Type: discordgo.ApplicationCommandOptionBoolean, Name: "enabled", Description: "Disable to clear the destination", Required: false},
			},
		},
		{
			Name:        "ro-admin-role",
			Description: "Set the guild's admin role.",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionRole, Name: "role", Description: "Admin role", Required: true},
			},
		},
		{
			Name:        "ro-suspend-config",
			Description: "Set the role applied to suspended users.",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionRole, Name: "role", Description: "Suspension role", Required: true},
			},
		},
		{
			Name:        "ro-suspend",
			Description: "Suspend a user: replace their roles until the duration elapses.",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionUser, Name: "user", Description: "User to suspend", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "reason", Description: "Reason for the suspension", Required: true},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "duration", Description: "Duration in minutes", Required: true},
			},
		},
		{
			Name:        "ro-unsuspend",
			Description: "End a suspension early and restore the user's roles.",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionUser, Name: "user", Description: "User to unsuspend", Required: true},
			},
		},
		{
			Name:        "ro-ban",
			Description: "Ban a user and post a BOLO record.",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionUser, Name: "user", Description: "User to ban", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "reason", Description: "Reason for the ban", Required: true},
			},
		},
		{
			Name:        "ro-official-message",
			Description: "Send an official announcement embed.",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionChannel, Name: "channel", Description: "Channel to send the message in", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "header", Description: "Title of the message", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "message", Description: "Main content", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "sender", Description: "Who it's from", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "pings", Description: "Any pings (e.g., @everyone)", Required: false},
			},
		},
		{
			Name:        "ro-status",
			Description: "Show runtime and host statistics.",
		},
	}
}
