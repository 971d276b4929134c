package handlers

import (
	"github.com/SirARLOTech/anti-link/bot"
	"github.com/SirARLOTech/anti-link/model"
	"github.com/bwmarrin/discordgo"
)

// HandleMessageCreate feeds every guild message through the rule engine.
func HandleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate, b *bot.Bot) {
	if m.Author == nil || m.GuildID == "" {
		return
	}
	b.Orchestrator.HandleMessage(model.MessageEvent{
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		MessageID: m.ID,
		AuthorID:  m.Author.ID,
		Content:   m.Content,
		IsBot:     m.Author.Bot,
		Timestamp: m.Timestamp,
	})
}
