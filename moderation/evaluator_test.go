package moderation

import (
	"testing"

	"github.com/SirARLOTech/anti-link/model"
	"github.com/stretchr/testify/assert"
)

func linkPolicy(enabled bool) model.GuildPolicy {
	return model.GuildPolicy{
		GuildID: "g1",
		LinkRule: model.LinkRule{
			Enabled:          enabled,
			AllowedChannelID: "general",
			Punishment:       model.PunishmentTimeout,
			DurationMinutes:  10,
			WarnMessage:      "Links are not allowed here!",
		},
	}
}

func msg(channelID, content string) model.MessageEvent {
	return model.MessageEvent{
		GuildID:   "g1",
		ChannelID: channelID,
		MessageID: "m1",
		AuthorID:  "u1",
		Content:   content,
	}
}

func TestEvaluateDisabledRuleNeverFires(t *testing.T) {
	policy := linkPolicy(false)

	for _, content := range []string{
		"https://example.com",
		"http://example.com",
		"discord.gg/abcdef",
		"join gg/abcdef now",
	} {
		d := Evaluate(msg("random", content), policy)
		assert.False(t, d.Violation, "content %q should pass with rule disabled", content)
	}
}

func TestEvaluateAllowedChannelNeverFires(t *testing.T) {
	policy := linkPolicy(true)

	d := Evaluate(msg("general", "spam spam https://example.com discord.gg/xyz"), policy)
	assert.False(t, d.Violation)
}

func TestEvaluateLinkPatterns(t *testing.T) {
	policy := linkPolicy(true)

	tests := []struct {
		content   string
		violation bool
	}{
		{"check this out https://example.com", true},
		{"http://plain.example", true},
		{"HTTPS://SHOUTING.EXAMPLE", true},
		{"join discord.gg/abcdef", true},
		{"join DISCORD.GG/abcdef", true},
		{"gg/shorthand", true},
		{"embeddedgg/inside a word", true},
		{"hello world", false},
		{"good game everyone", false},
		{"https with no separator", false},
		{"", false},
	}

	for _, tt := range tests {
		d := Evaluate(msg("random", tt.content), policy)
		assert.Equal(t, tt.violation, d.Violation, "content %q", tt.content)
	}
}

func TestEvaluateDecisionCarriesRuleParameters(t *testing.T) {
	policy := linkPolicy(true)

	d := Evaluate(msg("random", "https://example.com"), policy)
	assert.True(t, d.Violation)
	assert.Equal(t, model.PunishmentTimeout, d.Punishment)
	assert.Equal(t, 10, d.DurationMinutes)
	assert.Equal(t, "Links are not allowed here!", d.WarnMessage)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	policy := linkPolicy(true)
	ev := msg("random", "see discord.gg/abc")

	first := Evaluate(ev, policy)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Evaluate(ev, policy))
	}
}
