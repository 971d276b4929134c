// Package moderation implements the enforcement engine: the link-rule
// evaluator, the per-guild policy store, the warning ledger, the suspension
// scheduler and the orchestrator that ties them to platform actions.
package moderation

import (
	"regexp"

	"github.com/SirARLOTech/anti-link/model"
)

// linkPattern matches URLs and invite links anywhere in the message.
// Substring matches count, so "gg/abc" inside a longer word still triggers.
var linkPattern = regexp.MustCompile(`(?i)(https?://|discord\.gg/|gg/)`)

// Decision is the evaluator's verdict for a single message.
type Decision struct {
	Violation       bool
	Punishment      model.Punishment
	DurationMinutes int
	WarnMessage     string
}

// Evaluate decides whether a message violates the guild's link rule. It is a
// pure function of its inputs: no violation when the rule is disabled or the
// message sits in the allowed channel, regardless of content.
func Evaluate(ev model.MessageEvent, policy model.GuildPolicy) Decision {
	rule := policy.LinkRule
	if !rule.Enabled {
		return Decision{}
	}
	if ev.ChannelID == rule.AllowedChannelID {
		return Decision{}
	}
	if !linkPattern.MatchString(ev.Content) {
		return Decision{}
	}

	return Decision{
		Violation:       true,
		Punishment:      rule.Punishment,
		DurationMinutes: rule.DurationMinutes,
		WarnMessage:     rule.WarnMessage,
	}
}
