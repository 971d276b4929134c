package model

import "time"

// MessageEvent is the inbound message shape the engine evaluates. It carries
// only what the rule evaluator and orchestrator need from the platform event.
type MessageEvent struct {
	GuildID   string
	ChannelID string
	MessageID string
	AuthorID  string
	Content   string
	IsBot     bool
	Timestamp time.Time
}
