package model

import "time"

// Config holds the application configuration loaded at startup.
type Config struct {
	BotToken string
	AppID    string

	DataDir      string
	DatabasePath string
	LogLevel     string

	// RestoreRetryBackoff is the delay before a failed role restoration is
	// attempted again.
	RestoreRetryBackoff time.Duration
}
