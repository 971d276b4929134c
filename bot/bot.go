package bot

import (
	"time"

	"github.com/SirARLOTech/anti-link/model"
	"github.com/SirARLOTech/anti-link/moderation"
	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

// Bot wires the discord session to the moderation engine.
type Bot struct {
	Session            *discordgo.Session
	Config             *model.Config
	DB                 *sqlx.DB
	Policies           *moderation.PolicyStore
	Ledger             *moderation.Ledger
	Scheduler          *moderation.Scheduler
	Orchestrator       *moderation.Orchestrator
	CommandHandlers    map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)
	RegisteredCommands []*discordgo.ApplicationCommand
	StartedAt          time.Time
}

// New creates the bot and the moderation engine on top of an open database.
func New(cfg *model.Config, db *sqlx.DB) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, err
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	policies, err := moderation.NewPolicyStore(db)
	if err != nil {
		return nil, err
	}

	actions := NewPlatformActions(dg)
	ledger := moderation.NewLedger(db)

	b := &Bot{
		Session:      dg,
		Config:       cfg,
		DB:           db,
		Policies:     policies,
		Ledger:       ledger,
		Scheduler:    moderation.NewScheduler(db, actions, cfg.RestoreRetryBackoff),
		Orchestrator: moderation.NewOrchestrator(actions, policies, ledger),
		StartedAt:    time.Now(),
	}
	return b, nil
}

// Close shuts the bot down: timers first, then the session.
func (b *Bot) Close() {
	logrus.Info("Gracefully shutting down.")
	b.Scheduler.Stop()
	if err := b.Session.Close(); err != nil {
		logrus.WithError(err).Warn("Error closing session")
	}
}
