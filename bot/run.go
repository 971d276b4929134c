package bot

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/SirARLOTech/anti-link/commands"
	"github.com/sirupsen/logrus"
)

// Run opens the session, registers the command set, resumes persisted
// suspensions and blocks until a termination signal.
func (b *Bot) Run() {
	if err := b.Session.Open(); err != nil {
		logrus.WithError(err).Fatal("Error opening connection")
	}

	appID := b.Config.AppID
	if appID == "" {
		appID = b.Session.State.User.ID
	}

	cmds := commands.Generate()
	logrus.Infof("Registering %d commands...", len(cmds))
	registered, err := b.Session.ApplicationCommandBulkOverwrite(appID, "", cmds)
	if err != nil {
		logrus.WithError(err).Fatal("Cannot register commands")
	}
	b.RegisteredCommands = registered

	// Suspensions persisted before the last shutdown get their timers back.
	if err := b.Scheduler.Resume(); err != nil {
		logrus.WithError(err).Error("Failed to resume persisted suspensions")
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
}
