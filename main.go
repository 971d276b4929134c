package main

import (
	"github.com/SirARLOTech/anti-link/bot"
	"github.com/SirARLOTech/anti-link/config"
	"github.com/SirARLOTech/anti-link/handlers"
	"github.com/SirARLOTech/anti-link/storage"
	"github.com/SirARLOTech/anti-link/utils"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Error loading configuration")
	}
	utils.SetupLogging(cfg.LogLevel)

	db, err := storage.Open(cfg.DatabasePath)
	if err != nil {
		logrus.WithError(err).Fatal("Error initializing database")
	}
	defer db.Close()

	b, err := bot.New(cfg, db)
	if err != nil {
		logrus.WithError(err).Fatal("Error creating bot")
	}
	defer b.Close()

	handlers.Register(b)

	b.Run()
}
