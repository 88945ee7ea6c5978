package main

import (
	"log"

	"github.com/beniciojr/acougue_bot/internal/bot"
	"github.com/beniciojr/acougue_bot/internal/catalog"
	"github.com/beniciojr/acougue_bot/internal/config"
	"github.com/beniciojr/acougue_bot/internal/repository"
	"github.com/beniciojr/acougue_bot/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	var repo service.Repository
	if cfg.HasSupabase() {
		repo, err = repository.NewSupabaseRepository(cfg.SupabaseURL, cfg.SupabaseKey)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		repo = repository.NewMemoryRepository()
	}

	flow := service.NewOrderFlow(repo, catalog.Default())

	bot, err := bot.NewBot(cfg.TelegramToken, flow, cfg.AdminChatID)
	if err != nil {
		log.Fatal(err)
	}

	if err := bot.Start(); err != nil {
		log.Fatal(err)
	}
}
