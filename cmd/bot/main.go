package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/Rusik2379/FinansistFrol/internal/bot"
	"github.com/Rusik2379/FinansistFrol/internal/config"
	"github.com/Rusik2379/FinansistFrol/internal/db"
	"github.com/Rusik2379/FinansistFrol/internal/flow"
	"github.com/Rusik2379/FinansistFrol/internal/repo"
)

func main() {
	cfg := config.MustLoad()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool := db.MustConnect(ctx, cfg.DatabaseURL)
	defer pool.Close()

	// Schema setup is idempotent and runs on every start.
	if err := db.ApplyMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	botAPI, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("bot init: %v", err)
	}

	engine := flow.NewEngine(
		repo.NewUsers(pool),
		repo.NewEntries(pool),
		repo.NewDebts(pool),
	)
	h := bot.NewHandler(botAPI, engine, flow.NewSessions())

	// Graceful shutdown
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		cancel()
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := botAPI.GetUpdatesChan(u)

	log.Infof("FinansistFrol started as @%s", botAPI.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			log.Info("shutdown")
			return
		case upd := <-updates:
			h.HandleUpdate(ctx, upd)
		}
	}
}
