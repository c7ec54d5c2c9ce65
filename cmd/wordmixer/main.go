package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"word-mixer/internal/bot"
	"word-mixer/internal/config"
	"word-mixer/internal/repository"
	"word-mixer/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	wordRepo := repository.NewWordRepository(db)

	api, err := bot.NewAPI(cfg.TelegramToken)
	if err != nil {
		log.Fatalf("bot: %v", err)
	}

	replySvc := service.NewReplyService(wordRepo, nil)
	chatSvc := service.NewChatService(userRepo, wordRepo, replySvc)
	broadcaster := service.NewBroadcaster(bot.NewSender(api), cfg.BroadcastInterval)
	adminSvc := service.NewAdminService(cfg.AdminPassword, userRepo, broadcaster)
	statsSvc := service.NewStatsService(wordRepo, userRepo)

	telegramBot := bot.New(api, chatSvc, adminSvc)

	scheduler := service.NewSchedulerService(time.Local)
	scheduled, err := scheduler.ScheduleStats(cfg.StatsInterval, cfg.StatsDailyAt, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		statsSvc.LogSnapshot(jobCtx)
	})
	if err != nil {
		log.Fatalf("schedule stats: %v", err)
	}
	if scheduled {
		log.Printf("[info] scheduled %d stats job(s)", scheduler.Entries())
		scheduler.Start()
		defer scheduler.Stop()
	}

	statsSvc.LogSnapshot(ctx)

	log.Println("Word mixer bot started.")
	if err := telegramBot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("bot stopped with error: %v", err)
	}
	log.Println("Shutdown complete.")
}
