package main

import (
	"context"
	"github.com/maxaizer/career-bot/internal/app"
	"github.com/maxaizer/career-bot/internal/bot"
	"github.com/maxaizer/career-bot/internal/config"
	"github.com/maxaizer/career-bot/internal/logger"
	"github.com/maxaizer/career-bot/internal/metrics"
	log "github.com/sirupsen/logrus"
	"os/signal"
	"syscall"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(ctx, cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Metrics.Port)

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("can't start application: %v", err)
	}
	defer application.Close()

	tgbot, err := bot.NewBot(cfg.Bot.Token, application.Bus, application.Sessions, float64(cfg.Bot.MaxMessagesPerSecond))
	if err != nil {
		log.Fatalf("can't create bot: %v", err)
	}
	go tgbot.Run()

	<-ctx.Done()

	log.Info("Shutting down services...")
	tgbot.Stop()
	log.Info("Services stopped.")
}
