package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/kubestellar/slackbot/pkg/bus"
	"github.com/kubestellar/slackbot/pkg/channels"
	"github.com/kubestellar/slackbot/pkg/config"
	"github.com/kubestellar/slackbot/pkg/gateway"
	"github.com/kubestellar/slackbot/pkg/logger"
	"github.com/kubestellar/slackbot/pkg/registry"
)

func main() {
	// Best-effort: a missing .env just means the environment is set
	// some other way.
	_ = godotenv.Load()

	settings, err := config.Load()
	if err != nil {
		logger.ErrorCF("main", "Failed to load settings", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	logger.SetLevel(settings.LogLevel())

	if settings.BotToken == "" {
		logger.ErrorC("main", "SLACK_BOT_TOKEN environment variable is required")
		os.Exit(1)
	}

	store := registry.New(settings.MaintainersPath)
	broker := bus.NewMessageBus()

	channel, err := channels.NewSlackChannel(settings.BotToken, broker)
	if err != nil {
		logger.ErrorCF("main", "Failed to create Slack channel", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := channel.Start(ctx); err != nil {
		logger.ErrorCF("main", "Failed to start Slack channel", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer channel.Stop()

	gw := gateway.New(settings, store, broker)

	logger.InfoCF("main", "KubeStellar Slack bot starting", map[string]interface{}{
		"port":        settings.Port,
		"maintainers": settings.MaintainersPath,
	})

	if err := gw.Start(ctx); err != nil {
		logger.ErrorCF("main", "Gateway error", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	broker.Close()
	logger.InfoC("main", "Shutdown complete")
}
