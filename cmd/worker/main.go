package main

import (
	"context"

	"github.com/joho/godotenv"
	btnmanager "github.com/modmail-cloud/departments-worker/bot/button/manager"
	cmdmanager "github.com/modmail-cloud/departments-worker/bot/command/manager"
	"github.com/modmail-cloud/departments-worker/bot/dbclient"
	"github.com/modmail-cloud/departments-worker/bot/metrics/prometheus"
	"github.com/modmail-cloud/departments-worker/bot/redis"
	"github.com/modmail-cloud/departments-worker/bot/sentry"
	"github.com/modmail-cloud/departments-worker/config"
	"github.com/modmail-cloud/departments-worker/event"
	"github.com/modmail-cloud/departments-worker/http"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	if err := config.Parse(); err != nil {
		panic(err)
	}

	var logger *zap.Logger
	var err error
	if config.Conf.DebugMode != "" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}

	if err != nil {
		panic(err)
	}

	defer logger.Sync()

	if err := sentry.Initialise(config.Conf.SentryDsn); err != nil {
		logger.Error("Failed to initialise sentry", zap.Error(err))
	}

	ctx := context.Background()

	if err := dbclient.Connect(ctx, config.Conf.Mongo.Uri, config.Conf.Mongo.Database); err != nil {
		logger.Fatal("Failed to connect to mongo", zap.Error(err))
	}

	if err := dbclient.Client.Departments.EnsureDefaults(ctx); err != nil {
		logger.Fatal("Failed to seed default departments", zap.Error(err))
	}

	if err := redis.Connect(); err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}

	prometheus.StartServer(config.Conf.MetricsAddr)

	commandManager := new(cmdmanager.CommandManager)
	commandManager.RegisterCommands()

	componentManager := btnmanager.NewComponentManager()
	componentManager.RegisterHandlers()

	listener := event.NewRedisListener(logger)
	go listener.Listen(ctx)

	server := http.NewServer(logger, commandManager, componentManager)
	if err := server.Run(config.Conf.Http.Addr); err != nil {
		logger.Fatal("Interaction server exited", zap.Error(err))
	}
}
