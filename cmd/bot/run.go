package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/event-reminder-bot/internal/chat"
	"github.com/diegoclair/event-reminder-bot/internal/config"
	"github.com/diegoclair/event-reminder-bot/internal/database"
	"github.com/diegoclair/event-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/event-reminder-bot/internal/domain/service"
	"github.com/diegoclair/event-reminder-bot/internal/handlers"
	"github.com/diegoclair/event-reminder-bot/internal/logger"
	"github.com/diegoclair/event-reminder-bot/migrator/sqlite"
	"github.com/slack-go/slack"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

func run(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	events, err := config.LoadSchedule(cfg.ScheduleFile)
	if err != nil {
		return err
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	log.Info("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mux := http.NewServeMux()

	var (
		messenger contract.Messenger
		session   *discordgo.Session
		slackAPI  *slack.Client
	)
	switch cfg.Platform {
	case config.PlatformSlack:
		slackAPI = slack.New(cfg.BotToken)
		messenger = chat.NewSlackMessenger(slackAPI, cfg.ChannelID, cfg.RoleID)
	default:
		session, err = discordgo.New("Bot " + cfg.BotToken)
		if err != nil {
			return fmt.Errorf("failed to create discord session: %w", err)
		}
		session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent
		messenger = chat.NewDiscordMessenger(session, cfg.ChannelID, cfg.RoleID)
	}

	services := service.New(database.NewInstance(db), messenger, events, service.Config{
		Location:     cfg.Location,
		PollInterval: cfg.PollInterval,
		Logger:       log,
	})
	responder := handlers.NewResponder(services.Reminder, log)

	if session != nil {
		discordHandler := handlers.NewDiscordHandler(responder, cfg.CommandPrefix, cfg.GameName, log)
		session.AddHandler(discordHandler.HandleReady)
		session.AddHandler(discordHandler.HandleMessageCreate)

		if err := session.Open(); err != nil {
			return fmt.Errorf("failed to open discord session: %w", err)
		}
		defer session.Close()
	}
	if slackAPI != nil {
		slackHandler := handlers.NewSlackHandler(responder, cfg.SlackSigningSecret, log)
		mux.HandleFunc("POST /slack/commands", slackHandler.HandleSlashCommand)
	}

	handlers.NewHTTPHandler(services.Reminder, cfg.Location, log).Register(mux)

	if err := services.Scheduler.Start(ctx); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer services.Scheduler.Stop()

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("port", cfg.Port), zap.String("platform", cfg.Platform))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
