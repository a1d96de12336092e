package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/skybi/threads-portal/internal/api"
	"github.com/skybi/threads-portal/internal/api/session/storage/inmem"
	"github.com/skybi/threads-portal/internal/bootstrap"
	"github.com/skybi/threads-portal/internal/config"
	"github.com/skybi/threads-portal/internal/task"
	"github.com/skybi/threads-portal/internal/threads"
)

func main() {
	// Set up zerolog to use pretty printing
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out: os.Stderr,
	})
	log.Info().Msg("starting up...")

	// Load the application configuration
	log.Info().Msg("loading configuration...")
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load the configuration")
	}

	// Initialize the in-memory session storage and schedule a task that purges expired sessions
	sessionStorage, err := inmem.New()
	if err != nil {
		log.Fatal().Err(err).Msg("could not initialize the session storage")
	}
	purgeTask := task.NewRepeating(func() {
		n, err := sessionStorage.TerminateExpired(context.Background())
		if err != nil {
			log.Error().Err(err).Msg("could not purge expired sessions")
		} else if n > 0 {
			log.Info().Int("amount", n).Msg("purged expired sessions")
		}
	}, 15*time.Minute)
	purgeTask.Start()
	defer purgeTask.Stop(false)

	// Create the Graph API client
	client := threads.NewClient(threads.Options{
		BaseURL:              cfg.GraphAPIBaseURL(),
		AuthorizationBaseURL: config.AuthorizationBaseURL,
		AppID:                cfg.AppID,
		APISecret:            cfg.APISecret,
		RedirectURI:          cfg.RedirectURI,
	})

	// Start up the web application
	log.Info().Str("host", cfg.Host).Int("port", cfg.Port).Msg("starting up the web application...")
	service := &api.Service{
		Config:    cfg,
		Client:    client,
		Sessions:  sessionStorage,
		Bootstrap: bootstrap.NewPending(cfg.InitialAccessToken, cfg.InitialUserID),
	}
	serviceErrs := make(chan error, 1)
	go func() {
		if err := service.Startup(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serviceErrs <- err
		}
	}()
	go func() {
		err := <-serviceErrs
		log.Fatal().Err(err).Msg("the web application raised an unexpected error")
	}()
	defer func() {
		log.Info().Msg("shutting down the web application...")
		service.Shutdown()
	}()

	log.Info().Msg("done!")
	defer log.Info().Msg("shutting down...")

	// Wait for the application to be terminated
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)
	<-shutdown
}
