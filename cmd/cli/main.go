package main

import (
	"bufio"
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/hitenSisghSoft/soundbox/internal/client/api"
	"github.com/hitenSisghSoft/soundbox/internal/client/app"
	"github.com/hitenSisghSoft/soundbox/internal/client/config"
	"github.com/hitenSisghSoft/soundbox/internal/client/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	store := session.NewFileStore(cfg.SessionFile)
	sess, err := session.New(store)
	if err != nil {
		log.Fatal().Err(err).Msg("load session state")
	}

	notifier := app.NewNotifier(log)

	var console *app.App
	client, err := api.New(api.Config{
		BaseURL:  cfg.BaseURL,
		Session:  sess,
		Notifier: notifier,
		OnUnauthorized: func() {
			console.Navigate("/signin")
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("build api client")
	}

	console = app.New(client, sess, notifier, log, bufio.NewReader(os.Stdin), os.Stdout)

	if err := console.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("console exited")
	}
}
