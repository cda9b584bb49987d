package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/w-h-a/soul/server"
	httpserver "github.com/w-h-a/soul/server/http"
)

type serveCmd struct {
	Online onlineConfig `embed:""`

	Address string   `help:"Listen address" default:":10000" env:"SOUL_ADDRESS"`
	Origins []string `help:"Allowed CORS origins" default:"https://ecodia.au" env:"SOUL_ORIGINS"`
}

func (c *serveCmd) Run(g *globals) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, store, _, err := buildService(g, c.Online)
	if err != nil {
		return err
	}

	srv := httpserver.NewServer(
		httpserver.NewRouter(svc, store.Len()),
		server.WithAddress(c.Address),
		httpserver.WithMiddleware(httpserver.CORS(c.Origins...)),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")

	return srv.Stop(context.Background())
}
