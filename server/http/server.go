package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rs/cors"
	"github.com/w-h-a/soul/server"
)

type httpServer struct {
	options server.Options
	srv     *http.Server
}

func (s *httpServer) Start() error {
	slog.InfoContext(s.options.Context, "http server listening", "address", s.options.Address)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *httpServer) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.options.ShutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(ctx)
}

func NewServer(handler http.Handler, opts ...server.Option) server.Server {
	options := server.NewOptions(opts...)

	if ms, ok := MiddlewareFrom(options.Context); ok {
		for i := len(ms) - 1; i >= 0; i-- {
			handler = ms[i](handler)
		}
	}

	s := &httpServer{
		options: options,
		srv: &http.Server{
			Addr:    options.Address,
			Handler: handler,
		},
	}

	return s
}

func newCORS(origins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
}
