// Package httpapi exposes the commerce operations over HTTP. Handlers
// parse and validate the request, call the service, and encode a JSON
// response; every response carries the fixed CORS header set.
package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/hibiscushealth/backend/commerce"
)

type ServerConfig struct {
	// Addr is the listen address, for example ":8080".
	Addr string
}

type Server struct {
	config     ServerConfig
	httpServer *http.Server
	log        zerolog.Logger
}

func NewServer(config ServerConfig, svc *commerce.Service, log zerolog.Logger) *Server {
	mux := http.NewServeMux()

	api := NewAPI(svc, log)
	api.RegisterRoutes(mux)

	return &Server{
		config: config,
		log:    log,
		httpServer: &http.Server{
			Addr:         config.Addr,
			Handler:      corsMiddleware(requestLogger(log, mux)),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
	}
}

// Run starts the server and blocks until shutdown.
func (s *Server) Run() error {
	done := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		s.log.Info().Msg("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.log.Error().Err(err).Msg("shutdown")
		}
		close(done)
	}()

	s.log.Info().Str("addr", s.config.Addr).Msg("listening")
	if err := s.httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}

	<-done
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
