package http

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	httpServer *http.Server
}

// NewServer оборачивает handler в otelhttp: каждый запрос получает span.
// Контексты запросов отменяются в начале Shutdown, поэтому долгие потоки /events
// завершаются сами и не задерживают остановку.
func NewServer(handler http.Handler, cfg *cfg.HTTPConfig) *Server {
	baseCtx, cancel := context.WithCancel(context.Background())

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      otelhttp.NewHandler(handler, "storefront"),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		BaseContext: func(net.Listener) context.Context {
			return baseCtx
		},
	}
	srv.RegisterOnShutdown(cancel)

	return &Server{httpServer: srv}
}

// Run блокируется до остановки сервера. Штатная остановка через Stop не считается ошибкой.
func (s *Server) Run() error {
	return ignoreClosed(s.httpServer.ListenAndServe())
}

// Serve обслуживает уже открытый listener.
func (s *Server) Serve(lis net.Listener) error {
	return ignoreClosed(s.httpServer.Serve(lis))
}

func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func ignoreClosed(err error) error {
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
