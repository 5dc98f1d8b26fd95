package web

import (
	"log/slog"
	"net/http"

	todoservice "github.com/thenoetrevino/hecho/internal/services/todo"
)

// Site is the assembled HTTP surface: the route table, its handlers and the
// middleware-wrapped entry point
type Site struct {
	Router  *Router
	Handler http.Handler
	Metrics *Metrics
}

// NewSite builds the default route table over the given service
func NewSite(todos todoservice.Service, logger *slog.Logger) (*Site, error) {
	if logger == nil {
		logger = slog.Default()
	}

	handlers := NewHandlers(todos, logger)
	router, err := NewRouter(DefaultRoutes(handlers)...)
	if err != nil {
		return nil, err
	}
	handlers.SetURLs(router)

	metrics := NewMetrics()
	return &Site{
		Router: router,
		Handler: Chain(router,
			WithRequestID(),
			WithLogging(logger, metrics),
			WithRecovery(logger),
		),
		Metrics: metrics,
	}, nil
}
