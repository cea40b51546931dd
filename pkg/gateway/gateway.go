// Package gateway exposes the bot's HTTP surface: slash-command and
// Events API webhooks plus health and service-description endpoints.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/kubestellar/slackbot/pkg/bus"
	"github.com/kubestellar/slackbot/pkg/config"
	"github.com/kubestellar/slackbot/pkg/logger"
	"github.com/kubestellar/slackbot/pkg/registry"
)

const Version = "1.0.0"

type Gateway struct {
	settings config.Settings
	store    *registry.Store
	broker   bus.Publisher
	server   *http.Server
}

func New(settings config.Settings, store *registry.Store, broker bus.Publisher) *Gateway {
	return &Gateway{
		settings: settings,
		store:    store,
		broker:   broker,
	}
}

// Handler returns the route table. Exposed so tests can drive the
// gateway through httptest without binding a port.
func (g *Gateway) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/slack/commands", g.handleSlashCommand)
	mux.HandleFunc("/slack/events", g.handleEvents)
	mux.HandleFunc("/health", g.handleHealth)
	mux.HandleFunc("/", g.handleRoot)
	return mux
}

// Start serves HTTP until the context is cancelled, then shuts down
// gracefully.
func (g *Gateway) Start(ctx context.Context) error {
	g.server = &http.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%d", g.settings.Port),
		Handler: g.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.InfoCF("gateway", "HTTP server listening", map[string]interface{}{
			"addr": g.server.Addr,
		})
		if err := g.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("gateway server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.InfoC("gateway", "Shutting down HTTP server")
	if err := g.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("gateway shutdown failed: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.ErrorCF("gateway", "Failed to encode response", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
