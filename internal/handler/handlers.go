package handler

import (
	"github.com/MKhiriev/go-payload-guard/internal/config"
	"github.com/MKhiriev/go-payload-guard/internal/handler/http"
	"github.com/MKhiriev/go-payload-guard/internal/logger"
	"github.com/MKhiriev/go-payload-guard/models"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers enabled by cfg.
func NewHandlers(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		httpHandler, err := http.NewHandler(cfg, buildInfo, logger)
		if err != nil {
			return nil, err
		}
		handlers.HTTP = httpHandler
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
