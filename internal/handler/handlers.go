package handler

import (
	"github.com/MKhiriev/go-secret-broker/internal/config"
	"github.com/MKhiriev/go-secret-broker/internal/handler/broker"
	"github.com/MKhiriev/go-secret-broker/internal/handler/http"
	"github.com/MKhiriev/go-secret-broker/internal/logger"
	"github.com/MKhiriev/go-secret-broker/internal/service"
)

type Handlers struct {
	Broker *broker.Handler
	HTTP   *http.Handler
}

// NewHandlers creates the broker handler and, when a status address is
// configured, the HTTP status handler.
func NewHandlers(services *service.Services, publisher broker.Publisher, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if publisher == nil {
		return nil, errNoPublisher
	}

	handlers := &Handlers{
		Broker: broker.NewHandler(services, publisher, broker.Options{
			MaxMessageSize: cfg.App.MaxMessageSize,
			RequestTimeout: cfg.Transport.RequestTimeout,
		}, logger),
	}

	if cfg.Server.StatusAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	return handlers, nil
}
