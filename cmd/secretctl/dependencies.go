package main

import (
	"github.com/MKhiriev/go-secret-broker/internal/adapter"
	"github.com/MKhiriev/go-secret-broker/internal/client"
	"github.com/MKhiriev/go-secret-broker/internal/config"
	"github.com/MKhiriev/go-secret-broker/internal/logger"
	"github.com/MKhiriev/go-secret-broker/internal/utils"
)

// dependencies creates the collaborators of a command. Commands ask only for
// what they use, so genpass works without a reachable broker.
type dependencies struct {
	newBroker    func(cfg *config.ClientConfig, log *logger.Logger) (adapter.BrokerAdapter, error)
	newStatus    func(cfg *config.ClientConfig) adapter.StatusAdapter
	newClipboard func() client.Clipboard
}

func defaultDependencies() dependencies {
	return dependencies{
		newBroker: func(cfg *config.ClientConfig, log *logger.Logger) (adapter.BrokerAdapter, error) {
			conn, err := utils.NewNATSConnection(utils.NATSOptions{
				URL:      cfg.Transport.URL,
				User:     cfg.Transport.User,
				Password: cfg.Transport.Password,
				Name:     "secretctl",
				Timeout:  cfg.Transport.RequestTimeout,
			}, log)
			if err != nil {
				return nil, err
			}
			return adapter.NewNATSBrokerAdapter(conn, cfg.Transport.RequestTimeout, log), nil
		},
		newStatus: func(cfg *config.ClientConfig) adapter.StatusAdapter {
			return adapter.NewHTTPStatusAdapter(utils.NewHTTPClient(cfg.StatusURL, cfg.Transport.RequestTimeout))
		},
		newClipboard: client.NewSystemClipboard,
	}
}
