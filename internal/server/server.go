package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-secret-broker/internal/config"
	"github.com/MKhiriev/go-secret-broker/internal/handler"
	"github.com/MKhiriev/go-secret-broker/internal/logger"
	"github.com/MKhiriev/go-secret-broker/internal/workers"
	"github.com/nats-io/nats.go"
)

type server struct {
	brokerServer *brokerServer
	httpServer   *httpServer
	logger       *logger.Logger
}

// NewServer creates the broker server on conn and, when the handlers carry
// one, the HTTP status server.
func NewServer(handlers *handler.Handlers, conn *nats.Conn, cfg *config.StructuredConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if handlers.Broker != nil {
		if conn == nil {
			return nil, errNoBrokerConnection
		}
		pool := workers.NewMessagePool(handlers.Broker.Routes(), cfg.Workers, logger)
		servers.brokerServer = newBrokerServer(conn, pool, cfg.Transport.QueueGroup, logger)
	}
	if handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg.Server, logger)
	}

	if servers.brokerServer == nil && servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	// finish broker first so pending replies still go out
	if s.brokerServer != nil {
		s.brokerServer.Shutdown()
	}

	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

// run launches every created server and blocks until ctx is done or one
// of the servers stops on its own.
func (s *server) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	launch := func(name string, srv Server) {
		s.logger.Info().Msgf("Launching %s server", name)
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer cancel()
			srv.RunServer()
		}()
	}

	if s.brokerServer != nil {
		launch("broker", s.brokerServer)
	}
	if s.httpServer != nil {
		launch("HTTP", s.httpServer)
	}

	<-ctx.Done()

	// finish started servers
	s.Shutdown()
	wg.Wait()

	s.logger.Info().Msg("server Shutdown gracefully")
}
