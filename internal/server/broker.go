// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-secret-broker/internal/logger"
	"github.com/MKhiriev/go-secret-broker/internal/workers"
	"github.com/nats-io/nats.go"
)

// brokerServer subscribes the message pool to every routed subject and
// serves requests until Shutdown.
type brokerServer struct {
	conn       *nats.Conn
	pool       *workers.MessagePool
	queueGroup string

	mu      sync.Mutex
	subs    []*nats.Subscription
	started bool
	stopped bool
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}

	logger *logger.Logger
}

func newBrokerServer(conn *nats.Conn, pool *workers.MessagePool, queueGroup string, logger *logger.Logger) *brokerServer {
	ctx, cancel := context.WithCancel(context.Background())
	return &brokerServer{
		conn:       conn,
		pool:       pool,
		queueGroup: queueGroup,
		ctx:        ctx,
		cancel:     cancel,
		done:       make(chan struct{}),
		logger:     logger,
	}
}

func (b *brokerServer) RunServer() {
	if err := b.subscribe(); err != nil {
		b.logger.Err(err).Msg("broker server subscribe")
		b.Shutdown()
		return
	}
	defer close(b.done)

	b.pool.Run(b.ctx)
}

func (b *brokerServer) subscribe() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stopped {
		return context.Canceled
	}

	for _, subject := range b.pool.Subjects() {
		sub, err := b.subscribeSubject(subject)
		if err != nil {
			b.unsubscribe()
			return err
		}
		b.subs = append(b.subs, sub)
		b.logger.Info().Str("subject", subject).Str("queue_group", b.queueGroup).Msg("subscribed")
	}

	if err := b.conn.Flush(); err != nil {
		b.unsubscribe()
		return err
	}
	b.started = true

	return nil
}

func (b *brokerServer) subscribeSubject(subject string) (*nats.Subscription, error) {
	if b.queueGroup != "" {
		return b.conn.ChanQueueSubscribe(subject, b.queueGroup, b.pool.Messages())
	}
	return b.conn.ChanSubscribe(subject, b.pool.Messages())
}

// unsubscribe must be called with mu held.
func (b *brokerServer) unsubscribe() {
	for _, sub := range b.subs {
		if err := sub.Unsubscribe(); err != nil {
			b.logger.Err(err).Str("subject", sub.Subject).Msg("error unsubscribing")
		}
	}
	b.subs = nil
}

// Shutdown stops new deliveries, lets the pool answer every buffered
// request and closes the connection. It is safe to call more than once.
func (b *brokerServer) Shutdown() {
	b.mu.Lock()
	if b.stopped {
		b.mu.Unlock()
		return
	}
	b.stopped = true
	b.unsubscribe()
	started := b.started
	b.mu.Unlock()

	b.logger.Info().Msg("broker server Shutdown")
	b.cancel()
	if started {
		<-b.done
	}

	if err := b.conn.Flush(); err != nil {
		b.logger.Err(err).Msg("error flushing replies")
	}
	b.conn.Close()
}
