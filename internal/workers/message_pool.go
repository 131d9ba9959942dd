// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-secret-broker/internal/config"
	"github.com/MKhiriev/go-secret-broker/internal/logger"
	"github.com/nats-io/nats.go"
)

// MessagePool is a fixed set of goroutines that dispatch broker messages to
// the handler registered for their subject.
//
// Subscriptions deliver into Messages(). After ctx is cancelled every
// goroutine keeps serving until the buffer is empty, so requests that were
// already accepted still receive a reply.
type MessagePool struct {
	msgs   chan *nats.Msg
	routes map[string]nats.MsgHandler
	count  int

	logger *logger.Logger
}

func NewMessagePool(routes map[string]nats.MsgHandler, cfg config.Workers, logger *logger.Logger) *MessagePool {
	count := cfg.Count
	if count < 1 {
		count = 1
	}
	size := cfg.BufferSize
	if size < 0 {
		size = 0
	}

	return &MessagePool{
		msgs:   make(chan *nats.Msg, size),
		routes: routes,
		count:  count,
		logger: logger,
	}
}

// Messages returns the channel subscriptions should deliver into.
func (p *MessagePool) Messages() chan *nats.Msg {
	return p.msgs
}

// Subjects returns the subjects that have a registered handler.
func (p *MessagePool) Subjects() []string {
	subjects := make([]string, 0, len(p.routes))
	for subject := range p.routes {
		subjects = append(subjects, subject)
	}
	return subjects
}

func (p *MessagePool) Run(ctx context.Context) {
	p.logger.Info().Int("workers", p.count).Int("buffer", cap(p.msgs)).Msg("message pool started")

	var wg sync.WaitGroup
	for i := 0; i < p.count; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.serve(ctx)
		}()
	}
	wg.Wait()

	p.logger.Info().Msg("message pool stopped")
}

func (p *MessagePool) serve(ctx context.Context) {
	for {
		select {
		case msg := <-p.msgs:
			p.dispatch(msg)
		case <-ctx.Done():
			p.drain()
			return
		}
	}
}

func (p *MessagePool) drain() {
	for {
		select {
		case msg := <-p.msgs:
			p.dispatch(msg)
		default:
			return
		}
	}
}

func (p *MessagePool) dispatch(msg *nats.Msg) {
	if msg == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error().Interface("panic", r).Str("subject", msg.Subject).Msg("message handler panicked")
		}
	}()

	handle, ok := p.routes[msg.Subject]
	if !ok {
		p.logger.Warn().Str("subject", msg.Subject).Msg("no handler for subject")
		return
	}
	handle(msg)
}
