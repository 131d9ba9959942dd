// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package broker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/go-secret-broker/internal/logger"
	"github.com/MKhiriev/go-secret-broker/internal/service"
	"github.com/MKhiriev/go-secret-broker/internal/utils"
	"github.com/MKhiriev/go-secret-broker/internal/validators"
	"github.com/MKhiriev/go-secret-broker/models"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// Publisher sends reply messages. *nats.Conn satisfies it.
type Publisher interface {
	PublishMsg(msg *nats.Msg) error
}

// Options bound the work done per request.
type Options struct {
	// MaxMessageSize is the largest raw payload accepted on either subject.
	MaxMessageSize int
	// RequestTimeout is the deadline of the request context.
	RequestTimeout time.Duration
}

type Handler struct {
	services  *service.Services
	publisher Publisher
	opts      Options

	logger *logger.Logger
}

func NewHandler(services *service.Services, publisher Publisher, opts Options, logger *logger.Logger) *Handler {
	logger.Info().Msg("broker handler created")
	return &Handler{
		services:  services,
		publisher: publisher,
		opts:      opts,
		logger:    logger,
	}
}

// Routes returns the message handler of every subject the broker serves.
func (h *Handler) Routes() map[string]nats.MsgHandler {
	return map[string]nats.MsgHandler{
		models.SaveSubject:    h.handle(h.save),
		models.ReceiveSubject: h.handle(h.receive),
	}
}

type requestFunc func(ctx context.Context, msg *nats.Msg) (any, error)

func (h *Handler) handle(fn requestFunc) nats.MsgHandler {
	return func(msg *nats.Msg) {
		ctx, traceID, cancel := h.requestContext(msg)
		defer cancel()
		log := logger.FromContext(ctx)

		if msg.Reply == "" {
			log.Warn().Int("size", len(msg.Data)).Msg("request without reply subject dropped")
			return
		}

		if len(msg.Data) > h.opts.MaxMessageSize {
			h.replyError(ctx, msg, traceID, validators.ErrMessageTooLarge)
			return
		}

		result, err := fn(ctx, msg)
		if err != nil {
			h.replyError(ctx, msg, traceID, err)
			return
		}

		body, err := json.Marshal(result)
		if err != nil {
			h.replyError(ctx, msg, traceID, err)
			return
		}
		h.reply(ctx, msg, traceID, body)
	}
}

func (h *Handler) save(ctx context.Context, msg *nats.Msg) (any, error) {
	return h.services.SecretMessageService.CreateSecretMessage(ctx, string(msg.Data))
}

func (h *Handler) receive(ctx context.Context, msg *nats.Msg) (any, error) {
	var id models.SecretMessageIdentifier
	if err := json.Unmarshal(msg.Data, &id); err != nil {
		return nil, validators.ErrInvalidIdentifierFormat
	}

	retrieved, err := h.services.SecretMessageService.RetrieveSecretMessage(ctx, id.MessageID, id.AESKey)
	if err != nil {
		return nil, err
	}

	return retrieved.Plaintext, nil
}

// requestContext derives the request context: deadline, trace id and a
// child logger carrying trace_id and subject.
func (h *Handler) requestContext(msg *nats.Msg) (context.Context, string, context.CancelFunc) {
	traceID := msg.Header.Get(utils.TraceIDHeader)
	if traceID == "" {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID).Str("subject", msg.Subject)
	})

	ctx := utils.WithTraceID(l.WithContext(context.Background()), traceID)
	ctx, cancel := context.WithTimeout(ctx, h.opts.RequestTimeout)

	return ctx, traceID, cancel
}

func (h *Handler) replyError(ctx context.Context, msg *nats.Msg, traceID string, err error) {
	text := messageFromError(err)
	logger.FromContext(ctx).Debug().Err(err).Str("reply", text).Msg("request failed")

	// marshalling a struct of one string field cannot fail
	body, _ := json.Marshal(models.ErrorResponse{Error: text})
	h.reply(ctx, msg, traceID, body)
}

func (h *Handler) reply(ctx context.Context, msg *nats.Msg, traceID string, body []byte) {
	reply := nats.NewMsg(msg.Reply)
	reply.Header.Set(utils.TraceIDHeader, traceID)
	reply.Data = body

	if err := h.publisher.PublishMsg(reply); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "reply").Msg("error publishing reply")
	}
}
