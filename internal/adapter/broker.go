package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secret-broker/internal/logger"
	"github.com/MKhiriev/go-secret-broker/internal/utils"
	"github.com/MKhiriev/go-secret-broker/models"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// Requester is the request/reply part of *nats.Conn.
type Requester interface {
	RequestMsgWithContext(ctx context.Context, msg *nats.Msg) (*nats.Msg, error)
	Drain() error
}

type natsBrokerAdapter struct {
	conn    Requester
	timeout time.Duration

	logger *logger.Logger
}

// NewNATSBrokerAdapter constructs a NATS implementation of [BrokerAdapter].
// Every request gets its own trace id header and a deadline of timeout
// unless ctx already carries an earlier one.
func NewNATSBrokerAdapter(conn Requester, timeout time.Duration, logger *logger.Logger) BrokerAdapter {
	return &natsBrokerAdapter{conn: conn, timeout: timeout, logger: logger}
}

// Send implements [BrokerAdapter]. The plaintext goes out as raw bytes.
func (n *natsBrokerAdapter) Send(ctx context.Context, plaintext string) (models.SecretMessageIdentifier, error) {
	var id models.SecretMessageIdentifier

	data, err := n.request(ctx, models.SaveSubject, []byte(plaintext))
	if err != nil {
		return id, fmt.Errorf("save request: %w", err)
	}

	if err = json.Unmarshal(data, &id); err != nil || id.MessageID == "" || id.AESKey == "" {
		return models.SecretMessageIdentifier{}, fmt.Errorf("%w: %q", ErrUnexpectedReply, data)
	}

	return id, nil
}

// Receive implements [BrokerAdapter].
func (n *natsBrokerAdapter) Receive(ctx context.Context, id models.SecretMessageIdentifier) (string, error) {
	body, err := json.Marshal(id)
	if err != nil {
		return "", fmt.Errorf("encode receive request: %w", err)
	}

	data, err := n.request(ctx, models.ReceiveSubject, body)
	if err != nil {
		return "", fmt.Errorf("receive request: %w", err)
	}

	var plaintext string
	if err = json.Unmarshal(data, &plaintext); err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnexpectedReply, data)
	}

	return plaintext, nil
}

func (n *natsBrokerAdapter) Close() {
	if err := n.conn.Drain(); err != nil {
		n.logger.Err(err).Msg("error draining broker connection")
	}
}

func (n *natsBrokerAdapter) request(ctx context.Context, subject string, body []byte) ([]byte, error) {
	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	traceID := uuid.NewString()
	msg := nats.NewMsg(subject)
	msg.Header.Set(utils.TraceIDHeader, traceID)
	msg.Data = body

	n.logger.Debug().Str("subject", subject).Str("trace_id", traceID).Int("size", len(body)).Msg("sending request")

	reply, err := n.conn.RequestMsgWithContext(ctx, msg)
	if err != nil {
		return nil, mapNATSError(err)
	}

	if err = mapReplyError(reply.Data); err != nil {
		return nil, err
	}

	return reply.Data, nil
}
