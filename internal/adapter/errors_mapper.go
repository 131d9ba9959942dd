package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-secret-broker/internal/app"
	"github.com/MKhiriev/go-secret-broker/models"
	"github.com/go-resty/resty/v2"
	"github.com/nats-io/nats.go"
)

var replyErrorMap = map[string]error{
	app.MsgEmptyMessage:         ErrBadRequest,
	app.MsgBlankMessage:         ErrBadRequest,
	app.MsgMessageTooLarge:      ErrBadRequest,
	app.MsgInvalidUTF8:          ErrBadRequest,
	app.MsgMessageIDRequired:    ErrBadRequest,
	app.MsgMessageIDTooLong:     ErrBadRequest,
	app.MsgAESKeyRequired:       ErrBadRequest,
	app.MsgAESKeyTooLong:        ErrBadRequest,
	app.MsgInvalidAESKey:        ErrBadRequest,
	app.MsgInvalidRequestFormat: ErrBadRequest,
	app.MsgMessageNotFound:      ErrNotFound,
	app.MsgUnableToDecrypt:      ErrDecryptionFailed,
	app.MsgStorageUnavailable:   ErrUnavailable,
	app.MsgUnableToGenerateKey:  ErrInternalServerError,
	app.MsgInternalServerError:  ErrInternalServerError,
}

// mapReplyError returns the error carried by an {"error": "..."} reply, or
// nil when data is not an error reply.
func mapReplyError(data []byte) error {
	var resp models.ErrorResponse
	if err := json.Unmarshal(data, &resp); err != nil || resp.Error == "" {
		return nil
	}

	if target, ok := replyErrorMap[resp.Error]; ok {
		return fmt.Errorf("%w: %s", target, resp.Error)
	}
	return fmt.Errorf("%w: %s", ErrInternalServerError, resp.Error)
}

func mapNATSError(err error) error {
	switch {
	case errors.Is(err, nats.ErrNoResponders):
		return fmt.Errorf("%w: no broker is subscribed", ErrUnavailable)
	case errors.Is(err, nats.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	case errors.Is(err, nats.ErrConnectionClosed):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	default:
		return err
	}
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusServiceUnavailable, http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrUnavailable, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
