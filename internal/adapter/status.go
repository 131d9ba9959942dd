package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-secret-broker/internal/utils"
)

type httpStatusAdapter struct {
	client *utils.HTTPClient
}

// NewHTTPStatusAdapter constructs an HTTP implementation of [StatusAdapter]
// rooted at the broker's status server address.
func NewHTTPStatusAdapter(client *utils.HTTPClient) StatusAdapter {
	return &httpStatusAdapter{client: client}
}

// Status implements [StatusAdapter]. It GETs /status and returns the
// trimmed body.
func (h *httpStatusAdapter) Status(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/status")
	if err != nil {
		return "", fmt.Errorf("%w: status request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}
