package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-secret-broker/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/status", r.URL.Path)
		_, _ = w.Write([]byte("UP AND RUNNING!\n"))
	}))
	defer srv.Close()

	a := NewHTTPStatusAdapter(utils.NewHTTPClient(srv.URL, time.Second))
	got, err := a.Status(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "UP AND RUNNING!", got)
}

func TestStatus_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"not found", http.StatusNotFound, ErrNotFound},
		{"unavailable", http.StatusServiceUnavailable, ErrUnavailable},
		{"internal", http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := NewHTTPStatusAdapter(utils.NewHTTPClient(srv.URL, time.Second))
			_, err := a.Status(context.Background())

			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestStatus_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := NewHTTPStatusAdapter(utils.NewHTTPClient(srv.URL, time.Second))
	_, err := a.Status(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestStatus_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := NewHTTPStatusAdapter(utils.NewHTTPClient(url, time.Second))
	_, err := a.Status(context.Background())

	require.ErrorIs(t, err, ErrUnavailable)
}
