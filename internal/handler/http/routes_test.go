package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-secret-broker/internal/logger"
	"github.com/MKhiriev/go-secret-broker/internal/mock"
	"github.com/MKhiriev/go-secret-broker/internal/service"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- Helpers ----

func newTestRouter(t *testing.T, buf *bytes.Buffer) (http.Handler, *mock.MockAppInfoService) {
	t.Helper()
	appInfo := mock.NewMockAppInfoService(gomock.NewController(t))

	l := logger.Nop()
	if buf != nil {
		l = &logger.Logger{Logger: zerolog.New(buf)}
	}

	h := NewHandler(&service.Services{AppInfoService: appInfo}, l)
	return h.Init(), appInfo
}

func do(router http.Handler, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ---- Routes ----

func TestGetStatus(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rr := do(router, http.MethodGet, "/status", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, StatusBody, rr.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
}

func TestGetServerVersion(t *testing.T) {
	router, appInfo := newTestRouter(t, nil)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.4.2")

	rr := do(router, http.MethodGet, "/api/version/", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var body versionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "1.4.2", body.Version)
}

func TestRoutes_UnsupportedMethodIsNotFound(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			rr := do(router, method, "/status", nil)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestRoutes_UnknownPath(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rr := do(router, http.MethodGet, "/save", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ---- Middleware ----

func TestWithTraceID_ReusesHeader(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rr := do(router, http.MethodGet, "/status", http.Header{"X-Trace-Id": {"my-trace"}})

	assert.Equal(t, "my-trace", rr.Header().Get("X-Trace-ID"))
}

func TestWithTraceID_GeneratesUUID(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rr := do(router, http.MethodGet, "/status", nil)

	_, err := uuid.Parse(rr.Header().Get("X-Trace-ID"))
	assert.NoError(t, err)
}

func TestWithLogging_WritesAccessLog(t *testing.T) {
	var buf bytes.Buffer
	router, _ := newTestRouter(t, &buf)

	do(router, http.MethodGet, "/status", http.Header{"X-Trace-Id": {"abc"}})

	var entry map[string]any
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/status", entry["uri"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, float64(len(StatusBody)), entry["size"])
	assert.Equal(t, "abc", entry["trace_id"])
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusTeapot)
	w.WriteHeader(http.StatusOK)
	_, err := w.Write([]byte("tea"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, http.StatusTeapot, w.status)
	assert.Equal(t, 3, w.size)
}
