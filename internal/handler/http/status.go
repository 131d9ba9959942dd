package http

import (
	"net/http"

	"github.com/MKhiriev/go-secret-broker/internal/logger"
	"github.com/MKhiriev/go-secret-broker/internal/utils"
)

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteText(w, StatusBody, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "getStatus").Msg("error writing response")
	}
}
