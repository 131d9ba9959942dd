package http

import (
	"net/http"

	"github.com/MKhiriev/go-secret-broker/internal/logger"
	"github.com/MKhiriev/go-secret-broker/internal/utils"
)

type versionResponse struct {
	Version string `json:"version"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	if _, err := utils.WriteJSON(w, versionResponse{Version: serverVersion}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "getServerVersion").Msg("error writing response")
	}
}
