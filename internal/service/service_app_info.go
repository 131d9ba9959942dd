package service

import (
	"context"

	"github.com/MKhiriev/go-secret-broker/internal/config"
	"github.com/MKhiriev/go-secret-broker/internal/logger"
)

// versionService reports the build version of the running broker on the
// HTTP status endpoint. The version is fixed at startup.
type versionService struct {
	version string
	logger  *logger.Logger
}

// NewAppInfoService fails when the broker was built or configured without a
// version string, so the status endpoint never reports an empty one.
func NewAppInfoService(cfg config.App, log *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	log.Debug().Str("version", cfg.Version).Msg("broker version registered")

	return &versionService{version: cfg.Version, logger: log}, nil
}

func (s *versionService) GetAppVersion(context.Context) string {
	return s.version
}
