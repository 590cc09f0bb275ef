package service

import (
	"context"

	"github.com/MKhiriev/pali-search/internal/logger"
	"github.com/MKhiriev/pali-search/models"
)

type appInfoService struct {
	appVersion string
	buildInfo  models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService reports version, the configured application version,
// falling back to the build version stamped at link time.
func NewAppInfoService(version string, buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	if version == "" {
		version = buildInfo.Version()
	}

	return &appInfoService{
		appVersion: version,
		buildInfo:  buildInfo,
		logger:     logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetBuildInfo() models.AppBuildInfo {
	return s.buildInfo
}
