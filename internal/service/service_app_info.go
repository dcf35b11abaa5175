package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-file-cipher/internal/config"
	"github.com/MKhiriev/go-file-cipher/internal/logger"
)

type appInfoService struct {
	appVersion string
}

// NewAppInfoService validates the configured version once. It is served as
// plain text by /api/version and printed by the client, so it must be a
// single printable token; surrounding whitespace is trimmed.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	if i := strings.IndexFunc(version, func(r rune) bool {
		return unicode.IsSpace(r) || !unicode.IsPrint(r)
	}); i >= 0 {
		return nil, fmt.Errorf("%w: unexpected character at byte %d", ErrInvalidVersion, i)
	}

	logger.Info().Str("version", version).Msg("serving app version")

	return &appInfoService{appVersion: version}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	logger.FromContext(ctx).Debug().Msg("app version requested")
	return s.appVersion
}
