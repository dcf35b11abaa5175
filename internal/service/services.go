package service

import (
	"fmt"

	"github.com/MKhiriev/go-file-cipher/internal/config"
	"github.com/MKhiriev/go-file-cipher/internal/crypto"
	"github.com/MKhiriev/go-file-cipher/internal/logger"
	"github.com/MKhiriev/go-file-cipher/internal/store"
)

type Services struct {
	CipherService  CipherService
	AppInfoService AppInfoService
}

func NewServices(codec crypto.CipherCodec, results store.ResultStore, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	cipherService := NewCipherValidationService(int64(cfg.App.MaxUploadSize)).
		Wrap(NewCipherService(codec, results, logger))

	return &Services{
		CipherService:  cipherService,
		AppInfoService: appInfoService,
	}, nil
}
