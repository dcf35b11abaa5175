package http

import (
	"github.com/MKhiriev/go-file-cipher/internal/config"
	"github.com/MKhiriev/go-file-cipher/internal/logger"
	"github.com/MKhiriev/go-file-cipher/internal/service"
	"github.com/MKhiriev/go-file-cipher/internal/utils"
)

type Handler struct {
	services *service.Services

	// sessionKey signs the session cookie.
	sessionKey string
	// maxUploadSize limits the size of an uploaded file in bytes; zero means
	// no limit.
	maxUploadSize int64
	sessionIDs    *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		sessionKey:    cfg.SessionKey,
		maxUploadSize: int64(cfg.MaxUploadSize),
		sessionIDs:    utils.NewUUIDGenerator(),
		logger:        logger,
	}
}
