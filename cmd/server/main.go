package main

import (
	"os"

	"github.com/MKhiriev/go-file-cipher/internal/config"
	"github.com/MKhiriev/go-file-cipher/internal/crypto"
	"github.com/MKhiriev/go-file-cipher/internal/handler"
	"github.com/MKhiriev/go-file-cipher/internal/logger"
	"github.com/MKhiriev/go-file-cipher/internal/server"
	"github.com/MKhiriev/go-file-cipher/internal/service"
	"github.com/MKhiriev/go-file-cipher/internal/store"
	"github.com/MKhiriev/go-file-cipher/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Fprint(os.Stdout)

	log := logger.NewLogger("file-cipher-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("results_mode", cfg.Storage.Results.Mode).
		Str("max_upload_size", cfg.App.MaxUploadSize.String()).
		Msg("received configs")

	results, err := store.NewResultStore(cfg.Storage.Results, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating result store")
	}
	defer results.Close()

	services, err := service.NewServices(crypto.NewCipherCodec(), results, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
