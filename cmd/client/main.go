package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-file-cipher/internal/adapter"
	"github.com/MKhiriev/go-file-cipher/internal/commands"
	"github.com/MKhiriev/go-file-cipher/internal/config"
	"github.com/MKhiriev/go-file-cipher/internal/logger"
	"github.com/MKhiriev/go-file-cipher/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewClientLogger("file-cipher-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	root := commands.NewRootCommand(serverAdapter, commands.SystemClipboard(), buildInfo.BuildVersion(), log)
	if err = root.ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
