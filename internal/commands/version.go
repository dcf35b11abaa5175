package commands

import (
	"fmt"

	"github.com/MKhiriev/go-file-cipher/internal/adapter"
	"github.com/spf13/cobra"
)

// NewVersionCommand prints the client build version and the version reported
// by the server.
func NewVersionCommand(serverAdapter adapter.ServerAdapter, clientVersion string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "client: %s\n", clientVersion)

			serverVersion, err := serverAdapter.Version(cmd.Context())
			if err != nil {
				return fmt.Errorf("requesting server version: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "server: %s\n", serverVersion)

			return nil
		},
	}
}
