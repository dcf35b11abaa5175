package commands

import (
	"github.com/MKhiriev/go-file-cipher/internal/adapter"
	"github.com/MKhiriev/go-file-cipher/internal/logger"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command and attaches the cipher and
// version subcommands.
func NewRootCommand(serverAdapter adapter.ServerAdapter, clip Clipboard, version string, logger *logger.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "file-cipher [command] [flags]",
		Short: "Encrypt and decrypt text files on a file cipher server",
		Long: `A client for the file cipher server.
Files are uploaded together with a password; the server answers with the
Base64 artifact (encrypt) or a preview of the recovered text (decrypt).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		NewEncryptCommand(serverAdapter, clip, logger),
		NewDecryptCommand(serverAdapter, clip, logger),
		NewVersionCommand(serverAdapter, version),
	)

	return root
}
