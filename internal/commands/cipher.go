package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-file-cipher/internal/adapter"
	"github.com/MKhiriev/go-file-cipher/internal/logger"
	"github.com/spf13/cobra"
)

const (
	flagPassword = "password"
	flagOutput   = "output"
	flagCopy     = "copy"

	outputFileMode = 0o600
)

type cipherCall func(ctx context.Context, fileName string, data []byte, password string) (string, error)

type cipherOptions struct {
	password string
	output   string
	copy     bool
}

// NewEncryptCommand creates the encrypt subcommand. It prints the Base64
// artifact returned by the server.
func NewEncryptCommand(serverAdapter adapter.ServerAdapter, clip Clipboard, logger *logger.Logger) *cobra.Command {
	cmd := newCipherCommand(serverAdapter, serverAdapter.Encrypt, clip, logger)

	cmd.Use = "encrypt [flags] FILE"
	cmd.Aliases = []string{"enc"}
	cmd.Short = "Encrypt a text file"

	return cmd
}

// NewDecryptCommand creates the decrypt subcommand. It prints the preview of
// the recovered text; the full plaintext is available through --output.
func NewDecryptCommand(serverAdapter adapter.ServerAdapter, clip Clipboard, logger *logger.Logger) *cobra.Command {
	cmd := newCipherCommand(serverAdapter, serverAdapter.Decrypt, clip, logger)

	cmd.Use = "decrypt [flags] FILE"
	cmd.Aliases = []string{"dec"}
	cmd.Short = "Decrypt a Base64 artifact"

	return cmd
}

func newCipherCommand(serverAdapter adapter.ServerAdapter, call cipherCall, clip Clipboard, logger *logger.Logger) *cobra.Command {
	opts := new(cipherOptions)

	cmd := &cobra.Command{
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCipher(cmd, serverAdapter, call, clip, opts, args[0], logger)
		},
	}

	cmd.Flags().StringVarP(&opts.password, flagPassword, "p", "", "Password used as the cipher key")
	cmd.Flags().StringVarP(&opts.output, flagOutput, "o", "", "Save the server's downloadable result to this path")
	cmd.Flags().BoolVar(&opts.copy, flagCopy, false, "Copy the result to the clipboard")
	_ = cmd.MarkFlagRequired(flagPassword)

	return cmd
}

func runCipher(
	cmd *cobra.Command,
	serverAdapter adapter.ServerAdapter,
	call cipherCall,
	clip Clipboard,
	opts *cipherOptions,
	path string,
	logger *logger.Logger,
) error {
	ctx := cmd.Context()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %q: %w", path, err)
	}

	result, err := call(ctx, filepath.Base(path), data, opts.password)
	if err != nil {
		return err
	}
	logger.Info().Str("command", cmd.Name()).Str("file", path).Msg("server accepted file")

	fmt.Fprintln(cmd.OutOrStdout(), result)

	if opts.output != "" {
		downloaded, err := serverAdapter.Download(ctx)
		if err != nil {
			return fmt.Errorf("downloading result: %w", err)
		}
		if err = writeOutput(opts.output, downloaded); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "saved %d bytes to %s\n", len(downloaded), opts.output)
	}

	if opts.copy {
		if err = clip.WriteAll(result); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "copied to clipboard")
	}

	return nil
}

// writeOutput replaces outPath atomically through a temp file in the same
// directory.
func writeOutput(outPath string, data []byte) (err error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(outPath), ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	tmpName := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		return fmt.Errorf("writing %q: %w", outPath, err)
	}
	if err = tmpFile.Chmod(outputFileMode); err != nil {
		return fmt.Errorf("setting mode of %q: %w", outPath, err)
	}
	if err = tmpFile.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", outPath, err)
	}
	if err = os.Rename(tmpName, outPath); err != nil {
		return fmt.Errorf("renaming to %q: %w", outPath, err)
	}

	return nil
}
