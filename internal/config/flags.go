package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/inhies/go-bytesize"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server command-line flags from args (without the
// program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-app-version version reported by /api/version
//	-session-key session cookie signing key
//	-max-upload-size upload size limit (e.g., "10MB")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-results-mode pending result store: local or remote
//	-results-address valkey address for remote mode
//	-results-ttl lifetime of an undownloaded result
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-file-cipher", flag.ContinueOnError)

	var serverAddress NetAddress
	var jsonConfigPath string
	var version string
	var sessionKey string
	var maxUploadSize bytesize.ByteSize
	var requestTimeout time.Duration
	var shutdownTimeout time.Duration
	var resultsMode string
	var resultsAddress string
	var resultsTTL time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&version, "app-version", "", "Application version")
	fs.StringVar(&sessionKey, "session-key", "", "Session cookie signing key")
	fs.Func("max-upload-size", "Upload size limit (e.g., 10MB)", func(s string) error {
		size, err := bytesize.Parse(s)
		if err != nil {
			return err
		}
		maxUploadSize = size
		return nil
	})
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.StringVar(&resultsMode, "results-mode", "", "Pending result store: local or remote")
	fs.StringVar(&resultsAddress, "results-address", "", "Valkey address for remote result store")
	fs.DurationVar(&resultsTTL, "results-ttl", 0, "Lifetime of an undownloaded result (e.g., 10m)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Version:       version,
			SessionKey:    sessionKey,
			MaxUploadSize: maxUploadSize,
		},
		Storage: Storage{
			Results: Results{
				Mode:    resultsMode,
				Address: resultsAddress,
				TTL:     resultsTTL,
			},
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. Any other host must be "localhost" or
// a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
