package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-file-cipher/internal/config"
	"github.com/MKhiriev/go-file-cipher/internal/logger"
	"github.com/MKhiriev/go-file-cipher/internal/utils"
	"github.com/MKhiriev/go-file-cipher/models"
)

const (
	encryptPath  = "/api/encrypt"
	decryptPath  = "/api/decrypt"
	downloadPath = "/download"
	versionPath  = "/api/version"

	formFieldFile     = "file"
	formFieldPassword = "password"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// It normalises the base URL from cfg.HTTPAddress and configures the
// underlying client with it and with the request timeout.
//
// Returns an error wrapping [ErrInvalidAddress] if cfg.HTTPAddress is empty
// or cannot be parsed as a URL.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, err
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

// Encrypt implements [ServerAdapter] by posting a multipart form to
// POST /api/encrypt.
func (h *httpServerAdapter) Encrypt(ctx context.Context, fileName string, data []byte, password string) (string, error) {
	return h.upload(ctx, encryptPath, fileName, data, password)
}

// Decrypt implements [ServerAdapter] by posting a multipart form to
// POST /api/decrypt.
func (h *httpServerAdapter) Decrypt(ctx context.Context, fileName string, data []byte, password string) (string, error) {
	return h.upload(ctx, decryptPath, fileName, data, password)
}

func (h *httpServerAdapter) upload(ctx context.Context, path, fileName string, data []byte, password string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFileReader(formFieldFile, fileName, bytes.NewReader(data)).
		SetFormData(map[string]string{formFieldPassword: password}).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var cr models.CipherResponse
	if err = json.Unmarshal(resp.Body(), &cr); err != nil {
		return "", fmt.Errorf("decode %s response: %w", path, err)
	}
	if !cr.Success {
		return "", fmt.Errorf("%w: %s", ErrRequestFailed, cr.Error)
	}

	h.logger.Debug().Str("path", path).Int("result_length", len(cr.Result)).Msg("upload accepted")
	return cr.Result, nil
}

// Download implements [ServerAdapter]. The server answers with a redirect
// when the session holds no result; it is reported as [ErrNothingToDownload].
func (h *httpServerAdapter) Download(ctx context.Context) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(downloadPath)
	if err != nil {
		return nil, fmt.Errorf("download request: %w", err)
	}
	if resp.StatusCode() == http.StatusSeeOther {
		return nil, ErrNothingToDownload
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// Version implements [ServerAdapter] by reading GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
