// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-file-cipher/internal/config"
	"github.com/MKhiriev/go-file-cipher/internal/crypto"
	myHTTP "github.com/MKhiriev/go-file-cipher/internal/handler/http"
	"github.com/MKhiriev/go-file-cipher/internal/logger"
	"github.com/MKhiriev/go-file-cipher/internal/service"
	"github.com/MKhiriev/go-file-cipher/internal/store"
	"github.com/MKhiriev/go-file-cipher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeCipherResponse(t *testing.T, w http.ResponseWriter, status int, resp models.CipherResponse) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(resp))
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.Adapter{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

// ── Encrypt / Decrypt ───────────────────────────────────────────────────────

func TestEncrypt_SendsMultipartForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/encrypt", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "secret", r.FormValue("password"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "notes.txt", header.Filename)

		body, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(body))

		writeCipherResponse(t, w, http.StatusOK, models.CipherResponse{Success: true, Result: "MDEyMzQ="})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Encrypt(context.Background(), "notes.txt", []byte("hello"), "secret")

	require.NoError(t, err)
	assert.Equal(t, "MDEyMzQ=", got)
}

func TestDecrypt_BadRequestCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/decrypt", r.URL.Path)
		writeCipherResponse(t, w, http.StatusBadRequest, models.CipherResponse{Error: "Wrong password or invalid file: bad padding"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Decrypt(context.Background(), "Data.txt", []byte("AAAA"), "nope")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Wrong password or invalid file")
}

func TestEncrypt_UnsuccessfulResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeCipherResponse(t, w, http.StatusOK, models.CipherResponse{Success: false, Error: "try again"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Encrypt(context.Background(), "a.txt", []byte("x"), "p")

	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, err.Error(), "try again")
}

func TestEncrypt_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Encrypt(context.Background(), "a.txt", []byte("x"), "p")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestEncrypt_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeCipherResponse(t, w, http.StatusInternalServerError, models.CipherResponse{Error: "Internal server error."})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Encrypt(context.Background(), "a.txt", []byte("x"), "p")

	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── Download ────────────────────────────────────────────────────────────────

func TestDownload_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/download", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("payload"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Download(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
}

func TestDownload_RedirectMeansNothingToDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/download" {
			t.Errorf("redirect must not be followed, got request to %s", r.URL.Path)
		}
		http.Redirect(w, r, "/?notice=nothing-to-download", http.StatusSeeOther)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Download(context.Background())

	assert.ErrorIs(t, err, ErrNothingToDownload)
}

// ── Version ─────────────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		_, _ = w.Write([]byte("1.4.0\n"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.0", got)
}

func TestVersion_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Version(context.Background())

	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Round trip against the real router ──────────────────────────────────────

func TestAdapter_RoundTripAgainstServer(t *testing.T) {
	results, err := store.NewLocalResultStore(config.Results{TTL: time.Minute, MaxCost: 1 << 20})
	require.NoError(t, err)
	defer results.Close()

	cfg := config.StructuredConfig{App: config.App{
		Version:       "9.9.9",
		SessionKey:    "adapter-test-key",
		MaxUploadSize: 1 << 16,
	}}
	services, err := service.NewServices(crypto.NewCipherCodec(), results, cfg, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(myHTTP.NewHandler(services, cfg.App, logger.Nop()).Init())
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	version, err := a.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "9.9.9", version)

	encrypted, err := a.Encrypt(ctx, "notes.txt", []byte("round trip"), "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, encrypted)

	artifact, err := a.Download(ctx)
	require.NoError(t, err)
	assert.Equal(t, encrypted, string(artifact))

	_, err = a.Download(ctx)
	assert.ErrorIs(t, err, ErrNothingToDownload)

	preview, err := a.Decrypt(ctx, models.DownloadFileName, artifact, "pw")
	require.NoError(t, err)
	assert.Equal(t, "round trip", preview)

	_, err = a.Decrypt(ctx, models.DownloadFileName, []byte("AAAA"), "pw")
	assert.ErrorIs(t, err, ErrBadRequest)
}
