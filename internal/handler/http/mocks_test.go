package http

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-file-cipher/internal/config"
	"github.com/MKhiriev/go-file-cipher/internal/logger"
	"github.com/MKhiriev/go-file-cipher/internal/service"
	"github.com/MKhiriev/go-file-cipher/models"
	"github.com/stretchr/testify/require"
)

// ---- Mock: CipherService ----

type mockCipherService struct {
	encryptFn func(ctx context.Context, sessionID string, req models.CipherRequest) (string, error)
	decryptFn func(ctx context.Context, sessionID string, req models.CipherRequest) (models.DecryptedFile, error)
	takeFn    func(ctx context.Context, sessionID string) (models.PendingResult, error)
}

func (m *mockCipherService) EncryptFile(ctx context.Context, sessionID string, req models.CipherRequest) (string, error) {
	if m.encryptFn != nil {
		return m.encryptFn(ctx, sessionID, req)
	}
	return "", nil
}

func (m *mockCipherService) DecryptFile(ctx context.Context, sessionID string, req models.CipherRequest) (models.DecryptedFile, error) {
	if m.decryptFn != nil {
		return m.decryptFn(ctx, sessionID, req)
	}
	return models.DecryptedFile{}, nil
}

func (m *mockCipherService) TakeDownload(ctx context.Context, sessionID string) (models.PendingResult, error) {
	if m.takeFn != nil {
		return m.takeFn(ctx, sessionID)
	}
	return models.PendingResult{}, nil
}

// ---- Mock: AppInfoService ----

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ---- Helpers ----

const testSessionKey = "test-session-key"

func testAppConfig() config.App {
	return config.App{Version: "test-version", SessionKey: testSessionKey, MaxUploadSize: 1024}
}

func newTestHandler(cipher service.CipherService) *Handler {
	return NewHandler(&service.Services{
		CipherService:  cipher,
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}, testAppConfig(), logger.Nop())
}

// uploadForm describes a multipart body. A nil Data omits the file part.
type uploadForm struct {
	FileName string
	Data     []byte
	Password string
}

func newUploadRequest(t *testing.T, path string, form uploadForm) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if form.Data != nil {
		name := form.FileName
		if name == "" {
			name = "input.txt"
		}
		part, err := mw.CreateFormFile(formFieldFile, name)
		require.NoError(t, err)
		_, err = part.Write(form.Data)
		require.NoError(t, err)
	}
	if form.Password != "" {
		require.NoError(t, mw.WriteField(formFieldPassword, form.Password))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}
