package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/MKhiriev/go-file-cipher/internal/logger"
	"github.com/inhies/go-bytesize"
)

//go:embed templates/*.html
var templatesFS embed.FS

// pages holds one template set per page, each combining the shared layout
// with the page's own "title" and "content" blocks.
var pages = map[string]*template.Template{
	"home":    parsePage("home.html"),
	"encrypt": parsePage("encrypt.html"),
	"decrypt": parsePage("decrypt.html"),
	"exit":    parsePage("exit.html"),
}

var notices = map[string]string{
	noticeNothingToDownload: "No data to download. Please encrypt or decrypt a file first.",
}

func parsePage(name string) *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name))
}

type pageData struct {
	Notice        string
	MaxUploadSize string
}

func (h *Handler) homePage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "home", pageData{Notice: notices[r.URL.Query().Get("notice")]})
}

func (h *Handler) encryptPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "encrypt", pageData{MaxUploadSize: h.uploadLimit()})
}

func (h *Handler) decryptPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "decrypt", pageData{MaxUploadSize: h.uploadLimit()})
}

func (h *Handler) exitPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "exit", pageData{})
}

func (h *Handler) uploadLimit() string {
	if h.maxUploadSize <= 0 {
		return ""
	}
	return bytesize.New(float64(h.maxUploadSize)).String()
}

// renderPage executes the page into a buffer first so that a template error
// still produces a clean 500 response.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	var buf bytes.Buffer
	if err := pages[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		logger.FromRequest(r).Err(err).Str("page", name).Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
