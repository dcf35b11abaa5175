package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-file-cipher/internal/logger"
	"github.com/MKhiriev/go-file-cipher/internal/store"
	"github.com/MKhiriev/go-file-cipher/internal/utils"
	"github.com/MKhiriev/go-file-cipher/models"
)

// noticeNothingToDownload is the home page notice shown after a download
// attempt with no pending result.
const noticeNothingToDownload = "nothing-to-download"

// download hands the session's pending result over as Data.txt. The result
// is removed, so a second download redirects home with a notice.
func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	sessionID, _ := utils.GetSessionIDFromContext(r.Context())
	result, err := h.services.CipherService.TakeDownload(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNoPendingResult) || errors.Is(err, store.ErrEmptySessionID) {
			http.Redirect(w, r, "/?notice="+noticeNothingToDownload, http.StatusSeeOther)
			return
		}
		log.Err(err).Str("func", "*Handler.download").Msg("error loading pending result")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	fileName := result.FileName
	if fileName == "" {
		fileName = models.DownloadFileName
	}

	if _, err = utils.WriteAttachment(w, fileName, result.Data); err != nil {
		log.Err(err).Str("func", "*Handler.download").Msg("error writing download")
	}
}
