package rest

import (
	"errors"
	"net/http"
	"path"
	"strings"

	"github.com/heartmarshall/covenantops-backend/internal/domain"
	"github.com/heartmarshall/covenantops-backend/internal/engine"
)

const multipartMemory = 1 << 20

func (h *Handler) listEvidence(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	files, err := h.engine.ListEvidence(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, files)
}

// uploadEvidence reads a multipart form with a "file" part and an optional
// "note" field. Only the file name and size are kept.
func (h *Handler) uploadEvidence(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, r, h.log, domain.NewValidationError("file", "too large"))
			return
		}
		writeError(w, r, h.log, domain.NewValidationError("body", "expected multipart form"))
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, h.log, domain.NewValidationError("file", "required"))
		return
	}
	file.Close()

	name := path.Base(strings.ReplaceAll(header.Filename, `\`, "/"))
	if name == "." || name == "/" || name == "" {
		writeError(w, r, h.log, domain.NewValidationError("file", "missing file name"))
		return
	}

	upload := engine.Upload{Filename: name, SizeBytes: header.Size}
	if vals, ok := r.MultipartForm.Value["note"]; ok && len(vals) > 0 && vals[0] != "" {
		note := vals[0]
		upload.Note = &note
	}

	ev, err := h.engine.UploadEvidence(r.Context(), id, upload)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, ev)
}
