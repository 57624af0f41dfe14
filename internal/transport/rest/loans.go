package rest

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/covenantops-backend/internal/domain"
)

type createLoanRequest struct {
	Title string `json:"title"`
}

type importTextRequest struct {
	Text string `json:"text"`
}

type extractRequest struct {
	Text *string `json:"text"`
}

func (h *Handler) listLoans(w http.ResponseWriter, r *http.Request) {
	loans, err := h.engine.ListLoans(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, loans)
}

func (h *Handler) createLoan(w http.ResponseWriter, r *http.Request) {
	var req createLoanRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if err := validateTitle(req.Title); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	loan, err := h.engine.CreateLoan(r.Context(), strings.TrimSpace(req.Title))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, loan)
}

func (h *Handler) getLoan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	detail, err := h.engine.GetLoan(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) importText(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req importTextRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if req.Text == "" {
		writeError(w, r, h.log, domain.NewValidationError("text", "required"))
		return
	}

	detail, err := h.engine.ImportText(r.Context(), id, req.Text)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) extract(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req extractRequest
	if err := decodeJSON(r, &req, true); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	res, err := h.engine.Extract(r.Context(), id, req.Text)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
