package rest

import (
	"net/http"

	"github.com/heartmarshall/covenantops-backend/internal/domain"
)

func (h *Handler) listObligations(w http.ResponseWriter, r *http.Request) {
	loanID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	obligations, err := h.engine.ListObligations(r.Context(), loanID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, obligations)
}

func (h *Handler) createObligation(w http.ResponseWriter, r *http.Request) {
	loanID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var fields domain.ObligationPatch
	if err := decodeJSON(r, &fields, false); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if err := validatePatch(fields, true); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	o, err := h.engine.CreateObligation(r.Context(), loanID, fields)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) updateObligation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var patch domain.ObligationPatch
	if err := decodeJSON(r, &patch, false); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if err := validatePatch(patch, false); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	o, err := h.engine.UpdateObligation(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) completeObligation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	o, err := h.engine.CompleteObligation(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) reopenObligation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	o, err := h.engine.ReopenObligation(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) deleteObligation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	res, err := h.engine.DeleteObligation(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
