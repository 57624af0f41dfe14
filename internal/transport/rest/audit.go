package rest

import "net/http"

func (h *Handler) listAudit(w http.ResponseWriter, r *http.Request) {
	loanID, err := queryID(r, "loan_id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	obligationID, err := queryID(r, "obligation_id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	events, err := h.engine.ListAudit(r.Context(), loanID, obligationID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}
