package rest

import "net/http"

type demoModeBody struct {
	Enabled bool `json:"enabled"`
}

func (h *Handler) getDemoMode(w http.ResponseWriter, r *http.Request) {
	on, err := h.engine.DemoMode(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, demoModeBody{Enabled: on})
}

func (h *Handler) setDemoMode(w http.ResponseWriter, r *http.Request) {
	var req demoModeBody
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if err := h.engine.SetDemoMode(r.Context(), req.Enabled); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *Handler) resetDemoData(w http.ResponseWriter, r *http.Request) {
	res, err := h.engine.ResetDemoData(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
