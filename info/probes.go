package info

import (
	"net/http"

	"github.com/drblury/docweaver/probe"
)

type probePayload struct {
	Status string         `json:"status"`
	Checks []probe.Result `json:"checks,omitempty"`
}

// serveProbe answers 200 with the per-check results when every check passes
// and a 503 failure envelope naming the failed checks otherwise.
func (h *Handler) serveProbe(w http.ResponseWriter, r *http.Request, state string, checks []probe.Check) {
	results, err := probe.Run(r.Context(), h.probeTimeout, checks...)
	if err != nil {
		h.resp.HandleAPIError(w, r, http.StatusServiceUnavailable, err, state+" probe failed")
		return
	}
	h.resp.RespondWithJSON(w, r, http.StatusOK, probePayload{Status: state, Checks: results})
}
