package info

import (
	"net/http"
	"strings"
)

// Status always answers 200 while the process can serve requests.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	h.resp.RespondWithJSON(w, r, http.StatusOK, probePayload{Status: "HEALTHY"})
}

// Healthz runs the liveness checks.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	h.serveProbe(w, r, "live", h.liveness)
}

// Readyz runs the readiness checks.
func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	h.serveProbe(w, r, "ready", h.readiness)
}

// Version serves the payload of the WithVersion function, or {} when it
// returns nil.
func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	payload := h.version()
	if payload == nil {
		payload = map[string]string{}
	}
	h.resp.RespondWithJSON(w, r, http.StatusOK, payload)
}

// OpenAPIJSON writes the raw OpenAPI document.
func (h *Handler) OpenAPIJSON(w http.ResponseWriter, r *http.Request) {
	doc, err := h.openapi()
	if err != nil {
		h.resp.HandleInternalServerError(w, r, err, "failed to load openapi document")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(doc); err != nil {
		h.resp.Logger().ErrorContext(r.Context(), "failed to write openapi document", "error", err)
	}
}

// Docs renders the HTML viewer, which loads openapi.json from the base URL.
func (h *Handler) Docs(w http.ResponseWriter, r *http.Request) {
	data := h.templateData(r, h.baseURL)
	if data == nil {
		data = baseURLData(r, h.baseURL)
	}

	var page strings.Builder
	if err := h.template.Execute(&page, data); err != nil {
		h.resp.HandleInternalServerError(w, r, err, "failed to render openapi viewer")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page.String()))
}

// Register mounts the endpoints on mux under prefix, e.g. "" or "/info".
func (h *Handler) Register(mux *http.ServeMux, prefix string) {
	prefix = strings.TrimRight(prefix, "/")
	for path, handler := range map[string]http.HandlerFunc{
		"/status":       h.Status,
		"/healthz":      h.Healthz,
		"/readyz":       h.Readyz,
		"/version":      h.Version,
		"/openapi.json": h.OpenAPIJSON,
		"/docs":         h.Docs,
	} {
		mux.HandleFunc(http.MethodGet+" "+prefix+path, handler)
	}
}
