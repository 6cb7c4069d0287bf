package responder

import (
	"net/http"

	"github.com/drblury/docweaver/ident"
	"github.com/drblury/docweaver/jsonutil"
	"github.com/drblury/docweaver/store"
)

// ResolveResponse writes a 200 success envelope. The body is {"success":true}
// followed by message when non-empty and then every field of result in order.
// Fields of result overwrite earlier keys, including success and message.
func (r *Responder) ResolveResponse(w http.ResponseWriter, req *http.Request, message string, result *Envelope) {
	r.RespondWithJSON(w, req, http.StatusOK, SuccessEnvelope(message, result))
}

// ResolveErrorResponse writes a failure envelope with the given status. When
// err is non-nil it is treated as a store failure: its code, message and
// serialised form are added to the body and message is ignored.
func (r *Responder) ResolveErrorResponse(w http.ResponseWriter, req *http.Request, status int, message string, err error) {
	r.resolveError(w, req, status, message, err, nil)
}

func (r *Responder) resolveError(w http.ResponseWriter, req *http.Request, status int, message string, err error, logMsgs []string) {
	body := ErrorEnvelope(status, message, err)

	traceID := ident.New()
	if w != nil {
		w.Header().Set(traceIDHeader, traceID)
	}
	r.logFailure(req, status, traceID, message, err, logMsgs)
	r.RespondWithJSON(w, req, status, body)
}

// SuccessEnvelope builds the body used by ResolveResponse.
func SuccessEnvelope(message string, result *Envelope) *Envelope {
	env := NewEnvelope().Set("success", true)
	if message != "" {
		env.Set("message", message)
	}
	return env.Merge(result)
}

// ErrorEnvelope builds the body used by ResolveErrorResponse.
func ErrorEnvelope(status int, message string, err error) *Envelope {
	env := NewEnvelope().
		Set("success", false).
		Set("status", status)

	if storeErr := store.AsError(err); storeErr != nil {
		return env.
			Set("storeErrorCode", storeErr.Code).
			Set("message", storeErr.Message).
			Set("error", storeErr)
	}

	if message != "" {
		env.Set("message", message)
	}
	return env
}

// HandleAPIError reports a failure that did not originate from the store. The
// error text becomes the envelope message.
func (r *Responder) HandleAPIError(w http.ResponseWriter, req *http.Request, status int, err error, logMsg ...string) {
	if err == nil {
		return
	}
	r.resolveError(w, req, status, err.Error(), nil, logMsg)
}

// HandleInternalServerError is a shortcut that reports a 500 status code.
func (r *Responder) HandleInternalServerError(w http.ResponseWriter, req *http.Request, err error, logMsg ...string) {
	r.HandleAPIError(w, req, http.StatusInternalServerError, err, logMsg...)
}

// HandleBadRequestError reports client errors using HTTP 400.
func (r *Responder) HandleBadRequestError(w http.ResponseWriter, req *http.Request, err error, logMsg ...string) {
	r.HandleAPIError(w, req, http.StatusBadRequest, err, logMsg...)
}

// HandleErrors inspects the supplied error using the configured classifier and
// renders it as a store failure. Unclassified errors use HTTP 500.
func (r *Responder) HandleErrors(w http.ResponseWriter, req *http.Request, err error) {
	if err == nil {
		return
	}

	status, handled := r.classifyError(err)
	if !handled {
		status = http.StatusInternalServerError
	}
	r.ResolveErrorResponse(w, req, status, "", err)
}

// RespondWithJSON serialises the provided value and writes it to the response
// using the supplied status code.
func (r *Responder) RespondWithJSON(w http.ResponseWriter, req *http.Request, status int, v any) {
	if w == nil {
		return
	}

	body, err := r.marshalPayload(v)
	if err != nil {
		r.Logger().ErrorContext(requestContext(req), "failed to encode response", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	r.writeResponse(w, status, body)
}

func (r *Responder) logFailure(req *http.Request, status int, traceID, message string, err error, logMsgs []string) {
	meta := r.statusMeta(status)
	logger := r.Logger().With("traceId", traceID, "status", status)
	if req != nil && req.URL != nil {
		logger = logger.With("method", req.Method, "path", req.URL.Path)
	}
	if storeErr := store.AsError(err); storeErr != nil {
		logger = logger.With("storeErrorCode", storeErr.Code, "error", storeErr.Message)
	} else if message != "" {
		logger = logger.With("error", message)
	}
	if len(logMsgs) > 0 {
		logger = logger.With("logMessages", logMsgs)
	}
	logger.Log(requestContext(req), meta.LogLevel, meta.LogMsg)
}

func (r *Responder) marshalPayload(payload any) ([]byte, error) {
	data, err := jsonutil.Marshal(payload)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return data, nil
}

func (r *Responder) writeResponse(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", jsonContentType)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		r.Logger().Error("failed to write response", "error", err)
	}
}
