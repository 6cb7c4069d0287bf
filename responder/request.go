package responder

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/drblury/docweaver/jsonutil"
)

// ErrEmptyBody is returned by DecodeRequestBody when the request carries no
// body at all.
var ErrEmptyBody = errors.New("request body is required")

// ReadRequestBody parses the request body into the provided value and answers
// malformed content with a 400 failure envelope.
func (r *Responder) ReadRequestBody(w http.ResponseWriter, req *http.Request, v any) bool {
	if err := DecodeRequestBody(req, v); err != nil {
		r.HandleBadRequestError(w, req, err, "failed to parse request body")
		return false
	}
	return true
}

// DecodeRequestBody decodes a single JSON value from the request body into v.
func DecodeRequestBody(req *http.Request, v any) error {
	if req == nil || req.Body == nil || req.Body == http.NoBody {
		return ErrEmptyBody
	}
	if err := jsonutil.Decode(req.Body, v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}
	return nil
}

func requestContext(req *http.Request) context.Context {
	if req == nil {
		return context.Background()
	}
	return req.Context()
}
