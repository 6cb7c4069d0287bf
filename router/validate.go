package router

import (
	"context"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	oapiMW "github.com/oapi-codegen/nethttp-middleware"

	"github.com/drblury/docweaver/responder"
)

// validationMiddleware rejects requests that do not match doc with a failure
// envelope carrying the validator's status and message.
func validationMiddleware(doc *openapi3.T, resp *responder.Responder) Middleware {
	// Servers are dropped so the host the service runs behind never fails
	// route matching.
	local := *doc
	local.Servers = nil

	opts := &oapiMW.Options{
		Options: openapi3filter.Options{
			AuthenticationFunc: func(context.Context, *openapi3filter.AuthenticationInput) error {
				return nil
			},
		},
		ErrorHandler: func(w http.ResponseWriter, message string, status int) {
			resp.ResolveErrorResponse(w, nil, status, message, nil)
		},
	}
	return oapiMW.OapiRequestValidatorWithOptions(&local, opts)
}
