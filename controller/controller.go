// Package controller exposes the CRUD operations of a store.Repository over
// HTTP. A Controller is bound to one document type and one repository; its
// handlers delegate to the repository and render every outcome through the
// shared responder envelopes.
package controller

import (
	"net/http"

	"github.com/drblury/docweaver/responder"
	"github.com/drblury/docweaver/store"
)

// IDParam is the path wildcard the handlers read the document key from.
const IDParam = "id"

// Controller serves one document type.
type Controller[T store.Document] struct {
	repo     store.Repository[T]
	newDoc   func() T
	resp     *responder.Responder
	names    Names
	statusOf StatusResolver
	idOf     func(*http.Request) string
}

// New binds repo to a controller. newDoc builds the empty document the
// request body is decoded into for creates and updates.
func New[T store.Document](repo store.Repository[T], newDoc func() T, opts ...Option) *Controller[T] {
	if repo == nil {
		panic("controller: repository cannot be nil")
	}
	if newDoc == nil {
		panic("controller: document constructor cannot be nil")
	}

	settings := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(settings)
		}
	}

	return &Controller[T]{
		repo:     repo,
		newDoc:   newDoc,
		resp:     settings.responder,
		names:    settings.names,
		statusOf: settings.statusResolver,
		idOf:     settings.idExtractor,
	}
}

// Names returns the result keys used in success envelopes.
func (c *Controller[T]) Names() Names {
	return c.names
}

// GetAll renders every stored document under the plural key.
func (c *Controller[T]) GetAll(w http.ResponseWriter, r *http.Request) {
	docs, err := c.repo.GetAll(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	if docs == nil {
		docs = []T{}
	}
	c.succeed(w, r, c.names.Plural, docs)
}

// GetByID renders the document stored under the id path parameter.
func (c *Controller[T]) GetByID(w http.ResponseWriter, r *http.Request) {
	doc, err := c.repo.GetByID(r.Context(), c.idOf(r))
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.succeed(w, r, c.names.Singular, doc)
}

// CreateFromBody persists a new document built from the request body.
func (c *Controller[T]) CreateFromBody(w http.ResponseWriter, r *http.Request) {
	doc, err := c.documentFromBody(r)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	created, err := c.repo.Create(r.Context(), doc)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.succeed(w, r, c.names.Singular, created)
}

// UpdateFromBody persists a document built from the request body over the
// document stored under the id path parameter.
func (c *Controller[T]) UpdateFromBody(w http.ResponseWriter, r *http.Request) {
	doc, err := c.documentFromBody(r)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	updated, err := c.repo.Update(r.Context(), c.idOf(r), doc)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.succeed(w, r, c.names.Singular, updated)
}

// Delete removes the document stored under the id path parameter and renders
// the removed document.
func (c *Controller[T]) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := c.repo.Delete(r.Context(), c.idOf(r))
	if err != nil {
		c.fail(w, r, err)
		return
	}
	c.succeed(w, r, c.names.Singular, deleted)
}

func (c *Controller[T]) documentFromBody(r *http.Request) (T, error) {
	doc := c.newDoc()
	if err := responder.DecodeRequestBody(r, doc); err != nil {
		var zero T
		return zero, store.Wrap(store.CodeBadValue, err)
	}
	return doc, nil
}

func (c *Controller[T]) succeed(w http.ResponseWriter, r *http.Request, key string, value any) {
	c.resp.ResolveResponse(w, r, "", responder.NewEnvelope().Set(key, value))
}

func (c *Controller[T]) fail(w http.ResponseWriter, r *http.Request, err error) {
	storeErr := store.AsError(err)
	c.resp.ResolveErrorResponse(w, r, c.statusOf(storeErr), "", storeErr)
}
