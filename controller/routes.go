package controller

import (
	"net/http"
	"strings"
)

// Route describes one mounted handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Routes lists the handlers of c under prefix, e.g. "/books".
func (c *Controller[T]) Routes(prefix string) []Route {
	base := "/" + strings.Trim(prefix, "/")
	if base == "/" {
		base = ""
	}
	item := base + "/{" + IDParam + "}"
	collection := base
	if collection == "" {
		collection = "/{$}"
	}

	return []Route{
		{Method: http.MethodGet, Pattern: collection, Handler: c.GetAll},
		{Method: http.MethodPost, Pattern: collection, Handler: c.CreateFromBody},
		{Method: http.MethodGet, Pattern: item, Handler: c.GetByID},
		{Method: http.MethodPut, Pattern: item, Handler: c.UpdateFromBody},
		{Method: http.MethodDelete, Pattern: item, Handler: c.Delete},
	}
}

// Register mounts the five handlers on mux under prefix.
func (c *Controller[T]) Register(mux *http.ServeMux, prefix string) {
	for _, route := range c.Routes(prefix) {
		mux.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}
}
