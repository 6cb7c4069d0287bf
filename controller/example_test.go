package controller_test

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/drblury/docweaver/controller"
	"github.com/drblury/docweaver/responder"
	"github.com/drblury/docweaver/store"
)

type Book struct {
	ID    string `json:"id" bson:"_id,omitempty"`
	Title string `json:"title" bson:"title"`
}

func (b *Book) DocumentID() string      { return b.ID }
func (b *Book) SetDocumentID(id string) { b.ID = id }

func ExampleController() {
	newBook := func() *Book { return &Book{} }
	books := controller.New[*Book](
		store.NewMemoryRepository(newBook),
		newBook,
		controller.WithNames("book", "books"),
		controller.WithResponder(responder.NewResponder(
			responder.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		)),
	)

	mux := http.NewServeMux()
	books.Register(mux, "/books")

	for _, step := range []struct{ method, target, body string }{
		{http.MethodPost, "/books", `{"id":"dune","title":"Dune"}`},
		{http.MethodGet, "/books", ""},
		{http.MethodDelete, "/books/dune", ""},
		{http.MethodGet, "/books/dune", ""},
	} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(step.method, step.target, strings.NewReader(step.body)))
		fmt.Println(rec.Code, strings.TrimSpace(rec.Body.String()))
	}

	// Output:
	// 200 {"success":true,"book":{"id":"dune","title":"Dune"}}
	// 200 {"success":true,"books":[{"id":"dune","title":"Dune"}]}
	// 200 {"success":true,"book":{"id":"dune","title":"Dune"}}
	// 500 {"success":false,"status":500,"storeErrorCode":47,"message":"no document found with id \"dune\"","error":{"code":47,"codeName":"NoMatchingDocument","message":"no document found with id \"dune\""}}
}

func ExampleNotFoundAware() {
	newBook := func() *Book { return &Book{} }
	books := controller.New[*Book](
		store.NewMemoryRepository(newBook),
		newBook,
		controller.WithStatusResolver(controller.NotFoundAware),
		controller.WithResponder(responder.NewResponder(
			responder.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		)),
	)

	mux := http.NewServeMux()
	books.Register(mux, "/books")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books/missing", nil))
	fmt.Println(rec.Code)

	// Output:
	// 404
}
