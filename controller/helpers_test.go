package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/drblury/docweaver/responder"
	"github.com/drblury/docweaver/store"
)

type book struct {
	ID     string `json:"id" bson:"_id,omitempty"`
	Title  string `json:"title" bson:"title"`
	Author string `json:"author,omitempty" bson:"author,omitempty"`
}

func (b *book) DocumentID() string      { return b.ID }
func (b *book) SetDocumentID(id string) { b.ID = id }

func newBook() *book { return &book{} }

type envelope struct {
	Success        bool            `json:"success"`
	Status         *int            `json:"status"`
	Message        *string         `json:"message"`
	StoreErrorCode *int            `json:"storeErrorCode"`
	Book           *book           `json:"book"`
	Books          []book          `json:"books"`
	Error          json.RawMessage `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) envelope {
	t.Helper()

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("failed to decode envelope: %v (body: %s)", err, string(body))
	}
	return env
}

func quietResponder() *responder.Responder {
	return responder.NewResponder(responder.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
}

func newBookController(repo store.Repository[*book], opts ...Option) *Controller[*book] {
	opts = append([]Option{WithResponder(quietResponder()), WithNames("book", "books")}, opts...)
	return New(repo, newBook, opts...)
}

func serve(t *testing.T, mux http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

// failingRepository returns err from every operation and records the last
// id and document it saw.
type failingRepository struct {
	err     error
	lastID  string
	lastDoc *book
}

func (f *failingRepository) GetAll(context.Context) ([]*book, error) {
	return nil, f.err
}

func (f *failingRepository) GetByID(_ context.Context, id string) (*book, error) {
	f.lastID = id
	return nil, f.err
}

func (f *failingRepository) Create(_ context.Context, doc *book) (*book, error) {
	f.lastDoc = doc
	return nil, f.err
}

func (f *failingRepository) Update(_ context.Context, id string, doc *book) (*book, error) {
	f.lastID, f.lastDoc = id, doc
	return nil, f.err
}

func (f *failingRepository) Delete(_ context.Context, id string) (*book, error) {
	f.lastID = id
	return nil, f.err
}

func (f *failingRepository) Ping(context.Context) error {
	return f.err
}
