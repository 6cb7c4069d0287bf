// Package docweaver exposes document collections over HTTP with a generic
// CRUD controller and the plumbing a small service needs around it.
//
// # Packages
//
//   - store: the Repository contract, the Store Error type with MongoDB error
//     codes, and MongoDB and in-memory implementations.
//   - controller: a generic controller binding five handlers (list, get,
//     create, update, delete) of one document type to one repository.
//   - responder: the success and failure JSON envelopes, error logging and
//     trace ids.
//   - router: OpenAPI validation, CORS, timeout, request logging and
//     Prometheus metrics around the API mux.
//   - info and probe: status, health, readiness, version and documentation
//     endpoints with repository-backed readiness checks.
//   - config: viper-backed configuration for the bookshelf binary.
//   - jsonutil and ident: sonic JSON helpers and ULID generation.
//
// # Quick Start
//
//	repo := store.NewMemoryRepository(func() *Book { return &Book{} })
//	books := controller.New[*Book](repo, func() *Book { return &Book{} },
//	    controller.WithNames("book", "books"),
//	)
//
//	api := http.NewServeMux()
//	books.Register(api, "/books")
//	http.ListenAndServe(":8080", router.New(api))
//
// Every controller failure is rendered from a *store.Error:
//
//	{"success":false,"status":500,"storeErrorCode":47,"message":"...","error":{...}}
package docweaver
