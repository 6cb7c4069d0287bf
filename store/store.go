// Package store defines the repository contract consumed by the controller
// package together with MongoDB and in-memory implementations.
package store

import "context"

// Document is the constraint every stored type satisfies. Implementations are
// expected to be pointer types so the key can be assigned in place.
type Document interface {
	DocumentID() string
	SetDocumentID(id string)
}

// Repository performs CRUD operations for a single document type. Every
// non-nil error returned by an implementation is a *Error.
type Repository[T Document] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, doc T) (T, error)
	Update(ctx context.Context, id string, doc T) (T, error)
	Delete(ctx context.Context, id string) (T, error)
	Ping(ctx context.Context) error
}
