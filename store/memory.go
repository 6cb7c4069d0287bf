package store

import (
	"context"
	"sync"

	"github.com/drblury/docweaver/ident"
	"github.com/drblury/docweaver/jsonutil"
)

// MemoryRepository keeps documents in process memory in insertion order. It
// stores JSON copies so callers never share state with the repository.
type MemoryRepository[T Document] struct {
	mu      sync.RWMutex
	newDoc  func() T
	order   []string
	entries map[string][]byte
}

// NewMemoryRepository returns an empty repository. newDoc must return a fresh
// zero document, typically a pointer to a new struct.
func NewMemoryRepository[T Document](newDoc func() T) *MemoryRepository[T] {
	return &MemoryRepository[T]{
		newDoc:  newDoc,
		entries: make(map[string][]byte),
	}
}

func (m *MemoryRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, Wrap(CodeInternal, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := make([]T, 0, len(m.order))
	for _, id := range m.order {
		doc, err := m.decode(m.entries[id])
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (m *MemoryRepository[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, Wrap(CodeInternal, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.entries[id]
	if !ok {
		return zero, NotFound(id)
	}
	return m.decode(data)
}

func (m *MemoryRepository[T]) Create(ctx context.Context, doc T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, Wrap(CodeInternal, err)
	}

	if doc.DocumentID() == "" {
		doc.SetDocumentID(ident.New())
	}
	id := doc.DocumentID()

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[id]; exists {
		return zero, NewError(CodeDuplicateKey, "duplicate key: _id %q already exists", id)
	}

	data, err := m.encode(doc)
	if err != nil {
		return zero, err
	}
	m.entries[id] = data
	m.order = append(m.order, id)
	return m.decode(data)
}

func (m *MemoryRepository[T]) Update(ctx context.Context, id string, doc T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, Wrap(CodeInternal, err)
	}

	doc.SetDocumentID(id)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[id]; !exists {
		return zero, NotFound(id)
	}

	data, err := m.encode(doc)
	if err != nil {
		return zero, err
	}
	m.entries[id] = data
	return m.decode(data)
}

func (m *MemoryRepository[T]) Delete(ctx context.Context, id string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, Wrap(CodeInternal, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	data, exists := m.entries[id]
	if !exists {
		return zero, NotFound(id)
	}
	delete(m.entries, id)
	for i, key := range m.order {
		if key == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return m.decode(data)
}

// Ping always succeeds unless the context is already done.
func (m *MemoryRepository[T]) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return Wrap(CodeInternal, err)
	}
	return nil
}

func (m *MemoryRepository[T]) encode(doc T) ([]byte, error) {
	data, err := jsonutil.Marshal(doc)
	if err != nil {
		return nil, Wrap(CodeBadValue, err)
	}
	return data, nil
}

func (m *MemoryRepository[T]) decode(data []byte) (T, error) {
	doc := m.newDoc()
	if err := jsonutil.Unmarshal(data, doc); err != nil {
		var zero T
		return zero, Wrap(CodeInternal, err)
	}
	return doc, nil
}
