package responder

import (
	"bytes"

	"github.com/drblury/docweaver/jsonutil"
)

// Envelope is an ordered mapping from field name to a JSON serialisable
// value. Keys are emitted in the order they were first set; setting an
// existing key replaces its value in place.
type Envelope struct {
	keys   []string
	values map[string]any
}

// NewEnvelope returns an empty envelope.
func NewEnvelope() *Envelope {
	return &Envelope{values: make(map[string]any)}
}

// Set stores value under key and returns the envelope for chaining.
func (e *Envelope) Set(key string, value any) *Envelope {
	if e.values == nil {
		e.values = make(map[string]any)
	}
	if _, exists := e.values[key]; !exists {
		e.keys = append(e.keys, key)
	}
	e.values[key] = value
	return e
}

// Get returns the value stored under key.
func (e *Envelope) Get(key string) (any, bool) {
	if e == nil {
		return nil, false
	}
	v, ok := e.values[key]
	return v, ok
}

// Keys returns the field names in emission order.
func (e *Envelope) Keys() []string {
	if e == nil {
		return nil
	}
	keys := make([]string, len(e.keys))
	copy(keys, e.keys)
	return keys
}

// Len reports the number of fields.
func (e *Envelope) Len() int {
	if e == nil {
		return 0
	}
	return len(e.keys)
}

// Merge copies every field of other into e in other's order. A nil e yields
// a new envelope holding other's fields.
func (e *Envelope) Merge(other *Envelope) *Envelope {
	if other == nil {
		return e
	}
	if e == nil {
		e = NewEnvelope()
	}
	for _, key := range other.keys {
		e.Set(key, other.values[key])
	}
	return e
}

// MarshalJSON renders the fields as a JSON object in key order.
func (e *Envelope) MarshalJSON() ([]byte, error) {
	if e == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range e.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := jsonutil.Marshal(key)
		if err != nil {
			return nil, err
		}
		value, err := jsonutil.Marshal(e.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
