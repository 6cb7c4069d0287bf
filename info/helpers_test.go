package info

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/drblury/docweaver/store"
)

type shelf struct {
	ID string `json:"id"`
}

func (s *shelf) DocumentID() string      { return s.ID }
func (s *shelf) SetDocumentID(id string) { s.ID = id }

type downRepository struct{}

func (downRepository) Ping(context.Context) error {
	return store.NewError(store.CodeInternal, "server selection timeout")
}

type failureEnvelope struct {
	Success bool   `json:"success"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func decodeProbePayload(t *testing.T, body []byte) probePayload {
	t.Helper()

	var payload probePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("failed to decode probe payload: %v (body: %s)", err, string(body))
	}
	return payload
}

func decodeFailure(t *testing.T, body []byte) failureEnvelope {
	t.Helper()

	var failure failureEnvelope
	if err := json.Unmarshal(body, &failure); err != nil {
		t.Fatalf("failed to decode failure envelope: %v (body: %s)", err, string(body))
	}
	if failure.Success {
		t.Fatalf("expected success false (body: %s)", string(body))
	}
	return failure
}
