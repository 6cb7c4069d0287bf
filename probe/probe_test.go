package probe_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/drblury/docweaver/probe"
	"github.com/drblury/docweaver/store"
)

type stubMongoPinger struct {
	err        error
	lastReadPF *readpref.ReadPref
}

func (s *stubMongoPinger) Ping(_ context.Context, rp *readpref.ReadPref) error {
	s.lastReadPF = rp
	return s.err
}

type stubRepository struct {
	err error
}

func (s stubRepository) Ping(context.Context) error { return s.err }

type shelf struct {
	ID string `json:"id"`
}

func (s *shelf) DocumentID() string      { return s.ID }
func (s *shelf) SetDocumentID(id string) { s.ID = id }

func TestMongo(t *testing.T) {
	t.Run("nil client", func(t *testing.T) {
		check := probe.Mongo(nil, nil)
		if check.Name != "mongo" {
			t.Fatalf("unexpected name %q", check.Name)
		}
		if err := check.Run(context.Background()); err == nil {
			t.Fatal("expected error when client is nil")
		}
	})

	t.Run("defaults to primary", func(t *testing.T) {
		stub := &stubMongoPinger{}
		if err := probe.Mongo(stub, nil).Run(context.Background()); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if stub.lastReadPF == nil || stub.lastReadPF.Mode() != readpref.PrimaryMode {
			t.Fatalf("expected primary read preference, got %v", stub.lastReadPF)
		}
	})

	t.Run("forwards failures", func(t *testing.T) {
		sentinel := errors.New("unreachable")
		stub := &stubMongoPinger{err: sentinel}
		err := probe.Mongo(stub, readpref.Secondary()).Run(context.Background())
		if !errors.Is(err, sentinel) {
			t.Fatalf("expected sentinel, got %v", err)
		}
		if stub.lastReadPF.Mode() != readpref.SecondaryMode {
			t.Fatalf("expected secondary read preference, got %v", stub.lastReadPF.Mode())
		}
	})
}

func TestRepository(t *testing.T) {
	if err := probe.Repository("books", nil).Run(context.Background()); err == nil {
		t.Fatal("expected error when repository is nil")
	}

	repo := store.NewMemoryRepository(func() *shelf { return &shelf{} })
	if err := probe.Repository("books", repo).Run(context.Background()); err != nil {
		t.Fatalf("expected memory repository to be ready, got %v", err)
	}
}

func TestRun(t *testing.T) {
	t.Run("no checks", func(t *testing.T) {
		results, err := probe.Run(context.Background(), time.Second)
		if err != nil || len(results) != 0 {
			t.Fatalf("expected empty success, got %v %v", results, err)
		}
	})

	t.Run("keeps order and joins failures", func(t *testing.T) {
		sentinel := errors.New("no primary")
		results, err := probe.Run(context.Background(), time.Second,
			probe.Repository("books", stubRepository{}),
			probe.Repository("authors", stubRepository{err: sentinel}),
			probe.New("nil func", nil),
		)
		if !errors.Is(err, sentinel) {
			t.Fatalf("expected joined sentinel, got %v", err)
		}
		if !strings.Contains(err.Error(), "authors: no primary") || !strings.Contains(err.Error(), "nil func: no check function") {
			t.Fatalf("unexpected message %q", err.Error())
		}

		want := []probe.Result{
			{Name: "books", Status: probe.StatusOK},
			{Name: "authors", Status: probe.StatusFailed, Error: "no primary"},
			{Name: "nil func", Status: probe.StatusFailed, Error: "no check function"},
		}
		for i := range want {
			if results[i] != want[i] {
				t.Fatalf("result %d: expected %+v, got %+v", i, want[i], results[i])
			}
		}
	})

	t.Run("applies the timeout", func(t *testing.T) {
		results, err := probe.Run(context.Background(), 5*time.Millisecond, probe.New("slow", func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}))
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected deadline error, got %v", err)
		}
		if results[0].Status != probe.StatusTimeout || !strings.HasSuffix(results[0].Error, "after 5ms") {
			t.Fatalf("unexpected result %+v", results[0])
		}
	})

	t.Run("runs concurrently", func(t *testing.T) {
		release := make(chan struct{})
		waiter := probe.New("waiter", func(ctx context.Context) error {
			select {
			case <-release:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		releaser := probe.New("releaser", func(context.Context) error {
			close(release)
			return nil
		})
		if _, err := probe.Run(context.Background(), time.Second, waiter, releaser); err != nil {
			t.Fatalf("expected both checks to pass, got %v", err)
		}
	})
}

func ExampleRun() {
	repo := store.NewMemoryRepository(func() *shelf { return &shelf{} })
	results, err := probe.Run(context.Background(), time.Second, probe.Repository("books", repo))
	fmt.Println(results[0].Name, results[0].Status, err)
	// Output: books ok <nil>
}
