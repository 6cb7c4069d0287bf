package probe

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var errNoFunc = errors.New("no check function")

// Func reports an unavailable dependency by returning an error.
type Func func(ctx context.Context) error

// Check is a Func with the name it is reported under.
type Check struct {
	Name string
	Run  Func
}

// New names fn. A nil fn yields a check that always fails.
func New(name string, fn Func) Check {
	if fn == nil {
		fn = func(context.Context) error {
			return errNoFunc
		}
	}
	return Check{Name: name, Run: fn}
}

// Pinger is satisfied by every store.Repository.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Repository checks that the backend of repo answers pings.
func Repository(name string, repo Pinger) Check {
	if repo == nil {
		return New(name, func(context.Context) error {
			return errors.New("repository is nil")
		})
	}
	return New(name, repo.Ping)
}

// MongoPinger is the part of *mongo.Client a readiness check needs.
type MongoPinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// Mongo pings the deployment behind client with rp, or the primary when rp is
// nil. The check is named "mongo".
func Mongo(client MongoPinger, rp *readpref.ReadPref) Check {
	if rp == nil {
		rp = readpref.Primary()
	}
	return New("mongo", func(ctx context.Context) error {
		if client == nil {
			return errors.New("client is nil")
		}
		return client.Ping(ctx, rp)
	})
}
