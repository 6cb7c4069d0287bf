package probe

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Status values reported per check.
const (
	StatusOK      = "ok"
	StatusFailed  = "failed"
	StatusTimeout = "timeout"
)

// Result is the outcome of one check.
type Result struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Run executes checks concurrently, each bounded by timeout when it is
// positive. Results keep the order of checks. The returned error joins every
// failure and is nil when all checks pass.
func Run(ctx context.Context, timeout time.Duration, checks ...Check) ([]Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	results := make([]Result, len(checks))
	errs := make([]error, len(checks))

	var wg sync.WaitGroup
	for i, check := range checks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = runOne(ctx, timeout, check)
		}()
	}
	wg.Wait()

	return results, errors.Join(errs...)
}

func runOne(ctx context.Context, timeout time.Duration, check Check) (Result, error) {
	result := Result{Name: check.Name, Status: StatusOK}
	if check.Run == nil {
		check = New(check.Name, nil)
	}

	err := check.Run(ctx)
	if err == nil {
		return result, nil
	}

	result.Status = StatusFailed
	if errors.Is(err, context.DeadlineExceeded) {
		result.Status = StatusTimeout
		err = fmt.Errorf("%w after %s", err, timeout)
	}
	result.Error = err.Error()
	return result, fmt.Errorf("%s: %w", check.Name, err)
}
