package async // import "jsouthworth.net/go/maptrait/async"

import (
	"context"
	"fmt"
)

// Result is the payload of a completed Future. OK is false when the
// operation found nothing, in which case Value is the zero value.
type Result[T any] struct {
	Value T
	OK    bool
}

func (r Result[T]) String() string {
	if !r.OK {
		return "none"
	}
	return fmt.Sprintf("some(%v)", r.Value)
}

// Future is a deferred Result.
type Future[T any] interface {
	// Poll returns the result and true once the future is complete.
	// Polling a complete future again returns the same result.
	Poll() (Result[T], bool)

	// Done returns a channel that is closed when the future
	// completes.
	Done() <-chan struct{}

	// Await blocks until the future completes or ctx is done. A
	// complete future returns its result even if ctx is done.
	Await(ctx context.Context) (Result[T], error)
}

var closed = func() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}()

type resolved[T any] struct {
	res Result[T]
}

// Resolved returns a complete future holding (value, ok).
func Resolved[T any](value T, ok bool) Future[T] {
	return resolved[T]{res: Result[T]{Value: value, OK: ok}}
}

func (f resolved[T]) Poll() (Result[T], bool) {
	return f.res, true
}

func (f resolved[T]) Done() <-chan struct{} {
	return closed
}

func (f resolved[T]) Await(context.Context) (Result[T], error) {
	return f.res, nil
}

// Wait awaits any Future. The future is polled first, so a complete
// future never reports ctx's error.
func Wait[T any](ctx context.Context, f Future[T]) (Result[T], error) {
	if res, ok := f.Poll(); ok {
		return res, nil
	}
	select {
	case <-f.Done():
		res, _ := f.Poll()
		return res, nil
	case <-ctx.Done():
		var zero Result[T]
		return zero, ctx.Err()
	}
}
