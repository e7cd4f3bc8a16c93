package datastate

import (
	"context"

	"passvault/internal/observable"
)

// Map transforms the payload of s, keeping its variant. Absent payloads stay
// absent.
func Map[T, R any](s DataState[T], transform func(T) R) DataState[R] {
	out := DataState[R]{kind: s.kind, err: s.err}
	if s.hasData {
		out.data, out.hasData = transform(s.data), true
	}
	return out
}

// MapNullable transforms the payload of s even when it is absent; transform
// receives nil in that case. Loading stays Loading.
func MapNullable[T, R any](s DataState[T], transform func(*T) R) DataState[R] {
	if s.kind == KindLoading {
		return Loading[R]()
	}
	return DataState[R]{
		kind:    s.kind,
		data:    transform(s.DataPtr()),
		hasData: true,
		err:     s.err,
	}
}

// TakeUntilLoaded forwards states from in up to and including the first
// Loaded state, then closes the returned channel. It also stops when in is
// closed or ctx is done.
func TakeUntilLoaded[T any](ctx context.Context, in <-chan DataState[T]) <-chan DataState[T] {
	out := make(chan DataState[T])
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case s, ok := <-in:
				if !ok {
					return
				}
				select {
				case out <- s:
				case <-ctx.Done():
					return
				}
				if s.kind == KindLoaded {
					return
				}
			}
		}
	}()
	return out
}

// UpdateToPendingOrLoading moves state to Pending when it holds data and to
// Loading otherwise.
func UpdateToPendingOrLoading[T any](state *observable.State[DataState[T]]) {
	state.Update(func(s DataState[T]) DataState[T] {
		if s.hasData {
			return Pending(s.data)
		}
		return Loading[T]()
	})
}
