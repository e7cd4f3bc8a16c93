package observable

import "context"

// Map returns a State that mirrors src through fn. The derived state is started
// eagerly: it holds fn(src.Value()) immediately and follows src until ctx is
// done.
func Map[T, R any](ctx context.Context, src *State[T], fn func(T) R) *State[R] {
	return mapInto(ctx, src, New(fn(src.Value())), fn)
}

// MapWithEqual is Map with duplicate suppression on the derived state.
func MapWithEqual[T, R any](
	ctx context.Context,
	src *State[T],
	fn func(T) R,
	equal func(a, b R) bool,
) *State[R] {
	return mapInto(ctx, src, NewWithEqual(fn(src.Value()), equal), fn)
}

func mapInto[T, R any](ctx context.Context, src *State[T], dst *State[R], fn func(T) R) *State[R] {
	ch := src.Subscribe(ctx)
	go func() {
		for v := range ch {
			dst.Set(fn(v))
		}
	}()
	return dst
}
