package observable

import (
	"context"
	"sync"
)

// State is a hot value holder. Writers replace the value with Set or Update and
// every subscriber observes the latest value. Subscribers that fall behind only
// see the most recent value; intermediate values are dropped.
type State[T any] struct {
	mu    sync.Mutex
	value T
	equal func(a, b T) bool
	subs  map[uint64]chan T
	next  uint64
}

// New returns a State holding initial.
func New[T any](initial T) *State[T] {
	return &State[T]{value: initial, subs: make(map[uint64]chan T)}
}

// NewWithEqual returns a State that skips updates equal to the current value.
func NewWithEqual[T any](initial T, equal func(a, b T) bool) *State[T] {
	s := New(initial)
	s.equal = equal
	return s
}

// Value returns the current value.
func (s *State[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set replaces the current value.
func (s *State[T]) Set(v T) {
	s.Update(func(T) T { return v })
}

// Update atomically replaces the current value with fn(current). fn runs with
// the State locked and must not call back into it.
func (s *State[T]) Update(fn func(T) T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := fn(s.value)
	if s.equal != nil && s.equal(s.value, next) {
		return
	}
	s.value = next
	for _, ch := range s.subs {
		deliver(ch, next)
	}
}

// Subscribe returns a channel that first yields the current value and then
// every later value. The channel is closed once ctx is done.
func (s *State[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	s.mu.Lock()
	id := s.next
	s.next++
	ch <- s.value
	s.subs[id] = ch
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, id)
		close(ch)
		s.mu.Unlock()
	}()
	return ch
}

// deliver replaces whatever is buffered in ch with v. Only called with the
// owning State locked, so there is a single sender per channel.
func deliver[T any](ch chan T, v T) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- v
}
