package datastate

import "fmt"

// Kind identifies the variant of a DataState.
type Kind int

const (
	// KindLoading means no data is available yet. It is the zero Kind.
	KindLoading Kind = iota
	// KindPending means previously loaded data is being refreshed.
	KindPending
	// KindLoaded means the data is settled.
	KindLoaded
	// KindError means the latest load failed; stale data may be attached.
	KindError
	// KindNoNetwork means the latest load failed for lack of connectivity;
	// stale data may be attached.
	KindNoNetwork
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindLoading:
		return "Loading"
	case KindPending:
		return "Pending"
	case KindLoaded:
		return "Loaded"
	case KindError:
		return "Error"
	case KindNoNetwork:
		return "NoNetwork"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// DataState annotates a value with the status of its asynchronous retrieval.
// The zero value is Loading.
type DataState[T any] struct {
	kind    Kind
	data    T
	hasData bool
	err     error
}

// Loading returns a state without data.
func Loading[T any]() DataState[T] {
	return DataState[T]{kind: KindLoading}
}

// Pending returns a state holding data that is being refreshed.
func Pending[T any](data T) DataState[T] {
	return DataState[T]{kind: KindPending, data: data, hasData: true}
}

// Loaded returns a settled state holding data.
func Loaded[T any](data T) DataState[T] {
	return DataState[T]{kind: KindLoaded, data: data, hasData: true}
}

// Error returns a failed state. data may be nil when nothing is cached.
func Error[T any](err error, data *T) DataState[T] {
	s := DataState[T]{kind: KindError, err: err}
	if data != nil {
		s.data, s.hasData = *data, true
	}
	return s
}

// NoNetwork returns a connectivity failure state. data may be nil.
func NoNetwork[T any](data *T) DataState[T] {
	s := DataState[T]{kind: KindNoNetwork}
	if data != nil {
		s.data, s.hasData = *data, true
	}
	return s
}

// Kind returns the variant of s.
func (s DataState[T]) Kind() Kind { return s.kind }

// Data returns the payload and whether one is present.
func (s DataState[T]) Data() (T, bool) { return s.data, s.hasData }

// DataPtr returns a pointer to a copy of the payload, or nil when absent.
func (s DataState[T]) DataPtr() *T {
	if !s.hasData {
		return nil
	}
	d := s.data
	return &d
}

// Err returns the failure cause of an Error state and nil otherwise.
func (s DataState[T]) Err() error { return s.err }

// IsLoading reports whether s is Loading.
func (s DataState[T]) IsLoading() bool { return s.kind == KindLoading }

// IsPending reports whether s is Pending.
func (s DataState[T]) IsPending() bool { return s.kind == KindPending }

// IsLoaded reports whether s is Loaded.
func (s DataState[T]) IsLoaded() bool { return s.kind == KindLoaded }

// IsError reports whether s is Error.
func (s DataState[T]) IsError() bool { return s.kind == KindError }

// IsNoNetwork reports whether s is NoNetwork.
func (s DataState[T]) IsNoNetwork() bool { return s.kind == KindNoNetwork }

// String formats s as Kind, Kind(data) or Error(err[, data]).
func (s DataState[T]) String() string {
	switch {
	case s.kind == KindError && s.hasData:
		return fmt.Sprintf("Error(%v, %v)", s.err, s.data)
	case s.kind == KindError:
		return fmt.Sprintf("Error(%v)", s.err)
	case s.hasData:
		return fmt.Sprintf("%s(%v)", s.kind, s.data)
	default:
		return s.kind.String()
	}
}
