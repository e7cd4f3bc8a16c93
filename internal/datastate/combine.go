package datastate

// Combine merges s1 and s2 into a single state using transform for the payload.
//
// The resulting variant is chosen by priority:
//
//	Error > NoNetwork > Loading > Pending > Loaded
//
// When both inputs are Error the error of s1 wins. transform only runs when
// both inputs carry data; otherwise the result has no payload.
func Combine[T1, T2, R any](
	s1 DataState[T1],
	s2 DataState[T2],
	transform func(T1, T2) R,
) DataState[R] {
	merged := func() *R {
		if !s1.hasData || !s2.hasData {
			return nil
		}
		r := transform(s1.data, s2.data)
		return &r
	}

	switch {
	case s1.kind == KindError:
		return Error(s1.err, merged())
	case s2.kind == KindError:
		return Error(s2.err, merged())
	case s1.kind == KindNoNetwork || s2.kind == KindNoNetwork:
		return NoNetwork(merged())
	case s1.kind == KindLoading || s2.kind == KindLoading:
		return Loading[R]()
	case s1.kind == KindPending || s2.kind == KindPending:
		return Pending(transform(s1.data, s2.data))
	default:
		return Loaded(transform(s1.data, s2.data))
	}
}

// CombineWith is Combine with the receiver-first argument order used when
// folding several states.
func CombineWith[T1, T2, R any](
	s1 DataState[T1],
	s2 DataState[T2],
	transform func(T1, T2) R,
) DataState[R] {
	return Combine(s1, s2, transform)
}

type pair[A, B any] struct {
	a A
	b B
}

type triple[A, B, C any] struct {
	a A
	b B
	c C
}

// Combine3 folds three states left to right. See Combine.
func Combine3[T1, T2, T3, R any](
	s1 DataState[T1],
	s2 DataState[T2],
	s3 DataState[T3],
	transform func(T1, T2, T3) R,
) DataState[R] {
	s12 := CombineWith(s1, s2, func(a T1, b T2) pair[T1, T2] { return pair[T1, T2]{a, b} })
	return CombineWith(s12, s3, func(p pair[T1, T2], c T3) R {
		return transform(p.a, p.b, c)
	})
}

// Combine4 folds four states left to right. See Combine.
func Combine4[T1, T2, T3, T4, R any](
	s1 DataState[T1],
	s2 DataState[T2],
	s3 DataState[T3],
	s4 DataState[T4],
	transform func(T1, T2, T3, T4) R,
) DataState[R] {
	s12 := CombineWith(s1, s2, func(a T1, b T2) pair[T1, T2] { return pair[T1, T2]{a, b} })
	s123 := CombineWith(s12, s3, func(p pair[T1, T2], c T3) triple[T1, T2, T3] {
		return triple[T1, T2, T3]{p.a, p.b, c}
	})
	return CombineWith(s123, s4, func(t triple[T1, T2, T3], d T4) R {
		return transform(t.a, t.b, t.c, d)
	})
}
