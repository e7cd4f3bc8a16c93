package datastate_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passvault/internal/datastate"
)

var (
	errFirst  = errors.New("first")
	errSecond = errors.New("second")
)

func ptr[T any](v T) *T { return &v }

func join(a, b string) string { return a + "+" + b }

// samples returns one state of every variant, with and without data.
func samples(data string) map[string]datastate.DataState[string] {
	return map[string]datastate.DataState[string]{
		"loading":         datastate.Loading[string](),
		"pending":         datastate.Pending(data),
		"loaded":          datastate.Loaded(data),
		"error":           datastate.Error[string](errSecond, nil),
		"error+data":      datastate.Error(errSecond, ptr(data)),
		"no-network":      datastate.NoNetwork[string](nil),
		"no-network+data": datastate.NoNetwork(ptr(data)),
	}
}

func TestCombine_ErrorAlwaysWins(t *testing.T) {
	for name, other := range samples("b") {
		t.Run(name, func(t *testing.T) {
			left := datastate.Combine(datastate.Error[string](errFirst, nil), other, join)
			require.True(t, left.IsError())

			right := datastate.Combine(other, datastate.Error[string](errFirst, nil), join)
			require.True(t, right.IsError())

			if !other.IsError() {
				assert.ErrorIs(t, left.Err(), errFirst)
				assert.ErrorIs(t, right.Err(), errFirst)
			}
		})
	}
}

func TestCombine_TwoErrorsPreferFirst(t *testing.T) {
	got := datastate.Combine(
		datastate.Error(errFirst, ptr("a")),
		datastate.Error(errSecond, ptr("b")),
		join,
	)
	assert.Equal(t, datastate.Error(errFirst, ptr("a+b")), got)

	got = datastate.Combine(
		datastate.Error[string](errSecond, nil),
		datastate.Error(errFirst, ptr("b")),
		join,
	)
	assert.Equal(t, datastate.Error[string](errSecond, nil), got)
}

func TestCombine_ErrorKeepsMergedStaleData(t *testing.T) {
	got := datastate.Combine(datastate.Loaded("a"), datastate.Error(errSecond, ptr("b")), join)
	assert.Equal(t, datastate.Error(errSecond, ptr("a+b")), got)

	got = datastate.Combine(datastate.Loading[string](), datastate.Error(errSecond, ptr("b")), join)
	assert.Equal(t, datastate.Error[string](errSecond, nil), got)
}

func TestCombine_NoNetworkBeatsLoading(t *testing.T) {
	got := datastate.Combine(datastate.Loading[string](), datastate.NoNetwork(ptr("b")), join)
	assert.Equal(t, datastate.NoNetwork[string](nil), got)

	got = datastate.Combine(datastate.NoNetwork(ptr("a")), datastate.Pending("b"), join)
	assert.Equal(t, datastate.NoNetwork(ptr("a+b")), got)
}

func TestCombine_LoadingHasNoPayload(t *testing.T) {
	for _, name := range []string{"loading", "pending", "loaded"} {
		other := samples("b")[name]
		got := datastate.Combine(datastate.Loading[string](), other, join)
		assert.Equal(t, datastate.Loading[string](), got, name)
		_, ok := got.Data()
		assert.False(t, ok)

		got = datastate.Combine(other, datastate.Loading[string](), join)
		assert.Equal(t, datastate.Loading[string](), got, name)
	}
}

func TestCombine_PendingAndLoaded(t *testing.T) {
	assert.Equal(t,
		datastate.Pending("a+b"),
		datastate.Combine(datastate.Pending("a"), datastate.Loaded("b"), join),
	)
	assert.Equal(t,
		datastate.Pending("a+b"),
		datastate.Combine(datastate.Loaded("a"), datastate.Pending("b"), join),
	)
}

func TestCombine_BothLoaded(t *testing.T) {
	got := datastate.Combine(datastate.Loaded(1), datastate.Loaded("x"), func(n int, s string) string {
		return fmt.Sprintf("%d%s", n, s)
	})
	assert.Equal(t, datastate.Loaded("1x"), got)
}

func TestCombine3_MatchesPairwiseFold(t *testing.T) {
	all := samples("v")
	for n1, s1 := range all {
		for n2, s2 := range all {
			for n3, s3 := range all {
				got := datastate.Combine3(s1, s2, s3, func(a, b, c string) string {
					return a + b + c
				})
				want := datastate.Combine(datastate.Combine(s1, s2, func(a, b string) string {
					return a + b
				}), s3, func(ab, c string) string { return ab + c })
				assert.Equal(t, want, got, "%s/%s/%s", n1, n2, n3)
			}
		}
	}
}

func TestCombine4_MatchesPairwiseFold(t *testing.T) {
	all := samples("v")
	concat := func(a, b string) string { return a + b }
	for n1, s1 := range all {
		for n2, s2 := range all {
			for n3, s3 := range all {
				for n4, s4 := range all {
					got := datastate.Combine4(s1, s2, s3, s4, func(a, b, c, d string) string {
						return a + b + c + d
					})
					want := datastate.Combine(
						datastate.Combine(datastate.Combine(s1, s2, concat), s3, concat),
						s4,
						concat,
					)
					assert.Equal(t, want, got, "%s/%s/%s/%s", n1, n2, n3, n4)
				}
			}
		}
	}
}

func TestCombine_TransformSkippedWithoutData(t *testing.T) {
	called := false
	got := datastate.Combine(datastate.NoNetwork[string](nil), datastate.Loaded("b"),
		func(a, b string) string {
			called = true
			return a + b
		})
	assert.False(t, called)
	assert.True(t, got.IsNoNetwork())
	assert.Nil(t, got.DataPtr())
}
