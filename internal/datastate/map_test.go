package datastate_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passvault/internal/datastate"
	"passvault/internal/observable"
)

func TestMap_KeepsVariant(t *testing.T) {
	itoa := strconv.Itoa

	assert.Equal(t, datastate.Loaded("1"), datastate.Map(datastate.Loaded(1), itoa))
	assert.Equal(t, datastate.Pending("2"), datastate.Map(datastate.Pending(2), itoa))
	assert.Equal(t, datastate.Loading[string](), datastate.Map(datastate.Loading[int](), itoa))
	assert.Equal(t, datastate.Error(errFirst, ptr("3")), datastate.Map(datastate.Error(errFirst, ptr(3)), itoa))
	assert.Equal(t, datastate.Error[string](errFirst, nil), datastate.Map(datastate.Error[int](errFirst, nil), itoa))
	assert.Equal(t, datastate.NoNetwork[string](nil), datastate.Map(datastate.NoNetwork[int](nil), itoa))
}

func TestMapNullable_SeesAbsentData(t *testing.T) {
	describe := func(v *int) string {
		if v == nil {
			return "none"
		}
		return strconv.Itoa(*v)
	}

	assert.Equal(t, datastate.NoNetwork(ptr("none")), datastate.MapNullable(datastate.NoNetwork[int](nil), describe))
	assert.Equal(t, datastate.Error(errFirst, ptr("none")), datastate.MapNullable(datastate.Error[int](errFirst, nil), describe))
	assert.Equal(t, datastate.Loaded("4"), datastate.MapNullable(datastate.Loaded(4), describe))
	assert.Equal(t, datastate.Loading[string](), datastate.MapNullable(datastate.Loading[int](), describe))
}

func TestTakeUntilLoaded_StopsAfterLoaded(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	in := make(chan datastate.DataState[int], 4)
	in <- datastate.Loading[int]()
	in <- datastate.Pending(1)
	in <- datastate.Loaded(2)
	in <- datastate.Loaded(3)

	var got []datastate.DataState[int]
	for s := range datastate.TakeUntilLoaded(ctx, in) {
		got = append(got, s)
	}
	require.Len(t, got, 3)
	assert.Equal(t, datastate.Loaded(2), got[2])
}

func TestTakeUntilLoaded_ClosesWithInput(t *testing.T) {
	in := make(chan datastate.DataState[int], 1)
	in <- datastate.Loading[int]()
	close(in)

	var n int
	for range datastate.TakeUntilLoaded(context.Background(), in) {
		n++
	}
	assert.Equal(t, 1, n)
}

func TestUpdateToPendingOrLoading(t *testing.T) {
	s := observable.New(datastate.Loaded("cached"))
	datastate.UpdateToPendingOrLoading(s)
	assert.Equal(t, datastate.Pending("cached"), s.Value())

	s.Set(datastate.Error[string](errFirst, nil))
	datastate.UpdateToPendingOrLoading(s)
	assert.Equal(t, datastate.Loading[string](), s.Value())

	s.Set(datastate.NoNetwork(ptr("stale")))
	datastate.UpdateToPendingOrLoading(s)
	assert.Equal(t, datastate.Pending("stale"), s.Value())
}
