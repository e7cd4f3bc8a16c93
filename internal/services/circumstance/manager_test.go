package circumstance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passvault/internal/domain"
)

func TestManagerStartsEmpty(t *testing.T) {
	m := New(nil)
	assert.Nil(t, m.SpecialCircumstance())
}

func TestManagerPublishesChanges(t *testing.T) {
	m := New(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := m.SpecialCircumstanceState().Subscribe(ctx)

	select {
	case v := <-ch:
		assert.Nil(t, v)
	case <-time.After(time.Second):
		t.Fatal("no initial value")
	}

	share := domain.ShareNewSend{Data: domain.TextShare{Text: "hello"}}
	m.SetSpecialCircumstance(share)
	assert.Equal(t, share, m.SpecialCircumstance())

	select {
	case v := <-ch:
		assert.Equal(t, share, v)
	case <-time.After(time.Second):
		t.Fatal("no update")
	}

	m.SetSpecialCircumstance(nil)
	assert.Nil(t, m.SpecialCircumstance())
}

func TestFromShareArgs(t *testing.T) {
	assert.Nil(t, FromShareArgs("", "", "", ""))

	text := FromShareArgs("subj", "body", "", "")
	require.IsType(t, domain.ShareNewSend{}, text)
	assert.Equal(t, domain.TextShare{Subject: "subj", Text: "body"}, text.(domain.ShareNewSend).Data)

	file := FromShareArgs("", "ignored", "a.txt", "file:///tmp/a.txt")
	require.IsType(t, domain.ShareNewSend{}, file)
	assert.Equal(t, domain.FileShare{FileName: "a.txt", URI: "file:///tmp/a.txt"}, file.(domain.ShareNewSend).Data)
	assert.True(t, file.(domain.ShareNewSend).ShouldFinishWhenComplete)
}
