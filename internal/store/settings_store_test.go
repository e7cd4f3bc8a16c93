package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"passvault/internal/domain"
	"passvault/internal/store"
)

func intPtr(v int) *int { return &v }

func TestSettings_TimeoutRoundTrip(t *testing.T) {
	home := t.TempDir()
	s := store.NewSettingsFileStore(home)

	if got := s.GetVaultTimeoutInMinutes("u1"); got != nil {
		t.Fatalf("expected nil timeout, got %d", *got)
	}
	if err := s.StoreVaultTimeoutInMinutes("u1", intPtr(15)); err != nil {
		t.Fatalf("store timeout: %v", err)
	}

	// A fresh store must read what the first one wrote.
	reopened := store.NewSettingsFileStore(home)
	got := reopened.GetVaultTimeoutInMinutes("u1")
	if got == nil || *got != 15 {
		t.Fatalf("reloaded timeout = %v, want 15", got)
	}
	if other := reopened.GetVaultTimeoutInMinutes("u2"); other != nil {
		t.Fatalf("timeout leaked to another user")
	}
}

func TestSettings_StoreNilClears(t *testing.T) {
	s := store.NewSettingsFileStore(t.TempDir())
	action := domain.VaultTimeoutActionLogout

	if err := s.StoreVaultTimeoutAction("u1", &action); err != nil {
		t.Fatalf("store action: %v", err)
	}
	if got := s.GetVaultTimeoutAction("u1"); got == nil || *got != action {
		t.Fatalf("action = %v, want logout", got)
	}
	if err := s.StoreVaultTimeoutAction("u1", nil); err != nil {
		t.Fatalf("clear action: %v", err)
	}
	if got := s.GetVaultTimeoutAction("u1"); got != nil {
		t.Fatalf("expected cleared action, got %v", *got)
	}
}

func TestSettings_StateFollowsStores(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := store.NewSettingsFileStore(t.TempDir())
	st := s.VaultTimeoutInMinutesState("u1")
	if st != s.VaultTimeoutInMinutesState("u1") {
		t.Fatal("expected one state per user")
	}

	ch := st.Subscribe(ctx)
	if v := <-ch; v != nil {
		t.Fatalf("initial value = %d, want nil", *v)
	}
	if err := s.StoreVaultTimeoutInMinutes("u1", intPtr(60)); err != nil {
		t.Fatalf("store timeout: %v", err)
	}
	select {
	case v := <-ch:
		if v == nil || *v != 60 {
			t.Fatalf("observed %v, want 60", v)
		}
	case <-time.After(time.Second):
		t.Fatal("no update observed")
	}
}

func TestSettings_CorruptFileStartsEmpty(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, "settings.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	s := store.NewSettingsFileStore(home)
	if got := s.GetVaultTimeoutInMinutes("u1"); got != nil {
		t.Fatalf("expected nil from corrupt file")
	}
	if err := s.StoreVaultTimeoutInMinutes("u1", intPtr(5)); err != nil {
		t.Fatalf("store over corrupt file: %v", err)
	}
}

func TestSettings_FailedStoreLeavesValuesUnchanged(t *testing.T) {
	home := t.TempDir()
	s := store.NewSettingsFileStore(home)
	if err := s.StoreVaultTimeoutInMinutes("u1", intPtr(5)); err != nil {
		t.Fatalf("store timeout: %v", err)
	}
	state := s.VaultTimeoutInMinutesState("u1")

	// Replace settings.json with a non-empty directory so the rename fails.
	path := filepath.Join(home, "settings.json")
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(path, "blocker"), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := s.StoreVaultTimeoutInMinutes("u1", intPtr(15)); err == nil {
		t.Fatal("expected store to fail")
	}
	if got := s.GetVaultTimeoutInMinutes("u1"); got == nil || *got != 5 {
		t.Fatalf("timeout after failed store = %v, want 5", got)
	}
	if got := state.Value(); got == nil || *got != 5 {
		t.Fatalf("state after failed store = %v, want 5", got)
	}

	logout := domain.VaultTimeoutActionLogout
	if err := s.StoreVaultTimeoutAction("u1", &logout); err == nil {
		t.Fatal("expected action store to fail")
	}
	if got := s.GetVaultTimeoutAction("u1"); got != nil {
		t.Fatalf("action after failed store = %v, want nil", *got)
	}
}
