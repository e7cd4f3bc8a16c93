package store

import (
	"maps"
	"path/filepath"
	"sync"

	"passvault/internal/domain"
	"passvault/internal/observability/logger"
	"passvault/internal/observable"
)

const settingsFilename = "settings.json"

// settingsFile is the on-disk layout of settings.json.
type settingsFile struct {
	VaultTimeoutInMinutes map[domain.UserID]int                       `json:"vault_timeout_minutes,omitempty"`
	VaultTimeoutAction    map[domain.UserID]domain.VaultTimeoutAction `json:"vault_timeout_action,omitempty"`
}

func (f *settingsFile) clone() *settingsFile {
	return &settingsFile{
		VaultTimeoutInMinutes: maps.Clone(f.VaultTimeoutInMinutes),
		VaultTimeoutAction:    maps.Clone(f.VaultTimeoutAction),
	}
}

// SettingsFileStore persists per-user settings to disk and publishes every
// key as observable state.
type SettingsFileStore struct {
	dir string
	mu  sync.Mutex

	data    *settingsFile
	timeout map[domain.UserID]*observable.State[*int]
	action  map[domain.UserID]*observable.State[*domain.VaultTimeoutAction]
}

// NewSettingsFileStore returns a SettingsFileStore rooted at dir.
func NewSettingsFileStore(dir string) *SettingsFileStore {
	return &SettingsFileStore{
		dir:     dir,
		timeout: make(map[domain.UserID]*observable.State[*int]),
		action:  make(map[domain.UserID]*observable.State[*domain.VaultTimeoutAction]),
	}
}

// GetVaultTimeoutInMinutes returns the stored timeout, or nil when unset.
func (s *SettingsFileStore) GetVaultTimeoutInMinutes(userID domain.UserID) *int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeoutLocked(userID)
}

// StoreVaultTimeoutInMinutes stores minutes for userID; nil clears it.
func (s *SettingsFileStore) StoreVaultTimeoutInMinutes(userID domain.UserID, minutes *int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.loadLocked().clone()
	if minutes == nil {
		delete(next.VaultTimeoutInMinutes, userID)
	} else {
		if next.VaultTimeoutInMinutes == nil {
			next.VaultTimeoutInMinutes = make(map[domain.UserID]int)
		}
		next.VaultTimeoutInMinutes[userID] = *minutes
	}
	if err := s.commitLocked(next); err != nil {
		return err
	}
	if st, ok := s.timeout[userID]; ok {
		st.Set(s.timeoutLocked(userID))
	}
	return nil
}

// VaultTimeoutInMinutesState returns the observable timeout for userID.
func (s *SettingsFileStore) VaultTimeoutInMinutesState(userID domain.UserID) *observable.State[*int] {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.timeout[userID]
	if !ok {
		st = observable.NewWithEqual(s.timeoutLocked(userID), equalPtr[int])
		s.timeout[userID] = st
	}
	return st
}

// GetVaultTimeoutAction returns the stored action, or nil when unset.
func (s *SettingsFileStore) GetVaultTimeoutAction(userID domain.UserID) *domain.VaultTimeoutAction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.actionLocked(userID)
}

// StoreVaultTimeoutAction stores action for userID; nil clears it.
func (s *SettingsFileStore) StoreVaultTimeoutAction(
	userID domain.UserID,
	action *domain.VaultTimeoutAction,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.loadLocked().clone()
	if action == nil {
		delete(next.VaultTimeoutAction, userID)
	} else {
		if next.VaultTimeoutAction == nil {
			next.VaultTimeoutAction = make(map[domain.UserID]domain.VaultTimeoutAction)
		}
		next.VaultTimeoutAction[userID] = *action
	}
	if err := s.commitLocked(next); err != nil {
		return err
	}
	if st, ok := s.action[userID]; ok {
		st.Set(s.actionLocked(userID))
	}
	return nil
}

// VaultTimeoutActionState returns the observable action for userID.
func (s *SettingsFileStore) VaultTimeoutActionState(
	userID domain.UserID,
) *observable.State[*domain.VaultTimeoutAction] {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.action[userID]
	if !ok {
		st = observable.NewWithEqual(s.actionLocked(userID), equalPtr[domain.VaultTimeoutAction])
		s.action[userID] = st
	}
	return st
}

func (s *SettingsFileStore) timeoutLocked(userID domain.UserID) *int {
	m, ok := s.loadLocked().VaultTimeoutInMinutes[userID]
	if !ok {
		return nil
	}
	return &m
}

func (s *SettingsFileStore) actionLocked(userID domain.UserID) *domain.VaultTimeoutAction {
	a, ok := s.loadLocked().VaultTimeoutAction[userID]
	if !ok {
		return nil
	}
	return &a
}

// loadLocked reads settings.json on first use. A corrupt file is logged and
// treated as empty; the next store overwrites it.
func (s *SettingsFileStore) loadLocked() *settingsFile {
	if s.data != nil {
		return s.data
	}
	var data settingsFile
	if err := readJSON(s.path(), &data); err != nil {
		logger.Named("store").Warn("settings unreadable, starting empty",
			logger.Op("load"), logger.Err(err))
		data = settingsFile{}
	}
	s.data = &data
	return s.data
}

// commitLocked writes next and makes it current only once it is on disk.
func (s *SettingsFileStore) commitLocked(next *settingsFile) error {
	if err := writeJSON(s.path(), next); err != nil {
		return err
	}
	s.data = next
	return nil
}

func (s *SettingsFileStore) path() string {
	return filepath.Join(s.dir, settingsFilename)
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Compile-time assertion that SettingsFileStore implements domain.SettingsDiskSource.
var _ domain.SettingsDiskSource = (*SettingsFileStore)(nil)
