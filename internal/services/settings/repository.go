package settings

import (
	"context"
	"errors"
	"sync"

	"passvault/internal/crypto"
	"passvault/internal/domain"
	"passvault/internal/observability/logger"
	"passvault/internal/observable"
)

// ErrInvalidPin is returned when a PIN is empty or contains non-digits.
var ErrInvalidPin = errors.New("PIN must be one or more digits")

// DefaultVaultTimeoutAction applies when the user has not chosen one.
const DefaultVaultTimeoutAction = domain.VaultTimeoutActionLock

// Repository implements domain.SettingsRepository.
type Repository struct {
	disk domain.SettingsDiskSource
	auth domain.AuthDiskSource

	// ctx bounds the goroutines that keep derived states in sync.
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	timeout map[domain.UserID]*observable.State[domain.VaultTimeout]
	action  map[domain.UserID]*observable.State[domain.VaultTimeoutAction]
}

// New returns a Repository. Close releases the derived states.
func New(disk domain.SettingsDiskSource, auth domain.AuthDiskSource) *Repository {
	ctx, cancel := context.WithCancel(context.Background())
	return &Repository{
		disk:    disk,
		auth:    auth,
		ctx:     ctx,
		cancel:  cancel,
		timeout: make(map[domain.UserID]*observable.State[domain.VaultTimeout]),
		action:  make(map[domain.UserID]*observable.State[domain.VaultTimeoutAction]),
	}
}

// Close stops updating the states returned so far.
func (r *Repository) Close() { r.cancel() }

// VaultTimeoutState returns userID's vault timeout. An unset value is Never.
func (r *Repository) VaultTimeoutState(userID domain.UserID) *observable.State[domain.VaultTimeout] {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.timeout[userID]
	if !ok {
		st = observable.MapWithEqual(r.ctx, r.disk.VaultTimeoutInMinutesState(userID), VaultTimeoutFromMinutes,
			func(a, b domain.VaultTimeout) bool { return a == b })
		r.timeout[userID] = st
	}
	return st
}

// StoreVaultTimeout persists timeout for userID.
func (r *Repository) StoreVaultTimeout(userID domain.UserID, timeout domain.VaultTimeout) error {
	if err := r.disk.StoreVaultTimeoutInMinutes(userID, timeout.Minutes()); err != nil {
		return err
	}
	logger.Named("settings").Debug("vault timeout stored",
		logger.UserID(userID.String()), logger.State(timeout.String()))
	return nil
}

// VaultTimeoutActionState returns userID's vault timeout action, falling back
// to DefaultVaultTimeoutAction.
func (r *Repository) VaultTimeoutActionState(
	userID domain.UserID,
) *observable.State[domain.VaultTimeoutAction] {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.action[userID]
	if !ok {
		st = observable.MapWithEqual(r.ctx, r.disk.VaultTimeoutActionState(userID), actionOrDefault,
			func(a, b domain.VaultTimeoutAction) bool { return a == b })
		r.action[userID] = st
	}
	return st
}

// IsVaultTimeoutActionSet reports whether the user chose an action.
func (r *Repository) IsVaultTimeoutActionSet(userID domain.UserID) bool {
	return r.disk.GetVaultTimeoutAction(userID) != nil
}

// StoreVaultTimeoutAction persists action; nil resets it to the default.
func (r *Repository) StoreVaultTimeoutAction(
	userID domain.UserID,
	action *domain.VaultTimeoutAction,
) error {
	return r.disk.StoreVaultTimeoutAction(userID, action)
}

// IsUnlockWithPinEnabled reports whether a PIN-protected key is stored.
func (r *Repository) IsUnlockWithPinEnabled(userID domain.UserID) bool {
	return r.auth.HasPinProtectedUserKey(userID)
}

// StoreUnlockPin seals userKey under pin. userKey is wiped afterwards.
func (r *Repository) StoreUnlockPin(userID domain.UserID, pin string, userKey []byte) error {
	defer crypto.Wipe(userKey)
	if !validPin(pin) {
		return ErrInvalidPin
	}
	if err := r.auth.StorePinProtectedUserKey(userID, pin, userKey); err != nil {
		return err
	}
	logger.Named("settings").Info("unlock with PIN enabled", logger.UserID(userID.String()))
	return nil
}

// ClearUnlockPin disables unlock with PIN.
func (r *Repository) ClearUnlockPin(userID domain.UserID) error {
	return r.auth.ClearPinProtectedUserKey(userID)
}

// VaultTimeoutFromMinutes converts a stored minute value to a VaultTimeout.
// nil is Never; values without a preset are Custom.
func VaultTimeoutFromMinutes(minutes *int) domain.VaultTimeout {
	if minutes == nil {
		return domain.Never
	}
	for _, p := range domain.VaultTimeoutPresets() {
		if *p.Minutes() == *minutes {
			return p
		}
	}
	return domain.CustomVaultTimeout(*minutes)
}

func actionOrDefault(a *domain.VaultTimeoutAction) domain.VaultTimeoutAction {
	if a == nil {
		return DefaultVaultTimeoutAction
	}
	return *a
}

func validPin(pin string) bool {
	if pin == "" {
		return false
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

var _ domain.SettingsRepository = (*Repository)(nil)
