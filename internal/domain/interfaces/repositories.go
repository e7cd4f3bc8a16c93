package interfaces

import (
	"context"

	"passvault/internal/datastate"
	domaintypes "passvault/internal/domain/types"
	"passvault/internal/observable"
)

// SettingsRepository exposes user settings as observable state.
type SettingsRepository interface {
	VaultTimeoutState(userID domaintypes.UserID) *observable.State[domaintypes.VaultTimeout]
	StoreVaultTimeout(userID domaintypes.UserID, timeout domaintypes.VaultTimeout) error

	VaultTimeoutActionState(
		userID domaintypes.UserID,
	) *observable.State[domaintypes.VaultTimeoutAction]
	IsVaultTimeoutActionSet(userID domaintypes.UserID) bool
	StoreVaultTimeoutAction(
		userID domaintypes.UserID,
		action *domaintypes.VaultTimeoutAction,
	) error

	IsUnlockWithPinEnabled(userID domaintypes.UserID) bool
	StoreUnlockPin(userID domaintypes.UserID, pin string, userKey []byte) error
	ClearUnlockPin(userID domaintypes.UserID) error
}

// ConfigRepository exposes the server configuration with its load state.
type ConfigRepository interface {
	ServerConfigState() *observable.State[datastate.DataState[domaintypes.ServerConfig]]
	Refresh(ctx context.Context) datastate.DataState[domaintypes.ServerConfig]
}

// SpecialCircumstanceManager holds the circumstance the app was launched in.
type SpecialCircumstanceManager interface {
	SpecialCircumstance() domaintypes.SpecialCircumstance
	SetSpecialCircumstance(c domaintypes.SpecialCircumstance)
	SpecialCircumstanceState() *observable.State[domaintypes.SpecialCircumstance]
}
