package interfaces

import (
	domaintypes "passvault/internal/domain/types"
	"passvault/internal/observable"
)

// SettingsDiskSource persists per-user settings. Storing nil removes the value.
type SettingsDiskSource interface {
	GetVaultTimeoutInMinutes(userID domaintypes.UserID) *int
	StoreVaultTimeoutInMinutes(userID domaintypes.UserID, minutes *int) error
	VaultTimeoutInMinutesState(userID domaintypes.UserID) *observable.State[*int]

	GetVaultTimeoutAction(userID domaintypes.UserID) *domaintypes.VaultTimeoutAction
	StoreVaultTimeoutAction(
		userID domaintypes.UserID,
		action *domaintypes.VaultTimeoutAction,
	) error
	VaultTimeoutActionState(
		userID domaintypes.UserID,
	) *observable.State[*domaintypes.VaultTimeoutAction]
}

// AuthDiskSource persists installation identity and account credentials.
type AuthDiskSource interface {
	UniqueAppID() (domaintypes.AppID, error)

	AccessToken() string
	RefreshToken() string
	StoreTokens(accessToken, refreshToken string) error
	ActiveUserID() (domaintypes.UserID, error)

	StorePinProtectedUserKey(userID domaintypes.UserID, pin string, userKey []byte) error
	PinProtectedUserKey(userID domaintypes.UserID, pin string) ([]byte, error)
	HasPinProtectedUserKey(userID domaintypes.UserID) bool
	ClearPinProtectedUserKey(userID domaintypes.UserID) error
}
