package domain

import (
	interfaces "passvault/internal/domain/interfaces"
	types "passvault/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	UserID                    = types.UserID
	AppID                     = types.AppID
	DeviceID                  = types.DeviceID
	OrganizationID            = types.OrganizationID
	VaultTimeout              = types.VaultTimeout
	VaultTimeoutType          = types.VaultTimeoutType
	VaultTimeoutAction        = types.VaultTimeoutAction
	TrustedDeviceKeysRequest  = types.TrustedDeviceKeysRequest
	TrustedDeviceKeysResponse = types.TrustedDeviceKeysResponse
	ServerConfig              = types.ServerConfig
	ThirdPartyServer          = types.ThirdPartyServer
	ServerEnvironment         = types.ServerEnvironment
	EventType                 = types.EventType
	OrganizationEvent         = types.OrganizationEvent
	PushTokenRequest          = types.PushTokenRequest
	TokenResponse             = types.TokenResponse
	SpecialCircumstance       = types.SpecialCircumstance
	ShareNewSend              = types.ShareNewSend
	ShareData                 = types.ShareData
	TextShare                 = types.TextShare
	FileShare                 = types.FileShare
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	SettingsDiskSource         = interfaces.SettingsDiskSource
	AuthDiskSource             = interfaces.AuthDiskSource
	DevicesService             = interfaces.DevicesService
	ConfigService              = interfaces.ConfigService
	PushService                = interfaces.PushService
	EventService               = interfaces.EventService
	IdentityService            = interfaces.IdentityService
	SettingsRepository         = interfaces.SettingsRepository
	ConfigRepository           = interfaces.ConfigRepository
	SpecialCircumstanceManager = interfaces.SpecialCircumstanceManager
)

// Vault timeout presets and actions re-exported from the types subpackage.
var (
	Immediately   = types.Immediately
	OneMinute     = types.OneMinute
	FiveMinutes   = types.FiveMinutes
	ThirtyMinutes = types.ThirtyMinutes
	OneHour       = types.OneHour
	FourHours     = types.FourHours
	OnAppRestart  = types.OnAppRestart
	Never         = types.Never
)

const (
	VaultTimeoutActionLock   = types.VaultTimeoutActionLock
	VaultTimeoutActionLogout = types.VaultTimeoutActionLogout
)

// VaultTimeoutPresets returns the preset timeouts that persist a minute value.
func VaultTimeoutPresets() []VaultTimeout { return append([]VaultTimeout(nil), types.Presets...) }

// CustomVaultTimeout returns a timeout of an arbitrary number of minutes.
func CustomVaultTimeout(minutes int) VaultTimeout { return types.CustomVaultTimeout(minutes) }

// ParseVaultTimeout parses the String form of a timeout or a number of minutes.
func ParseVaultTimeout(s string) (VaultTimeout, error) { return types.ParseVaultTimeout(s) }

// ParseVaultTimeoutAction parses "lock" or "logout".
func ParseVaultTimeoutAction(s string) (VaultTimeoutAction, error) {
	return types.ParseVaultTimeoutAction(s)
}
