// Package settings exposes per-user settings as typed observable state.
//
// Values are persisted through a domain.SettingsDiskSource as raw minutes and
// action strings; this package converts them to domain.VaultTimeout and applies
// defaults. Unlock-with-PIN is delegated to the domain.AuthDiskSource.
package settings
