// Package store provides file-based persistence for passvault's local state.
//
// It contains concrete implementations of the domain disk source interfaces,
// serialising data as JSON under the configured home directory. Writes go
// through a temp file and rename so a crash never leaves a torn file. All
// methods are concurrency-safe via internal locking.
//
// The package includes:
//   - Per-user settings with observable state (SettingsFileStore)
//   - Installation id, tokens and PIN-protected keys (AuthFileStore)
package store
