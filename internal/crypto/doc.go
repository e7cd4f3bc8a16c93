// Package crypto exposes the small primitives passvault needs outside the
// stores: header-safe encodings and best-effort wiping of secrets held in
// byte slices (Wipe).
package crypto
