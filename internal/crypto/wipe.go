package crypto

import "runtime"

// Wipe overwrites secret material held in b, such as a user key after it has
// been sealed under a PIN.
//
//go:noinline
func Wipe(b []byte) {
	clear(b)
	runtime.KeepAlive(b)
}
