package crypto

import "encoding/base64"

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// B64URL returns unpadded URL-safe base64, as expected in request headers
// such as the known-device email.
func B64URL(b []byte) string { return base64.RawURLEncoding.EncodeToString(b) }
