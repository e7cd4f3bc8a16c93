package types

// TrustedDeviceKeysRequest carries the keys that make this device trusted.
// All values are encrypted strings produced by the vault crypto layer.
type TrustedDeviceKeysRequest struct {
	EncryptedUserKey          string `json:"encryptedUserKey"`
	EncryptedDevicePublicKey  string `json:"encryptedPublicKey"`
	EncryptedDevicePrivateKey string `json:"encryptedPrivateKey"`
}

// TrustedDeviceKeysResponse is the server's view of a trusted device.
type TrustedDeviceKeysResponse struct {
	ID                        string `json:"id"`
	Name                      string `json:"name"`
	Identifier                string `json:"identifier"`
	Type                      int    `json:"type"`
	CreationDate              string `json:"creationDate"`
	EncryptedUserKey          string `json:"encryptedUserKey"`
	EncryptedDevicePublicKey  string `json:"encryptedPublicKey"`
	EncryptedDevicePrivateKey string `json:"encryptedPrivateKey"`
}
