package network

import (
	"context"
	"net/http"
	"net/url"

	"passvault/internal/crypto"
	"passvault/internal/domain"
)

const (
	headerRequestEmail     = "X-Request-Email"
	headerDeviceIdentifier = "X-Device-Identifier"
)

// DevicesService wraps the device trust endpoints.
type DevicesService struct {
	authenticated   *Client
	unauthenticated *Client
}

// NewDevicesService returns a DevicesService. Known-device lookups happen
// before login and go through unauthenticated.
func NewDevicesService(authenticated, unauthenticated *Client) *DevicesService {
	return &DevicesService{authenticated: authenticated, unauthenticated: unauthenticated}
}

// GetIsKnownDevice reports whether deviceID has logged in to emailAddress's
// account before.
func (s *DevicesService) GetIsKnownDevice(
	ctx context.Context,
	emailAddress string,
	deviceID domain.DeviceID,
) (bool, error) {
	h := http.Header{}
	h.Set(headerRequestEmail, crypto.B64URL([]byte(emailAddress)))
	h.Set(headerDeviceIdentifier, deviceID.String())

	var known bool
	if err := s.unauthenticated.getJSON(ctx, "/devices/knowndevice", h, &known); err != nil {
		return false, err
	}
	return known, nil
}

// TrustDevice uploads the encrypted keys that make appID a trusted device.
func (s *DevicesService) TrustDevice(
	ctx context.Context,
	appID domain.AppID,
	encryptedUserKey string,
	encryptedDevicePublicKey string,
	encryptedDevicePrivateKey string,
) (domain.TrustedDeviceKeysResponse, error) {
	var out domain.TrustedDeviceKeysResponse
	err := s.authenticated.putJSON(ctx, "/devices/"+url.PathEscape(appID.String())+"/keys",
		domain.TrustedDeviceKeysRequest{
			EncryptedUserKey:          encryptedUserKey,
			EncryptedDevicePublicKey:  encryptedDevicePublicKey,
			EncryptedDevicePrivateKey: encryptedDevicePrivateKey,
		}, &out)
	if err != nil {
		return domain.TrustedDeviceKeysResponse{}, err
	}
	return out, nil
}

var _ domain.DevicesService = (*DevicesService)(nil)
