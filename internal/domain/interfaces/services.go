package interfaces

import (
	"context"

	domaintypes "passvault/internal/domain/types"
)

// DevicesService talks to the device trust endpoints.
type DevicesService interface {
	GetIsKnownDevice(ctx context.Context, emailAddress string, deviceID domaintypes.DeviceID) (bool, error)
	TrustDevice(
		ctx context.Context,
		appID domaintypes.AppID,
		encryptedUserKey string,
		encryptedDevicePublicKey string,
		encryptedDevicePrivateKey string,
	) (domaintypes.TrustedDeviceKeysResponse, error)
}

// ConfigService fetches the server configuration.
type ConfigService interface {
	GetConfig(ctx context.Context) (domaintypes.ServerConfig, error)
}

// PushService registers push notification tokens.
type PushService interface {
	PutDeviceToken(ctx context.Context, pushToken string) error
}

// EventService reports organization events.
type EventService interface {
	SendOrganizationEvents(ctx context.Context, events []domaintypes.OrganizationEvent) error
}

// IdentityService exchanges refresh tokens for new access tokens.
type IdentityService interface {
	RefreshAccessToken(ctx context.Context, refreshToken string) (domaintypes.TokenResponse, error)
}
