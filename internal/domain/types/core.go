package types

// UserID identifies an account on the server.
type UserID string

// String returns the string form of the user identifier.
func (id UserID) String() string { return string(id) }

// AppID identifies this installation. It is generated once and persisted.
type AppID string

// String returns the string form of the app identifier.
func (id AppID) String() string { return string(id) }

// DeviceID identifies a device as known to the server.
type DeviceID string

// String returns the string form of the device identifier.
func (id DeviceID) String() string { return string(id) }

// OrganizationID identifies an organization.
type OrganizationID string

// String returns the string form of the organization identifier.
func (id OrganizationID) String() string { return string(id) }
