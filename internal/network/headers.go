package network

import (
	"fmt"
	"net/http"
	"runtime"
)

const (
	// HeaderKeyUserAgent carries ClientInfo.UserAgent.
	HeaderKeyUserAgent = "User-Agent"
	// HeaderKeyClientName carries HeaderValueClientName.
	HeaderKeyClientName = "Client-Name"
	// HeaderKeyClientVersion carries the client build version.
	HeaderKeyClientVersion = "Client-Version"
	// HeaderKeyDeviceType carries the server's numeric device type code.
	HeaderKeyDeviceType = "Device-Type"

	// HeaderValueClientName identifies this client family to the server.
	HeaderValueClientName = "cli"
	// DefaultDeviceType is the server's device type code for a Linux CLI.
	DefaultDeviceType = "8"
)

// ClientInfo describes the running build for identification headers.
type ClientInfo struct {
	Version    string
	BuildType  string
	Flavor     string
	DeviceType string
}

// UserAgent returns the User-Agent header value.
func (i ClientInfo) UserAgent() string {
	return fmt.Sprintf("Passvault_CLI/%s (%s/%s) (%s; %s)",
		i.Version, i.BuildType, i.Flavor, runtime.GOOS, runtime.GOARCH)
}

// Headers sets the identification headers on every request.
func Headers(info ClientInfo) Interceptor {
	deviceType := info.DeviceType
	if deviceType == "" {
		deviceType = DefaultDeviceType
	}
	userAgent := info.UserAgent()
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			req = req.Clone(req.Context())
			req.Header.Set(HeaderKeyUserAgent, userAgent)
			req.Header.Set(HeaderKeyClientName, HeaderValueClientName)
			req.Header.Set(HeaderKeyClientVersion, info.Version)
			req.Header.Set(HeaderKeyDeviceType, deviceType)
			return next.RoundTrip(req)
		})
	}
}
