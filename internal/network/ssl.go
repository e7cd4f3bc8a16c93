package network

import (
	"crypto/tls"
	"fmt"
)

// KeyManager supplies an optional client certificate for mutual TLS.
// A nil certificate with a nil error means none is configured.
type KeyManager interface {
	ClientCertificate() (*tls.Certificate, error)
}

// FileKeyManager loads a PEM certificate and key pair from disk.
type FileKeyManager struct {
	CertFile string
	KeyFile  string
}

// ClientCertificate implements KeyManager.
func (m FileKeyManager) ClientCertificate() (*tls.Certificate, error) {
	if m.CertFile == "" && m.KeyFile == "" {
		return nil, nil
	}
	cert, err := tls.LoadX509KeyPair(m.CertFile, m.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("load client certificate: %w", err)
	}
	return &cert, nil
}

// SSLManager builds the TLS configuration shared by every client.
type SSLManager struct {
	keys KeyManager
}

// NewSSLManager returns an SSLManager; keys may be nil.
func NewSSLManager(keys KeyManager) *SSLManager {
	return &SSLManager{keys: keys}
}

// TLSConfig returns the client TLS configuration. A nil manager yields the
// defaults without a client certificate.
func (m *SSLManager) TLSConfig() (*tls.Config, error) {
	cfg := &tls.Config{MinVersion: tls.VersionTLS12}
	if m == nil || m.keys == nil {
		return cfg, nil
	}
	cert, err := m.keys.ClientCertificate()
	if err != nil {
		return nil, err
	}
	if cert != nil {
		cfg.Certificates = []tls.Certificate{*cert}
	}
	return cfg, nil
}
