package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"passvault/internal/domain"
)

const authFilename = "auth.json"

var (
	// ErrNoAccessToken is returned when no account is logged in.
	ErrNoAccessToken = errors.New("no access token stored")
	// ErrNoPinProtectedKey is returned when unlock with PIN is not set up.
	ErrNoPinProtectedKey = errors.New("no PIN-protected key stored")
)

// authFile is the on-disk layout of auth.json.
type authFile struct {
	AppID        domain.AppID                  `json:"app_id,omitempty"`
	AccessToken  string                        `json:"access_token,omitempty"`
	RefreshToken string                        `json:"refresh_token,omitempty"`
	PinKeys      map[domain.UserID]pinEnvelope `json:"pin_protected_user_keys,omitempty"`
}

// AuthFileStore persists the installation identifier and account credentials.
type AuthFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewAuthFileStore returns an AuthFileStore rooted at dir.
func NewAuthFileStore(dir string) *AuthFileStore {
	return &AuthFileStore{dir: dir}
}

// UniqueAppID returns this installation's identifier, generating and
// persisting a random one on first use.
func (s *AuthFileStore) UniqueAppID() (domain.AppID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var f authFile
	if err := readJSON(s.path(), &f); err != nil {
		return "", err
	}
	if f.AppID != "" {
		return f.AppID, nil
	}
	f.AppID = domain.AppID(uuid.NewString())
	if err := writeJSON(s.path(), f); err != nil {
		return "", err
	}
	return f.AppID, nil
}

// AccessToken returns the stored access token or "".
func (s *AuthFileStore) AccessToken() string {
	f, _ := s.read()
	return f.AccessToken
}

// RefreshToken returns the stored refresh token or "".
func (s *AuthFileStore) RefreshToken() string {
	f, _ := s.read()
	return f.RefreshToken
}

// StoreTokens replaces both tokens. Empty strings log the account out.
func (s *AuthFileStore) StoreTokens(accessToken, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var f authFile
	if err := readJSON(s.path(), &f); err != nil {
		return err
	}
	f.AccessToken = accessToken
	f.RefreshToken = refreshToken
	return writeJSON(s.path(), f)
}

// ActiveUserID returns the subject of the stored access token. The token is
// not verified here; the server does that on every request.
func (s *AuthFileStore) ActiveUserID() (domain.UserID, error) {
	token := s.AccessToken()
	if token == "" {
		return "", ErrNoAccessToken
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("parse access token: %w", err)
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("access token subject: %w", err)
	}
	if sub == "" {
		return "", errors.New("access token has no subject")
	}
	return domain.UserID(sub), nil
}

// StorePinProtectedUserKey seals userKey with pin for userID.
func (s *AuthFileStore) StorePinProtectedUserKey(userID domain.UserID, pin string, userKey []byte) error {
	env, err := sealWithPin(pin, userKey, []byte(userID))
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var f authFile
	if err := readJSON(s.path(), &f); err != nil {
		return err
	}
	if f.PinKeys == nil {
		f.PinKeys = make(map[domain.UserID]pinEnvelope)
	}
	f.PinKeys[userID] = env
	return writeJSON(s.path(), f)
}

// PinProtectedUserKey opens the key sealed for userID with pin.
func (s *AuthFileStore) PinProtectedUserKey(userID domain.UserID, pin string) ([]byte, error) {
	f, err := s.read()
	if err != nil {
		return nil, err
	}
	env, ok := f.PinKeys[userID]
	if !ok {
		return nil, ErrNoPinProtectedKey
	}
	return openWithPin(pin, env, []byte(userID))
}

// HasPinProtectedUserKey reports whether unlock with PIN is set up for userID.
func (s *AuthFileStore) HasPinProtectedUserKey(userID domain.UserID) bool {
	f, err := s.read()
	if err != nil {
		return false
	}
	_, ok := f.PinKeys[userID]
	return ok
}

// ClearPinProtectedUserKey removes the PIN-sealed key for userID.
func (s *AuthFileStore) ClearPinProtectedUserKey(userID domain.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var f authFile
	if err := readJSON(s.path(), &f); err != nil {
		return err
	}
	if _, ok := f.PinKeys[userID]; !ok {
		return nil
	}
	delete(f.PinKeys, userID)
	return writeJSON(s.path(), f)
}

func (s *AuthFileStore) read() (authFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var f authFile
	err := readJSON(s.path(), &f)
	return f, err
}

func (s *AuthFileStore) path() string {
	return filepath.Join(s.dir, authFilename)
}

// Compile-time assertion that AuthFileStore implements domain.AuthDiskSource.
var _ domain.AuthDiskSource = (*AuthFileStore)(nil)
