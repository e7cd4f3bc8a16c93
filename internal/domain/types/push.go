package types

// PushTokenRequest registers a push notification token for this app.
type PushTokenRequest struct {
	PushToken string `json:"pushToken"`
}
