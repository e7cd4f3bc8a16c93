package types

import "time"

// EventType enumerates auditable client events.
type EventType int

const (
	EventUserLoggedIn               EventType = 1000
	EventUserClientExportedVault    EventType = 1007
	EventCipherClientViewed         EventType = 1107
	EventCipherClientCopiedPassword EventType = 1111
	EventCipherClientAutofilled     EventType = 1114
)

// OrganizationEvent is reported to the events endpoint.
type OrganizationEvent struct {
	Type           EventType      `json:"type"`
	CipherID       string         `json:"cipherId,omitempty"`
	OrganizationID OrganizationID `json:"organizationId,omitempty"`
	Date           time.Time      `json:"date"`
}
