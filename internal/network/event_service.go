package network

import (
	"context"

	"passvault/internal/domain"
)

// EventService reports organization events to the events server.
type EventService struct {
	events *Client
}

// NewEventService returns an EventService over the authenticated events client.
func NewEventService(events *Client) *EventService { return &EventService{events: events} }

// SendOrganizationEvents uploads events in one batch.
func (s *EventService) SendOrganizationEvents(ctx context.Context, events []domain.OrganizationEvent) error {
	if len(events) == 0 {
		return nil
	}
	return s.events.postJSON(ctx, "/collect", events, nil)
}

var _ domain.EventService = (*EventService)(nil)
