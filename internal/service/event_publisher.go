package service

import (
	"context"
	"time"

	"hotel-frontdesk/pkg/rabbitmq"

	"github.com/sirupsen/logrus"
)

// Routing keys published on the hotel events exchange.
const (
	EventRoomStatusChanged = "room.status_changed"
	EventBookingCreated    = "booking.created"
	EventBookingCheckedIn  = "booking.checked_in"
	EventBookingCheckedOut = "booking.checked_out"
	EventBookingCancelled  = "booking.cancelled"
	EventPaymentRecorded   = "payment.recorded"
	EventRoomTypeDeleted   = "room_type.deleted"
	EventRoomTypeRestored  = "room_type.restored"
	EventRoomTypePurged    = "room_type.purged"
)

const publishTimeout = 5 * time.Second

// EventPublisher emits domain events after a transaction commits.
// Publishing is best-effort: failures are logged and never surface to the caller.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{})
}

type rabbitEventPublisher struct {
	publisher *rabbitmq.Publisher
	log       *logrus.Logger
}

func NewRabbitEventPublisher(publisher *rabbitmq.Publisher, log *logrus.Logger) EventPublisher {
	return &rabbitEventPublisher{publisher: publisher, log: log}
}

func (p *rabbitEventPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) {
	// Detached from the request so a client disconnect does not drop the event.
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := p.publisher.Publish(pubCtx, routingKey, payload); err != nil {
		p.log.Warnf("Failed to publish event %s: %+v", routingKey, err)
	}
}

type noopEventPublisher struct {
	log *logrus.Logger
}

// NewNoopEventPublisher is used when no broker is configured.
func NewNoopEventPublisher(log *logrus.Logger) EventPublisher {
	return &noopEventPublisher{log: log}
}

func (p *noopEventPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) {
	p.log.Debugf("Event %s dropped, publisher disabled", routingKey)
}
