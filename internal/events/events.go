package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"

	"jaruri/config"
	"jaruri/infras/kafka"
	"jaruri/infras/otel"
	"jaruri/internal/integrations/zapier"
	"jaruri/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
	EventUserRegistered       = "user.registered"
)

type BookingCreatedPayload struct {
	Event          string  `json:"event"`
	BookingID      string  `json:"booking_id"`
	ServiceName    string  `json:"service_name"`
	CustomerName   string  `json:"customer_name"`
	CustomerPhone  string  `json:"customer_phone,omitempty"`
	Location       string  `json:"location"`
	Address        string  `json:"address"`
	ScheduledDate  string  `json:"scheduled_date"`
	ScheduledTime  string  `json:"scheduled_time,omitempty"`
	Status         string  `json:"status"`
	ProfessionalID *string `json:"professional_id,omitempty"`
	EstimatedPrice string  `json:"estimated_price"`
}

type BookingStatusChangedPayload struct {
	Event          string  `json:"event"`
	BookingID      string  `json:"booking_id"`
	PreviousStatus string  `json:"previous_status"`
	Status         string  `json:"status"`
	ProfessionalID *string `json:"professional_id,omitempty"`
}

type UserRegisteredPayload struct {
	Event    string `json:"event"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// Dispatcher fans domain events out to the Kafka booking topic and to the Zapier hooks
// the operations team consumes. Delivery is best effort; a failed hook never fails the
// request that produced the event.
type Dispatcher interface {
	BookingCreated(ctx context.Context, payload BookingCreatedPayload)
	BookingStatusChanged(ctx context.Context, payload BookingStatusChangedPayload)
	UserRegistered(ctx context.Context, payload UserRegisteredPayload)
}

type dispatcherImpl struct {
	cfg    *config.Config
	broker kafka.Client
	zapier zapier.Client
	otel   otel.Otel
}

func NewDispatcher(cfg *config.Config, broker kafka.Client, zapier zapier.Client, otel otel.Otel) Dispatcher {
	return &dispatcherImpl{
		cfg:    cfg,
		broker: broker,
		zapier: zapier,
		otel:   otel,
	}
}

func (d *dispatcherImpl) BookingCreated(ctx context.Context, payload BookingCreatedPayload) {
	payload.Event = EventBookingCreated

	d.publish(ctx, payload.BookingID, payload)
	d.notify(ctx, d.cfg.External.Zapier.NewBookingWebhook, payload)
}

func (d *dispatcherImpl) BookingStatusChanged(ctx context.Context, payload BookingStatusChangedPayload) {
	payload.Event = EventBookingStatusChanged

	d.publish(ctx, payload.BookingID, payload)
	d.notify(ctx, d.cfg.External.Zapier.BookingStatusWebhook, payload)
}

func (d *dispatcherImpl) UserRegistered(ctx context.Context, payload UserRegisteredPayload) {
	payload.Event = EventUserRegistered

	d.notify(ctx, d.cfg.External.Zapier.NewUserWebhook, payload)
}

func (d *dispatcherImpl) publish(ctx context.Context, key string, payload any) {
	if !d.cfg.Kafka.Enable {
		return
	}

	ctx, scope := d.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".publish")
	defer scope.End()

	message := kafka.Message{
		Key:   key,
		Value: payload,
	}

	if err := d.broker.SendMessages(ctx, d.cfg.Kafka.BookingTopic, message); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to publish event to kafka")
	}
}

func (d *dispatcherImpl) notify(ctx context.Context, webhookURL string, payload any) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".notify")
	defer scope.End()

	if err := d.zapier.Send(ctx, webhookURL, payload); err != nil {
		log.Error().Err(err).Msg("failed to notify zapier")
	}
}
