package events_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"jaruri/config"
	"jaruri/infras/kafka"
	kafkaMocks "jaruri/infras/kafka/mocks"
	"jaruri/infras/otel/mocks"
	"jaruri/internal/events"
	zapierMocks "jaruri/internal/integrations/zapier/mocks"
)

func dispatcherConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.BookingTopic = "jaruri.bookings"
	cfg.External.Zapier.NewBookingWebhook = "https://hooks.zapier.com/new-booking"
	cfg.External.Zapier.BookingStatusWebhook = "https://hooks.zapier.com/booking-status"
	cfg.External.Zapier.NewUserWebhook = "https://hooks.zapier.com/new-user"

	return cfg
}

func TestDispatcher_BookingCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBroker := kafkaMocks.NewMockClient(ctrl)
	mockZapier := zapierMocks.NewMockClient(ctrl)

	cfg := dispatcherConfig()

	dispatcher := events.NewDispatcher(cfg, mockBroker, mockZapier, mocks.NewOtel())

	payload := events.BookingCreatedPayload{
		BookingID:      "booking-1",
		ServiceName:    "Electrical Repairs",
		CustomerName:   "Ramesh Shrestha",
		Location:       "Kathmandu",
		Address:        "Baneshwor, Kathmandu",
		ScheduledDate:  "2026-09-15",
		Status:         "pending",
		EstimatedPrice: "500.00",
	}

	mockBroker.EXPECT().
		SendMessages(gomock.Any(), "jaruri.bookings", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			assert.Len(t, messages, 1)
			assert.Equal(t, "booking-1", messages[0].Key)

			sent, ok := messages[0].Value.(events.BookingCreatedPayload)
			assert.True(t, ok)
			assert.Equal(t, events.EventBookingCreated, sent.Event)

			return nil
		})

	mockZapier.EXPECT().
		Send(gomock.Any(), cfg.External.Zapier.NewBookingWebhook, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload any) error {
			sent, ok := payload.(events.BookingCreatedPayload)
			assert.True(t, ok)
			assert.Equal(t, events.EventBookingCreated, sent.Event)

			return nil
		})

	dispatcher.BookingCreated(context.Background(), payload)
}

func TestDispatcher_BookingCreated_KafkaDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBroker := kafkaMocks.NewMockClient(ctrl)
	mockZapier := zapierMocks.NewMockClient(ctrl)

	cfg := dispatcherConfig()
	cfg.Kafka.Enable = false

	dispatcher := events.NewDispatcher(cfg, mockBroker, mockZapier, mocks.NewOtel())

	// No SendMessages expectation: the broker must not be touched.
	mockZapier.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	dispatcher.BookingCreated(context.Background(), events.BookingCreatedPayload{BookingID: "booking-1"})
}

func TestDispatcher_BookingStatusChanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBroker := kafkaMocks.NewMockClient(ctrl)
	mockZapier := zapierMocks.NewMockClient(ctrl)

	cfg := dispatcherConfig()

	dispatcher := events.NewDispatcher(cfg, mockBroker, mockZapier, mocks.NewOtel())

	mockBroker.EXPECT().
		SendMessages(gomock.Any(), "jaruri.bookings", gomock.Any()).
		Return(nil)

	mockZapier.EXPECT().
		Send(gomock.Any(), cfg.External.Zapier.BookingStatusWebhook, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload any) error {
			sent, ok := payload.(events.BookingStatusChangedPayload)
			assert.True(t, ok)
			assert.Equal(t, events.EventBookingStatusChanged, sent.Event)
			assert.Equal(t, "pending", sent.PreviousStatus)
			assert.Equal(t, "assigned", sent.Status)

			return nil
		})

	dispatcher.BookingStatusChanged(context.Background(), events.BookingStatusChangedPayload{
		BookingID:      "booking-1",
		PreviousStatus: "pending",
		Status:         "assigned",
	})
}

func TestDispatcher_UserRegistered_SkipsKafka(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBroker := kafkaMocks.NewMockClient(ctrl)
	mockZapier := zapierMocks.NewMockClient(ctrl)

	cfg := dispatcherConfig()

	dispatcher := events.NewDispatcher(cfg, mockBroker, mockZapier, mocks.NewOtel())

	// User events only go to Zapier; the booking topic stays clean.
	mockZapier.EXPECT().
		Send(gomock.Any(), cfg.External.Zapier.NewUserWebhook, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload any) error {
			sent, ok := payload.(events.UserRegisteredPayload)
			assert.True(t, ok)
			assert.Equal(t, events.EventUserRegistered, sent.Event)

			return nil
		})

	dispatcher.UserRegistered(context.Background(), events.UserRegisteredPayload{
		UserID:   "user-1",
		Username: "sita",
		Email:    "sita@example.com",
	})
}
