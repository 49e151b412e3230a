package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"jaruri/internal/domains/booking/model/dto"
)

func createRequest(scheduledDate string) dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		ServiceID:     "svc-1",
		Location:      "Kathmandu",
		Address:       "Baneshwor, Kathmandu",
		ScheduledDate: scheduledDate,
	}
}

func TestCreateBookingRequest_ToModel_ScheduledDate(t *testing.T) {
	t.Run("plain date", func(t *testing.T) {
		req := createRequest("2026-09-15")

		booking, err := req.ToModel("customer-1", "500.00", "customer-1")

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), booking.ScheduledDate)
		assert.Nil(t, booking.ScheduledTime)
	})

	t.Run("RFC 3339 timestamp splits into date and time", func(t *testing.T) {
		req := createRequest("2026-09-15T10:30:00Z")

		booking, err := req.ToModel("customer-1", "500.00", "customer-1")

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), booking.ScheduledDate)

		if assert.NotNil(t, booking.ScheduledTime) {
			assert.Equal(t, "10:30", *booking.ScheduledTime)
		}
	})

	t.Run("midnight timestamp keeps scheduled time empty", func(t *testing.T) {
		req := createRequest("2026-09-15T00:00:00Z")

		booking, err := req.ToModel("customer-1", "500.00", "customer-1")

		assert.NoError(t, err)
		assert.Nil(t, booking.ScheduledTime)
	})

	t.Run("explicit scheduled time wins over the timestamp clock", func(t *testing.T) {
		explicit := "14:00"

		req := createRequest("2026-09-15T10:30:00Z")
		req.ScheduledTime = &explicit

		booking, err := req.ToModel("customer-1", "500.00", "customer-1")

		assert.NoError(t, err)

		if assert.NotNil(t, booking.ScheduledTime) {
			assert.Equal(t, "14:00", *booking.ScheduledTime)
		}
	})

	t.Run("unparseable input is an error", func(t *testing.T) {
		req := createRequest("next tuesday")

		_, err := req.ToModel("customer-1", "500.00", "customer-1")

		assert.Error(t, err)
	})
}
