package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"jaruri/config"
	"jaruri/infras/otel/mocks"
	bookingMocks "jaruri/internal/domains/booking/mocks"
	locationMocks "jaruri/internal/domains/location/mocks"
	professionalMocks "jaruri/internal/domains/professional/mocks"
	reviewMocks "jaruri/internal/domains/review/mocks"
	reviewModel "jaruri/internal/domains/review/model"
	"jaruri/internal/domains/stats/service"
	cacheMocks "jaruri/shared/cache/mocks"
)

func TestStatsService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfessionalRepo := professionalMocks.NewMockProfessional(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockReviewRepo := reviewMocks.NewMockReview(ctrl)
	mockLocationRepo := locationMocks.NewMockLocation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockProfessionalRepo, mockBookingRepo, mockReviewRepo, mockLocationRepo, cfg, mockCache, mocks.NewOtel())

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	t.Run("counters and average", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockProfessionalRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(12, nil)

		mockBookingRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(87, nil)

		mockLocationRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(5, nil)

		mockReviewRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]reviewModel.Review{
				{Rating: 4},
				{Rating: 5},
				{Rating: 5},
			}, nil)

		res, err := svc.Summary(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 12, res.VerifiedProfessionals)
		assert.Equal(t, 87, res.CompletedBookings)
		assert.Equal(t, 5, res.ServiceableLocations)
		assert.Equal(t, "4.67", res.AverageRating)
	})

	t.Run("no reviews yet", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockProfessionalRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil)

		mockBookingRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil)

		mockLocationRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil)

		mockReviewRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]reviewModel.Review{}, nil)

		res, err := svc.Summary(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, "0.00", res.AverageRating)
	})
}
