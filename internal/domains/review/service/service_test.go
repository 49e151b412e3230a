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
	bookingModel "jaruri/internal/domains/booking/model"
	professionalMocks "jaruri/internal/domains/professional/service/mocks"
	reviewMocks "jaruri/internal/domains/review/mocks"
	"jaruri/internal/domains/review/model"
	"jaruri/internal/domains/review/model/dto"
	"jaruri/internal/domains/review/service"
	cacheMocks "jaruri/shared/cache/mocks"
	"jaruri/shared/constant"
	"jaruri/shared/failure"
)

type reviewFixture struct {
	repo          *reviewMocks.MockReview
	bookingRepo   *bookingMocks.MockBooking
	professionals *professionalMocks.MockProfessional
	cache         *cacheMocks.MockRedisCache
	svc           service.Review
}

func newReviewFixture(ctrl *gomock.Controller) *reviewFixture {
	f := &reviewFixture{
		repo:          reviewMocks.NewMockReview(ctrl),
		bookingRepo:   bookingMocks.NewMockBooking(ctrl),
		professionals: professionalMocks.NewMockProfessional(ctrl),
		cache:         cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.bookingRepo, f.professionals, cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func completedBooking() bookingModel.Booking {
	proID := "pro-7"

	return bookingModel.Booking{
		ID:             "booking-1",
		CustomerID:     "customer-1",
		ProfessionalID: &proID,
		Status:         bookingModel.StatusCompleted,
	}
}

func TestReviewService_Create(t *testing.T) {
	req := dto.CreateReviewRequest{
		BookingID: "booking-1",
		Rating:    5,
	}

	t.Run("booking not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newReviewFixture(ctrl)

		f.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(bookingModel.Booking{}, nil)

		_, err := f.svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("booking without assigned professional", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newReviewFixture(ctrl)

		unassigned := completedBooking()
		unassigned.ProfessionalID = nil

		f.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(unassigned, nil)

		_, err := f.svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("booking already reviewed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newReviewFixture(ctrl)

		f.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(completedBooking(), nil)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := f.svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("successful review recomputes the professional rating", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newReviewFixture(ctrl)

		f.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(completedBooking(), nil)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		// The average is rebuilt over every stored review, not nudged.
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Review{
				{ID: "review-1", ProfessionalID: "pro-7", Rating: 4},
				{ID: "review-2", ProfessionalID: "pro-7", Rating: 5},
			}, nil)

		f.professionals.EXPECT().
			SetRating(gomock.Any(), "pro-7", "4.50").
			Return(nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "customer-1")

		res, err := f.svc.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "customer-1", res.CustomerID)
		assert.Equal(t, "pro-7", res.ProfessionalID)
		assert.Equal(t, 5, res.Rating)
	})
}

func TestReviewService_ListByProfessional(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReviewFixture(ctrl)

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Review{
			{ID: "review-1", ProfessionalID: "pro-7", Rating: 4},
		}, nil)

	f.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := f.svc.ListByProfessional(context.Background(), "pro-7")

	assert.NoError(t, err)
	assert.Len(t, res.Reviews, 1)
}
