package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"jaruri/config"
	"jaruri/infras/otel/mocks"
	contactMocks "jaruri/internal/domains/contact/mocks"
	"jaruri/internal/domains/contact/model/dto"
	"jaruri/internal/domains/contact/service"
	cacheMocks "jaruri/shared/cache/mocks"
	"jaruri/shared/failure"
)

func newContactService(ctrl *gomock.Controller) (service.Contact, *contactMocks.MockContact, *contactMocks.MockNotification) {
	mockContactRepo := contactMocks.NewMockContact(ctrl)
	mockNotificationRepo := contactMocks.NewMockNotification(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockContactRepo, mockNotificationRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockContactRepo, mockNotificationRepo
}

func TestContactService_SubmitRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockContactRepo, _ := newContactService(ctrl)

	req := dto.CreateContactRequest{
		Name:    "Ramesh Shrestha",
		Email:   "ramesh@example.com",
		Message: "Do you cover Bhaktapur?",
	}

	t.Run("successful submission", func(t *testing.T) {
		mockContactRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.SubmitRequest(context.Background(), req)

		assert.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, req.Email, res.Email)
	})

	t.Run("repository error", func(t *testing.T) {
		mockContactRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := svc.SubmitRequest(context.Background(), req)

		assert.Error(t, err)
	})

	// Repeat submissions are accepted; follow-up messages from the same visitor
	// are normal.
	t.Run("repeat submission from the same email", func(t *testing.T) {
		mockContactRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.SubmitRequest(context.Background(), req)

		assert.NoError(t, err)
	})
}

func TestContactService_Subscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockNotificationRepo := newContactService(ctrl)

	req := dto.SubscribeNotificationRequest{Email: "ramesh@example.com"}

	t.Run("successful subscription", func(t *testing.T) {
		mockNotificationRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		mockNotificationRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.Subscribe(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, req.Email, res.Email)
	})

	t.Run("duplicate subscription", func(t *testing.T) {
		mockNotificationRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := svc.Subscribe(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}
