package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"jaruri/config"
	"jaruri/infras/otel/mocks"
	bookingMocks "jaruri/internal/domains/booking/mocks"
	"jaruri/internal/domains/booking/model"
	"jaruri/internal/domains/booking/model/dto"
	"jaruri/internal/domains/booking/service"
	catalogModel "jaruri/internal/domains/catalog/model"
	catalogMocks "jaruri/internal/domains/catalog/service/mocks"
	professionalModel "jaruri/internal/domains/professional/model"
	professionalMocks "jaruri/internal/domains/professional/service/mocks"
	userMocks "jaruri/internal/domains/user/mocks"
	userModel "jaruri/internal/domains/user/model"
	eventMocks "jaruri/internal/events/mocks"
	cacheMocks "jaruri/shared/cache/mocks"
	"jaruri/shared/constant"
	gDto "jaruri/shared/dto"
	"jaruri/shared/failure"
)

type bookingFixture struct {
	repo          *bookingMocks.MockBooking
	userRepo      *userMocks.MockUser
	catalog       *catalogMocks.MockCatalog
	professionals *professionalMocks.MockProfessional
	dispatcher    *eventMocks.MockDispatcher
	cache         *cacheMocks.MockRedisCache
	svc           service.Booking
}

func newBookingFixture(ctrl *gomock.Controller) *bookingFixture {
	f := &bookingFixture{
		repo:          bookingMocks.NewMockBooking(ctrl),
		userRepo:      userMocks.NewMockUser(ctrl),
		catalog:       catalogMocks.NewMockCatalog(ctrl),
		professionals: professionalMocks.NewMockProfessional(ctrl),
		dispatcher:    eventMocks.NewMockDispatcher(ctrl),
		cache:         cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.userRepo, f.catalog, f.professionals, f.dispatcher, cfg, f.cache, mocks.NewOtel())

	// Cache invalidation and event dispatch run on detached goroutines; the test
	// may return before they fire.
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.dispatcher.EXPECT().BookingCreated(gomock.Any(), gomock.Any()).AnyTimes()
	f.dispatcher.EXPECT().BookingStatusChanged(gomock.Any(), gomock.Any()).AnyTimes()

	return f
}

func electricalRepairs() catalogModel.Service {
	return catalogModel.Service{
		ID:        "svc-electrical",
		Name:      "Electrical Repairs",
		BasePrice: "500.00",
		Unit:      catalogModel.UnitHour,
		Active:    true,
	}
}

func validBookingRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		ServiceID:     "svc-electrical",
		Location:      "Kathmandu",
		Address:       "Baneshwor, Kathmandu",
		ScheduledDate: "2026-09-15",
		ContactName:   "Ramesh Shrestha",
		ContactPhone:  "9841000000",
	}
}

func TestBookingService_Create_UnknownService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl)

	f.catalog.EXPECT().
		ResolveService(gomock.Any(), "svc-missing").
		Return(catalogModel.Service{}, failure.NotFound("service not found"))

	req := validBookingRequest()
	req.ServiceID = "svc-missing"

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "customer-1")

	_, err := f.svc.Create(ctx, req)

	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestBookingService_Create_NoMatchStaysPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl)

	f.catalog.EXPECT().
		ResolveService(gomock.Any(), "svc-electrical").
		Return(electricalRepairs(), nil)

	f.professionals.EXPECT().
		Match(gomock.Any(), "Electrical Repairs", "Kathmandu").
		Return(nil, nil)

	var inserted model.Booking

	f.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking model.Booking) error {
			inserted = booking
			return nil
		})

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "customer-1")

	res, err := f.svc.Create(ctx, validBookingRequest())

	assert.NoError(t, err)
	assert.Equal(t, model.StatusPending.String(), res.Status)
	assert.Nil(t, res.ProfessionalID)
	assert.Equal(t, "customer-1", inserted.CustomerID)
	assert.Equal(t, "500.00", inserted.EstimatedPrice)
	assert.Equal(t, model.PaymentMethodCash, inserted.PaymentMethod)
}

func TestBookingService_Create_MatchAssignsProfessional(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl)

	f.catalog.EXPECT().
		ResolveService(gomock.Any(), "svc-electrical").
		Return(electricalRepairs(), nil)

	f.professionals.EXPECT().
		Match(gomock.Any(), "Electrical Repairs", "Kathmandu").
		Return(&professionalModel.Professional{ID: "pro-7"}, nil)

	f.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "customer-1")

	res, err := f.svc.Create(ctx, validBookingRequest())

	assert.NoError(t, err)
	assert.Equal(t, model.StatusAssigned.String(), res.Status)

	if assert.NotNil(t, res.ProfessionalID) {
		assert.Equal(t, "pro-7", *res.ProfessionalID)
	}
}

func TestBookingService_Create_MintsGuestPerBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl)

	f.catalog.EXPECT().
		ResolveService(gomock.Any(), "svc-electrical").
		Return(electricalRepairs(), nil).
		Times(2)

	f.professionals.EXPECT().
		Match(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(2)

	var guests []userModel.User

	f.userRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user userModel.User) error {
			guests = append(guests, user)
			return nil
		}).
		Times(2)

	f.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	// No user in context: each anonymous booking mints its own guest identity.
	first, err := f.svc.Create(context.Background(), validBookingRequest())
	assert.NoError(t, err)

	second, err := f.svc.Create(context.Background(), validBookingRequest())
	assert.NoError(t, err)

	assert.Len(t, guests, 2)
	assert.NotEqual(t, guests[0].ID, guests[1].ID)
	assert.NotEqual(t, first.CustomerID, second.CustomerID)

	// Usernames stay unique even when both bookings land in the same
	// millisecond; the column carries a UNIQUE constraint.
	assert.NotEqual(t, guests[0].Username, guests[1].Username)

	for _, guest := range guests {
		assert.True(t, strings.HasPrefix(guest.Username, "guest_"))
		assert.Equal(t, constant.RoleCustomer, guest.Role)
		assert.Equal(t, "Ramesh Shrestha", guest.FullName)
		assert.NotEmpty(t, guest.Password)
	}
}

func TestBookingService_Create_InvalidScheduledDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl)

	f.catalog.EXPECT().
		ResolveService(gomock.Any(), "svc-electrical").
		Return(electricalRepairs(), nil)

	req := validBookingRequest()
	req.ScheduledDate = "15-09-2026"

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "customer-1")

	_, err := f.svc.Create(ctx, req)

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl)

	f.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	t.Run("found", func(t *testing.T) {
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{ID: "booking-1", Status: model.StatusPending}, nil)

		res, err := f.svc.Get(context.Background(), "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, "booking-1", res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		_, err := f.svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_GetMine_RequiresAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl)

	_, err := f.svc.GetMine(context.Background(), gDto.QueryParams{Page: 1, Limit: 10})

	assert.Error(t, err)
	assert.Equal(t, 401, failure.GetCode(err))
}

func TestBookingService_UpdateStatus(t *testing.T) {
	proID := "pro-7"

	tests := []struct {
		name          string
		current       model.Booking
		next          string
		wantErr       bool
		wantCode      int
		wantIncrement bool
	}{
		{
			name:    "invalid status",
			next:    "done",
			wantErr: true, wantCode: 400,
		},
		{
			name:          "completing an assigned booking bumps the job counter",
			current:       model.Booking{ID: "booking-1", Status: model.StatusAssigned, ProfessionalID: &proID},
			next:          "completed",
			wantIncrement: true,
		},
		{
			name:    "completing an unassigned booking leaves counters alone",
			current: model.Booking{ID: "booking-2", Status: model.StatusPending},
			next:    "completed",
		},
		{
			name:    "re-completing does not double count",
			current: model.Booking{ID: "booking-3", Status: model.StatusCompleted, ProfessionalID: &proID},
			next:    "completed",
		},
		{
			name:    "any status reaches any other",
			current: model.Booking{ID: "booking-4", Status: model.StatusRefunded, ProfessionalID: &proID},
			next:    "pending",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newBookingFixture(ctrl)

			if !tt.wantErr {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(tt.current, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			}

			if tt.wantIncrement {
				f.professionals.EXPECT().
					IncrementTotalJobs(gomock.Any(), proID).
					Return(nil)
			}

			err := f.svc.UpdateStatus(context.Background(), tt.current.ID, dto.UpdateBookingStatusRequest{Status: tt.next})

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestBookingService_UpdatePayment_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl)

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Booking{}, nil)

	err := f.svc.UpdatePayment(context.Background(), "missing", dto.UpdateBookingPaymentRequest{PaymentStatus: model.PaymentStatusPaid})

	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}
