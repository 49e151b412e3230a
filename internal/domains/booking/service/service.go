package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"jaruri/config"
	"jaruri/infras/otel"
	"jaruri/internal/domains/booking/model"
	"jaruri/internal/domains/booking/model/dto"
	"jaruri/internal/domains/booking/repository"
	catalogService "jaruri/internal/domains/catalog/service"
	professionalService "jaruri/internal/domains/professional/service"
	userModel "jaruri/internal/domains/user/model"
	userRepo "jaruri/internal/domains/user/repository"
	"jaruri/internal/events"
	"jaruri/shared"
	"jaruri/shared/cache"
	"jaruri/shared/constant"
	gDto "jaruri/shared/dto"
	"jaruri/shared/failure"
	gModel "jaruri/shared/model"
	"jaruri/shared/password"
	"jaruri/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	GetMine(ctx context.Context, req gDto.QueryParams) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateBookingStatusRequest) error
	UpdatePayment(ctx context.Context, id string, req dto.UpdateBookingPaymentRequest) error
}

type serviceImpl struct {
	repo          repository.Booking
	userRepo      userRepo.User
	catalog       catalogService.Catalog
	professionals professionalService.Professional
	dispatcher    events.Dispatcher
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(
	repo repository.Booking,
	userRepo userRepo.User,
	catalog catalogService.Catalog,
	professionals professionalService.Professional,
	dispatcher events.Dispatcher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:          repo,
		userRepo:      userRepo,
		catalog:       catalog,
		professionals: professionals,
		dispatcher:    dispatcher,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
	}
}

// Create registers a booking against an active service. Anonymous visitors get a fresh
// guest identity minted from their contact details. When a verified, available
// professional covers the service and location the booking is assigned on the spot;
// otherwise it stays pending for manual dispatch.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	service, err := s.catalog.ResolveService(ctx, req.ServiceID)
	if err != nil {
		return res, err
	}

	customerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	actor := customerID
	if customerID == constant.Empty {
		guest, err := s.mintGuest(ctx, req)
		if err != nil {
			return res, err
		}

		customerID = guest.ID
		actor = constant.ContextGuest
	}

	booking, err := req.ToModel(customerID, service.BasePrice, actor)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid scheduled date: %v", err)) // nolint:wrapcheck
	}

	match, err := s.professionals.Match(ctx, service.Name, booking.Location)
	if err != nil {
		return res, err
	}

	if match != nil {
		booking.ProfessionalID = &match.ID
		booking.Status = model.StatusAssigned
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.invalidateCaches(ctx)

	go func() {
		c := context.WithoutCancel(ctx)

		s.dispatcher.BookingCreated(c, events.BookingCreatedPayload{
			BookingID:      booking.ID,
			ServiceName:    service.Name,
			CustomerName:   req.ContactName,
			CustomerPhone:  req.ContactPhone,
			Location:       booking.Location,
			Address:        booking.Address,
			ScheduledDate:  req.ScheduledDate,
			ScheduledTime:  derefOrEmpty(booking.ScheduledTime),
			Status:         booking.Status.String(),
			ProfessionalID: booking.ProfessionalID,
			EstimatedPrice: booking.EstimatedPrice,
		})
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

// GetMine scopes the listing to the authenticated customer.
func (s *serviceImpl) GetMine(ctx context.Context, req gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	customerID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if customerID == constant.Empty {
		return res, failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	return s.GetAll(ctx, req, shared.FilterByID(customerID, model.FieldCustomerID, model.TableName))
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.resolve(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// UpdateStatus writes the requested status without consulting a transition table.
// Operators correct bookings out of band, so every valid status is reachable from
// every other. Completing an assigned booking bumps the professional's job counter.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateBookingStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	next := model.Status(req.Status)
	if !next.Valid() {
		return failure.BadRequestFromString(fmt.Sprintf("invalid status: %s", req.Status)) // nolint:wrapcheck
	}

	booking, err := s.resolve(ctx, id)
	if err != nil {
		return err
	}

	previous := booking.Status

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if actor == constant.Empty {
		actor = constant.SystemActor
	}

	fields := map[string]any{
		model.FieldStatus:        next.String(),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	if next == model.StatusCompleted && previous != model.StatusCompleted && booking.ProfessionalID != nil {
		if err := s.professionals.IncrementTotalJobs(ctx, *booking.ProfessionalID); err != nil {
			log.Error().Err(err).Str("professionalID", *booking.ProfessionalID).Msg("failed to bump professional job count")
		}
	}

	s.invalidateCaches(ctx)

	go func() {
		c := context.WithoutCancel(ctx)

		s.dispatcher.BookingStatusChanged(c, events.BookingStatusChangedPayload{
			BookingID:      booking.ID,
			PreviousStatus: previous.String(),
			Status:         next.String(),
			ProfessionalID: booking.ProfessionalID,
		})
	}()

	return nil
}

func (s *serviceImpl) UpdatePayment(ctx context.Context, id string, req dto.UpdateBookingPaymentRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.resolve(ctx, id); err != nil {
		return err
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if actor == constant.Empty {
		actor = constant.SystemActor
	}

	fields := shared.TransformFields(req, actor)

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking payment")

		return fmt.Errorf("failed to update booking payment: %w", err)
	}

	s.invalidateCaches(ctx)

	return nil
}

// mintGuest creates a throwaway customer identity for an unauthenticated booking.
// Identities are minted per booking on purpose; two anonymous bookings from the same
// phone number get two distinct guest users.
func (s *serviceImpl) mintGuest(ctx context.Context, req dto.CreateBookingRequest) (guest userModel.User, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".mintGuest")
	defer scope.End()
	defer scope.TraceIfError(err)

	// The uuid fragment keeps usernames unique when two guests book in the
	// same millisecond; username carries a UNIQUE constraint.
	username := fmt.Sprintf("guest_%d_%s", timezone.Now().UnixMilli(), uuid.NewString()[:8])

	email := req.ContactEmail
	if email == constant.Empty {
		email = fmt.Sprintf("%s@guest.jaruri.app", username)
	}

	fullName := req.ContactName
	if fullName == constant.Empty {
		fullName = "Guest Customer"
	}

	hashed, err := password.Hash(uuid.NewString())
	if err != nil {
		log.Error().Err(err).Msg("failed to hash guest password")

		return guest, fmt.Errorf("failed to hash guest password: %w", err)
	}

	guest = userModel.User{
		ID:         uuid.NewString(),
		Username:   username,
		Email:      email,
		Password:   hashed,
		FullName:   fullName,
		Role:       constant.RoleCustomer,
		IsVerified: false,
		Active:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.ContextGuest,
			ModifiedBy: constant.ContextGuest,
		},
	}

	if req.ContactPhone != constant.Empty {
		phone := req.ContactPhone
		guest.Phone = &phone
	}

	if err = s.userRepo.Insert(ctx, guest); err != nil {
		log.Error().Err(err).Msg("failed to create guest user")

		return guest, fmt.Errorf("failed to create guest user: %w", err)
	}

	return guest, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) resolve(ctx context.Context, id string) (res model.Booking, err error) {
	res, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) invalidateCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetBooking)
		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return constant.Empty
	}

	return *s
}
