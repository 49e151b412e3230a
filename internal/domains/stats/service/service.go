package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"jaruri/config"
	"jaruri/infras/otel"
	bookingModel "jaruri/internal/domains/booking/model"
	bookingRepo "jaruri/internal/domains/booking/repository"
	locationModel "jaruri/internal/domains/location/model"
	locationRepo "jaruri/internal/domains/location/repository"
	professionalModel "jaruri/internal/domains/professional/model"
	professionalRepo "jaruri/internal/domains/professional/repository"
	reviewRepo "jaruri/internal/domains/review/repository"
	"jaruri/internal/domains/stats/model/dto"
	"jaruri/shared/cache"
	"jaruri/shared/constant"
	gDto "jaruri/shared/dto"

	"github.com/rs/zerolog/log"
)

const cacheGetStats = "stats:summary"

type Stats interface {
	Summary(ctx context.Context) (dto.StatsResponse, error)
}

type serviceImpl struct {
	professionalRepo professionalRepo.Professional
	bookingRepo      bookingRepo.Booking
	reviewRepo       reviewRepo.Review
	locationRepo     locationRepo.Location
	cfg              *config.Config
	cache            cache.RedisCache
	otel             otel.Otel
}

func New(
	professionalRepo professionalRepo.Professional,
	bookingRepo bookingRepo.Booking,
	reviewRepo reviewRepo.Review,
	locationRepo locationRepo.Location,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Stats {
	return &serviceImpl{
		professionalRepo: professionalRepo,
		bookingRepo:      bookingRepo,
		reviewRepo:       reviewRepo,
		locationRepo:     locationRepo,
		cfg:              cfg,
		cache:            cache,
		otel:             otel,
	}
}

func (s *serviceImpl) Summary(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetStats, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetStats).Msg("cache hit for stats")

		return res, nil
	}

	professionals, err := s.professionalRepo.Count(ctx, eqFilter(professionalModel.FieldIsVerified, true, professionalModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to count verified professionals")

		return res, fmt.Errorf("failed to count verified professionals: %w", err)
	}

	completed, err := s.bookingRepo.Count(ctx, eqFilter(bookingModel.FieldStatus, bookingModel.StatusCompleted.String(), bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to count completed bookings")

		return res, fmt.Errorf("failed to count completed bookings: %w", err)
	}

	locations, err := s.locationRepo.Count(ctx, eqFilter(locationModel.FieldServiceable, true, locationModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to count serviceable locations")

		return res, fmt.Errorf("failed to count serviceable locations: %w", err)
	}

	average, err := s.averageRating(ctx)
	if err != nil {
		return res, err
	}

	res = dto.StatsResponse{
		VerifiedProfessionals: professionals,
		CompletedBookings:     completed,
		AverageRating:         average,
		ServiceableLocations:  locations,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetStats, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save stats to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) averageRating(ctx context.Context) (string, error) {
	reviews, err := s.reviewRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews for stats")

		return constant.Empty, fmt.Errorf("failed to get reviews for stats: %w", err)
	}

	if len(reviews) == 0 {
		return "0.00", nil
	}

	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}

	return fmt.Sprintf("%.2f", float64(sum)/float64(len(reviews))), nil
}

func eqFilter(field string, value any, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    table,
			},
		},
	}
}
