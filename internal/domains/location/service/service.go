package service

import (
	"context"
	"fmt"
	"jaruri/config"
	"jaruri/infras/otel"
	"jaruri/internal/domains/location/model"
	"jaruri/internal/domains/location/model/dto"
	"jaruri/internal/domains/location/repository"
	"jaruri/shared/cache"
	"jaruri/shared/constant"
	gDto "jaruri/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	cacheServiceableLocations = "location:serviceable"
)

type Location interface {
	ListServiceable(ctx context.Context) (dto.GetLocationsResponse, error)
}

type serviceImpl struct {
	repo  repository.Location
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Location, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Location {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// ListServiceable returns the locations currently open for bookings.
func (s *serviceImpl) ListServiceable(ctx context.Context) (res dto.GetLocationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListServiceable")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheServiceableLocations, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheServiceableLocations).Msg("cache hit for serviceable locations")

		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldServiceable,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get serviceable locations")

		return res, fmt.Errorf("failed to get serviceable locations: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheServiceableLocations, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save serviceable locations to cache")
		}
	}()

	return res, nil
}
