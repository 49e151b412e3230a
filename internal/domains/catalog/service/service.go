package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"jaruri/config"
	"jaruri/infras/otel"
	"jaruri/internal/domains/catalog/model"
	"jaruri/internal/domains/catalog/model/dto"
	"jaruri/internal/domains/catalog/repository"
	"jaruri/shared"
	"jaruri/shared/cache"
	"jaruri/shared/constant"
	gDto "jaruri/shared/dto"
	"jaruri/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetCategories = "catalog:categories"
	cacheGetServices   = "catalog:services"
	cacheGetService    = "catalog:service"
)

type Catalog interface {
	ListActiveCategories(ctx context.Context) (dto.GetCategoriesResponse, error)
	ListServices(ctx context.Context, categoryID string) (dto.GetServicesResponse, error)
	GetService(ctx context.Context, id string) (dto.ServiceResponse, error)
	ResolveService(ctx context.Context, id string) (model.Service, error)
}

type catalogImpl struct {
	categoryRepo repository.Category
	serviceRepo  repository.Service
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(categoryRepo repository.Category, serviceRepo repository.Service, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Catalog {
	return &catalogImpl{
		categoryRepo: categoryRepo,
		serviceRepo:  serviceRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func activeFilter(field, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    table,
			},
		},
	}
}

// ListActiveCategories returns the active categories only; inactive entries never leave the
// catalog store.
func (s *catalogImpl) ListActiveCategories(ctx context.Context) (res dto.GetCategoriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListActiveCategories")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetCategories, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetCategories).Msg("cache hit for categories")

		return res, nil
	}

	models, err := s.categoryRepo.GetAll(ctx, gDto.QueryParams{}, activeFilter(model.FieldCategoryActive, model.CategoryTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service categories")

		return res, fmt.Errorf("failed to get service categories: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetCategories, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save categories to cache")
		}
	}()

	return res, nil
}

func (s *catalogImpl) ListServices(ctx context.Context, categoryID string) (res dto.GetServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListServices")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetServices, categoryID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for services")

		return res, nil
	}

	filter := activeFilter(model.FieldServiceActive, model.ServiceTableName)
	if categoryID != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldServiceCategoryID,
			Operator: gDto.FilterOperatorEq,
			Value:    categoryID,
			Table:    model.ServiceTableName,
		})
	}

	models, err := s.serviceRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get services")

		return res, fmt.Errorf("failed to get services: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save services to cache")
		}
	}()

	return res, nil
}

func (s *catalogImpl) GetService(ctx context.Context, id string) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetService")
	defer scope.End()
	defer scope.TraceIfError(err)

	service, err := s.ResolveService(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(service)

	return res, nil
}

// ResolveService loads a service by id for booking-time price and duration resolution.
// Unknown ids yield a not-found failure, never partial data.
func (s *catalogImpl) ResolveService(ctx context.Context, id string) (res model.Service, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveService")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetService, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil && res.ID != constant.Empty {
		return res, nil
	}

	service, err := s.serviceRepo.Get(ctx, shared.FilterByID(id, model.FieldServiceID, model.ServiceTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if service.ID == constant.Empty {
		return res, failure.NotFound("service not found") // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, service, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save service to cache")
		}
	}()

	return service, nil
}
