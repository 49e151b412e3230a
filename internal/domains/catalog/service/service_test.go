package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"jaruri/config"
	"jaruri/infras/otel/mocks"
	catalogMocks "jaruri/internal/domains/catalog/mocks"
	"jaruri/internal/domains/catalog/model"
	"jaruri/internal/domains/catalog/service"
	cacheMocks "jaruri/shared/cache/mocks"
	gDto "jaruri/shared/dto"
	"jaruri/shared/failure"
)

type catalogFixture struct {
	categoryRepo *catalogMocks.MockCategory
	serviceRepo  *catalogMocks.MockService
	cache        *cacheMocks.MockRedisCache
	svc          service.Catalog
}

func newCatalogFixture(ctrl *gomock.Controller) *catalogFixture {
	f := &catalogFixture{
		categoryRepo: catalogMocks.NewMockCategory(ctrl),
		serviceRepo:  catalogMocks.NewMockService(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.categoryRepo, f.serviceRepo, cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	return f
}

func TestCatalogService_ListActiveCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCatalogFixture(ctrl)

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	// The repository filter excludes inactive categories before they reach here.
	f.categoryRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.ServiceCategory, error) {
			assert.Len(t, filter.Filters, 1)

			return []model.ServiceCategory{
				{ID: "cat-1", Name: "Electrical", NameNepali: "बिजुली", Active: true},
			}, nil
		})

	res, err := f.svc.ListActiveCategories(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res.Categories, 1)
	assert.Equal(t, "Electrical", res.Categories[0].Name)
}

func TestCatalogService_ListServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCatalogFixture(ctrl)

	t.Run("all active services", func(t *testing.T) {
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.serviceRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Service, error) {
				assert.Len(t, filter.Filters, 1)

				return []model.Service{{ID: "svc-1", Name: "Electrical Repairs", Active: true}}, nil
			})

		res, err := f.svc.ListServices(context.Background(), "")

		assert.NoError(t, err)
		assert.Len(t, res.Services, 1)
	})

	t.Run("scoped to a category", func(t *testing.T) {
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.serviceRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Service, error) {
				assert.Len(t, filter.Filters, 2)

				return []model.Service{}, nil
			})

		res, err := f.svc.ListServices(context.Background(), "cat-1")

		assert.NoError(t, err)
		assert.Empty(t, res.Services)
	})
}

func TestCatalogService_ResolveService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCatalogFixture(ctrl)

	t.Run("found", func(t *testing.T) {
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.serviceRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Service{
				ID:        "svc-1",
				Name:      "Electrical Repairs",
				BasePrice: "500.00",
				Unit:      model.UnitHour,
				Active:    true,
			}, nil)

		res, err := f.svc.ResolveService(context.Background(), "svc-1")

		assert.NoError(t, err)
		assert.Equal(t, "500.00", res.BasePrice)
	})

	t.Run("unknown id", func(t *testing.T) {
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.serviceRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Service{}, nil)

		_, err := f.svc.ResolveService(context.Background(), "svc-missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
