package repository

//go:generate go run go.uber.org/mock/mockgen -source=./category.go -destination=../mocks/category_mock.go -package=mocks

import (
	"context"
	"jaruri/infras/otel"
	"jaruri/infras/postgres"
	"jaruri/internal/domains/catalog/model"
	gDto "jaruri/shared/dto"
	gRepo "jaruri/shared/repository"
)

type Category interface {
	Insert(ctx context.Context, model model.ServiceCategory) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ServiceCategory, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ServiceCategory, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type categoryImpl struct {
	gRepo.Repository[model.ServiceCategory]
	db   *postgres.Connection
	otel otel.Otel
}

func NewCategory(db *postgres.Connection, otel otel.Otel) Category {
	return &categoryImpl{
		Repository: gRepo.NewRepository[model.ServiceCategory](model.CategoryEntityName, model.CategoryTableName, model.FieldCategoryID, db, otel),
		db:         db,
		otel:       otel,
	}
}
