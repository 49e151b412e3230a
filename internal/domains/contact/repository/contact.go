package repository

//go:generate go run go.uber.org/mock/mockgen -source=./contact.go -destination=../mocks/contact_mock.go -package=mocks

import (
	"context"
	"jaruri/infras/otel"
	"jaruri/infras/postgres"
	"jaruri/internal/domains/contact/model"
	gDto "jaruri/shared/dto"
	gRepo "jaruri/shared/repository"
)

type Contact interface {
	Insert(ctx context.Context, model model.ContactRequest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ContactRequest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ContactRequest, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type contactRepositoryImpl struct {
	gRepo.Repository[model.ContactRequest]
	db   *postgres.Connection
	otel otel.Otel
}

func NewContact(db *postgres.Connection, otel otel.Otel) Contact {
	return &contactRepositoryImpl{
		Repository: gRepo.NewRepository[model.ContactRequest](model.ContactEntityName, model.ContactTableName, model.FieldContactID, db, otel),
		db:         db,
		otel:       otel,
	}
}
