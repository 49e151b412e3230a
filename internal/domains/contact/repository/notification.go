package repository

//go:generate go run go.uber.org/mock/mockgen -source=./notification.go -destination=../mocks/notification_mock.go -package=mocks

import (
	"context"
	"jaruri/infras/otel"
	"jaruri/infras/postgres"
	"jaruri/internal/domains/contact/model"
	gDto "jaruri/shared/dto"
	gRepo "jaruri/shared/repository"
)

type Notification interface {
	Insert(ctx context.Context, model model.AppNotification) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.AppNotification, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.AppNotification, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type notificationRepositoryImpl struct {
	gRepo.Repository[model.AppNotification]
	db   *postgres.Connection
	otel otel.Otel
}

func NewNotification(db *postgres.Connection, otel otel.Otel) Notification {
	return &notificationRepositoryImpl{
		Repository: gRepo.NewRepository[model.AppNotification](model.NotificationEntityName, model.NotificationTableName, model.FieldNotificationID, db, otel),
		db:         db,
		otel:       otel,
	}
}
