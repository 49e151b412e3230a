package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"jaruri/config"
	"jaruri/infras/otel"
	"jaruri/internal/domains/contact/model"
	"jaruri/internal/domains/contact/model/dto"
	"jaruri/internal/domains/contact/repository"
	"jaruri/shared"
	"jaruri/shared/cache"
	"jaruri/shared/constant"
	"jaruri/shared/failure"

	"github.com/rs/zerolog/log"
)

type Contact interface {
	SubmitRequest(ctx context.Context, req dto.CreateContactRequest) (dto.ContactResponse, error)
	Subscribe(ctx context.Context, req dto.SubscribeNotificationRequest) (dto.NotificationResponse, error)
}

type serviceImpl struct {
	contactRepo      repository.Contact
	notificationRepo repository.Notification
	cfg              *config.Config
	cache            cache.RedisCache
	otel             otel.Otel
}

func New(contactRepo repository.Contact, notificationRepo repository.Notification, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Contact {
	return &serviceImpl{
		contactRepo:      contactRepo,
		notificationRepo: notificationRepo,
		cfg:              cfg,
		cache:            cache,
		otel:             otel,
	}
}

func (s *serviceImpl) SubmitRequest(ctx context.Context, req dto.CreateContactRequest) (res dto.ContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitRequest")
	defer scope.End()
	defer scope.TraceIfError(err)

	contact := req.ToModel()

	if err = s.contactRepo.Insert(ctx, contact); err != nil {
		log.Error().Err(err).Msg("failed to insert contact request")

		return res, fmt.Errorf("failed to insert contact request: %w", err)
	}

	res.FromModel(contact)

	return res, nil
}

// Subscribe signs an email up for the mobile app launch notice. Each email subscribes
// once; a repeat attempt is a conflict, not a silent no-op, so the frontend can tell
// the visitor they are already on the list.
func (s *serviceImpl) Subscribe(ctx context.Context, req dto.SubscribeNotificationRequest) (res dto.NotificationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Subscribe")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.notificationRepo.Exist(ctx, shared.FilterByID(req.Email, model.FieldNotificationEmail, model.NotificationTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check notification subscription")

		return res, fmt.Errorf("failed to check notification subscription: %w", err)
	}

	if exist {
		return res, failure.Conflict("email already subscribed") // nolint:wrapcheck
	}

	notification := req.ToModel()

	if err = s.notificationRepo.Insert(ctx, notification); err != nil {
		log.Error().Err(err).Msg("failed to insert notification subscription")

		return res, fmt.Errorf("failed to insert notification subscription: %w", err)
	}

	res.FromModel(notification)

	return res, nil
}
