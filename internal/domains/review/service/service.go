package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"jaruri/config"
	"jaruri/infras/otel"
	bookingModel "jaruri/internal/domains/booking/model"
	bookingRepo "jaruri/internal/domains/booking/repository"
	professionalService "jaruri/internal/domains/professional/service"
	"jaruri/internal/domains/review/model"
	"jaruri/internal/domains/review/model/dto"
	"jaruri/internal/domains/review/repository"
	"jaruri/shared"
	"jaruri/shared/cache"
	"jaruri/shared/constant"
	gDto "jaruri/shared/dto"
	"jaruri/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheGetReviews = "review:gets"

type Review interface {
	Create(ctx context.Context, req dto.CreateReviewRequest) (dto.ReviewResponse, error)
	ListByProfessional(ctx context.Context, professionalID string) (dto.GetReviewsResponse, error)
}

type serviceImpl struct {
	repo          repository.Review
	bookingRepo   bookingRepo.Booking
	professionals professionalService.Professional
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(
	repo repository.Review,
	bookingRepo bookingRepo.Booking,
	professionals professionalService.Professional,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Review {
	return &serviceImpl{
		repo:          repo,
		bookingRepo:   bookingRepo,
		professionals: professionals,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
	}
}

// Create records a review against an assigned booking and folds the new rating into
// the professional's running average. One review per booking.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking for review")

		return res, fmt.Errorf("failed to get booking for review: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.ProfessionalID == nil {
		return res, failure.BadRequestFromString("booking has no assigned professional to review") // nolint:wrapcheck
	}

	exist, err := s.repo.Exist(ctx, shared.FilterByID(req.BookingID, model.FieldBookingID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check review existence")

		return res, fmt.Errorf("failed to check review existence: %w", err)
	}

	if exist {
		return res, failure.Conflict("booking already reviewed") // nolint:wrapcheck
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if actor == constant.Empty {
		actor = booking.CustomerID
	}

	review := req.ToModel(booking.CustomerID, *booking.ProfessionalID, actor)

	if err = s.repo.Insert(ctx, review); err != nil {
		log.Error().Err(err).Msg("failed to insert review")

		return res, fmt.Errorf("failed to insert review: %w", err)
	}

	if err := s.recomputeRating(ctx, review.ProfessionalID); err != nil {
		log.Error().Err(err).Str("professionalID", review.ProfessionalID).Msg("failed to recompute professional rating")
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetReviews)
	}()

	res.FromModel(review)

	return res, nil
}

func (s *serviceImpl) ListByProfessional(ctx context.Context, professionalID string) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByProfessional")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReviews, professionalID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reviews")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(professionalID, model.FieldProfessionalID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reviews to cache")
		}
	}()

	return res, nil
}

// recomputeRating rebuilds the average from every stored review rather than nudging the
// previous value, so concurrent reviews cannot drift the figure.
func (s *serviceImpl) recomputeRating(ctx context.Context, professionalID string) error {
	reviews, err := s.repo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(professionalID, model.FieldProfessionalID, model.TableName))
	if err != nil {
		return fmt.Errorf("failed to get reviews for rating: %w", err)
	}

	if len(reviews) == 0 {
		return nil
	}

	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}

	average := float64(sum) / float64(len(reviews))

	return s.professionals.SetRating(ctx, professionalID, fmt.Sprintf("%.2f", average))
}
