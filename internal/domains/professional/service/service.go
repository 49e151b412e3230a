package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"jaruri/config"
	"jaruri/infras/otel"
	"jaruri/infras/s3"
	"jaruri/internal/domains/professional/model"
	"jaruri/internal/domains/professional/model/dto"
	"jaruri/internal/domains/professional/repository"
	"jaruri/shared"
	"jaruri/shared/cache"
	"jaruri/shared/constant"
	gDto "jaruri/shared/dto"
	"jaruri/shared/failure"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetProfessionals = "professional:list"
	cacheGetProfessional  = "professional"
)

type Professional interface {
	Create(ctx context.Context, req dto.CreateProfessionalRequest) (dto.ProfessionalResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetProfessionalsResponse, error)
	GetByID(ctx context.Context, id string) (dto.ProfessionalResponse, error)
	GetByUserID(ctx context.Context, userID string) (dto.ProfessionalResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateProfessionalRequest) error
	UploadDocument(ctx context.Context, id string, file multipart.File, fileHeader *multipart.FileHeader) (string, error)
	Match(ctx context.Context, serviceName, location string) (*model.Professional, error)
	FindMatching(ctx context.Context, serviceName, location string) (dto.GetProfessionalsResponse, error)
	SetRating(ctx context.Context, id, rating string) error
	IncrementTotalJobs(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo    repository.Professional
	cfg     *config.Config
	cache   cache.RedisCache
	storage s3.S3
	otel    otel.Otel
}

func New(repo repository.Professional, cfg *config.Config, cache cache.RedisCache, storage s3.S3, otel otel.Otel) Professional {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		cache:   cache,
		storage: storage,
		otel:    otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateProfessionalRequest) (res dto.ProfessionalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(req.UserID, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check professional existence")

		return res, fmt.Errorf("failed to check professional existence: %w", err)
	}

	if exist {
		return res, failure.Conflict("professional profile already exists for this user") // nolint:wrapcheck
	}

	prof := req.ToModel(req.UserID)

	if err = s.repo.Insert(ctx, prof); err != nil {
		log.Error().Err(err).Msg("failed to insert professional")

		return res, fmt.Errorf("failed to insert professional: %w", err)
	}

	s.invalidateCaches(ctx)

	res.FromModel(prof)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetProfessionalsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsVerified,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetProfessionals, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for professionals")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count professionals")

		return res, fmt.Errorf("failed to count professionals: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get professionals")

		return res, fmt.Errorf("failed to get professionals: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save professionals to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByID(ctx context.Context, id string) (res dto.ProfessionalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByID")
	defer scope.End()
	defer scope.TraceIfError(err)

	prof, err := s.resolve(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return res, err
	}

	res.FromModel(prof)

	return res, nil
}

func (s *serviceImpl) GetByUserID(ctx context.Context, userID string) (res dto.ProfessionalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByUserID")
	defer scope.End()
	defer scope.TraceIfError(err)

	prof, err := s.resolve(ctx, shared.FilterByID(userID, model.FieldUserID, model.TableName))
	if err != nil {
		return res, err
	}

	res.FromModel(prof)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateProfessionalRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.resolve(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		return err
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := shared.TransformFields(req, actor)
	if req.Skills != nil {
		fields[model.FieldSkills] = pqArray(req.Skills)
	}

	if req.ServiceAreas != nil {
		fields[model.FieldServiceAreas] = pqArray(req.ServiceAreas)
	}

	if len(fields) == 0 {
		return nil
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update professional")

		return fmt.Errorf("failed to update professional: %w", err)
	}

	s.invalidateCaches(ctx)

	return nil
}

// UploadDocument stores a verification document and appends its public URL to the profile.
func (s *serviceImpl) UploadDocument(ctx context.Context, id string, file multipart.File, fileHeader *multipart.FileHeader) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadDocument")
	defer scope.End()
	defer scope.TraceIfError(err)

	prof, err := s.resolve(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return constant.Empty, err
	}

	fileName := fmt.Sprintf("%s_%s", id, uuid.NewString())

	url, err = s.storage.UploadFile(ctx, s.cfg.External.S3.BucketName, s.cfg.External.S3.DocumentDir, file, fileHeader, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload professional document")

		return constant.Empty, fmt.Errorf("failed to upload professional document: %w", err)
	}

	docs := append(prof.DocumentURLs, url)

	err = s.repo.Update(ctx, map[string]any{model.FieldDocumentURLs: pqArray(docs)}, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to store document url")

		return constant.Empty, fmt.Errorf("failed to store document url: %w", err)
	}

	s.invalidateCaches(ctx)

	return url, nil
}

// Match picks the professional to auto-assign for a booking. Candidates must be
// verified and currently available; among those, the professional must list the
// service name as a skill and cover the booking location, where coverage means the
// location text contains one of the professional's service areas, case-insensitively.
// Candidates are scanned in registration order so the outcome is deterministic.
// A nil result with a nil error means nobody matched and the booking stays unassigned.
func (s *serviceImpl) Match(ctx context.Context, serviceName, location string) (res *model.Professional, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Match")
	defer scope.End()
	defer scope.TraceIfError(err)

	matches, err := s.matchingCandidates(ctx, serviceName, location)
	if err != nil {
		return nil, err
	}

	if len(matches) == 0 {
		return nil, nil
	}

	return &matches[0], nil
}

// FindMatching returns every professional who would qualify for an assignment
// against the given service and location, in registration order. Either argument
// may be empty to skip that dimension of the filter.
func (s *serviceImpl) FindMatching(ctx context.Context, serviceName, location string) (res dto.GetProfessionalsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindMatching")
	defer scope.End()
	defer scope.TraceIfError(err)

	matches, err := s.matchingCandidates(ctx, serviceName, location)
	if err != nil {
		return res, err
	}

	res.FromModels(matches, len(matches), 0)

	return res, nil
}

func (s *serviceImpl) matchingCandidates(ctx context.Context, serviceName, location string) ([]model.Professional, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsVerified,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldAvailabilityStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.AvailabilityAvailable,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}

	candidates, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get matching candidates")

		return nil, fmt.Errorf("failed to get matching candidates: %w", err)
	}

	loweredLocation := strings.ToLower(location)

	matches := make([]model.Professional, 0, len(candidates))

	for _, candidate := range candidates {
		if serviceName != constant.Empty && !candidate.HasSkill(serviceName) {
			continue
		}

		if location != constant.Empty && !coversLocation(candidate.ServiceAreas, loweredLocation) {
			continue
		}

		matches = append(matches, candidate)
	}

	return matches, nil
}

func (s *serviceImpl) SetRating(ctx context.Context, id, rating string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetRating")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.repo.Update(ctx, map[string]any{model.FieldRating: rating}, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update professional rating")

		return fmt.Errorf("failed to update professional rating: %w", err)
	}

	s.invalidateCaches(ctx)

	return nil
}

func (s *serviceImpl) IncrementTotalJobs(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IncrementTotalJobs")
	defer scope.End()
	defer scope.TraceIfError(err)

	prof, err := s.resolve(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return err
	}

	err = s.repo.Update(ctx, map[string]any{model.FieldTotalJobs: prof.TotalJobs + 1}, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to increment professional total jobs")

		return fmt.Errorf("failed to increment professional total jobs: %w", err)
	}

	s.invalidateCaches(ctx)

	return nil
}

func (s *serviceImpl) resolve(ctx context.Context, filter gDto.FilterGroup) (res model.Professional, err error) {
	res, err = s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get professional")

		return res, fmt.Errorf("failed to get professional: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("professional not found") // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) invalidateCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetProfessionals)
		shared.InvalidateCaches(c, s.cache, cacheGetProfessional)
	}()
}

func pqArray(values []string) pq.StringArray {
	return pq.StringArray(values)
}

func coversLocation(areas []string, loweredLocation string) bool {
	for _, area := range areas {
		if strings.Contains(loweredLocation, strings.ToLower(area)) {
			return true
		}
	}

	return false
}
