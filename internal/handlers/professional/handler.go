package professional

import (
	"net/http"

	"jaruri/infras/otel"
	catalogService "jaruri/internal/domains/catalog/service"
	"jaruri/internal/domains/professional/model/dto"
	"jaruri/internal/domains/professional/service"
	reviewService "jaruri/internal/domains/review/service"
	"jaruri/shared/constant"
	gDto "jaruri/shared/dto"
	"jaruri/shared/failure"
	"jaruri/shared/validator"
	"jaruri/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Professional
	reviews reviewService.Review
	catalog catalogService.Catalog
	otel    otel.Otel
}

func New(service service.Professional, reviews reviewService.Review, catalog catalogService.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		reviews: reviews,
		catalog: catalog,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/professionals", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateProfessional)
		routerGroup.Get("/", handler.GetProfessionals)
		routerGroup.Get("/{id}", handler.GetProfessionalByID)
		routerGroup.Patch("/{id}", handler.UpdateProfessional)
		routerGroup.Post("/{id}/documents", handler.UploadDocument)
		routerGroup.Get("/{id}/reviews", handler.GetProfessionalReviews)
	})
}

// CreateProfessional registers a professional profile for a user.
// @Summary Create professional profile
// @Description Create a professional profile with skills and service areas.
// @Tags Professional
// @Accept json
// @Produce json
// @Param request body dto.CreateProfessionalRequest true "Create Professional Request"
// @Success 201 {object} response.Data[dto.ProfessionalResponse] "Professional created"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/professionals [post]
// @Security BearerAuth
func (handler *Handler) CreateProfessional(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProfessional")
	defer scope.End()

	req := dto.CreateProfessionalRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create professional")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetProfessionals lists verified professionals. With service_id or location query
// parameters it narrows to the professionals who would qualify for an assignment,
// using the same availability, skill and area rules as booking auto-assignment.
// @Summary Get professionals
// @Description Retrieve verified professionals, optionally filtered by service and location.
// @Tags Professional
// @Produce json
// @Param service_id query string false "Filter by service"
// @Param location query string false "Filter by covered location"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetProfessionalsResponse] "List of professionals"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/professionals [get]
func (handler *Handler) GetProfessionals(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfessionals")
	defer scope.End()

	serviceID := request.URL.Query().Get(constant.RequestParamServiceID)
	location := request.URL.Query().Get(constant.RequestParamLocation)

	if serviceID != constant.Empty || location != constant.Empty {
		serviceName := constant.Empty

		if serviceID != constant.Empty {
			svc, err := handler.catalog.ResolveService(ctx, serviceID)
			if err != nil {
				scope.TraceError(err)
				log.Error().Err(err).Msg("failed to resolve service for professional filter")

				response.WithError(writer, err)

				return
			}

			serviceName = svc.Name
		}

		res, err := handler.service.FindMatching(ctx, serviceName, location)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to find matching professionals")

			response.WithError(writer, err)

			return
		}

		response.WithJSON(writer, http.StatusOK, res)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	res, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get professionals")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetProfessionalByID returns a single professional profile.
// @Summary Get professional by ID
// @Description Retrieve a professional profile by its ID.
// @Tags Professional
// @Produce json
// @Param id path string true "Professional ID"
// @Success 200 {object} response.Data[dto.ProfessionalResponse] "Professional detail"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/professionals/{id} [get]
func (handler *Handler) GetProfessionalByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfessionalByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.GetByID(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get professional")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateProfessional patches a professional profile.
// @Summary Update professional profile
// @Description Update profile fields such as bio, rate, availability, or verification.
// @Tags Professional
// @Accept json
// @Produce json
// @Param id path string true "Professional ID"
// @Param request body dto.UpdateProfessionalRequest true "Update Professional Request"
// @Success 200 {object} response.Message "Professional updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/professionals/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProfessional(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfessional")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateProfessionalRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update professional")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Professional updated successfully")
}

// UploadDocument attaches a verification document to a professional profile.
// @Summary Upload verification document
// @Description Upload a document used for professional verification.
// @Tags Professional
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Professional ID"
// @Param file formData file true "Document file"
// @Success 201 {object} response.Data[string] "Document URL"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/professionals/{id}/documents [post]
// @Security BearerAuth
func (handler *Handler) UploadDocument(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadDocument")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(writer, failure.BadRequestFromString("invalid multipart form"))

		return
	}

	file, fileHeader, err := request.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read uploaded file")

		response.WithError(writer, failure.BadRequestFromString("file is required"))

		return
	}
	defer file.Close()

	url, err := handler.service.UploadDocument(ctx, id, file, fileHeader)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload document")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, url)
}

// GetProfessionalReviews lists the reviews left for a professional.
// @Summary Get professional reviews
// @Description Retrieve all reviews recorded against a professional.
// @Tags Professional
// @Produce json
// @Param id path string true "Professional ID"
// @Success 200 {object} response.Data[dto.GetReviewsResponse] "List of reviews"
// @Failure 500 {object} response.Error
// @Router /v1/professionals/{id}/reviews [get]
func (handler *Handler) GetProfessionalReviews(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfessionalReviews")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.reviews.ListByProfessional(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get professional reviews")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
