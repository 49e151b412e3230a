package catalog

import (
	"net/http"

	"jaruri/infras/otel"
	catalogModel "jaruri/internal/domains/catalog/model"
	"jaruri/internal/domains/catalog/service"
	"jaruri/shared/constant"
	"jaruri/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/categories", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCategories)
	})

	router.Route("/services", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetServices)
		routerGroup.Get("/{id}", handler.GetServiceByID)
	})
}

// GetCategories lists the active service categories.
// @Summary Get service categories
// @Description Retrieve all active service categories.
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Data[dto.GetCategoriesResponse] "List of categories"
// @Failure 500 {object} response.Error
// @Router /v1/categories [get]
func (handler *Handler) GetCategories(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategories")
	defer scope.End()

	res, err := handler.service.ListActiveCategories(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get categories")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetServices lists the active services, optionally scoped to a category.
// @Summary Get services
// @Description Retrieve all active services, optionally filtered by category.
// @Tags Catalog
// @Produce json
// @Param category_id query string false "Filter by category ID"
// @Success 200 {object} response.Data[dto.GetServicesResponse] "List of services"
// @Failure 500 {object} response.Error
// @Router /v1/services [get]
func (handler *Handler) GetServices(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
	defer scope.End()

	categoryID := request.URL.Query().Get(catalogModel.FieldServiceCategoryID)

	res, err := handler.service.ListServices(ctx, categoryID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get services")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetServiceByID returns a single service.
// @Summary Get service by ID
// @Description Retrieve a single service by its ID.
// @Tags Catalog
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Data[dto.ServiceResponse] "Service detail"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services/{id} [get]
func (handler *Handler) GetServiceByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.GetService(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
