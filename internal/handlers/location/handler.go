package location

import (
	"net/http"

	"jaruri/infras/otel"
	"jaruri/internal/domains/location/service"
	"jaruri/shared/constant"
	"jaruri/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Location
	otel    otel.Otel
}

func New(service service.Location, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/locations", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetLocations)
	})
}

// GetLocations lists the serviceable locations.
// @Summary Get serviceable locations
// @Description Retrieve all locations currently open for bookings.
// @Tags Location
// @Produce json
// @Success 200 {object} response.Data[dto.GetLocationsResponse] "List of locations"
// @Failure 500 {object} response.Error
// @Router /v1/locations [get]
func (handler *Handler) GetLocations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLocations")
	defer scope.End()

	res, err := handler.service.ListServiceable(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get locations")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
