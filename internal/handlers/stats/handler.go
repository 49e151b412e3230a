package stats

import (
	"net/http"

	"jaruri/infras/otel"
	"jaruri/internal/domains/stats/service"
	"jaruri/shared/constant"
	"jaruri/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Stats
	otel    otel.Otel
}

func New(service service.Stats, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/stats", handler.GetStats)
}

// GetStats returns the landing page counters.
// @Summary Get marketplace stats
// @Description Retrieve verified professional, completed booking, and rating counters.
// @Tags Stats
// @Produce json
// @Success 200 {object} response.Data[dto.StatsResponse] "Marketplace stats"
// @Failure 500 {object} response.Error
// @Router /v1/stats [get]
func (handler *Handler) GetStats(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	res, err := handler.service.Summary(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stats")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
