package contact

import (
	"net/http"

	"jaruri/infras/otel"
	"jaruri/internal/domains/contact/model/dto"
	"jaruri/internal/domains/contact/service"
	"jaruri/shared/constant"
	"jaruri/shared/validator"
	"jaruri/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Contact
	otel    otel.Otel
}

func New(service service.Contact, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/contact", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.SubmitContact)
	})

	router.Route("/notifications", func(routerGroup chi.Router) {
		routerGroup.Post("/subscribe", handler.Subscribe)
	})
}

// SubmitContact stores a contact form submission.
// @Summary Submit contact request
// @Description Store a message from the contact form.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.CreateContactRequest true "Create Contact Request"
// @Success 201 {object} response.Data[dto.ContactResponse] "Contact request stored"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contact [post]
func (handler *Handler) SubmitContact(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitContact")
	defer scope.End()

	req := dto.CreateContactRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.SubmitRequest(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit contact request")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// Subscribe signs an email up for the app launch notification.
// @Summary Subscribe to app notifications
// @Description Sign an email up for the mobile app launch notice. Duplicate emails conflict.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.SubscribeNotificationRequest true "Subscribe Request"
// @Success 201 {object} response.Data[dto.NotificationResponse] "Subscription stored"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications/subscribe [post]
func (handler *Handler) Subscribe(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Subscribe")
	defer scope.End()

	req := dto.SubscribeNotificationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Subscribe(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to subscribe notification")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}
