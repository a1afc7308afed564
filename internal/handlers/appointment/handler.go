package appointment

import (
	"docai/infras/otel"
	"docai/internal/domains/appointment/model/dto"
	"docai/internal/domains/appointment/service"
	"docai/shared/constant"
	gDto "docai/shared/dto"
	"docai/shared/failure"
	"docai/shared/validator"
	"docai/transport/http/middleware"
	"docai/transport/http/response"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Appointment
	middleware middleware.AppMiddleware
	otel       otel.Otel
}

func New(service service.Appointment, middleware middleware.AppMiddleware, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/appointments", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.BookAppointment)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(handler.middleware.APIKey)

			protected.Get("/", handler.GetAppointments)
			protected.Get("/doctors/{"+constant.RequestParamDoctorID+"}", handler.GetAppointmentsByDoctor)
			protected.Get("/{"+constant.RequestParamContact+"}", handler.GetAppointmentsByContact)
		})
	})
}

// BookAppointment stores an appointment and sends its confirmation.
// @Summary Book an appointment
// @Description Persists the appointment, renders a PDF slip and sends it by email, or an SMS summary when the contact has no "@". Notification failures do not fail the booking.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param request body dto.BookAppointmentRequest true "Book Appointment Request"
// @Success 201 {object} response.Data[dto.BookAppointmentResponse] "Appointment booked"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments [post]
func (handler *Handler) BookAppointment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookAppointment")
	defer scope.End()

	req := dto.BookAppointmentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	outcome, err := handler.service.Book(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book appointment")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Appointment booked via " + string(outcome.Channel))

	response.WithJSON(writer, http.StatusCreated, outcome.Response())
}

// GetAppointments lists every appointment, newest first.
// @Summary Get all appointments
// @Description Newest first. page and limit are optional; sorting is fixed.
// @Tags Appointment
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Data[dto.GetAppointmentsResponse]
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments [get]
// @Security ApiKeyAuth
func (handler *Handler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	appointments, err := handler.service.ListAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get appointments")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, appointments)
}

// GetAppointmentsByContact lists appointments booked with exactly this contact.
// @Summary Get appointments by contact
// @Tags Appointment
// @Produce json
// @Param contact path string true "Email address or phone number"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Data[dto.GetAppointmentsResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{contact} [get]
// @Security ApiKeyAuth
func (handler *Handler) GetAppointmentsByContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointmentsByContact")
	defer scope.End()

	contact, err := url.PathUnescape(chi.URLParam(r, constant.RequestParamContact))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequest(err))

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	appointments, err := handler.service.ListByContact(ctx, contact, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get appointments by contact")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, appointments)
}

// GetAppointmentsByDoctor lists appointments booked with exactly this doctor id.
// @Summary Get appointments by doctor
// @Tags Appointment
// @Produce json
// @Param doctorId path string true "Doctor ID"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Data[dto.GetAppointmentsResponse]
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/doctors/{doctorId} [get]
// @Security ApiKeyAuth
func (handler *Handler) GetAppointmentsByDoctor(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointmentsByDoctor")
	defer scope.End()

	doctorID := chi.URLParam(r, constant.RequestParamDoctorID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	appointments, err := handler.service.ListByDoctorID(ctx, doctorID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get appointments by doctor")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, appointments)
}
