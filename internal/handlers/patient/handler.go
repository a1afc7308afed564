package patient

import (
	"docai/infras/otel"
	"docai/internal/domains/patient/model/dto"
	"docai/internal/domains/patient/service"
	"docai/shared/constant"
	"docai/shared/validator"
	"docai/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Patient
	otel    otel.Otel
}

func New(service service.Patient, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/patients", func(routerGroup chi.Router) {
		routerGroup.Post("/submit-all", handler.SubmitAll)
	})
}

// SubmitAll saves a patient and returns the prediction for their symptoms.
// @Summary Submit patient symptoms for prediction
// @Description Saves the patient, reads the symptoms back by name, and forwards them to the prediction service.
// @Tags Patient
// @Accept json
// @Produce json
// @Param request body dto.SubmitPatientRequest true "Patient"
// @Success 200 {object} response.Data[dto.SubmitPatientResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/patients/submit-all [post]
func (handler *Handler) SubmitAll(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitAll")
	defer scope.End()

	req := dto.SubmitPatientRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit patient")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
