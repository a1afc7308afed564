package health

import (
	"context"
	"docai/infras/otel"
	"docai/internal/domains/appointment/service"
	"docai/shared/constant"
	"docai/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const StatusUp = "UP"

// Pinger is satisfied by *postgres.Connection.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Status struct {
	Status string `json:"status"`
}

type DatabaseStatus struct {
	Status           string `json:"status"`
	AppointmentCount int    `json:"appointment_count"`
}

type Handler struct {
	db      Pinger
	service service.Appointment
	otel    otel.Otel
}

func New(db Pinger, service service.Appointment, otel otel.Otel) Handler {
	return Handler{
		db:      db,
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/health", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.Liveness)
		routerGroup.Get("/db", handler.Database)
	})
}

// Liveness reports that the process is serving requests.
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[Status]
// @Router /health [get]
func (handler *Handler) Liveness(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, Status{Status: StatusUp})
}

// Database round-trips to postgres and counts the stored appointments.
// @Summary Database probe
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[DatabaseStatus]
// @Failure 503 {object} response.Error
// @Router /health/db [get]
func (handler *Handler) Database(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".HealthDatabase")
	defer scope.End()

	if err := handler.db.Ping(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("database ping failed")

		response.WithUnhealthy(w)

		return
	}

	count, err := handler.service.Count(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to count appointments")

		response.WithUnhealthy(w)

		return
	}

	response.WithJSON(w, http.StatusOK, DatabaseStatus{Status: StatusUp, AppointmentCount: count})
}
