package health_test

import (
	"context"
	"docai/infras/otel/mocks"
	appointmentMocks "docai/internal/domains/appointment/mocks"
	"docai/internal/handlers/health"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func newRouter(pinger health.Pinger, svc *appointmentMocks.MockAppointmentService) chi.Router {
	handler := health.New(pinger, svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func TestHealth_Liveness(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newRouter(pingerFunc(func(context.Context) error { return nil }), appointmentMocks.NewMockAppointmentService(ctrl))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"status":"UP"}}`, rec.Body.String())
}

func TestHealth_Database(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		setupMock  func(svc *appointmentMocks.MockAppointmentService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "healthy",
			setupMock: func(svc *appointmentMocks.MockAppointmentService) {
				svc.EXPECT().Count(gomock.Any()).Return(4, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":{"status":"UP","appointment_count":4}}`,
		},
		{
			name:       "ping fails",
			pingErr:    errors.New("connection refused"),
			setupMock:  func(_ *appointmentMocks.MockAppointmentService) {},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"error":"SERVER UNHEALTHY"}`,
		},
		{
			name: "count fails",
			setupMock: func(svc *appointmentMocks.MockAppointmentService) {
				svc.EXPECT().Count(gomock.Any()).Return(0, errors.New("relation does not exist"))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"error":"SERVER UNHEALTHY"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := appointmentMocks.NewMockAppointmentService(ctrl)
			tt.setupMock(svc)

			router := newRouter(pingerFunc(func(context.Context) error { return tt.pingErr }), svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/db", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
