package service_test

import (
	"context"
	"docai/infras/otel/mocks"
	predictorMocks "docai/infras/predictor/mocks"
	patientMocks "docai/internal/domains/patient/mocks"
	"docai/internal/domains/patient/model"
	"docai/internal/domains/patient/model/dto"
	"docai/internal/domains/patient/service"
	"docai/shared/failure"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPatientService_Submit(t *testing.T) {
	req := dto.SubmitPatientRequest{
		Name:     "Asha",
		Age:      34,
		Symptoms: "fever, cough,headache",
		Pincode:  "560001",
	}

	tests := []struct {
		name      string
		req       dto.SubmitPatientRequest
		setupMock func(repo *patientMocks.MockPatient, predictor *predictorMocks.MockPredictor)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "successful prediction",
			req:  req,
			setupMock: func(repo *patientMocks.MockPatient, predictor *predictorMocks.MockPredictor) {
				gomock.InOrder(
					repo.EXPECT().
						Insert(gomock.Any(), model.Patient{Name: "Asha", Age: 34, Symptoms: "fever, cough,headache", Pincode: "560001"}).
						Return(int64(1), nil),
					repo.EXPECT().FindSymptomsByName(gomock.Any(), "Asha").Return("fever, cough,headache", nil),
					predictor.EXPECT().
						Predict(gomock.Any(), []string{"fever", "cough", "headache"}).
						Return(json.RawMessage(`{"disease":"flu"}`), nil),
				)
			},
		},
		{
			name: "missing name",
			req:  dto.SubmitPatientRequest{Symptoms: "fever"},
			setupMock: func(_ *patientMocks.MockPatient, _ *predictorMocks.MockPredictor) {
			},
			wantCode: http.StatusBadRequest,
			wantErr:  true,
		},
		{
			name: "insert error",
			req:  req,
			setupMock: func(repo *patientMocks.MockPatient, _ *predictorMocks.MockPredictor) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  true,
		},
		{
			name: "no symptoms stored",
			req:  dto.SubmitPatientRequest{Name: "Ravi", Age: 40},
			setupMock: func(repo *patientMocks.MockPatient, _ *predictorMocks.MockPredictor) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(1), nil)
				repo.EXPECT().FindSymptomsByName(gomock.Any(), "Ravi").Return("", nil)
			},
			wantCode: http.StatusBadRequest,
			wantErr:  true,
		},
		{
			name: "only separators stored",
			req:  dto.SubmitPatientRequest{Name: "Ravi", Symptoms: " , ,"},
			setupMock: func(repo *patientMocks.MockPatient, _ *predictorMocks.MockPredictor) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(1), nil)
				repo.EXPECT().FindSymptomsByName(gomock.Any(), "Ravi").Return(" , ,", nil)
			},
			wantCode: http.StatusBadRequest,
			wantErr:  true,
		},
		{
			name: "patient not found",
			req:  req,
			setupMock: func(repo *patientMocks.MockPatient, _ *predictorMocks.MockPredictor) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(1), nil)
				repo.EXPECT().
					FindSymptomsByName(gomock.Any(), "Asha").
					Return("", fmt.Errorf("%w: Asha", model.ErrPatientNotFound))
			},
			wantCode: http.StatusBadRequest,
			wantErr:  true,
		},
		{
			name: "lookup error",
			req:  req,
			setupMock: func(repo *patientMocks.MockPatient, _ *predictorMocks.MockPredictor) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(1), nil)
				repo.EXPECT().FindSymptomsByName(gomock.Any(), "Asha").Return("", errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  true,
		},
		{
			name: "prediction service error",
			req:  req,
			setupMock: func(repo *patientMocks.MockPatient, predictor *predictorMocks.MockPredictor) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(1), nil)
				repo.EXPECT().FindSymptomsByName(gomock.Any(), "Asha").Return("fever", nil)
				predictor.EXPECT().Predict(gomock.Any(), []string{"fever"}).Return(nil, errors.New("status 503"))
			},
			wantCode: http.StatusBadGateway,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := patientMocks.NewMockPatient(ctrl)
			predictor := predictorMocks.NewMockPredictor(ctrl)
			tt.setupMock(repo, predictor)

			svc := service.New(repo, predictor, mocks.NewOtel())

			res, err := svc.Submit(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, service.MessagePredicted, res.Message)
			assert.JSONEq(t, `{"disease":"flu"}`, string(res.MLOutput))
		})
	}
}

func TestPatientService_NoSymptomsMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := patientMocks.NewMockPatient(ctrl)
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	repo.EXPECT().FindSymptomsByName(gomock.Any(), "Ravi").Return("", nil)

	svc := service.New(repo, predictorMocks.NewMockPredictor(ctrl), mocks.NewOtel())

	_, err := svc.Submit(context.Background(), dto.SubmitPatientRequest{Name: "Ravi"})

	assert.EqualError(t, err, service.MessageNoSymptoms)
}
