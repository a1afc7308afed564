package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Patient=MockPatientService

import (
	"context"
	"docai/infras/otel"
	"docai/infras/predictor"
	"docai/internal/domains/patient/model"
	"docai/internal/domains/patient/model/dto"
	"docai/internal/domains/patient/repository"
	"docai/shared"
	"docai/shared/constant"
	"docai/shared/failure"
	"docai/shared/validator"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	MessagePredicted  = "Patient saved and prediction done"
	MessageNoSymptoms = "No symptoms found for patient."
)

type Patient interface {
	Submit(ctx context.Context, req dto.SubmitPatientRequest) (dto.SubmitPatientResponse, error)
}

type serviceImpl struct {
	repo      repository.Patient
	predictor predictor.Predictor
	otel      otel.Otel
}

func New(repo repository.Patient, predictor predictor.Predictor, otel otel.Otel) Patient {
	return &serviceImpl{
		repo:      repo,
		predictor: predictor,
		otel:      otel,
	}
}

// Submit stores the patient, reads the symptoms back by name and asks the
// prediction service about them.
func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitPatientRequest) (res dto.SubmitPatientResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	if _, err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Msg("failed to save patient")

		return res, failure.InternalError(fmt.Errorf("failed to save patient: %w", err)) //nolint:wrapcheck
	}

	stored, err := s.repo.FindSymptomsByName(ctx, req.Name)
	if err != nil && !errors.Is(err, model.ErrPatientNotFound) {
		log.Error().Err(err).Str("name", req.Name).Msg("failed to fetch patient symptoms")

		return res, failure.InternalError(fmt.Errorf("failed to fetch patient symptoms: %w", err)) //nolint:wrapcheck
	}

	symptoms := shared.SplitAndTrim(stored, model.SymptomSeparator)
	if len(symptoms) == 0 {
		return res, failure.BadRequestFromString(MessageNoSymptoms) //nolint:wrapcheck
	}

	output, err := s.predictor.Predict(ctx, symptoms)
	if err != nil {
		log.Error().Err(err).Strs("symptoms", symptoms).Msg("failed to get prediction")

		return res, failure.BadGateway(err) //nolint:wrapcheck
	}

	res.Message = MessagePredicted
	res.MLOutput = output

	return res, nil
}
