package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Appointment=MockAppointmentService

import (
	"context"
	"docai/config"
	"docai/infras/otel"
	"docai/infras/s3"
	"docai/internal/domains/appointment/model"
	"docai/internal/domains/appointment/model/dto"
	"docai/internal/domains/appointment/notification"
	"docai/internal/domains/appointment/repository"
	"docai/internal/domains/appointment/slip"
	"docai/shared/constant"
	gDto "docai/shared/dto"
	"docai/shared/validator"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const MessageBooked = "Appointment booked successfully"

var ErrNotPersisted = errors.New("no rows affected")

// Outcome reports every step of a booking. Once Persisted is true the
// booking succeeded; the remaining errors describe what happened afterwards.
type Outcome struct {
	Appointment model.Appointment
	Persisted   bool
	Channel     model.Channel
	Slip        []byte
	RenderErr   error
	NotifyErr   error
	ArchiveURL  string
	ArchiveErr  error
}

func (o Outcome) Response() dto.BookAppointmentResponse {
	res := dto.BookAppointmentResponse{
		Message:      MessageBooked,
		DoctorID:     o.Appointment.DoctorID,
		Date:         o.Appointment.Date.Format(constant.DayFormat),
		Time:         o.Appointment.Time.String(),
		Contact:      o.Appointment.Contact,
		SlipRendered: o.RenderErr == nil && len(o.Slip) > 0,
		SlipURL:      o.ArchiveURL,
		Notification: dto.NotificationResult{
			Channel:   string(o.Channel),
			Delivered: o.NotifyErr == nil,
		},
	}

	if o.NotifyErr != nil {
		res.Notification.Error = o.NotifyErr.Error()
	}

	return res
}

type Appointment interface {
	Book(ctx context.Context, req dto.BookAppointmentRequest) (Outcome, error)
	ListAll(ctx context.Context, params gDto.QueryParams) (dto.GetAppointmentsResponse, error)
	ListByContact(ctx context.Context, contact string, params gDto.QueryParams) (dto.GetAppointmentsResponse, error)
	ListByDoctorID(ctx context.Context, doctorID string, params gDto.QueryParams) (dto.GetAppointmentsResponse, error)
	Count(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo       repository.Appointment
	renderer   slip.Renderer
	dispatcher notification.Dispatcher
	storage    s3.S3
	cfg        *config.Config
	otel       otel.Otel
}

func New(
	repo repository.Appointment,
	renderer slip.Renderer,
	dispatcher notification.Dispatcher,
	storage s3.S3,
	cfg *config.Config,
	otel otel.Otel,
) Appointment {
	return &serviceImpl{
		repo:       repo,
		renderer:   renderer,
		dispatcher: dispatcher,
		storage:    storage,
		cfg:        cfg,
		otel:       otel,
	}
}

// Book validates, stores, renders and notifies, in that order. Only a
// validation or persistence failure is returned as an error; anything after
// the insert is recorded on the Outcome.
func (s *serviceImpl) Book(ctx context.Context, req dto.BookAppointmentRequest) (outcome Outcome, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return outcome, &model.ValidationError{Err: err}
	}

	appointment, err := req.ToModel()
	if err != nil {
		return outcome, err //nolint:wrapcheck
	}

	contact := model.ParseContact(appointment.Contact)

	outcome.Appointment = appointment
	outcome.Channel = contact.Channel()

	rows, err := s.repo.Insert(ctx, appointment)
	if err != nil {
		log.Error().Err(err).Msg("failed to save appointment")

		return outcome, &model.PersistenceError{Err: err}
	}

	if rows == 0 {
		log.Error().Str("doctor_id", appointment.DoctorID).Msg("appointment insert affected no rows")

		return outcome, &model.PersistenceError{Err: ErrNotPersisted}
	}

	outcome.Persisted = true

	scope.AddEvent("Appointment persisted")

	outcome.Slip, err = s.renderer.Render(ctx, appointment)
	if err != nil {
		log.Error().Err(err).Str("doctor_id", appointment.DoctorID).Msg("failed to render appointment slip")

		outcome.Slip = nil
		outcome.RenderErr = &model.RenderError{Err: err}
	}

	if notifyErr := s.dispatcher.Dispatch(ctx, appointment, contact, outcome.Slip); notifyErr != nil {
		log.Error().Err(notifyErr).Str("channel", string(outcome.Channel)).Msg("failed to send appointment confirmation")

		outcome.NotifyErr = notifyErr
	}

	outcome.ArchiveURL, outcome.ArchiveErr = s.archive(ctx, outcome.Slip)

	return outcome, nil
}

// archive uploads a rendered slip when object storage is enabled.
func (s *serviceImpl) archive(ctx context.Context, document []byte) (string, error) {
	if len(document) == 0 || s.storage == nil || !s.storage.Enabled() {
		return constant.Empty, nil
	}

	fileName := fmt.Sprintf("%s.pdf", uuid.NewString())

	url, err := s.storage.UploadFileBytes(ctx, s.cfg.External.S3.SlipDirectory, fileName, constant.ContentTypePDF, document)
	if err != nil {
		log.Warn().Err(err).Msg("failed to archive appointment slip")

		return constant.Empty, fmt.Errorf("failed to archive appointment slip: %w", err)
	}

	return url, nil
}

func (s *serviceImpl) ListAll(ctx context.Context, params gDto.QueryParams) (res dto.GetAppointmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.FindAll(ctx, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointments")

		return res, fmt.Errorf("failed to get appointments: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) ListByContact(ctx context.Context, contact string, params gDto.QueryParams) (res dto.GetAppointmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByContact")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.FindByContact(ctx, contact, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointments by contact")

		return res, fmt.Errorf("failed to get appointments by contact: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) ListByDoctorID(ctx context.Context, doctorID string, params gDto.QueryParams) (res dto.GetAppointmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByDoctorID")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.FindByDoctorID(ctx, doctorID, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointments by doctor")

		return res, fmt.Errorf("failed to get appointments by doctor: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context) (count int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	count, err = s.repo.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count appointments")

		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}

	return count, nil
}
