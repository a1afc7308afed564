package service_test

import (
	"context"
	"docai/config"
	"docai/infras/mail"
	mailMocks "docai/infras/mail/mocks"
	"docai/infras/otel/mocks"
	s3Mocks "docai/infras/s3/mocks"
	"docai/infras/sms"
	smsMocks "docai/infras/sms/mocks"
	appointmentMocks "docai/internal/domains/appointment/mocks"
	"docai/internal/domains/appointment/model"
	"docai/internal/domains/appointment/model/dto"
	"docai/internal/domains/appointment/notification"
	"docai/internal/domains/appointment/service"
	gDto "docai/shared/dto"
	"docai/shared/failure"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo       *appointmentMocks.MockAppointment
	renderer   *appointmentMocks.MockRenderer
	dispatcher *appointmentMocks.MockDispatcher
	storage    *s3Mocks.MockS3
	svc        service.Appointment
}

func newFixture(ctrl *gomock.Controller) fixture {
	cfg := &config.Config{}
	cfg.External.S3.SlipDirectory = "slips"

	f := fixture{
		repo:       appointmentMocks.NewMockAppointment(ctrl),
		renderer:   appointmentMocks.NewMockRenderer(ctrl),
		dispatcher: appointmentMocks.NewMockDispatcher(ctrl),
		storage:    s3Mocks.NewMockS3(ctrl),
	}
	f.svc = service.New(f.repo, f.renderer, f.dispatcher, f.storage, cfg, mocks.NewOtel())

	return f
}

func bookingRequest(contact string) dto.BookAppointmentRequest {
	return dto.BookAppointmentRequest{
		DoctorID: "doc123",
		Date:     "2025-06-21",
		Time:     "15:00",
		Reason:   "checkup",
		Contact:  contact,
	}
}

func TestAppointmentService_BookValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	tests := []struct {
		name   string
		mutate func(*dto.BookAppointmentRequest)
		field  string
	}{
		{name: "missing doctor", mutate: func(r *dto.BookAppointmentRequest) { r.DoctorID = "" }},
		{name: "missing reason", mutate: func(r *dto.BookAppointmentRequest) { r.Reason = "" }},
		{name: "missing contact", mutate: func(r *dto.BookAppointmentRequest) { r.Contact = "" }},
		{name: "malformed date", mutate: func(r *dto.BookAppointmentRequest) { r.Date = "21/06/2025" }},
		{name: "impossible date", mutate: func(r *dto.BookAppointmentRequest) { r.Date = "2025-02-30" }},
		{name: "malformed time", mutate: func(r *dto.BookAppointmentRequest) { r.Time = "3pm" }},
		{name: "out of range time", mutate: func(r *dto.BookAppointmentRequest) { r.Time = "25:00" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := bookingRequest("a@b.com")
			tt.mutate(&req)

			outcome, err := f.svc.Book(context.Background(), req)

			require.Error(t, err)

			var validationErr *model.ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.False(t, outcome.Persisted)
		})
	}
}

func TestAppointmentService_BookPersistenceFailure(t *testing.T) {
	tests := []struct {
		name  string
		rows  int64
		err   error
		cause error
	}{
		{name: "driver error", err: errors.New("connection refused")},
		{name: "zero rows", rows: 0, cause: service.ErrNotPersisted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newFixture(ctrl)

			// renderer, dispatcher and storage carry no expectations: any call fails the test
			f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(tt.rows, tt.err)

			outcome, err := f.svc.Book(context.Background(), bookingRequest("a@b.com"))

			require.Error(t, err)

			var persistenceErr *model.PersistenceError
			require.ErrorAs(t, err, &persistenceErr)
			assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
			assert.False(t, outcome.Persisted)

			if tt.cause != nil {
				assert.ErrorIs(t, err, tt.cause)
			}
		})
	}
}

func TestAppointmentService_BookEmailScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	document := []byte("%PDF-1.3 slip")

	gomock.InOrder(
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, appointment model.Appointment) (int64, error) {
				assert.Equal(t, "doc123", appointment.DoctorID)
				assert.Equal(t, time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC), appointment.Date)
				assert.Equal(t, model.Clock{Hour: 15, Minute: 0}, appointment.Time)
				assert.Equal(t, "checkup", appointment.Reason)
				assert.Equal(t, "a@b.com", appointment.Contact)
				assert.Equal(t, model.StatusScheduled, appointment.Status)
				assert.False(t, appointment.CreatedAt.IsZero())

				return 1, nil
			}),
		f.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(document, nil),
		f.dispatcher.EXPECT().
			Dispatch(gomock.Any(), gomock.Any(), model.EmailContact{Address: "a@b.com"}, document).
			Return(nil),
		f.storage.EXPECT().Enabled().Return(false),
	)

	outcome, err := f.svc.Book(context.Background(), bookingRequest("a@b.com"))

	require.NoError(t, err)
	assert.True(t, outcome.Persisted)
	assert.Equal(t, model.ChannelEmail, outcome.Channel)
	assert.Equal(t, document, outcome.Slip)
	assert.NoError(t, outcome.RenderErr)
	assert.NoError(t, outcome.NotifyErr)
	assert.Empty(t, outcome.ArchiveURL)

	res := outcome.Response()
	assert.Equal(t, service.MessageBooked, res.Message)
	assert.Equal(t, "doc123", res.DoctorID)
	assert.Equal(t, "2025-06-21", res.Date)
	assert.Equal(t, "15:00", res.Time)
	assert.Equal(t, "a@b.com", res.Contact)
	assert.True(t, res.SlipRendered)
	assert.Equal(t, "email", res.Notification.Channel)
	assert.True(t, res.Notification.Delivered)
	assert.Empty(t, res.Notification.Error)
}

func TestAppointmentService_BookSMSScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{}
	cfg.Notification.SMS.CountryCode = "+91"

	repo := appointmentMocks.NewMockAppointment(ctrl)
	renderer := appointmentMocks.NewMockRenderer(ctrl)
	storage := s3Mocks.NewMockS3(ctrl)
	mailer := mailMocks.NewMockMailer(ctrl)
	sender := smsMocks.NewMockSender(ctrl)

	dispatcher := notification.New(cfg, mailer, sender, mocks.NewOtel())
	svc := service.New(repo, renderer, dispatcher, storage, cfg, mocks.NewOtel())

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil)
	storage.EXPECT().Enabled().Return(false)
	sender.EXPECT().
		Send(gomock.Any(), sms.Message{
			To:   "+919876543210",
			Body: "Appointment booked with Doctor ID: doc123 on 2025-06-21 at 15:00. Reason: checkup",
		}).
		Return(nil)

	outcome, err := svc.Book(context.Background(), bookingRequest("9876543210"))

	require.NoError(t, err)
	assert.True(t, outcome.Persisted)
	assert.Equal(t, model.ChannelSMS, outcome.Channel)
	assert.NoError(t, outcome.NotifyErr)
}

func TestAppointmentService_BookEmptyContactRoutesToSMS(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	// The request validator rejects an empty contact, so routing is checked on
	// the parsed union directly.
	assert.Equal(t, model.ChannelSMS, model.ParseContact("").Channel())

	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	f.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil)
	f.dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any(), model.PhoneContact{Number: "no-at-sign"}, gomock.Any()).
		Return(nil)
	f.storage.EXPECT().Enabled().Return(false)

	outcome, err := f.svc.Book(context.Background(), bookingRequest("no-at-sign"))

	require.NoError(t, err)
	assert.Equal(t, model.ChannelSMS, outcome.Channel)
}

func TestAppointmentService_BookRenderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{}
	repo := appointmentMocks.NewMockAppointment(ctrl)
	renderer := appointmentMocks.NewMockRenderer(ctrl)
	storage := s3Mocks.NewMockS3(ctrl)
	mailer := mailMocks.NewMockMailer(ctrl)
	sender := smsMocks.NewMockSender(ctrl)

	dispatcher := notification.New(cfg, mailer, sender, mocks.NewOtel())
	svc := service.New(repo, renderer, dispatcher, storage, cfg, mocks.NewOtel())

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil, errors.New("font missing"))

	// no mailer expectation: the email is never attempted without a slip
	outcome, err := svc.Book(context.Background(), bookingRequest("a@b.com"))

	require.NoError(t, err)
	assert.True(t, outcome.Persisted)
	assert.Nil(t, outcome.Slip)

	var renderErr *model.RenderError
	require.ErrorAs(t, outcome.RenderErr, &renderErr)

	var notifyErr *model.NotificationError
	require.ErrorAs(t, outcome.NotifyErr, &notifyErr)
	assert.Equal(t, model.ChannelEmail, notifyErr.Channel)
	assert.ErrorIs(t, outcome.NotifyErr, model.ErrSlipUnavailable)

	res := outcome.Response()
	assert.False(t, res.SlipRendered)
	assert.False(t, res.Notification.Delivered)
	assert.NotEmpty(t, res.Notification.Error)
}

func TestAppointmentService_BookRenderFailureStillSendsSMS(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	f.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
	f.dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any(), model.PhoneContact{Number: "9876543210"}, gomock.Nil()).
		Return(nil)

	outcome, err := f.svc.Book(context.Background(), bookingRequest("9876543210"))

	require.NoError(t, err)
	assert.Error(t, outcome.RenderErr)
	assert.NoError(t, outcome.NotifyErr)
}

func TestAppointmentService_BookNotificationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	notifyErr := &model.NotificationError{Channel: model.ChannelEmail, Err: mail.ErrSendGridNotConfigured}

	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	f.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil)
	f.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(notifyErr)
	f.storage.EXPECT().Enabled().Return(false)

	outcome, err := f.svc.Book(context.Background(), bookingRequest("a@b.com"))

	require.NoError(t, err)
	assert.True(t, outcome.Persisted)
	assert.ErrorIs(t, outcome.NotifyErr, mail.ErrSendGridNotConfigured)
	assert.False(t, outcome.Response().Notification.Delivered)
}

func TestAppointmentService_BookArchivesSlip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	document := []byte("%PDF")

	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	f.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(document, nil)
	f.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.storage.EXPECT().Enabled().Return(true)
	f.storage.EXPECT().
		UploadFileBytes(gomock.Any(), "slips", gomock.Any(), "application/pdf", document).
		DoAndReturn(func(_ context.Context, directory, fileName, _ string, _ []byte) (string, error) {
			assert.True(t, strings.HasSuffix(fileName, ".pdf"))

			return "https://cdn.example.com/" + directory + "/" + fileName, nil
		})

	outcome, err := f.svc.Book(context.Background(), bookingRequest("a@b.com"))

	require.NoError(t, err)
	assert.NoError(t, outcome.ArchiveErr)
	assert.True(t, strings.HasPrefix(outcome.ArchiveURL, "https://cdn.example.com/slips/"))
	assert.Equal(t, outcome.ArchiveURL, outcome.Response().SlipURL)
}

func TestAppointmentService_BookArchiveFailureIsAbsorbed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	f.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil)
	f.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.storage.EXPECT().Enabled().Return(true)
	f.storage.EXPECT().
		UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("bucket missing"))

	outcome, err := f.svc.Book(context.Background(), bookingRequest("a@b.com"))

	require.NoError(t, err)
	assert.Error(t, outcome.ArchiveErr)
	assert.Empty(t, outcome.Response().SlipURL)
}

func TestAppointmentService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	params := gDto.QueryParams{}

	newer := model.Appointment{ID: 2, DoctorID: "doc123", Contact: "a@b.com", Time: model.Clock{Hour: 9, Minute: 30}}
	older := model.Appointment{ID: 1, DoctorID: "doc123", Contact: "a@b.com", Time: model.Clock{Hour: 15}}

	t.Run("all", func(t *testing.T) {
		f.repo.EXPECT().FindAll(gomock.Any(), params).Return([]model.Appointment{newer, older}, nil)

		res, err := f.svc.ListAll(context.Background(), params)

		require.NoError(t, err)
		require.Len(t, res.Appointments, 2)
		assert.Equal(t, 2, res.TotalData)
		assert.Equal(t, int64(2), res.Appointments[0].ID)
		assert.Equal(t, "09:30", res.Appointments[0].Time)
	})

	t.Run("by contact", func(t *testing.T) {
		f.repo.EXPECT().FindByContact(gomock.Any(), "a@b.com", params).Return([]model.Appointment{newer}, nil)

		res, err := f.svc.ListByContact(context.Background(), "a@b.com", params)

		require.NoError(t, err)
		assert.Len(t, res.Appointments, 1)
	})

	t.Run("by doctor empty", func(t *testing.T) {
		f.repo.EXPECT().FindByDoctorID(gomock.Any(), "nobody", params).Return([]model.Appointment{}, nil)

		res, err := f.svc.ListByDoctorID(context.Background(), "nobody", params)

		require.NoError(t, err)
		assert.NotNil(t, res.Appointments)
		assert.Empty(t, res.Appointments)
	})

	t.Run("repository error", func(t *testing.T) {
		f.repo.EXPECT().FindAll(gomock.Any(), params).Return(nil, errors.New("database error"))

		_, err := f.svc.ListAll(context.Background(), params)

		assert.Error(t, err)
	})
}

func TestAppointmentService_Count(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	f.repo.EXPECT().Count(gomock.Any()).Return(7, nil)

	count, err := f.svc.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, count)

	f.repo.EXPECT().Count(gomock.Any()).Return(0, errors.New("database error"))

	_, err = f.svc.Count(context.Background())

	assert.Error(t, err)
}
