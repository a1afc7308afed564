package notification

//go:generate go run go.uber.org/mock/mockgen -source=./dispatcher.go -destination=../mocks/dispatcher_mock.go -package=mocks

import (
	"context"
	"docai/config"
	"docai/infras/mail"
	"docai/infras/otel"
	"docai/infras/sms"
	"docai/internal/domains/appointment/model"
	"docai/internal/domains/appointment/slip"
	"docai/shared/constant"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	EmailSubject = "Your Appointment Slip"
	EmailBody    = "Dear Patient,\n\nPlease find your appointment details attached as PDF.\n\nRegards,\nDocAi Scheduler"

	smsTemplate = "Appointment booked with Doctor ID: %s on %s at %s. Reason: %s"
)

// Dispatcher sends the booking confirmation over the channel the contact selects.
type Dispatcher interface {
	Dispatch(ctx context.Context, appointment model.Appointment, contact model.Contact, document []byte) error
}

type dispatcherImpl struct {
	mailer      mail.Mailer
	sender      sms.Sender
	countryCode string
	otel        otel.Otel
}

func New(cfg *config.Config, mailer mail.Mailer, sender sms.Sender, otel otel.Otel) Dispatcher {
	return &dispatcherImpl{
		mailer:      mailer,
		sender:      sender,
		countryCode: cfg.Notification.SMS.CountryCode,
		otel:        otel,
	}
}

// SMSBody is the text sent on the phone path.
func SMSBody(appointment model.Appointment) string {
	return fmt.Sprintf(smsTemplate,
		appointment.DoctorID,
		appointment.Date.Format(constant.DayFormat),
		appointment.Time.String(),
		appointment.Reason,
	)
}

// Destination prefixes number with countryCode unless it is already in
// international form.
func Destination(countryCode, number string) string {
	if strings.HasPrefix(number, "+") {
		return number
	}

	return countryCode + number
}

func (d *dispatcherImpl) Dispatch(ctx context.Context, appointment model.Appointment, contact model.Contact, document []byte) (err error) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelNotificationScopeName, constant.OtelNotificationScopeName+".Dispatch")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	switch target := contact.(type) {
	case model.EmailContact:
		scope.SetAttribute("notification.channel", string(model.ChannelEmail))

		return d.sendEmail(ctx, target, document)
	case model.PhoneContact:
		scope.SetAttribute("notification.channel", string(model.ChannelSMS))

		return d.sendSMS(ctx, appointment, target)
	default:
		return &model.NotificationError{Err: fmt.Errorf("unsupported contact %T", contact)}
	}
}

func (d *dispatcherImpl) sendEmail(ctx context.Context, contact model.EmailContact, data []byte) error {
	if len(data) == 0 {
		log.Warn().Str("to", contact.Address).Msg("no appointment slip to attach, email skipped")

		return &model.NotificationError{Channel: model.ChannelEmail, Err: model.ErrSlipUnavailable}
	}

	err := d.mailer.Send(ctx, mail.Message{
		To:      contact.Address,
		Subject: EmailSubject,
		Body:    EmailBody,
		Attachments: []mail.Attachment{
			{FileName: slip.FileName, ContentType: constant.ContentTypePDF, Data: data},
		},
	})
	if err != nil {
		log.Error().Err(err).Str("to", contact.Address).Msg("failed to email appointment slip")

		return &model.NotificationError{Channel: model.ChannelEmail, Err: err}
	}

	return nil
}

func (d *dispatcherImpl) sendSMS(ctx context.Context, appointment model.Appointment, contact model.PhoneContact) error {
	to := Destination(d.countryCode, contact.Number)

	if err := d.sender.Send(ctx, sms.Message{To: to, Body: SMSBody(appointment)}); err != nil {
		log.Error().Err(err).Str("to", to).Msg("failed to send appointment sms")

		return &model.NotificationError{Channel: model.ChannelSMS, Err: err}
	}

	return nil
}
