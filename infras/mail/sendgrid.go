package mail

import (
	"context"
	"docai/config"
	"docai/infras/otel"
	"docai/shared/constant"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendGridEndpoint = "/v3/mail/send"

var ErrSendGridNotConfigured = errors.New("sendgrid api key not configured")

type sendGridMailer struct {
	apiKey   string
	host     string
	from     string
	fromName string
	otel     otel.Otel
}

func NewSendGrid(cfg config.Email, otel otel.Otel) Mailer {
	return &sendGridMailer{
		apiKey:   cfg.SendGrid.APIKey,
		host:     cfg.SendGrid.Host,
		from:     cfg.From,
		fromName: cfg.FromName,
		otel:     otel,
	}
}

func (s *sendGridMailer) Send(ctx context.Context, msg Message) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelNotificationScopeName, constant.OtelNotificationScopeName+".sendgrid.Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrProvider: ProviderSendGrid,
		otelAttrTo:       msg.To,
	})

	if s.apiKey == "" {
		return ErrSendGridNotConfigured
	}

	request := sendgrid.GetRequest(s.apiKey, sendGridEndpoint, s.host)
	request.Method = http.MethodPost
	request.Body = sgmail.GetRequestBody(s.build(msg))

	response, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		log.Error().Err(err).Str("to", msg.To).Msg("failed to send email via sendgrid")

		return fmt.Errorf("failed to send email via sendgrid: %w", err)
	}

	if response.StatusCode >= http.StatusBadRequest {
		err = fmt.Errorf("sendgrid returned status %d", response.StatusCode)
		log.Error().Err(err).Str("to", msg.To).Str("body", response.Body).Msg("sendgrid rejected email")

		return err
	}

	log.Info().Str("to", msg.To).Int("status", response.StatusCode).Msg("email sent via sendgrid")

	return nil
}

func (s *sendGridMailer) build(msg Message) *sgmail.SGMailV3 {
	message := sgmail.NewV3Mail()
	message.SetFrom(sgmail.NewEmail(s.fromName, s.from))
	message.Subject = msg.Subject

	personalization := sgmail.NewPersonalization()
	personalization.AddTos(sgmail.NewEmail("", msg.To))
	message.AddPersonalizations(personalization)

	message.AddContent(sgmail.NewContent("text/plain", msg.Body))

	for _, attachment := range msg.Attachments {
		sgAttachment := sgmail.NewAttachment()
		sgAttachment.SetContent(base64.StdEncoding.EncodeToString(attachment.Data))
		sgAttachment.SetType(attachment.ContentType)
		sgAttachment.SetFilename(attachment.FileName)
		sgAttachment.SetDisposition("attachment")

		message.AddAttachment(sgAttachment)
	}

	return message
}
