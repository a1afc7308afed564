package sms

import (
	"context"
	"docai/config"
	"docai/infras/otel"
	"docai/shared/constant"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

var ErrTwilioNotConfigured = errors.New("twilio credentials not configured")

type messageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

type twilioSender struct {
	api        messageCreator
	fromNumber string
	configured bool
	otel       otel.Otel
}

func NewTwilio(cfg config.SMS, otel otel.Otel) Sender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.Twilio.AccountSID,
		Password: cfg.Twilio.AuthToken,
	})

	return &twilioSender{
		api:        client.Api,
		fromNumber: cfg.Twilio.FromNumber,
		configured: cfg.Twilio.AccountSID != "" && cfg.Twilio.AuthToken != "",
		otel:       otel,
	}
}

func (s *twilioSender) Send(ctx context.Context, msg Message) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelNotificationScopeName, constant.OtelNotificationScopeName+".twilio.Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrProvider: ProviderTwilio,
		otelAttrTo:       msg.To,
	})

	if !s.configured {
		return ErrTwilioNotConfigured
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(msg.To)
	params.SetFrom(s.fromNumber)
	params.SetBody(msg.Body)

	resp, err := s.api.CreateMessage(params)
	if err != nil {
		log.Error().Err(err).Str("to", msg.To).Msg("failed to send sms via twilio")

		return fmt.Errorf("failed to send sms via twilio: %w", err)
	}

	sid := constant.Empty
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}

	log.Info().Str("to", msg.To).Str("sid", sid).Msg("sms sent via twilio")

	return nil
}
