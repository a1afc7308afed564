package sms

import (
	"context"
	"docai/infras/otel"
	"docai/shared/constant"

	"github.com/rs/zerolog/log"
)

type stubSender struct {
	otel otel.Otel
}

func NewStub(otel otel.Otel) Sender {
	return &stubSender{otel: otel}
}

func (s *stubSender) Send(ctx context.Context, msg Message) error {
	_, scope := s.otel.NewScope(ctx, constant.OtelNotificationScopeName, constant.OtelNotificationScopeName+".stub.Send")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		otelAttrProvider: ProviderStub,
		otelAttrTo:       msg.To,
	})

	log.Info().Str("to", msg.To).Str("body", msg.Body).Msg("stub sms sender: message not sent")

	return nil
}
