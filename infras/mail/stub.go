package mail

import (
	"context"
	"docai/infras/otel"
	"docai/shared/constant"

	"github.com/rs/zerolog/log"
)

type stubMailer struct {
	otel otel.Otel
}

// NewStub returns a Mailer that only logs what it would have sent.
func NewStub(otel otel.Otel) Mailer {
	return &stubMailer{otel: otel}
}

func (s *stubMailer) Send(ctx context.Context, msg Message) error {
	_, scope := s.otel.NewScope(ctx, constant.OtelNotificationScopeName, constant.OtelNotificationScopeName+".stub.Send")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		otelAttrProvider: ProviderStub,
		otelAttrTo:       msg.To,
	})

	log.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Int("attachments", len(msg.Attachments)).
		Msg("stub mailer: email not sent")

	return nil
}
