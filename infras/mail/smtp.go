package mail

import (
	"context"
	"docai/config"
	"docai/infras/otel"
	"docai/shared/constant"
	"fmt"

	"github.com/go-gomail/gomail"
	"github.com/rs/zerolog/log"
)

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpMailer struct {
	dialer   dialer
	from     string
	fromName string
	otel     otel.Otel
}

func NewSMTP(cfg config.Email, otel otel.Otel) Mailer {
	from := cfg.From
	if from == "" {
		from = cfg.SMTP.Username
	}

	return &smtpMailer{
		dialer:   gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password),
		from:     from,
		fromName: cfg.FromName,
		otel:     otel,
	}
}

func (s *smtpMailer) Send(ctx context.Context, msg Message) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelNotificationScopeName, constant.OtelNotificationScopeName+".smtp.Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrProvider: ProviderSMTP,
		otelAttrTo:       msg.To,
	})

	if err = s.dialer.DialAndSend(newMIMEMessage(s.from, s.fromName, msg)); err != nil {
		log.Error().Err(err).Str("to", msg.To).Msg("failed to send email via smtp")

		return fmt.Errorf("failed to send email via smtp: %w", err)
	}

	log.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg("email sent via smtp")

	return nil
}
