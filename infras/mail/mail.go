package mail

//go:generate go run go.uber.org/mock/mockgen -source=./mail.go -destination=./mocks/mail_mock.go -package=mocks

import (
	"context"
	"docai/config"
	"docai/infras/otel"
	"io"
	"strings"

	"github.com/go-gomail/gomail"
	"github.com/rs/zerolog/log"
)

const (
	ProviderSMTP     = "smtp"
	ProviderSendGrid = "sendgrid"
	ProviderSES      = "ses"
	ProviderStub     = "stub"
)

const (
	otelAttrProvider = "mail.provider"
	otelAttrTo       = "mail.to"
)

type Attachment struct {
	FileName    string
	ContentType string
	Data        []byte
}

type Message struct {
	To          string
	Subject     string
	Body        string
	Attachments []Attachment
}

// Mailer delivers a single plain-text message with optional attachments.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

func New(cfg *config.Config, otel otel.Otel) Mailer {
	return NewFromConfig(cfg.Notification.Email, otel)
}

// NewFromConfig picks the sender named by cfg.Provider. An unknown provider
// falls back to the stub so the service still boots.
func NewFromConfig(cfg config.Email, otel otel.Otel) Mailer {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))

	switch provider {
	case ProviderSMTP:
		return NewSMTP(cfg, otel)
	case ProviderSendGrid:
		return NewSendGrid(cfg, otel)
	case ProviderSES:
		return NewSES(cfg, otel)
	case ProviderStub:
		return NewStub(otel)
	}

	log.Warn().Str("provider", cfg.Provider).Msg("Unknown email provider, emails will only be logged")

	return NewStub(otel)
}

// newMIMEMessage builds the gomail message shared by the SMTP and SES senders.
func newMIMEMessage(from, fromName string, msg Message) *gomail.Message {
	message := gomail.NewMessage()

	if fromName != "" {
		message.SetAddressHeader("From", from, fromName)
	} else {
		message.SetHeader("From", from)
	}

	message.SetHeader("To", msg.To)
	message.SetHeader("Subject", msg.Subject)
	message.SetBody("text/plain", msg.Body)

	for _, attachment := range msg.Attachments {
		data := attachment.Data

		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)

				return err //nolint:wrapcheck
			}),
		}

		if attachment.ContentType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{
				"Content-Type": {attachment.ContentType},
			}))
		}

		message.Attach(attachment.FileName, settings...)
	}

	return message
}
