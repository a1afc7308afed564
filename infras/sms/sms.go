package sms

//go:generate go run go.uber.org/mock/mockgen -source=./sms.go -destination=./mocks/sms_mock.go -package=mocks

import (
	"context"
	"docai/config"
	"docai/infras/otel"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	ProviderTwilio = "twilio"
	ProviderStub   = "stub"
)

const (
	otelAttrProvider = "sms.provider"
	otelAttrTo       = "sms.to"
)

type Message struct {
	To   string
	Body string
}

// Sender delivers a text message to a fully qualified number.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

func New(cfg *config.Config, otel otel.Otel) Sender {
	return NewFromConfig(cfg.Notification.SMS, otel)
}

func NewFromConfig(cfg config.SMS, otel otel.Otel) Sender {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case ProviderTwilio:
		return NewTwilio(cfg, otel)
	case ProviderStub:
		return NewStub(otel)
	}

	log.Warn().Str("provider", cfg.Provider).Msg("Unknown sms provider, messages will only be logged")

	return NewStub(otel)
}
