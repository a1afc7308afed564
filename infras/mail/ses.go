package mail

import (
	"bytes"
	"context"
	"docai/config"
	"docai/infras/otel"
	"docai/shared/constant"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/rs/zerolog/log"
)

type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type sesMailer struct {
	client   sesAPI
	from     string
	fromName string
	otel     otel.Otel
}

func NewSES(cfg config.Email, otel otel.Otel) Mailer {
	awsCfg, err := awsConfig.LoadDefaultConfig(context.TODO(), awsConfig.WithRegion(cfg.SES.Region))
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration for SES")
	}

	return &sesMailer{
		client:   sesv2.NewFromConfig(awsCfg),
		from:     cfg.From,
		fromName: cfg.FromName,
		otel:     otel,
	}
}

// Send posts the message as raw MIME; the simple content API cannot carry attachments.
func (s *sesMailer) Send(ctx context.Context, msg Message) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelNotificationScopeName, constant.OtelNotificationScopeName+".ses.Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrProvider: ProviderSES,
		otelAttrTo:       msg.To,
	})

	var raw bytes.Buffer
	if _, err = newMIMEMessage(s.from, s.fromName, msg).WriteTo(&raw); err != nil {
		return fmt.Errorf("failed to build raw email: %w", err)
	}

	output, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.from),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Content: &types.EmailContent{
			Raw: &types.RawMessage{Data: raw.Bytes()},
		},
	})
	if err != nil {
		log.Error().Err(err).Str("to", msg.To).Msg("failed to send email via ses")

		return fmt.Errorf("failed to send email via ses: %w", err)
	}

	log.Info().Str("to", msg.To).Str("message_id", aws.ToString(output.MessageId)).Msg("email sent via ses")

	return nil
}
