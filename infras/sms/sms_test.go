package sms

import (
	"context"
	"docai/config"
	"docai/infras/otel/mocks"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type fakeCreator struct {
	params *openapi.CreateMessageParams
	err    error
}

func (f *fakeCreator) CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}

	sid := "SM123"

	return &openapi.ApiV2010Message{Sid: &sid}, nil
}

func TestNewFromConfig(t *testing.T) {
	assert.IsType(t, &twilioSender{}, NewFromConfig(config.SMS{Provider: "twilio"}, mocks.NewOtel()))
	assert.IsType(t, &stubSender{}, NewFromConfig(config.SMS{Provider: "stub"}, mocks.NewOtel()))
	assert.IsType(t, &stubSender{}, NewFromConfig(config.SMS{Provider: "fax"}, mocks.NewOtel()))
}

func TestTwilioSender_Send(t *testing.T) {
	msg := Message{To: "+919876543210", Body: "Appointment booked"}

	t.Run("success", func(t *testing.T) {
		creator := &fakeCreator{}
		sender := &twilioSender{api: creator, fromNumber: "+15550001111", configured: true, otel: mocks.NewOtel()}

		require.NoError(t, sender.Send(context.Background(), msg))
		require.NotNil(t, creator.params)
		assert.Equal(t, "+919876543210", *creator.params.To)
		assert.Equal(t, "+15550001111", *creator.params.From)
		assert.Equal(t, "Appointment booked", *creator.params.Body)
	})

	t.Run("provider error", func(t *testing.T) {
		creator := &fakeCreator{err: errors.New("21211 invalid 'To' phone number")}
		sender := &twilioSender{api: creator, configured: true, otel: mocks.NewOtel()}

		assert.ErrorContains(t, sender.Send(context.Background(), msg), "21211")
	})

	t.Run("missing credentials", func(t *testing.T) {
		creator := &fakeCreator{}
		sender := &twilioSender{api: creator, otel: mocks.NewOtel()}

		assert.ErrorIs(t, sender.Send(context.Background(), msg), ErrTwilioNotConfigured)
		assert.Nil(t, creator.params)
	})
}

func TestStubSender_Send(t *testing.T) {
	assert.NoError(t, NewStub(mocks.NewOtel()).Send(context.Background(), Message{To: "+1", Body: "hi"}))
}
