package predictor

//go:generate go run go.uber.org/mock/mockgen -source=./predictor.go -destination=./mocks/predictor_mock.go -package=mocks

import (
	"bytes"
	"context"
	"docai/config"
	"docai/infras/otel"
	"docai/shared/constant"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	otelAttrURL      = "predictor.url"
	otelAttrSymptoms = "predictor.symptoms"
	otelAttrStatus   = "http.status_code"

	maxResponseBytes = 1 << 20
)

var ErrInvalidResponse = errors.New("prediction service returned invalid json")

type Request struct {
	Symptoms []string `json:"symptoms"`
}

// Predictor forwards symptoms to the ML service and hands back its JSON verbatim.
type Predictor interface {
	Predict(ctx context.Context, symptoms []string) (json.RawMessage, error)
}

type predictorImpl struct {
	url    string
	client *http.Client
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Predictor {
	return &predictorImpl{
		url: cfg.External.Predictor.URL,
		client: &http.Client{
			Timeout: time.Duration(cfg.External.Predictor.TimeoutSeconds) * time.Second,
		},
		otel: otel,
	}
}

func (p *predictorImpl) Predict(ctx context.Context, symptoms []string) (output json.RawMessage, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".predictor.Predict")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrURL:      p.url,
		otelAttrSymptoms: symptoms,
	})

	payload, err := json.Marshal(Request{Symptoms: symptoms})
	if err != nil {
		return nil, fmt.Errorf("failed to encode prediction request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build prediction request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := p.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("url", p.url).Msg("failed to call prediction service")

		return nil, fmt.Errorf("failed to call prediction service: %w", err)
	}
	defer resp.Body.Close()

	scope.SetAttribute(otelAttrStatus, resp.StatusCode)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read prediction response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		log.Error().Int("status", resp.StatusCode).Bytes("body", body).Msg("prediction service returned an error")

		return nil, fmt.Errorf("prediction service returned status %d", resp.StatusCode)
	}

	if !json.Valid(body) {
		return nil, ErrInvalidResponse
	}

	return json.RawMessage(body), nil
}
