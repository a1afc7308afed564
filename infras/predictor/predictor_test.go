package predictor_test

import (
	"context"
	"docai/config"
	"docai/infras/otel/mocks"
	"docai/infras/predictor"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPredictor(url string) predictor.Predictor {
	cfg := &config.Config{}
	cfg.External.Predictor.URL = url
	cfg.External.Predictor.TimeoutSeconds = 5

	return predictor.New(cfg, mocks.NewOtel())
}

func TestPredictor_Predict(t *testing.T) {
	var received predictor.Request

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"prediction":"Flu","probability":0.87,"status":"success"}`))
	}))
	defer server.Close()

	output, err := newPredictor(server.URL+"/predict").Predict(context.Background(), []string{"fever", "cough"})

	require.NoError(t, err)
	assert.Equal(t, []string{"fever", "cough"}, received.Symptoms)
	assert.JSONEq(t, `{"prediction":"Flu","probability":0.87,"status":"success"}`, string(output))
}

func TestPredictor_Predict_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":"model not loaded"}`))
			},
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`<html>sleeping</html>`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			output, err := newPredictor(server.URL).Predict(context.Background(), []string{"fever"})

			assert.Error(t, err)
			assert.Nil(t, output)
		})
	}
}

func TestPredictor_Predict_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := newPredictor(url).Predict(context.Background(), []string{"fever"})

	assert.Error(t, err)
}
