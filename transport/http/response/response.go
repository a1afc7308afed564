package response

import (
	"docai/shared/constant"
	"docai/shared/failure"
	"docai/shared/logger"
	"encoding/json"
	"net/http"
)

// Data wraps every successful body as {"data": ...}.
type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

// Error wraps every failed body as {"error": ...}.
type Error struct {
	Error *string `json:"error,omitempty"`
}

var fallbackBody = []byte(`{"error":"failed to encode response"}`)

func WithJSON[T any](writer http.ResponseWriter, code int, payload T) {
	response(writer, code, Data[T]{Data: &payload})
}

// WithError maps err to its status code through failure.GetCode.
func WithError(writer http.ResponseWriter, err error) {
	WithErrorMessage(writer, failure.GetCode(err), err.Error())
}

func WithErrorMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Error{Error: &message})
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithErrorMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithErrorMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithErrorMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		code = http.StatusInternalServerError
		body = fallbackBody
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
