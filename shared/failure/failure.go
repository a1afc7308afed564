package failure

import (
	"errors"
	"net/http"
)

// Failure carries the HTTP status an error should be answered with.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "missing or invalid API key"}

func (e *Failure) Error() string {
	return e.Message
}

func (e *Failure) StatusCode() int {
	return e.Code
}

// StatusCoder is implemented by errors that know their HTTP status.
// *Failure is one; domain errors may be others.
type StatusCoder interface {
	StatusCode() int
}

func New(code int, msg string) error {
	return &Failure{Code: code, Message: msg}
}

func fromError(code int, err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: code, Message: err.Error()}
}

func BadRequest(err error) error {
	return fromError(http.StatusBadRequest, err)
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

func InternalError(err error) error {
	return fromError(http.StatusInternalServerError, err)
}

// BadGateway is for errors coming back from an upstream service.
func BadGateway(err error) error {
	return fromError(http.StatusBadGateway, err)
}

// GetCode returns the status of the first StatusCoder in err's chain, or 500.
func GetCode(err error) int {
	var coder StatusCoder
	if errors.As(err, &coder) {
		return coder.StatusCode()
	}

	return http.StatusInternalServerError
}
