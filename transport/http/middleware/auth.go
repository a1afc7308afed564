package middleware

import (
	"crypto/subtle"
	"docai/shared/constant"
	"docai/shared/failure"
	"docai/transport/http/response"
	"net/http"
)

// APIKey guards read endpoints that expose patient contacts. With no key
// configured every request passes.
func (a *appMiddleware) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := a.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")

		expected := a.config.App.APIKey
		if expected == "" {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)

		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
			err := failure.ForbiddenError

			scope.SetAttribute("http.source", "client")
			scope.TraceError(err)
			scope.End()

			response.WithError(writer, err)

			return
		}

		scope.SetAttribute("http.source", "internal")
		scope.End()

		next.ServeHTTP(writer, request)
	})
}
