package handler

import (
	"docai/config"
	"docai/di"
	"docai/shared/logger"
	"docai/shared/timezone"
	"docai/transport/http"
	nethttp "net/http"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	server *http.HTTP
	once   sync.Once
)

// Handler is the serverless entrypoint. The dependency graph is built once
// per warm instance.
func Handler(w nethttp.ResponseWriter, r *nethttp.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		if err := timezone.Init(cfg.App.Timezone); err != nil {
			log.Error().Err(err).Msg("Failed to load timezone, falling back to UTC")
		}

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
