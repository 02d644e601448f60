package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/lineup-card/external/statsapi"
	"github.com/riskibarqy/lineup-card/internal/config"
	"github.com/riskibarqy/lineup-card/internal/interfaces/httpapi"
	"github.com/riskibarqy/lineup-card/internal/platform/logging"
	"github.com/riskibarqy/lineup-card/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	feedClient := statsapi.NewClient(statsapi.ClientConfig{
		BaseURL: cfg.StatsAPIBaseURL,
		Timeout: cfg.StatsAPITimeout,
		Logger:  logger,
	})

	lineupCardSvc := usecase.NewLineupCardService(feedClient, logger)

	handler := httpapi.NewHandler(lineupCardSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
