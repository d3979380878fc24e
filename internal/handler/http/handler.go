package http

import (
	"time"

	"github.com/MKhiriev/portfolio-cms/internal/config"
	"github.com/MKhiriev/portfolio-cms/internal/logger"
	"github.com/MKhiriev/portfolio-cms/internal/service"
)

type Handler struct {
	services *service.Services

	// requestTimeout bounds the context of every request handled by the
	// router. Zero disables the bound.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
