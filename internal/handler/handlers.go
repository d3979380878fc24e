package handler

import (
	"github.com/MKhiriev/portfolio-cms/internal/config"
	"github.com/MKhiriev/portfolio-cms/internal/handler/http"
	"github.com/MKhiriev/portfolio-cms/internal/logger"
	"github.com/MKhiriev/portfolio-cms/internal/service"
)

// Handlers aggregates the transport handlers of the application.
// HTTP is the only transport today.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}
}
