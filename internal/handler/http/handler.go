package http

import (
	"github.com/majorsigma/greenbasket-backend/internal/logger"
	"github.com/majorsigma/greenbasket-backend/internal/service"
)

// Handler owns the HTTP endpoints and their middleware. Routes are wired in
// [Handler.Init].
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{services: services, logger: logger}
}
