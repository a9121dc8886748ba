package service

import (
	"github.com/majorsigma/greenbasket-backend/internal/config"
	"github.com/majorsigma/greenbasket-backend/internal/logger"
	"github.com/majorsigma/greenbasket-backend/internal/mail"
	"github.com/majorsigma/greenbasket-backend/internal/store"
)

type Services struct {
	AccountService AccountService
	AuthService    AuthService
}

func NewServices(db store.TxStarter, cfg config.StructuredConfig, codes CodeIssuer, sender mail.Sender, logger *logger.Logger) *Services {
	return &Services{
		AccountService: NewAccountService(db, logger),
		AuthService:    NewAuthService(db, cfg.App, codes, sender, logger),
	}
}
