package main

import (
	"context"
	"fmt"

	"github.com/majorsigma/greenbasket-backend/internal/config"
	"github.com/majorsigma/greenbasket-backend/internal/handler"
	"github.com/majorsigma/greenbasket-backend/internal/logger"
	"github.com/majorsigma/greenbasket-backend/internal/mail"
	"github.com/majorsigma/greenbasket-backend/internal/otp"
	"github.com/majorsigma/greenbasket-backend/internal/server"
	"github.com/majorsigma/greenbasket-backend/internal/service"
	"github.com/majorsigma/greenbasket-backend/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("greenbasket-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	codes, err := otp.NewGenerator(cfg.App)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating one-time code generator")
	}

	var sender mail.Sender
	if cfg.Mail.Endpoint != "" {
		sender, err = mail.NewAPISender(cfg.Mail, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating mail sender")
		}
	} else {
		log.Warn().Msg("no mail endpoint configured, verification codes will not be delivered")
		sender = mail.NopSender{}
	}

	services := service.NewServices(db, *cfg, codes, sender, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
