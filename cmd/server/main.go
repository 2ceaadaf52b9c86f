// @title                       Klantinteracties API
// @version                     1.0
// @description                 Klanten, contactmomenten and verzoeken with their relations to zaken and documenten.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	_ "github.com/vng-realisatie/klantinteracties/docs"
	"github.com/vng-realisatie/klantinteracties/internal/api"
	"github.com/vng-realisatie/klantinteracties/internal/core/service"
	"github.com/vng-realisatie/klantinteracties/internal/infrastructure/config"
	mongostore "github.com/vng-realisatie/klantinteracties/internal/infrastructure/db/mongo"
	redisstore "github.com/vng-realisatie/klantinteracties/internal/infrastructure/db/redis"
	"github.com/vng-realisatie/klantinteracties/internal/infrastructure/remote"
	"github.com/vng-realisatie/klantinteracties/internal/pkg/resourceurl"
	"github.com/vng-realisatie/klantinteracties/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := zerolog.New(os.Stderr).With().Timestamp().Logger()
		boot.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "klantinteracties",
		Env:     cfg.Env,
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- Storage ---
	mongoClient, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer func() { _ = rdb.Close() }()

	applicaties := mongostore.NewApplicatieRepository(db)
	klanten := mongostore.NewKlantRepository(db)
	subjects := mongostore.NewSubjectRepository(db)
	contactMomenten := mongostore.NewContactMomentRepository(db)
	verzoeken := mongostore.NewVerzoekRepository(db)
	objectContactMomenten := mongostore.NewObjectContactMomentRepository(db)
	objectVerzoeken := mongostore.NewObjectVerzoekRepository(db)
	informatieObjecten := mongostore.NewVerzoekInformatieObjectRepository(db)
	producten := mongostore.NewVerzoekProductRepository(db)
	verzoekContactMomenten := mongostore.NewVerzoekContactMomentRepository(db)

	if err := mongostore.EnsureIndexes(ctx,
		applicaties, klanten, subjects, contactMomenten, verzoeken,
		objectContactMomenten, objectVerzoeken, informatieObjecten, producten, verzoekContactMomenten,
	); err != nil {
		return err
	}

	tx := mongostore.NewTransactor(mongoClient)
	pending := redisstore.NewPendingDeletes(rdb, cfg.Redis.PendingDeleteTTL)

	// --- Remote APIs ---
	entries, err := remote.ParseCredentials(cfg.Remote.Credentials)
	if err != nil {
		return err
	}
	remoteClient := remote.NewClient(
		remote.Config{Timeout: cfg.Remote.Timeout, RetryMax: cfg.Remote.RetryMax},
		remote.NewCredentials(entries),
		logger.Component("remote"),
	)
	specs, err := remote.LoadSpecs(cfg.Remote.ZRCSpec, cfg.Remote.DRCSpec)
	if err != nil {
		return err
	}
	resources := remote.NewSchemaValidator(remoteClient, specs)

	// --- Services ---
	urls := resourceurl.New(cfg.BaseURL)
	notifier := service.NewSyncNotifier(remoteClient, pending, logger.Component("sync"))
	validator := service.NewRelationValidator(remoteClient, resources, logger.Component("relations"))

	authService := service.NewAuthService(applicaties, cfg.JWTSecret, cfg.TokenTTL)
	if err := authService.EnsureApplicatie(ctx, cfg.Bootstrap.ClientID, cfg.Bootstrap.Secret); err != nil {
		return err
	}

	svc := api.Services{
		Auth:    authService,
		Klanten: service.NewKlantService(klanten, subjects, tx, logger.Component("klanten")),
		ContactMomenten: service.NewContactMomentService(
			contactMomenten, klanten, objectContactMomenten, verzoekContactMomenten,
			tx, notifier, pending, urls, logger.Component("contactmomenten"),
		),
		Verzoeken: service.NewVerzoekService(
			verzoeken, klanten, objectVerzoeken, informatieObjecten, producten, verzoekContactMomenten,
			tx, urls, logger.Component("verzoeken"),
		),
		ObjectRelations: service.NewObjectRelationService(
			objectContactMomenten, objectVerzoeken, contactMomenten, verzoeken,
			validator, urls, logger.Component("objectrelations"),
		),
		VerzoekInformatieObjecten: service.NewVerzoekInformatieObjectService(
			informatieObjecten, verzoeken, resources, notifier, pending, urls,
			logger.Component("verzoekinformatieobjecten"),
		),
		VerzoekLinks: service.NewVerzoekLinkService(
			producten, verzoekContactMomenten, verzoeken, contactMomenten, urls,
			logger.Component("verzoeklinks"),
		),
	}

	e := api.NewRouter(svc, api.Options{
		JWTSecret: cfg.JWTSecret,
		URLs:      urls,
		Logger:    logger.Component("http"),
		Mongo:     mongoClient,
		Redis:     rdb,
	})

	// --- Serve until signalled ---
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
