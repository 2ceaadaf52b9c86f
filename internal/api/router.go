package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vng-realisatie/klantinteracties/internal/api/handler"
	"github.com/vng-realisatie/klantinteracties/internal/api/middleware"
	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
	"github.com/vng-realisatie/klantinteracties/internal/core/ports"
	"github.com/vng-realisatie/klantinteracties/internal/pkg/resourceurl"
)

// Services are the use cases exposed over HTTP.
type Services struct {
	Auth                      ports.AuthService
	Klanten                   ports.KlantService
	ContactMomenten           ports.ContactMomentService
	Verzoeken                 ports.VerzoekService
	ObjectRelations           ports.ObjectRelationService
	VerzoekInformatieObjecten ports.VerzoekInformatieObjectService
	VerzoekLinks              ports.VerzoekLinkService
}

// Options configures NewRouter. Mongo and Redis are only used by the
// readiness probe.
type Options struct {
	JWTSecret  string
	URLs       resourceurl.Builder
	Logger     zerolog.Logger
	Mongo      *mongo.Client
	Redis      *redis.Client
	// Registerer receives the HTTP metrics; defaults to the global registry.
	Registerer prometheus.Registerer
}

// scoped groups the four scopes guarding one resource group.
type scoped struct {
	read, create, update, remove echo.MiddlewareFunc
}

func scopesFor(lezen, aanmaken, bijwerken, verwijderen string) scoped {
	return scoped{
		read:   middleware.RequireScope(lezen),
		create: middleware.RequireScope(aanmaken),
		update: middleware.RequireScope(bijwerken),
		remove: middleware.RequireScope(verwijderen),
	}
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(opts.Logger))
	registerer := opts.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "klantinteracties",
		Registerer: registerer,
	}))

	// --- Health probes, metrics and docs (no auth required) ---
	health := handler.NewHealthHandler(opts.Mongo, opts.Redis)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes ---
	auth := middleware.Auth(opts.JWTSecret)
	authHandler := handler.NewAuthHandler(svc.Auth)
	e.POST("/auth/token", authHandler.Token)
	e.POST("/auth/applicaties", authHandler.Register, auth, middleware.RequireScope(domain.ScopeAutorisatiesBijwerken))

	v1 := e.Group("/api/v1", auth)

	// --- Klanten ---
	ks := scopesFor(domain.ScopeKlantenLezen, domain.ScopeKlantenAanmaken, domain.ScopeKlantenBijwerken, domain.ScopeKlantenVerwijderen)
	klanten := handler.NewKlantHandler(svc.Klanten, opts.URLs)
	v1.GET("/klanten", klanten.List, ks.read)
	v1.POST("/klanten", klanten.Create, ks.create)
	v1.GET("/klanten/:uuid", klanten.Get, ks.read)
	v1.PUT("/klanten/:uuid", klanten.Update, ks.update)
	v1.PATCH("/klanten/:uuid", klanten.Update, ks.update)
	v1.DELETE("/klanten/:uuid", klanten.Delete, ks.remove)

	// --- Contactmomenten ---
	cs := scopesFor(domain.ScopeContactMomentenLezen, domain.ScopeContactMomentenAanmaken, domain.ScopeContactMomentenBijwerken, domain.ScopeContactMomentenVerwijderen)
	contactMomenten := handler.NewContactMomentHandler(svc.ContactMomenten, opts.URLs)
	v1.GET("/contactmomenten", contactMomenten.List, cs.read)
	v1.POST("/contactmomenten", contactMomenten.Create, cs.create)
	v1.GET("/contactmomenten/:uuid", contactMomenten.Get, cs.read)
	v1.PUT("/contactmomenten/:uuid", contactMomenten.Update, cs.update)
	v1.PATCH("/contactmomenten/:uuid", contactMomenten.Update, cs.update)
	v1.DELETE("/contactmomenten/:uuid", contactMomenten.Delete, cs.remove)

	relations := handler.NewObjectRelationHandler(svc.ObjectRelations, opts.URLs)
	v1.GET("/objectcontactmomenten", relations.ListObjectContactMomenten, cs.read)
	v1.POST("/objectcontactmomenten", relations.CreateObjectContactMoment, cs.create)
	v1.GET("/objectcontactmomenten/:uuid", relations.GetObjectContactMoment, cs.read)
	v1.DELETE("/objectcontactmomenten/:uuid", relations.DeleteObjectContactMoment, cs.remove)

	// --- Verzoeken ---
	vs := scopesFor(domain.ScopeVerzoekenLezen, domain.ScopeVerzoekenAanmaken, domain.ScopeVerzoekenBijwerken, domain.ScopeVerzoekenVerwijderen)
	verzoeken := handler.NewVerzoekHandler(svc.Verzoeken, opts.URLs)
	v1.GET("/verzoeken", verzoeken.List, vs.read)
	v1.POST("/verzoeken", verzoeken.Create, vs.create)
	v1.GET("/verzoeken/:uuid", verzoeken.Get, vs.read)
	v1.PUT("/verzoeken/:uuid", verzoeken.Update, vs.update)
	v1.PATCH("/verzoeken/:uuid", verzoeken.Update, vs.update)
	v1.DELETE("/verzoeken/:uuid", verzoeken.Delete, vs.remove)

	v1.GET("/objectverzoeken", relations.ListObjectVerzoeken, vs.read)
	v1.POST("/objectverzoeken", relations.CreateObjectVerzoek, vs.create)
	v1.GET("/objectverzoeken/:uuid", relations.GetObjectVerzoek, vs.read)
	v1.DELETE("/objectverzoeken/:uuid", relations.DeleteObjectVerzoek, vs.remove)

	links := handler.NewVerzoekLinkHandler(svc.VerzoekInformatieObjecten, svc.VerzoekLinks, opts.URLs)
	v1.GET("/verzoekinformatieobjecten", links.ListInformatieObjecten, vs.read)
	v1.POST("/verzoekinformatieobjecten", links.CreateInformatieObject, vs.create)
	v1.GET("/verzoekinformatieobjecten/:uuid", links.GetInformatieObject, vs.read)
	v1.DELETE("/verzoekinformatieobjecten/:uuid", links.DeleteInformatieObject, vs.remove)

	v1.GET("/verzoekproducten", links.ListProducten, vs.read)
	v1.POST("/verzoekproducten", links.CreateProduct, vs.create)
	v1.GET("/verzoekproducten/:uuid", links.GetProduct, vs.read)
	v1.DELETE("/verzoekproducten/:uuid", links.DeleteProduct, vs.remove)

	v1.GET("/verzoekcontactmomenten", links.ListContactMomenten, vs.read)
	v1.POST("/verzoekcontactmomenten", links.CreateContactMoment, vs.create)
	v1.GET("/verzoekcontactmomenten/:uuid", links.GetContactMoment, vs.read)
	v1.DELETE("/verzoekcontactmomenten/:uuid", links.DeleteContactMoment, vs.remove)

	return e
}

// requestLogger writes one zerolog entry per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Status >= 500 {
				evt = log.Error().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
