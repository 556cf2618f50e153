package router

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	mem "puppy-growth/internal/adapters/storage/memory"
	pg "puppy-growth/internal/adapters/storage/postgres"
	"puppy-growth/internal/domain/calculator"
	"puppy-growth/internal/domain/feeding"
	"puppy-growth/internal/domain/pets"
	"puppy-growth/internal/domain/weights"
	"puppy-growth/internal/middleware"
	"puppy-growth/internal/platform/logger"
	"puppy-growth/internal/platform/metrics"
	"puppy-growth/internal/ports/auth"

	_ "puppy-growth/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger  logger.Logger
	Metrics *metrics.Metrics

	// Guías que se siembran al arrancar (nil = embebidas).
	StaticGuides []feeding.Guide

	// DefaultHorizonWeeks se usa tal cual; 0 = solo historial.
	DefaultHorizonWeeks int
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}
	horizon := opts.DefaultHorizonWeeks

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(m.Middleware)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		petRepo    pets.Repository
		weightRepo weights.Repository
		guideRepo  feeding.Repository
	)

	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
		weightRepo = pg.NewWeightsRepo(opts.DB)
		guideRepo = pg.NewFeedingGuidesRepo(opts.DB)
	} else {
		petRepo = mem.NewPetRepo()
		weightRepo = mem.NewWeightRepo()
		guideRepo = mem.NewGuideRepo()
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo)
	weightsSvc := weights.NewService(weightRepo, m)
	feedingSvc := feeding.NewService(guideRepo, m)

	seedGuides(feedingSvc, opts.StaticGuides, log)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	weights.RegisterRoutes(r, weightsSvc, petsSvc, horizon)
	feeding.RegisterRoutes(r, feedingSvc, petsSvc, weightsSvc)
	calculator.RegisterRoutes(r, feedingSvc, m)

	return r
}

// seedGuides no corta el arranque: sin guías el servicio sigue sirviendo
// crecimiento y guías manuales.
func seedGuides(svc *feeding.Service, guides []feeding.Guide, log logger.Logger) {
	if guides == nil {
		embedded, err := feeding.LoadStaticGuides("")
		if err != nil {
			log.Error("static guides: parse embedded", map[string]any{"err": err})
			return
		}
		guides = embedded
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := svc.Seed(ctx, guides)
	if err != nil {
		log.Error("static guides: seed", map[string]any{"err": err})
		return
	}
	log.Info("static guides seeded", map[string]any{"inserted": n, "total": len(guides)})
}
