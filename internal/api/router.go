package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/blaisecz/questionnaire-report/docs"
	"github.com/blaisecz/questionnaire-report/internal/api/handler"
	"github.com/blaisecz/questionnaire-report/internal/api/middleware"
)

type Router struct {
	instrumentHandler *handler.InstrumentHandler
	reportHandler     *handler.ReportHandler
	logger            zerolog.Logger
}

func NewRouter(instrumentHandler *handler.InstrumentHandler, reportHandler *handler.ReportHandler, logger zerolog.Logger) *Router {
	return &Router{
		instrumentHandler: instrumentHandler,
		reportHandler:     reportHandler,
		logger:            logger,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logger(rt.logger))
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/instruments", func(r chi.Router) {
			r.Get("/", rt.instrumentHandler.List)
			r.Get("/{instrumentId}", rt.instrumentHandler.GetByID)
			r.Post("/{instrumentId}/score", rt.instrumentHandler.Score)
		})

		r.Post("/reports", rt.reportHandler.Create)
		r.Get("/patients/{patientId}/report", rt.reportHandler.GetForPatient)
	})

	return r
}
