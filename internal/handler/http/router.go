package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/opsview-hr/workforce-backend-go/internal/config"
)

func NewRouter(
	cfg *config.Config,
	dashboardHandler DashboardHandler,
	certificateHandler CertificateHandler,
	referenceHandler ReferenceHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/admin", dashboardHandler.GetAdminDashboard)

		r.Route("/atestados", func(r chi.Router) {
			r.Get("/resumo", certificateHandler.GetSummary)
			r.Get("/distribuicoes", certificateHandler.GetDistributions)
			r.Get("/tendencia", certificateHandler.GetTrend)
			r.Get("/risco", certificateHandler.GetRisk)
		})
	})

	r.Get("/turnos", referenceHandler.ListShifts)
	r.Get("/empresas", referenceHandler.ListCompanies)

	return r
}
