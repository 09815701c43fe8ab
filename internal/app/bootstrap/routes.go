// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	healthfeature "github.com/dalemusser/railops/internal/app/features/health"
	homefeature "github.com/dalemusser/railops/internal/app/features/home"
	railwaydatafeature "github.com/dalemusser/railops/internal/app/features/railwaydata"
	usersfeature "github.com/dalemusser/railops/internal/app/features/users"
	"github.com/dalemusser/railops/internal/app/system/metrics"
	"github.com/dalemusser/railops/internal/app/system/reqlog"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. Every feature handler receives its
// dependencies here; there are no package-level storage handles.
//
// Outside prod, GET /api/data failures carry a stack and a hint about
// whether a MongoDB URI was configured.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(reqlog.Middleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(metrics.Instrument)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	diagnostics := coreCfg == nil || coreCfg.Env != "prod"

	healthHandler := healthfeature.NewHandler(deps.RailopsMongoClient, logger)
	usersHandler := usersfeature.NewHandler(deps.RailopsMongoDatabase, logger)
	dataHandler := railwaydatafeature.NewHandler(deps.RailopsMongoDatabase, diagnostics, appCfg.MongoURIExplicit, logger)
	homeHandler := homefeature.NewHandler()

	r.Mount("/health", healthfeature.Routes(healthHandler))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Mount("/users", usersfeature.Routes(usersHandler))
	r.Mount("/api/data", railwaydatafeature.Routes(dataHandler))
	r.Mount("/", homefeature.Routes(homeHandler))

	logger.Info("routes mounted",
		zap.String("env", envOf(coreCfg)),
		zap.Bool("diagnostics", diagnostics))

	return r, nil
}

func envOf(coreCfg *config.CoreConfig) string {
	if coreCfg == nil {
		return ""
	}
	return coreCfg.Env
}
