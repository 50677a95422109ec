// @title         resume-analyzer API
// @version       1.0
// @description   Сервис классификации резюме (PDF/TXT) по категориям вакансий: очистка текста, TF-IDF модель или LLM, история классификаций.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Токен авторизации. Поддерживаются форматы: "Bearer <JWT>" или "<JWT>".
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"
	log "github.com/sirupsen/logrus"

	_ "github.com/artem13815/resume-analyzer/docs"

	// internal imports
	"github.com/artem13815/resume-analyzer/api/http"
	"github.com/artem13815/resume-analyzer/api/http/handlers"
	"github.com/artem13815/resume-analyzer/api/http/middleware"
	"github.com/artem13815/resume-analyzer/api/http/presenter"
	"github.com/artem13815/resume-analyzer/pkg/auth"
	"github.com/artem13815/resume-analyzer/pkg/config"
	"github.com/artem13815/resume-analyzer/pkg/health"
	"github.com/artem13815/resume-analyzer/pkg/health/checkers"
	"github.com/artem13815/resume-analyzer/pkg/logger"
	"github.com/artem13815/resume-analyzer/pkg/predictor"
	pgrepo "github.com/artem13815/resume-analyzer/pkg/repository/postgres"
	sqliterepo "github.com/artem13815/resume-analyzer/pkg/repository/sqlite"
	"github.com/artem13815/resume-analyzer/pkg/resume"
	"github.com/artem13815/resume-analyzer/pkg/security/jwt"
	"github.com/artem13815/resume-analyzer/pkg/storage/postgres"
	"github.com/artem13815/resume-analyzer/pkg/storage/sqlite"
)

// store is the persistence selected by configuration; zero value means stateless.
type store struct {
	classifications resume.Repository
	users           auth.UserRepository
	checker         health.Checker
	close           func()
}

func main() {
	// Load configuration from env/.env
	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	p, err := predictor.New(cfg)
	if err != nil {
		log.Fatalf("init predictor: %v", err)
	}
	log.WithField("predictor", p.Name()).Info("predictor ready")
	// the remote LLM is not probed on every readiness check
	var predictorCheck health.Checker
	if predictor.IsLocal(p) {
		predictorCheck = checkers.NewPredictorChecker(p)
	}

	st, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("init store: %v", err)
	}
	defer st.close()

	// Wire dependencies (Clean Architecture)
	svc := resume.NewClassificationService(p, st.classifications)

	routes := http.Routes{
		Health:   handlers.NewHealthHandler(health.NewService(st.checker, predictorCheck)),
		Page:     handlers.NewPageHandler(svc, cfg.MaxUploadBytes),
		Classify: handlers.NewClassifyHandler(svc, cfg.MaxUploadBytes),
	}
	if st.users != nil {
		jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
		routes.Auth = handlers.NewAuthHandler(auth.NewAuthService(st.users, jwtGen))
		routes.Classifications = handlers.NewClassificationsHandler(svc)
		routes.AuthMW = jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)
		routes.OptionalAuthMW = jwt.NewOptionalAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)
	} else {
		log.Warn("no DATABASE_URL or SQLITE_PATH: history and accounts are disabled")
	}

	app := fiber.New(fiber.Config{
		// multipart overhead on top of the file itself
		BodyLimit:             int(cfg.MaxUploadBytes) + 1<<20,
		DisableStartupMessage: true,
		ErrorHandler:          presenter.ErrorHandler,
	})
	app.Use(middleware.RequestLogger(log.StandardLogger()))

	// Register routes
	http.Register(app, routes)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("shutdown")
		}
	}()

	// Start server
	port := cfg.Port
	log.Infof("HTTP server listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// openStore connects to PostgreSQL when DATABASE_URL is set, otherwise to
// SQLite when SQLITE_PATH is set. Migrations are applied on start.
func openStore(ctx context.Context, cfg config.Config) (store, error) {
	switch {
	case cfg.DatabaseURL != "":
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return store{}, err
		}
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			pool.Close()
			return store{}, err
		}
		log.WithField("applied", applied).Info("postgres migrations done")
		return store{
			classifications: pgrepo.NewClassificationRepository(pool),
			users:           pgrepo.NewUserRepository(pool),
			checker:         checkers.NewPostgresChecker(pool),
			close:           pool.Close,
		}, nil
	case cfg.SQLitePath != "":
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return store{}, err
		}
		log.WithField("path", cfg.SQLitePath).Info("sqlite store opened")
		return store{
			classifications: sqliterepo.NewClassificationRepository(db),
			users:           sqliterepo.NewUserRepository(db),
			checker:         checkers.NewSQLChecker("sqlite", db),
			close:           func() { _ = db.Close() },
		}, nil
	default:
		return store{close: func() {}}, nil
	}
}
