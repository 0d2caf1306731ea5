package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"hrms/internal/db"
	"hrms/internal/domain/accounts"
	"hrms/internal/domain/audit"
	"hrms/internal/domain/conduct"
	"hrms/internal/domain/documents"
	"hrms/internal/domain/employees"
	"hrms/internal/domain/leave"
	"hrms/internal/domain/notifications"
	"hrms/internal/domain/payroll"
	"hrms/internal/domain/performance"
	"hrms/internal/domain/recruitment"
	"hrms/internal/domain/reports"
	"hrms/internal/domain/training"
	"hrms/internal/platform/config"
	"hrms/internal/platform/metrics"
	"hrms/internal/transport/http/api"
	authhandler "hrms/internal/transport/http/handlers/auth"
	conducthandler "hrms/internal/transport/http/handlers/conduct"
	documentshandler "hrms/internal/transport/http/handlers/documents"
	employeeshandler "hrms/internal/transport/http/handlers/employees"
	leavehandler "hrms/internal/transport/http/handlers/leave"
	notificationshandler "hrms/internal/transport/http/handlers/notifications"
	payrollhandler "hrms/internal/transport/http/handlers/payroll"
	performancehandler "hrms/internal/transport/http/handlers/performance"
	recruitmenthandler "hrms/internal/transport/http/handlers/recruitment"
	reportshandler "hrms/internal/transport/http/handlers/reports"
	traininghandler "hrms/internal/transport/http/handlers/training"
	"hrms/internal/transport/http/middleware"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	auditSvc := audit.NewService(pool)
	notifyStore := notifications.NewStore(pool)

	accountsSvc := accounts.NewService(accounts.NewStore(pool), cfg.JWTSecret, cfg.TokenTTL)
	employeesStore := employees.NewStore(pool)
	employeesSvc := employees.NewService(employeesStore)
	documentsSvc := documents.NewService(documents.NewStore(pool))
	leaveSvc := leave.NewService(leave.NewStore(pool))
	conductSvc := conduct.NewService(conduct.NewStore(pool))
	performanceSvc := performance.NewService(performance.NewStore(pool))
	payrollSvc := payroll.NewService(payroll.NewStore(pool))
	trainingSvc := training.NewService(training.NewStore(pool))
	recruitmentSvc := recruitment.NewService(recruitment.NewStore(pool))
	notificationsSvc := notifications.NewService(notifyStore)
	reportsSvc := reports.NewService(pool)

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if collector != nil {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(accountsSvc, auditSvc).RegisterRoutes(r)
		employeeshandler.NewHandler(employeesSvc, auditSvc).RegisterRoutes(r)
		documentshandler.NewHandler(documentsSvc, auditSvc).RegisterRoutes(r)
		leavehandler.NewHandler(leaveSvc, notifyStore, auditSvc).RegisterRoutes(r)
		conducthandler.NewHandler(conductSvc, auditSvc).RegisterRoutes(r)
		performancehandler.NewHandler(performanceSvc, auditSvc).RegisterRoutes(r)
		payrollhandler.NewHandler(payrollSvc, employeesStore, auditSvc).RegisterRoutes(r)
		traininghandler.NewHandler(trainingSvc, auditSvc).RegisterRoutes(r)
		recruitmenthandler.NewHandler(recruitmentSvc, auditSvc).RegisterRoutes(r)
		notificationshandler.NewHandler(notificationsSvc).RegisterRoutes(r)
		reportshandler.NewHandler(reportsSvc, auditSvc).RegisterRoutes(r)
	})

	slog.Info("server listening", "addr", cfg.Addr, "env", cfg.Environment)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
