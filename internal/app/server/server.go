package server

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrportal/internal/domain/dashboard"
	"hrportal/internal/domain/employee"
	"hrportal/internal/domain/events"
	"hrportal/internal/domain/leave"
	"hrportal/internal/domain/messages"
	"hrportal/internal/domain/notifications"
	"hrportal/internal/domain/payroll"
	"hrportal/internal/platform/config"
	"hrportal/internal/platform/db"
	"hrportal/internal/platform/email"
	"hrportal/internal/platform/metrics"
	"hrportal/internal/transport/http/api"
	authhandler "hrportal/internal/transport/http/handlers/auth"
	dashboardhandler "hrportal/internal/transport/http/handlers/dashboard"
	employeeshandler "hrportal/internal/transport/http/handlers/employees"
	eventshandler "hrportal/internal/transport/http/handlers/events"
	leavehandler "hrportal/internal/transport/http/handlers/leave"
	messageshandler "hrportal/internal/transport/http/handlers/messages"
	notificationshandler "hrportal/internal/transport/http/handlers/notifications"
	payrollhandler "hrportal/internal/transport/http/handlers/payroll"
	"hrportal/internal/transport/http/middleware"
)

type App struct {
	Router  http.Handler
	Pool    *pgxpool.Pool
	Metrics *metrics.Collector
}

// New connects the database, applies migrations, seeds the admin account and
// wires every handler onto the router.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			pool.Close()
			return nil, err
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			pool.Close()
			return nil, err
		}
	}

	collector := metrics.New()
	mailer := email.New(cfg)

	employeeStore := employee.NewStore(pool)
	payrollStore := payroll.NewStore(pool, cfg.AllowDuplicatePay)
	payrollService := payroll.NewService(payrollStore, mailer, payroll.ServiceConfig{
		CompanyName:    cfg.CompanyName,
		CompanyAddress: cfg.CompanyAddress,
		EmailFrom:      cfg.EmailFrom,
		PayslipDir:     cfg.PayslipDir,
		PayslipBaseURL: cfg.PayslipBaseURL,
		SendLimit:      cfg.PayslipSendLimit,
	})
	notificationStore := notifications.NewStore(pool)
	leaveService := leave.NewService(leave.NewStore(pool), notificationStore)
	dashboardStore := dashboard.NewStore(pool)
	messageStore := messages.NewStore(pool)
	eventStore := events.NewStore(pool)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	if cfg.MetricsEnabled {
		r.Use(middleware.Metrics(collector))
	}
	r.Use(middleware.Auth(cfg.JWTSecret))

	authhandler.NewHandler(employeeStore, cfg.JWTSecret).RegisterRoutes(r)
	payrollhandler.NewHandler(payrollService, collector, cfg.PayslipDir).RegisterRoutes(r)
	dashboardhandler.NewHandler(dashboardStore).RegisterRoutes(r)
	employeeshandler.NewHandler(employeeStore).RegisterRoutes(r)
	leavehandler.NewHandler(leaveService).RegisterRoutes(r)
	notificationshandler.NewHandler(notificationStore).RegisterRoutes(r)
	messageshandler.NewHandler(messageStore).RegisterRoutes(r)
	eventshandler.NewHandler(eventStore).RegisterRoutes(r)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		api.OK(w, map[string]string{"status": "ok"})
	})
	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		if err := pool.Ping(req.Context()); err != nil {
			api.Fail(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		api.OK(w, map[string]string{"status": "ready"})
	})
	if cfg.MetricsEnabled {
		r.Get("/metrics", func(w http.ResponseWriter, _ *http.Request) {
			api.OK(w, collector.Snapshot())
		})
	}

	r.NotFound(spaHandler(cfg.FrontendDir))

	return &App{Router: r, Pool: pool, Metrics: collector}, nil
}

// spaHandler serves the built frontend, falling back to index.html for
// client-side routes.
func spaHandler(dir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(dir))
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			api.Fail(w, http.StatusNotFound, "not found")
			return
		}
		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	}
}
