package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/handler"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/service"
)

// Handlers collects everything the router mounts.
type Handlers struct {
	Health       *handler.HealthHandler
	Auth         *handler.AuthHandler
	Salon        *handler.SalonHandler
	Staff        *handler.StaffHandler
	Customer     *handler.CustomerHandler
	Catalog      *handler.CatalogHandler
	Template     *handler.TemplateHandler
	Subscription *handler.SubscriptionHandler
	Invoice      *handler.InvoiceHandler
	Attendance   *handler.AttendanceHandler
	Payroll      *handler.PayrollHandler
	ProfitLoss   *handler.ProfitLossHandler
	Expense      *handler.ExpenseHandler
}

// NewRouter wires middleware and routes. Everything under /api requires a
// valid access token; admin-only routes are nested behind a role gate.
func NewRouter(h Handlers, auth *service.AuthService, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(httprate.LimitByIP(200, time.Minute))

	r.Handle("/metrics", promhttp.Handler())
	h.Health.RegisterRoutes(r)
	h.Auth.RegisterRoutes(r)

	r.Route("/api", func(api chi.Router) {
		api.Use(AuthMiddleware(auth))

		h.Salon.RegisterRoutes(api)
		h.Staff.RegisterRoutes(api)
		h.Customer.RegisterRoutes(api)
		h.Catalog.RegisterRoutes(api)
		h.Template.RegisterRoutes(api)
		h.Subscription.RegisterRoutes(api)
		h.Invoice.RegisterRoutes(api)
		h.Attendance.RegisterRoutes(api)
		h.Payroll.RegisterRoutes(api)
		h.ProfitLoss.RegisterRoutes(api)
		h.Expense.RegisterRoutes(api)

		api.Group(func(admin chi.Router) {
			admin.Use(RequireRole(string(domain.RoleAdmin), string(domain.RoleSuperAdmin)))
			h.Salon.RegisterAdminRoutes(admin)
			h.Catalog.RegisterAdminRoutes(admin)
			h.Template.RegisterAdminRoutes(admin)
			h.ProfitLoss.RegisterAdminRoutes(admin)
		})
	})

	return r
}
