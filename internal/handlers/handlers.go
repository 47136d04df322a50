package handlers

import (
	"net/http"

	_ "github.com/coincrafter/backend/docs"
	authhandlers "github.com/coincrafter/backend/internal/handlers/auth"
	notificationhandlers "github.com/coincrafter/backend/internal/handlers/notifications"
	paymenthandlers "github.com/coincrafter/backend/internal/handlers/payments"
	statshandlers "github.com/coincrafter/backend/internal/handlers/stats"
	submissionhandlers "github.com/coincrafter/backend/internal/handlers/submissions"
	taskhandlers "github.com/coincrafter/backend/internal/handlers/tasks"
	userhandlers "github.com/coincrafter/backend/internal/handlers/users"
	withdrawalhandlers "github.com/coincrafter/backend/internal/handlers/withdrawals"
	"github.com/coincrafter/backend/internal/domain"
	"github.com/coincrafter/backend/internal/service"
	"github.com/coincrafter/backend/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
	Balance(w http.ResponseWriter, r *http.Request)
	TopWorkers(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateRole(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type TaskHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListAvailable(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type SubmissionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	CreateIntent(w http.ResponseWriter, r *http.Request)
	Record(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type StatsHandler interface {
	Buyer(w http.ResponseWriter, r *http.Request)
	Worker(w http.ResponseWriter, r *http.Request)
	Admin(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	UserHandler         UserHandler
	TaskHandler         TaskHandler
	SubmissionHandler   SubmissionHandler
	WithdrawalHandler   WithdrawalHandler
	PaymentHandler      PaymentHandler
	StatsHandler        StatsHandler
	NotificationHandler NotificationHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService),
		UserHandler:         userhandlers.New(s.UserService, s.LedgerService),
		TaskHandler:         taskhandlers.New(s.TaskService),
		SubmissionHandler:   submissionhandlers.New(s.SubmissionService),
		WithdrawalHandler:   withdrawalhandlers.New(s.WithdrawalService),
		PaymentHandler:      paymenthandlers.New(s.PaymentService),
		StatsHandler:        statshandlers.New(s.StatsService),
		NotificationHandler: notificationhandlers.New(s.NotificationService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})
		r.Get("/users/top-workers", h.UserHandler.TopWorkers)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Get("/users/me", h.UserHandler.Me)
			r.Get("/users/balance", h.UserHandler.Balance)

			r.Route("/tasks", func(r chi.Router) {
				r.With(auth.RequireRoles(domain.RoleBuyer)).Post("/", h.TaskHandler.Create)
				r.With(auth.RequireRoles(domain.RoleBuyer)).Get("/", h.TaskHandler.ListMine)
				r.With(auth.RequireRoles(domain.RoleWorker)).Get("/available", h.TaskHandler.ListAvailable)
				r.Get("/{id}", h.TaskHandler.Get)
				r.With(auth.RequireRoles(domain.RoleBuyer)).Patch("/{id}", h.TaskHandler.Update)
				r.With(auth.RequireRoles(domain.RoleBuyer, domain.RoleAdmin)).Delete("/{id}", h.TaskHandler.Delete)
			})
			r.Route("/submissions", func(r chi.Router) {
				r.With(auth.RequireRoles(domain.RoleWorker)).Post("/", h.SubmissionHandler.Create)
				r.With(auth.RequireRoles(domain.RoleWorker)).Get("/", h.SubmissionHandler.ListMine)
				r.With(auth.RequireRoles(domain.RoleBuyer)).Get("/pending", h.SubmissionHandler.ListPending)
				r.With(auth.RequireRoles(domain.RoleBuyer)).Patch("/{id}/status", h.SubmissionHandler.UpdateStatus)
			})
			r.Route("/withdrawals", func(r chi.Router) {
				r.With(auth.RequireRoles(domain.RoleWorker)).Post("/", h.WithdrawalHandler.Create)
				r.With(auth.RequireRoles(domain.RoleWorker)).Get("/", h.WithdrawalHandler.ListMine)
				r.With(auth.RequireRoles(domain.RoleAdmin)).Get("/pending", h.WithdrawalHandler.ListPending)
				r.With(auth.RequireRoles(domain.RoleAdmin)).Patch("/{id}/status", h.WithdrawalHandler.Approve)
			})
			r.Route("/payments", func(r chi.Router) {
				r.Post("/intent", h.PaymentHandler.CreateIntent)
				r.Post("/", h.PaymentHandler.Record)
				r.Get("/", h.PaymentHandler.ListMine)
			})
			r.Route("/stats", func(r chi.Router) {
				r.With(auth.RequireRoles(domain.RoleBuyer)).Get("/buyer", h.StatsHandler.Buyer)
				r.With(auth.RequireRoles(domain.RoleWorker)).Get("/worker", h.StatsHandler.Worker)
				r.With(auth.RequireRoles(domain.RoleAdmin)).Get("/admin", h.StatsHandler.Admin)
			})
			r.Route("/admin/users", func(r chi.Router) {
				r.Use(auth.RequireRoles(domain.RoleAdmin))
				r.Get("/", h.UserHandler.List)
				r.Patch("/{id}/role", h.UserHandler.UpdateRole)
				r.Delete("/{id}", h.UserHandler.Delete)
			})
			r.Get("/notifications", h.NotificationHandler.List)
		})
	})

	return r
}
