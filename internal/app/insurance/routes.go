// Package insurance предоставляет маршруты HTTP-приложения.
package insurance

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	assignmentassign "github.com/mikhailovdd/insurance-backend/internal/http/handlers/assignment/assign"
	assignmentlist "github.com/mikhailovdd/insurance-backend/internal/http/handlers/assignment/list"
	assignmentread "github.com/mikhailovdd/insurance-backend/internal/http/handlers/assignment/read"
	"github.com/mikhailovdd/insurance-backend/internal/http/handlers/auth/login"
	"github.com/mikhailovdd/insurance-backend/internal/http/handlers/auth/signup"
	claimcreate "github.com/mikhailovdd/insurance-backend/internal/http/handlers/claim/create"
	claimlist "github.com/mikhailovdd/insurance-backend/internal/http/handlers/claim/list"
	claimlistby "github.com/mikhailovdd/insurance-backend/internal/http/handlers/claim/listbyassignment"
	customercreate "github.com/mikhailovdd/insurance-backend/internal/http/handlers/customer/create"
	customerlist "github.com/mikhailovdd/insurance-backend/internal/http/handlers/customer/list"
	customerread "github.com/mikhailovdd/insurance-backend/internal/http/handlers/customer/read"
	customerremove "github.com/mikhailovdd/insurance-backend/internal/http/handlers/customer/remove"
	"github.com/mikhailovdd/insurance-backend/internal/http/handlers/health"
	paymentcreate "github.com/mikhailovdd/insurance-backend/internal/http/handlers/payment/create"
	paymentlist "github.com/mikhailovdd/insurance-backend/internal/http/handlers/payment/list"
	paymentlistby "github.com/mikhailovdd/insurance-backend/internal/http/handlers/payment/listbyassignment"
	policycreate "github.com/mikhailovdd/insurance-backend/internal/http/handlers/policy/create"
	policylist "github.com/mikhailovdd/insurance-backend/internal/http/handlers/policy/list"
	policyread "github.com/mikhailovdd/insurance-backend/internal/http/handlers/policy/read"
	policyremove "github.com/mikhailovdd/insurance-backend/internal/http/handlers/policy/remove"
	"github.com/mikhailovdd/insurance-backend/internal/http/middlewarectx"
	assignmentservice "github.com/mikhailovdd/insurance-backend/internal/services/assignment"
	authservice "github.com/mikhailovdd/insurance-backend/internal/services/auth"
	claimservice "github.com/mikhailovdd/insurance-backend/internal/services/claim"
	customerservice "github.com/mikhailovdd/insurance-backend/internal/services/customer"
	paymentservice "github.com/mikhailovdd/insurance-backend/internal/services/payment"
	policyservice "github.com/mikhailovdd/insurance-backend/internal/services/policy"
)

// Services объединяет бизнес-сервисы, необходимые маршрутам.
type Services struct {
	Auth       *authservice.AuthService
	Customer   *customerservice.CustomerService
	Policy     *policyservice.PolicyService
	Assignment *assignmentservice.AssignmentService
	Claim      *claimservice.ClaimService
	Payment    *paymentservice.PaymentService
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, s *Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/signup", signup.New(logger, s.Auth).ServeHTTP)
		r.Post("/auth/login", login.New(logger, s.Auth).ServeHTTP)
		r.Get("/health", health.New(logger).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(s.Auth, logger))

			r.Post("/customers", customercreate.New(logger, s.Customer).ServeHTTP)
			r.Get("/customers", customerlist.New(logger, s.Customer).ServeHTTP)
			r.Get("/customers/{id}", customerread.New(logger, s.Customer).ServeHTTP)
			r.Delete("/customers/{id}", customerremove.New(logger, s.Customer).ServeHTTP)

			r.Post("/policies", policycreate.New(logger, s.Policy).ServeHTTP)
			r.Get("/policies", policylist.New(logger, s.Policy).ServeHTTP)
			r.Get("/policies/{id}", policyread.New(logger, s.Policy).ServeHTTP)
			r.Delete("/policies/{id}", policyremove.New(logger, s.Policy).ServeHTTP)

			r.Post("/customer-policies", assignmentassign.New(logger, s.Assignment).ServeHTTP)
			r.Get("/customer-policies", assignmentlist.New(logger, s.Assignment).ServeHTTP)
			r.Get("/customer-policies/{id}", assignmentread.New(logger, s.Assignment).ServeHTTP)
			r.Get("/customer-policies/{id}/claims", claimlistby.New(logger, s.Claim).ServeHTTP)
			r.Get("/customer-policies/{id}/payments", paymentlistby.New(logger, s.Payment).ServeHTTP)

			r.Post("/claims", claimcreate.New(logger, s.Claim).ServeHTTP)
			r.Get("/claims", claimlist.New(logger, s.Claim).ServeHTTP)

			r.Post("/payments", paymentcreate.New(logger, s.Payment).ServeHTTP)
			r.Get("/payments", paymentlist.New(logger, s.Payment).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
