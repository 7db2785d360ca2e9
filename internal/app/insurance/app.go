// Package insurance собирает HTTP-приложение системы учета страховых полисов:
// хранилище, кеш, брокер сообщений, сервисы и маршруты.
package insurance

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/mikhailovdd/insurance-backend/internal/cache"
	"github.com/mikhailovdd/insurance-backend/internal/config"
	"github.com/mikhailovdd/insurance-backend/internal/lib/jwt"
	"github.com/mikhailovdd/insurance-backend/internal/migrations"
	"github.com/mikhailovdd/insurance-backend/internal/rabbitmq"
	assignmentservice "github.com/mikhailovdd/insurance-backend/internal/services/assignment"
	authservice "github.com/mikhailovdd/insurance-backend/internal/services/auth"
	claimservice "github.com/mikhailovdd/insurance-backend/internal/services/claim"
	customerservice "github.com/mikhailovdd/insurance-backend/internal/services/customer"
	paymentservice "github.com/mikhailovdd/insurance-backend/internal/services/payment"
	policyservice "github.com/mikhailovdd/insurance-backend/internal/services/policy"
	"github.com/mikhailovdd/insurance-backend/internal/storage/repository"
)

// App объединяет ресурсы HTTP-приложения.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	conn   *amqp.Connection
	ch     *amqp.Channel
}

// New создает приложение: подключается к Postgres, Redis и RabbitMQ,
// прогоняет миграции и регистрирует маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}
	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetNotificationQueues())
	if err != nil {
		conn.Close()
		return nil, err
	}

	jwtMaker := jwt.NewMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.NewAuthService(db, jwtMaker)
	customerService := customerservice.NewCustomerService(db, logger)
	policyService := policyservice.NewPolicyService(db, cacheRedis, logger)
	assignmentService := assignmentservice.NewAssignmentService(db, cacheRedis, logger)
	claimService := claimservice.NewClaimService(db, rabbitmq.NewPublisher(ch), logger)
	paymentService := paymentservice.NewPaymentService(db, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, &Services{
		Auth:       authService,
		Customer:   customerService,
		Policy:     policyService,
		Assignment: assignmentService,
		Claim:      claimService,
		Payment:    paymentService,
	})

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		conn:   conn,
		ch:     ch,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.ch.Close(); closeErr != nil {
			a.logger.Error("failed to close channel", slog.Any("err", closeErr))
		}
		if closeErr := a.conn.Close(); closeErr != nil {
			a.logger.Error("failed to close connection", slog.Any("err", closeErr))
		}
		a.db.DB.Close()
		return err
	}
}
