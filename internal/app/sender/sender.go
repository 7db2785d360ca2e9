// Package sender собирает сервис почтовых уведомлений:
// подключение к RabbitMQ, SMTP транспорт и потребителей очередей.
package sender

import (
	"context"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/mikhailovdd/insurance-backend/internal/config"
	"github.com/mikhailovdd/insurance-backend/internal/lib/smtp"
	"github.com/mikhailovdd/insurance-backend/internal/rabbitmq"
	senderservice "github.com/mikhailovdd/insurance-backend/internal/services/sender"
)

// App объединяет ресурсы сервиса уведомлений.
type App struct {
	conn          *amqp.Connection
	ch            *amqp.Channel
	senderService *senderservice.SenderService
	logger        *slog.Logger
}

// New создает приложение сервиса уведомлений.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}

	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetNotificationQueues())
	if err != nil {
		conn.Close()
		return nil, err
	}

	transport := smtp.NewTransport(cfg, logger)
	senderService := senderservice.NewSenderService(logger, transport)

	return &App{
		conn:          conn,
		ch:            ch,
		senderService: senderService,
		logger:        logger,
	}, nil
}

// Run запускает потребителей очередей и ждет отмены контекста.
func (a *App) Run(ctx context.Context) error {
	err := rabbitmq.ConsumeMessages(ctx, a.ch, rabbitmq.ClaimQueue, a.senderService.SendClaimRegistered)
	if err != nil {
		a.logger.Error("failed to start claim queue consumer", slog.Any("err", err))
		return err
	}

	<-ctx.Done()
	a.logger.Info("sender service shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}

	return nil
}
