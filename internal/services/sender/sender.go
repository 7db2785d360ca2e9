// Package services содержит отправку почтовых уведомлений о событиях системы.
package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mikhailovdd/insurance-backend/internal/lib/sl"
	libsmtp "github.com/mikhailovdd/insurance-backend/internal/lib/smtp"
	"github.com/mikhailovdd/insurance-backend/internal/models"
)

// SenderService отправляет почтовые уведомления через SMTP.
type SenderService struct {
	transport libsmtp.TransportInterface
	log       *slog.Logger
}

// NewSenderService создает новый экземпляр SenderService.
func NewSenderService(log *slog.Logger, transport libsmtp.TransportInterface) *SenderService {
	return &SenderService{
		transport: transport,
		log:       log,
	}
}

// SendClaimRegistered отправляет клиенту письмо о зарегистрированном требовании.
// Тело сообщения — JSON с событием из очереди.
func (s *SenderService) SendClaimRegistered(body []byte) error {
	var event models.ClaimEvent
	if err := json.Unmarshal(body, &event); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	to := []string{event.CustomerEmail}
	subject := "Ваше страховое требование зарегистрировано"
	bodyText := fmt.Sprintf(`Здравствуйте, %s!

По вашему полису "%s" зарегистрировано страховое требование.

Номер требования: %s
Сумма: %.2f
Статус: %s

Мы сообщим вам о дальнейших изменениях статуса.`,
		event.CustomerName, event.PolicyName, event.Reference, event.ClaimAmount, event.ClaimStatus)

	return s.sendEmail(to, subject, bodyText)
}

func (s *SenderService) sendEmail(to []string, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.GetSMTPUser(),
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer client.Close()

	if err := client.Mail(s.transport.GetSMTPUser()); err != nil {
		s.log.Error("failed to set MAIL FROM", "from", s.transport.GetSMTPUser(), sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("failed to set RCPT TO", "to", addr, sl.Err(err))
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		s.log.Error("failed to open data writer", sl.Err(err))
		return err
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write message body", sl.Err(err))
		return err
	}
	if err := w.Close(); err != nil {
		s.log.Error("failed to close data writer", sl.Err(err))
		return err
	}

	return client.Quit()
}
