package rabbitmq

import (
	"fmt"

	"github.com/streadway/amqp"
)

// Publisher публикует сообщения в exchange уведомлений через открытый канал.
type Publisher struct {
	ch *amqp.Channel
}

// NewPublisher создает новый экземпляр Publisher.
func NewPublisher(ch *amqp.Channel) *Publisher {
	return &Publisher{ch: ch}
}

// Publish публикует сообщение с заданным ключом маршрутизации.
func (p *Publisher) Publish(routingKey string, body []byte) error {
	return PublishMessage(p.ch, routingKey, body)
}

// PublishMessage публикует сообщение в exchange уведомлений
// с заданным ключом маршрутизации.
func PublishMessage(ch *amqp.Channel, routingKey string, body []byte) error {
	const op = "rabbitmq.PublishMessage"
	err := ch.Publish(
		NotificationsExchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
