package rabbitmq

const (
	// NotificationsExchange — exchange, в который публикуются все уведомления.
	NotificationsExchange = "notifications"
	// ClaimQueue — очередь уведомлений о зарегистрированных требованиях.
	ClaimQueue = "notification.claims"
	// ClaimRoutingKey — ключ маршрутизации для событий требований.
	ClaimRoutingKey = "claims"
)

// QueueConfig описывает очередь и её ключ маршрутизации.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetNotificationQueues возвращает очереди, которые слушает сервис уведомлений.
func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: ClaimQueue, RoutingKey: ClaimRoutingKey},
	}
}
