// Package jwt реализует выпуск и проверку bearer-токенов доступа.
//
// Maker описывает интерфейс для создания и проверки токенов, привязанных
// к email пользователя. MakerImpl — конкретная реализация на HMAC-SHA256
// с секретным ключом и сроком жизни, заданными один раз на старте процесса.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для генерации и парсинга токенов.
type Maker interface {
	// GenerateToken выпускает токен с субъектом email и ролью пользователя.
	GenerateToken(email, role string) (string, error)
	// ParseToken проверяет подпись и срок действия токена и возвращает claims.
	// Это единственный способ извлечь субъект: частичного разбора без
	// полной проверки нет.
	ParseToken(tokenStr string) (*Claims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
// Конфигурация передается явно, без глобального состояния.
func NewMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
