package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims описывает данные, хранящиеся в токене.
// Субъект (email пользователя) лежит в стандартном поле sub,
// роль — в дополнительном поле role.
type Claims struct {
	Role                 string `json:"role"` // Роль пользователя
	jwt.RegisteredClaims        // Стандартные claims (Subject, ExpiresAt, IssuedAt и пр.)
}

// Email возвращает субъект токена.
func (c *Claims) Email() string {
	return c.Subject
}

// GenerateToken создает токен с субъектом email и ролью role,
// подписывая его секретным ключом. Срок действия определяется tokenTTL.
func (j *MakerImpl) GenerateToken(email, role string) (string, error) {
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// ParseToken парсит токен, проверяет его подпись и срок действия,
// возвращает Claims, если токен корректен. Любая причина отказа —
// битый формат, чужая подпись, истекший срок — возвращается ошибкой,
// это ожидаемый исход, а не паника.
func (j *MakerImpl) ParseToken(tokenStr string) (*Claims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
