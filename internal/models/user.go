// Package models содержит доменные структуры системы учета страховых полисов.
// Они используются в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
// Email уникален на уровне базы данных.
type User struct {
	UID          string    // Уникальный идентификатор пользователя
	Email        string    // Электронная почта (уникальная)
	PasswordHash string    // Хэш пароля пользователя
	FirstName    string    // Имя
	LastName     string    // Фамилия
	Phone        string    // Телефон
	Address      string    // Адрес
	DateOfBirth  time.Time // Дата рождения, проверяется при регистрации
	Role         string    // Роль пользователя, плоская строка, по умолчанию USER
	CreatedAt    time.Time // Дата создания записи
}

// Name возвращает отображаемое имя пользователя.
func (u *User) Name() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Email
	}
	return u.FirstName + " " + u.LastName
}
