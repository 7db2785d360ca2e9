// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikhailovdd/insurance-backend/internal/lib/age"
	"github.com/mikhailovdd/insurance-backend/internal/lib/jwt"
	"github.com/mikhailovdd/insurance-backend/internal/lib/password"
	"github.com/mikhailovdd/insurance-backend/internal/models"
	"github.com/mikhailovdd/insurance-backend/internal/storage/repository"
)

// Минимальный возраст пользователя в полных годах.
const minAge = 18

var (
	// ErrEmailTaken возвращается, если пользователь с таким email уже зарегистрирован.
	ErrEmailTaken = errors.New("email already taken")
	// ErrDateOfBirthRequired возвращается, если дата рождения не указана.
	ErrDateOfBirthRequired = errors.New("date of birth is required")
	// ErrUnderage возвращается, если пользователю меньше 18 полных лет.
	ErrUnderage = errors.New("user must be at least 18 years old")
	// ErrInvalidCredentials возвращается при неверном email или пароле.
	// Текст ошибки одинаков для обоих случаев.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken возвращается при невалидном или истекшем токене.
	ErrInvalidToken = errors.New("invalid token")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// SaveUser сохраняет нового пользователя и возвращает его UID.
	SaveUser(ctx context.Context, user models.User) (string, error)

	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// UserExistsByEmail проверяет, занят ли email.
	UserExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RegisterData — данные для регистрации нового пользователя.
type RegisterData struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Phone       string
	Address     string
	DateOfBirth time.Time
}

// LoginResult — результат успешной авторизации.
type LoginResult struct {
	Token string
	Email string
	Role  string
	Name  string
}

// AuthService отвечает за регистрацию, авторизацию и валидацию JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля и дефолтной ролью "USER".
// Проверяет занятость email до хэширования пароля и полный возраст не менее 18 лет.
// Уникальность email дополнительно гарантируется ограничением в базе данных:
// при гонке двух регистраций вторая получит ErrEmailTaken от SaveUser.
func (s *AuthService) Register(ctx context.Context, data RegisterData) (string, error) {
	const op = "services.auth.Register"

	exists, err := s.users.UserExistsByEmail(ctx, data.Email)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		return "", ErrEmailTaken
	}

	if data.DateOfBirth.IsZero() {
		return "", ErrDateOfBirthRequired
	}
	if age.FullYears(data.DateOfBirth, time.Now().UTC()) < minAge {
		return "", ErrUnderage
	}

	hashed, err := password.GetHash(data.Password)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	user := models.User{
		Email:        data.Email,
		PasswordHash: hashed,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Phone:        data.Phone,
		Address:      data.Address,
		DateOfBirth:  data.DateOfBirth,
		Role:         "USER", // дефолтная роль при регистрации
	}
	uid, err := s.users.SaveUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return "", ErrEmailTaken
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return uid, nil
}

// Login проверяет пароль пользователя и генерирует JWT.
// Неизвестный email и неверный пароль возвращают одну и ту же ошибку.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	const op = "services.auth.Login"

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtMaker.GenerateToken(user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &LoginResult{
		Token: token,
		Email: user.Email,
		Role:  user.Role,
		Name:  user.Name(),
	}, nil
}

// ValidateToken проверяет JWT и возвращает информацию о пользователе и его роль.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*models.User, string, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, "", ErrInvalidToken
	}
	user := &models.User{
		Email: claims.Email(),
		Role:  claims.Role,
	}
	return user, claims.Role, nil
}
