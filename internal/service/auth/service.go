package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
	masterRepo "github.com/olhgfsaw/salon-booking-service/internal/infra/storage/master"
	userRepo "github.com/olhgfsaw/salon-booking-service/internal/infra/storage/user"
	"github.com/olhgfsaw/salon-booking-service/internal/service/auth/models"
)

const minPasswordLength = 8

// Service сервис аутентификации: регистрация, вход, проверка токенов
//
// Отозванные через Logout токены держатся в памяти до истечения срока
// их действия. При рестарте процесса список отзыва сбрасывается
type Service struct {
	userRepo   UserRepository
	masterRepo MasterRepository
	secret     []byte
	tokenTTL   time.Duration
	logger     Logger

	mu      sync.Mutex
	revoked map[string]time.Time // sha256(token) -> exp
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(userRepo UserRepository, masterRepo MasterRepository, secret string, tokenTTL time.Duration, logger Logger) *Service {
	return &Service{
		userRepo:   userRepo,
		masterRepo: masterRepo,
		secret:     []byte(secret),
		tokenTTL:   tokenTTL,
		logger:     logger,
		revoked:    make(map[string]time.Time),
	}
}

// Register регистрирует нового пользователя
// Роль по умолчанию - client; роль admin через регистрацию получить нельзя
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	s.logger.Info("Register: registering user email=%s", email)

	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	role := domain.RoleClient
	if req.Role != nil {
		parsed, err := domain.ParseUserRole(*req.Role)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if parsed == domain.RoleAdmin {
			s.logger.Warn("Register: attempt to self-register as admin, email=%s", email)
			return nil, fmt.Errorf("%w: role admin is not allowed", ErrInvalidInput)
		}
		role = parsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		DisplayName:  strings.TrimSpace(req.DisplayName),
		PasswordHash: string(hash),
		Role:         role,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserAlreadyExists) {
			s.logger.Warn("Register: email=%s already taken", email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	token, err := s.generateToken(ctx, created)
	if err != nil {
		s.logger.Error("Register: failed to generate token for user=%s: %v", created.ID, err)
		return nil, fmt.Errorf("%w: Register - generate token: %v", ErrInternal, err)
	}

	s.logger.Info("Register: successfully registered user=%s role=%s", created.ID, created.Role)
	return &models.AuthResponse{
		Token: token,
		User:  models.FromDomainUser(created),
	}, nil
}

// Login аутентифицирует пользователя по email и паролю
// Несуществующий email и неверный пароль дают одну и ту же ошибку
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	s.logger.Info("Login: authenticating email=%s", email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for email=%s", email)
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(ctx, user)
	if err != nil {
		s.logger.Error("Login: failed to generate token for user=%s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - generate token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user=%s authenticated", user.ID)
	return &models.AuthResponse{
		Token: token,
		User:  models.FromDomainUser(user),
	}, nil
}

// Logout отзывает токен до истечения его срока действия
func (s *Service) Logout(_ context.Context, tokenString string) error {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return err
	}

	exp := time.Now().Add(s.tokenTTL)
	if expClaim, ok := claims["exp"].(float64); ok {
		exp = time.Unix(int64(expClaim), 0)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.revoked[hashToken(tokenString)] = exp
	s.pruneRevokedLocked()

	s.logger.Info("Logout: token revoked, active revocations=%d", len(s.revoked))
	return nil
}

// ValidateToken проверяет токен и возвращает данные пользователя из claims
func (s *Service) ValidateToken(_ context.Context, tokenString string) (*models.TokenClaims, error) {
	s.mu.Lock()
	_, isRevoked := s.revoked[hashToken(tokenString)]
	s.mu.Unlock()

	if isRevoked {
		return nil, ErrTokenRevoked
	}

	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	roleStr, _ := claims["role"].(string)

	if sub == "" {
		return nil, fmt.Errorf("%w: missing sub claim", ErrInvalidToken)
	}
	role, err := domain.ParseUserRole(roleStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	result := &models.TokenClaims{
		UserID: sub,
		Email:  email,
		Role:   role,
	}
	if masterID, ok := claims["masterId"].(string); ok && masterID != "" {
		result.MasterID = &masterID
	}

	return result, nil
}

// Вспомогательные методы

func (s *Service) generateToken(ctx context.Context, user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	// Пользователю с ролью master в токен кладётся ID его карточки мастера
	if user.Role == domain.RoleMaster {
		master, err := s.masterRepo.GetByUserID(ctx, user.ID)
		if err == nil {
			claims["masterId"] = master.ID
		} else if !errors.Is(err, masterRepo.ErrMasterNotFound) {
			return "", fmt.Errorf("lookup master for user %s: %v", user.ID, err)
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// pruneRevokedLocked удаляет записи с истекшим сроком, вызывается под мьютексом
func (s *Service) pruneRevokedLocked() {
	now := time.Now()
	for hash, exp := range s.revoked {
		if exp.Before(now) {
			delete(s.revoked, hash)
		}
	}
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
