package auth

import "errors"

var (
	// ErrEmailTaken пользователь с таким email уже зарегистрирован
	ErrEmailTaken = errors.New("email already taken")
	// ErrInvalidCredentials неверный email или пароль
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken токен не прошёл проверку
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenRevoked токен отозван через logout
	ErrTokenRevoked = errors.New("token revoked")
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("invalid input")
	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal error")
)
