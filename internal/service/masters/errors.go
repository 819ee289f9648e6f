package masters

import "errors"

var (
	// ErrMasterNotFound мастер не найден
	ErrMasterNotFound = errors.New("master not found")
	// ErrAccessDenied операция запрещена для роли пользователя
	ErrAccessDenied = errors.New("access denied")
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("invalid input")
	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal error")
)
