package appointments

import "errors"

var (
	// ErrAppointmentNotFound запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")
	// ErrMasterNotFound мастер не найден
	ErrMasterNotFound = errors.New("master not found")
	// ErrAccessDenied доступ к записи запрещён
	ErrAccessDenied = errors.New("access denied")
	// ErrCannotCancel запись нельзя отменить в текущем статусе
	ErrCannotCancel = errors.New("appointment cannot be cancelled")
	// ErrCannotUpdate запись нельзя изменить в текущем статусе
	ErrCannotUpdate = errors.New("appointment cannot be updated")
	// ErrSlotNotAvailable слот пересекается с существующей записью
	ErrSlotNotAvailable = errors.New("slot is not available")
	// ErrOutsideWorkingHours слот вне рабочих часов мастера
	ErrOutsideWorkingHours = errors.New("slot is outside working hours")
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("invalid input")
	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal error")
)
