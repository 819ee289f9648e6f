package create_appointment

import "errors"

var (
	// ErrMasterNotFound возвращается, когда мастер не найден
	ErrMasterNotFound = errors.New("master not found")

	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("salon not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в салоне
	ErrServiceNotFound = errors.New("service not found")

	// ErrMasterNotBookable возвращается, когда мастер неактивен или в отпуске
	ErrMasterNotBookable = errors.New("master is not available for booking")

	// ErrOutsideWorkingHours возвращается, когда время записи вне рабочих часов мастера
	ErrOutsideWorkingHours = errors.New("time is outside of master working hours")

	// ErrSlotNotAvailable возвращается, когда интервал уже занят
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
