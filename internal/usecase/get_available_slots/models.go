package get_available_slots

import "time"

// Request модель запроса на получение доступных слотов
type Request struct {
	MasterID        string    // ID мастера
	Date            time.Time // Дата, на которую запрашиваются слоты (без времени)
	DurationMinutes int       // Длительность слота в минутах (0 = значение по умолчанию)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	MasterID        string      // ID мастера
	Date            time.Time   // Дата, на которую запрашивались слоты
	DurationMinutes int         // Использованная длительность слота
	Slots           []time.Time // Начала доступных слотов в хронологическом порядке
}
