package get_available_slots

import (
	getAvailableSlots "github.com/olhgfsaw/salon-booking-service/internal/usecase/get_available_slots"
	"github.com/olhgfsaw/salon-booking-service/pkg/datetime"
)

// AvailableSlotsResponse модель HTTP ответа со слотами
type AvailableSlotsResponse struct {
	MasterID        string   `json:"masterId"`
	Date            string   `json:"date"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
// Слоты отдаются временем начала в формате HH:MM
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = datetime.FormatTime(slot)
	}

	return &AvailableSlotsResponse{
		MasterID:        resp.MasterID,
		Date:            datetime.FormatDate(resp.Date),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров маршрута
func ToUseCaseRequest(masterID, dateStr string, durationMinutes int) (*getAvailableSlots.Request, error) {
	date, err := datetime.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		MasterID:        masterID,
		Date:            date,
		DurationMinutes: durationMinutes,
	}, nil
}
