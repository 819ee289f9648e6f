package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/olhgfsaw/salon-booking-service/pkg/types"
)

// MasterStatus статус мастера
type MasterStatus string

const (
	MasterActive   MasterStatus = "active"
	MasterInactive MasterStatus = "inactive"
	MasterVacation MasterStatus = "vacation"
)

// TimeRange рабочее окно в пределах суток
// Обе границы включительные, Start <= End лексикографически
type TimeRange struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// WorkingHours расписание по дням недели
// Отсутствующий день (nil) означает, что мастер в этот день не принимает
type WorkingHours struct {
	Monday    *TimeRange `json:"monday,omitempty"`
	Tuesday   *TimeRange `json:"tuesday,omitempty"`
	Wednesday *TimeRange `json:"wednesday,omitempty"`
	Thursday  *TimeRange `json:"thursday,omitempty"`
	Friday    *TimeRange `json:"friday,omitempty"`
	Saturday  *TimeRange `json:"saturday,omitempty"`
	Sunday    *TimeRange `json:"sunday,omitempty"`
}

// ForWeekday возвращает рабочее окно для дня недели (nil = выходной)
func (w WorkingHours) ForWeekday(day time.Weekday) *TimeRange {
	switch day {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return nil
	}
}

// Value реализует driver.Valuer: расписание хранится в БД как JSONB
func (w WorkingHours) Value() (driver.Value, error) {
	return json.Marshal(w)
}

// Scan реализует sql.Scanner для чтения JSONB из БД
func (w *WorkingHours) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, w)
	case string:
		return json.Unmarshal([]byte(v), w)
	case nil:
		*w = WorkingHours{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into WorkingHours", src)
	}
}

// Master сотрудник салона, оказывающий услуги
type Master struct {
	ID             string
	UserID         string
	SalonIDs       []string
	ServiceIDs     []string
	WorkingHours   WorkingHours
	Status         MasterStatus
	Specialization *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsBookable возвращает true, если к мастеру можно записаться
func (m *Master) IsBookable() bool {
	return m.Status == MasterActive
}
