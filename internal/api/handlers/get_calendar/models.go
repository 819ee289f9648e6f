package get_calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
	appointmentModels "github.com/olhgfsaw/salon-booking-service/internal/service/appointments/models"
	"github.com/olhgfsaw/salon-booking-service/pkg/datetime"
)

// ToServiceRequest собирает запрос календаря из query параметров
// mode по умолчанию week, date по умолчанию сегодня
func ToServiceRequest(actor appointmentModels.Actor, query map[string][]string) (*appointmentModels.GetCalendarRequest, error) {
	req := &appointmentModels.GetCalendarRequest{
		Actor:        actor,
		Mode:         string(domain.ViewWeek),
		SelectedDate: time.Now(),
	}

	get := func(key string) string {
		values := query[key]
		if len(values) == 0 {
			return ""
		}
		return values[0]
	}

	if mode := get("mode"); mode != "" {
		req.Mode = mode
	}

	if dateStr := get("date"); dateStr != "" {
		date, err := datetime.ParseDate(dateStr)
		if err != nil {
			return nil, err
		}
		req.SelectedDate = date
	}

	if salonID := get("salonId"); salonID != "" {
		req.SalonID = &salonID
	}

	if masterIDs := get("masterIds"); masterIDs != "" {
		req.MasterIDs = strings.Split(masterIDs, ",")
	}

	if statuses := get("statuses"); statuses != "" {
		for _, raw := range strings.Split(statuses, ",") {
			status := domain.AppointmentStatus(raw)
			if !status.Valid() {
				return nil, fmt.Errorf("unknown status %q", raw)
			}
			req.Statuses = append(req.Statuses, status)
		}
	}

	return req, nil
}
