package calendar

import (
	"sync"
	"time"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
	"github.com/olhgfsaw/salon-booking-service/pkg/datetime"
)

// Service хранит состояние календарного представления: видимое окно,
// выбранные фильтры и загруженный набор записей
//
// Состояние локально для процесса и защищено мьютексом - сервис можно
// безопасно дёргать из нескольких обработчиков
type Service struct {
	mu           sync.RWMutex
	view         domain.CalendarView
	selection    domain.FilterSelection
	appointments []*domain.Appointment
	logger       Logger
}

// NewService создает календарь с режимом "неделя" на текущую дату
func NewService(logger Logger) *Service {
	return &Service{
		view: domain.CalendarView{
			Mode:         domain.ViewWeek,
			SelectedDate: datetime.StartOfDay(time.Now()),
		},
		appointments: make([]*domain.Appointment, 0),
		logger:       logger,
	}
}

// View возвращает копию текущего видимого окна
func (s *Service) View() domain.CalendarView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := s.view
	view.MasterIDs = append([]string(nil), s.view.MasterIDs...)
	return view
}

// Selection возвращает копию текущих фильтров
func (s *Service) Selection() domain.FilterSelection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copySelection(s.selection)
}

// SetViewParams частичное обновление видимого окна
type SetViewParams struct {
	Mode         *domain.ViewMode
	SelectedDate *time.Time
	SalonID      *string
	MasterIDs    []string
}

// SetView частично обновляет видимое окно
// Незаданные поля сохраняют прежние значения; неизвестный режим игнорируется
func (s *Service) SetView(params SetViewParams) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if params.Mode != nil {
		if params.Mode.Valid() {
			s.view.Mode = *params.Mode
		} else {
			s.logger.Warn("SetView: ignoring unknown view mode=%s", *params.Mode)
		}
	}
	if params.SelectedDate != nil {
		s.view.SelectedDate = datetime.StartOfDay(*params.SelectedDate)
	}
	if params.SalonID != nil {
		s.view.SalonID = params.SalonID
	}
	if params.MasterIDs != nil {
		s.view.MasterIDs = append([]string(nil), params.MasterIDs...)
	}

	s.logger.Info("SetView: mode=%s date=%s", s.view.Mode, datetime.FormatDate(s.view.SelectedDate))
}

// ViewRange возвращает полуоткрытое окно [from, to) текущего представления
func (s *Service) ViewRange() (time.Time, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.viewRangeLocked()
}

func (s *Service) viewRangeLocked() (time.Time, time.Time) {
	return ViewWindow(s.view.Mode, s.view.SelectedDate)
}

// ViewWindow возвращает полуоткрытое окно [from, to) для режима
// календаря и выбранной даты
func ViewWindow(mode domain.ViewMode, selected time.Time) (time.Time, time.Time) {
	switch mode {
	case domain.ViewWeek:
		from := datetime.StartOfWeek(selected)
		return from, datetime.AddPeriod(from, 1, datetime.PeriodWeek)
	case domain.ViewMonth:
		from := datetime.StartOfMonth(selected)
		return from, datetime.AddPeriod(from, 1, datetime.PeriodMonth)
	default:
		from := datetime.StartOfDay(selected)
		return from, datetime.AddPeriod(from, 1, datetime.PeriodDay)
	}
}

// SelectSalon устанавливает фильтр по салону (nil снимает ограничение)
func (s *Service) SelectSalon(salonID *string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection.SalonID = salonID
}

// ToggleMaster добавляет мастера в выбор или убирает, если он уже выбран
func (s *Service) ToggleMaster(masterID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, id := range s.selection.MasterIDs {
		if id == masterID {
			s.selection.MasterIDs = append(s.selection.MasterIDs[:i], s.selection.MasterIDs[i+1:]...)
			return
		}
	}
	s.selection.MasterIDs = append(s.selection.MasterIDs, masterID)
}

// ToggleStatus добавляет статус в выбор или убирает, если он уже выбран
func (s *Service) ToggleStatus(status domain.AppointmentStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, st := range s.selection.Statuses {
		if st == status {
			s.selection.Statuses = append(s.selection.Statuses[:i], s.selection.Statuses[i+1:]...)
			return
		}
	}
	s.selection.Statuses = append(s.selection.Statuses, status)
}

// SetMasters заменяет выбор мастеров целиком
func (s *Service) SetMasters(masterIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection.MasterIDs = append([]string(nil), masterIDs...)
}

// SetStatuses заменяет выбор статусов целиком
func (s *Service) SetStatuses(statuses []domain.AppointmentStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection.Statuses = append([]domain.AppointmentStatus(nil), statuses...)
}

// ClearFilters сбрасывает фильтры по мастерам и статусам
// Выбор салона сохраняется
func (s *Service) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection.MasterIDs = nil
	s.selection.Statuses = nil
}

// SetAppointments заменяет загруженный набор записей целиком
func (s *Service) SetAppointments(appointments []*domain.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appointments = append([]*domain.Appointment(nil), appointments...)
}

// Add добавляет запись в набор
func (s *Service) Add(appointment *domain.Appointment) {
	if appointment == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.appointments = append(s.appointments, appointment)
}

// Update заменяет запись с совпадающим ID
// Неизвестный ID молча игнорируется
func (s *Service) Update(appointment *domain.Appointment) {
	if appointment == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, app := range s.appointments {
		if app.ID == appointment.ID {
			s.appointments[i] = appointment
			return
		}
	}
}

// Remove убирает запись по ID
// Неизвестный ID молча игнорируется
func (s *Service) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, app := range s.appointments {
		if app.ID == id {
			s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)
			return
		}
	}
}

// Appointments возвращает копию загруженного набора без фильтрации
func (s *Service) Appointments() []*domain.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]*domain.Appointment(nil), s.appointments...)
}

// Visible возвращает записи, проходящие текущие фильтры и попадающие
// в окно представления
func (s *Service) Visible() []*domain.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	from, to := s.viewRangeLocked()
	filtered := FilteredAppointments(s.appointments, s.selection)

	visible := make([]*domain.Appointment, 0, len(filtered))
	for _, app := range filtered {
		if !app.Start.Before(from) && app.Start.Before(to) {
			visible = append(visible, app)
		}
	}
	return visible
}

func copySelection(sel domain.FilterSelection) domain.FilterSelection {
	out := domain.FilterSelection{SalonID: sel.SalonID}
	out.MasterIDs = append([]string(nil), sel.MasterIDs...)
	out.Statuses = append([]domain.AppointmentStatus(nil), sel.Statuses...)
	return out
}
