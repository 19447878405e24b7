package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/salonbook/internal/scheduler"
	"github.com/mmynk/salonbook/internal/storage"
	"github.com/mmynk/salonbook/pkg/api"
	"github.com/mmynk/salonbook/pkg/api/apiconnect"
)

var _ apiconnect.CalendarServiceHandler = (*CalendarService)(nil)

// CalendarService implements the Connect CalendarService
type CalendarService struct {
	store storage.Store
	now   func() time.Time
}

// NewCalendarService creates a new CalendarService. now supplies "today"
// when a request leaves it empty; nil means time.Now.
func NewCalendarService(store storage.Store, now func() time.Time) *CalendarService {
	if now == nil {
		now = time.Now
	}
	return &CalendarService{store: store, now: now}
}

func (s *CalendarService) summary(ctx context.Context, selectedDate string) (*api.Summary, error) {
	appts, err := s.store.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}
	catalog, err := s.store.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	return toAPISummary(selectedDate, scheduler.Aggregate(appts, catalog, selectedDate)), nil
}

// GetMonthView returns the 42-cell grid of a month and the revenue summary
// of the selected date (today when nothing is selected).
func (s *CalendarService) GetMonthView(ctx context.Context, req *connect.Request[api.GetMonthViewRequest]) (*connect.Response[api.GetMonthViewResponse], error) {
	year, month := int(req.Msg.Year), int(req.Msg.Month)
	if month < 1 || month > 12 {
		return nil, invalidArgument("month must be between 1 and 12, got %d", month)
	}
	if year < 1 || year > 9999 {
		return nil, invalidArgument("year out of range: %d", year)
	}

	today := req.Msg.Today
	if today == "" {
		today = s.now().Format(dateLayout)
	} else if err := validateDate(today); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("today: %w", err))
	}
	if req.Msg.SelectedDate != "" {
		if err := validateDate(req.Msg.SelectedDate); err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
	}

	cells := scheduler.GenerateCalendarDays(year, month, req.Msg.SelectedDate, today)
	days := make([]*api.CalendarDay, len(cells))
	for i, c := range cells {
		days[i] = &api.CalendarDay{
			Date:           c.Date,
			Day:            int32(c.Day),
			IsCurrentMonth: c.IsCurrentMonth,
			IsToday:        c.IsToday,
			IsSelected:     c.IsSelected,
		}
	}

	summaryDate := req.Msg.SelectedDate
	if summaryDate == "" {
		summaryDate = today
	}
	summary, err := s.summary(ctx, summaryDate)
	if err != nil {
		slog.Error("GetMonthView failed", "year", year, "month", month, "error", err)
		return nil, storeError(err)
	}

	slog.Debug("Month view built", "year", year, "month", month, "selected", req.Msg.SelectedDate)
	return connect.NewResponse(&api.GetMonthViewResponse{Days: days, Summary: summary}), nil
}

// GetDaySummary returns the appointment count and revenue of a date and its
// month.
func (s *CalendarService) GetDaySummary(ctx context.Context, req *connect.Request[api.GetDaySummaryRequest]) (*connect.Response[api.GetDaySummaryResponse], error) {
	if err := validateDate(req.Msg.SelectedDate); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	summary, err := s.summary(ctx, req.Msg.SelectedDate)
	if err != nil {
		slog.Error("GetDaySummary failed", "selected_date", req.Msg.SelectedDate, "error", err)
		return nil, storeError(err)
	}
	return connect.NewResponse(&api.GetDaySummaryResponse{Summary: summary}), nil
}
