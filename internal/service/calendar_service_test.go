package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/salonbook/pkg/api"
)

func TestGetMonthView(t *testing.T) {
	c, cleanup := setupTestServer(t, nil)
	defer cleanup()
	ctx := context.Background()

	cut := mustCreateService(t, c, "Cut", 80)
	color := mustCreateService(t, c, "Color", 120)
	mustBook(t, c, &api.AppointmentInput{
		ClientName: "Maria", Date: "2025-06-15", Time: "10:00", ServiceIds: []string{cut.Id, color.Id},
	})
	mustBook(t, c, &api.AppointmentInput{
		ClientName: "Ana", Date: "2025-06-20", Time: "10:00", ServiceIds: []string{cut.Id},
	})
	mustBook(t, c, &api.AppointmentInput{
		ClientName: "Julia", Date: "2025-07-01", Time: "10:00", ServiceIds: []string{cut.Id},
	})

	t.Run("defaults to today", func(t *testing.T) {
		resp, err := c.calendar.GetMonthView(ctx, connect.NewRequest(&api.GetMonthViewRequest{Year: 2025, Month: 6}))
		if err != nil {
			t.Fatalf("GetMonthView failed: %v", err)
		}
		days := resp.Msg.Days
		if len(days) != 42 {
			t.Fatalf("expected 42 days, got %d", len(days))
		}
		// June 2025 starts on a Sunday.
		if days[0].Date != "2025-06-01" || !days[0].IsCurrentMonth {
			t.Errorf("first cell = %+v, want 2025-06-01", days[0])
		}
		today := 0
		for _, d := range days {
			if d.IsToday {
				today++
				if d.Date != "2025-06-15" {
					t.Errorf("today flagged on %s", d.Date)
				}
			}
			if d.IsSelected {
				t.Errorf("no date selected, but %s is", d.Date)
			}
		}
		if today != 1 {
			t.Errorf("expected exactly one today cell, got %d", today)
		}

		s := resp.Msg.Summary
		if s.SelectedDate != "2025-06-15" || s.DayCount != 1 || s.DayTotal != 200 || s.MonthTotal != 280 {
			t.Errorf("unexpected summary %+v", s)
		}
	})

	t.Run("selected date drives summary", func(t *testing.T) {
		resp, err := c.calendar.GetMonthView(ctx, connect.NewRequest(&api.GetMonthViewRequest{
			Year: 2025, Month: 7, SelectedDate: "2025-07-01", Today: "2025-06-15",
		}))
		if err != nil {
			t.Fatalf("GetMonthView failed: %v", err)
		}
		// July 2025 starts on a Tuesday, so two June days lead.
		if resp.Msg.Days[0].Date != "2025-06-29" || resp.Msg.Days[0].IsCurrentMonth {
			t.Errorf("first cell = %+v, want leading 2025-06-29", resp.Msg.Days[0])
		}
		if !resp.Msg.Days[2].IsSelected {
			t.Errorf("expected 2025-07-01 selected, got %+v", resp.Msg.Days[2])
		}
		s := resp.Msg.Summary
		if s.DayCount != 1 || s.DayTotal != 80 || s.MonthTotal != 80 {
			t.Errorf("unexpected summary %+v", s)
		}
	})

	t.Run("invalid month", func(t *testing.T) {
		_, err := c.calendar.GetMonthView(ctx, connect.NewRequest(&api.GetMonthViewRequest{Year: 2025, Month: 13}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})
}

func TestGetDaySummary(t *testing.T) {
	c, cleanup := setupTestServer(t, nil)
	defer cleanup()
	ctx := context.Background()

	cut := mustCreateService(t, c, "Cut", 80)
	mustBook(t, c, &api.AppointmentInput{
		ClientName: "Maria", Date: "2025-06-15", Time: "10:00", ServiceIds: []string{cut.Id}, TotalPrice: 65,
	})

	resp, err := c.calendar.GetDaySummary(ctx, connect.NewRequest(&api.GetDaySummaryRequest{SelectedDate: "2025-06-16"}))
	if err != nil {
		t.Fatalf("GetDaySummary failed: %v", err)
	}
	s := resp.Msg.Summary
	if s.DayCount != 0 || s.DayTotal != 0 || s.MonthTotal != 65 {
		t.Errorf("unexpected summary %+v", s)
	}

	_, err = c.calendar.GetDaySummary(ctx, connect.NewRequest(&api.GetDaySummaryRequest{}))
	assertCode(t, err, connect.CodeInvalidArgument)
}
