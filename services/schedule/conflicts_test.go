package schedule

import (
	"context"
	"testing"
	"time"

	"evently/models"
)

func TestCheckConflicts_Overlap(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []models.Booking{
		{
			ID:           "b1",
			StaffID:      "staff-1",
			CustomerName: "Dana Reeve",
			ServiceName:  "DJ Set",
			EventDate:    localDate(2026, time.January, 15, 10, 0), // 10:00-11:00
			Status:       models.BookingConfirmed,
		},
	}}
	svc := newTestService(nil, bookings, nil)

	report, err := svc.CheckConflicts(context.Background(), "2026-01-15", "10:30", "11:30", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.HasConflicts {
		t.Fatal("expected a conflict for 10:30-11:30 against 10:00-11:00")
	}
	if len(report.Conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(report.Conflicts))
	}
	got := report.Conflicts[0]
	if got.BookingID != "b1" {
		t.Errorf("expected booking b1, got %s", got.BookingID)
	}
	if got.StartTime != "10:00" || got.EndTime != "11:00" {
		t.Errorf("expected interval 10:00-11:00, got %s-%s", got.StartTime, got.EndTime)
	}
	if got.CustomerName != "Dana Reeve" || got.ServiceName != "DJ Set" {
		t.Errorf("conflict should carry denormalized names, got %+v", got)
	}
}

func TestCheckConflicts_TouchingBoundaryIsNotOverlap(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []models.Booking{
		{ID: "b1", EventDate: localDate(2026, time.January, 15, 10, 0), Status: models.BookingConfirmed},
	}}
	svc := newTestService(nil, bookings, nil)

	// b1 occupies [10:00, 11:00); proposing exactly [11:00, 12:00) touches but
	// does not overlap.
	report, err := svc.CheckConflicts(context.Background(), "2026-01-15", "11:00", "12:00", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.HasConflicts {
		t.Fatalf("touching endpoints must not conflict, got %+v", report.Conflicts)
	}
}

func TestCheckConflicts_ExcludeBookingID(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []models.Booking{
		{ID: "b1", EventDate: localDate(2026, time.January, 15, 10, 0), Status: models.BookingConfirmed},
	}}
	svc := newTestService(nil, bookings, nil)

	report, err := svc.CheckConflicts(context.Background(), "2026-01-15", "10:00", "11:00", "b1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.HasConflicts {
		t.Fatalf("excluded booking must not be reported, got %+v", report.Conflicts)
	}
}

func TestCheckConflicts_InvertedOrEmptySpan(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	for _, span := range [][2]string{{"10:00", "10:00"}, {"11:00", "10:00"}} {
		_, err := svc.CheckConflicts(context.Background(), "2026-01-15", span[0], span[1], "")
		if err == nil {
			t.Fatalf("span %s-%s: expected validation error", span[0], span[1])
		}
		if _, ok := err.(*ValidationError); !ok {
			t.Fatalf("span %s-%s: expected *ValidationError, got %T", span[0], span[1], err)
		}
	}
}

func TestCheckConflicts_EmptyDay(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	report, err := svc.CheckConflicts(context.Background(), "2026-01-16", "14:00", "15:00", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.HasConflicts {
		t.Fatal("expected no conflicts on an empty day")
	}
	if report.Conflicts == nil || len(report.Conflicts) != 0 {
		t.Fatalf("expected empty non-nil conflicts list, got %#v", report.Conflicts)
	}
}

func TestCheckConflicts_ExcludesCancelledAndCompleted(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []models.Booking{
		{ID: "cancelled", EventDate: localDate(2026, time.January, 15, 10, 0), Status: models.BookingCancelled},
		{ID: "completed", EventDate: localDate(2026, time.January, 15, 10, 0), Status: models.BookingCompleted},
		{ID: "live", EventDate: localDate(2026, time.January, 15, 10, 0), Status: models.BookingInProgress},
	}}
	svc := newTestService(nil, bookings, nil)

	report, err := svc.CheckConflicts(context.Background(), "2026-01-15", "10:00", "11:00", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Conflicts) != 1 || report.Conflicts[0].BookingID != "live" {
		t.Fatalf("only the live booking should conflict, got %+v", report.Conflicts)
	}
}

func TestCheckConflicts_ServiceDuration(t *testing.T) {
	services := &fakeServiceRepo{services: map[string]models.EventService{
		"svc-photo": {ID: "svc-photo", Name: "Photo Booth", DurationMinutes: 180},
	}}
	bookings := &fakeBookingRepo{bookings: []models.Booking{
		// 09:00 + 180min = [09:00, 12:00)
		{ID: "b1", ServiceID: "svc-photo", EventDate: localDate(2026, time.January, 15, 9, 0), Status: models.BookingConfirmed},
	}}
	svc := newTestService(nil, bookings, services)

	// 11:00-11:30 is inside the three-hour interval but past the default 60min.
	report, err := svc.CheckConflicts(context.Background(), "2026-01-15", "11:00", "11:30", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.HasConflicts {
		t.Fatal("expected conflict using the service's 180 minute duration")
	}
	if report.Conflicts[0].EndTime != "12:00" {
		t.Errorf("expected computed end 12:00, got %s", report.Conflicts[0].EndTime)
	}
	if report.Conflicts[0].ServiceName != "Photo Booth" {
		t.Errorf("expected service name from catalog, got %q", report.Conflicts[0].ServiceName)
	}
}

func TestCheckConflicts_MissingServiceFallsBackToDefault(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []models.Booking{
		// Unknown service: assume the configured default of 60 minutes.
		{ID: "b1", ServiceID: "gone", EventDate: localDate(2026, time.January, 15, 9, 0), Status: models.BookingConfirmed},
	}}
	svc := newTestService(nil, bookings, nil)

	report, err := svc.CheckConflicts(context.Background(), "2026-01-15", "10:00", "11:00", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.HasConflicts {
		t.Fatal("booking should end 10:00 under the default duration; no overlap expected")
	}

	report, err = svc.CheckConflicts(context.Background(), "2026-01-15", "09:30", "10:00", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.HasConflicts {
		t.Fatal("expected overlap inside the default 60 minute interval")
	}
}

func TestCheckConflicts_BusyAvailabilityScenario(t *testing.T) {
	// Staff S is marked busy 09:00-12:00 and holds booking X at 10:00 (60min).
	avail := &fakeAvailabilityRepo{records: []models.AvailabilityRecord{
		{
			ID:      "rec-1",
			StaffID: "staff-s",
			Date:    "2026-01-15",
			Status:  models.StatusBusy,
			TimeWindows: []models.TimeWindow{
				{StartTime: "09:00", EndTime: "12:00", IsAvailable: false},
			},
		},
	}}
	bookings := &fakeBookingRepo{bookings: []models.Booking{
		{ID: "x", StaffID: "staff-s", EventDate: localDate(2026, time.January, 15, 10, 0), Status: models.BookingConfirmed},
	}}
	svc := newTestService(avail, bookings, nil)

	report, err := svc.CheckConflicts(context.Background(), "2026-01-15", "09:30", "10:30", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.HasConflicts || len(report.Conflicts) != 1 || report.Conflicts[0].BookingID != "x" {
		t.Fatalf("expected booking x as the single conflict, got %+v", report.Conflicts)
	}
}

func TestCheckConflicts_InvalidDate(t *testing.T) {
	svc := newTestService(nil, nil, nil)
	_, err := svc.CheckConflicts(context.Background(), "not-a-date", "10:00", "11:00", "")
	if err == nil {
		t.Fatal("expected validation error for unparsable date")
	}
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
}
