package schedule

import "testing"

func TestNewTimeWindow_Valid(t *testing.T) {
	cases := []struct {
		start, end string
	}{
		{"09:00", "12:00"},
		{"00:00", "23:59"},
		{"9:00", "10:30"}, // single-digit hour is accepted
		{"22:15", "23:00"},
	}
	for _, c := range cases {
		w, err := NewTimeWindow(c.start, c.end, true)
		if err != nil {
			t.Errorf("NewTimeWindow(%q, %q): unexpected error %v", c.start, c.end, err)
			continue
		}
		if w.StartTime != c.start || w.EndTime != c.end || !w.IsAvailable {
			t.Errorf("NewTimeWindow(%q, %q) = %+v", c.start, c.end, w)
		}
	}
}

func TestNewTimeWindow_Invalid(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
		wantField  string
	}{
		{"inverted", "12:00", "09:00", "endTime"},
		{"equal", "10:00", "10:00", "endTime"},
		{"bad start format", "25:00", "26:00", "startTime"},
		{"bad minutes", "09:60", "10:00", "startTime"},
		{"bad end format", "09:00", "10:5", "endTime"},
		{"empty start", "", "10:00", "startTime"},
		{"not a time", "morning", "noon", "startTime"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewTimeWindow(c.start, c.end, false)
			if err == nil {
				t.Fatalf("NewTimeWindow(%q, %q): expected error", c.start, c.end)
			}
			ve, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if ve.Field != c.wantField {
				t.Errorf("expected field %q, got %q", c.wantField, ve.Field)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"9:30", 570, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"12", 0, false},
	}
	for _, c := range cases {
		got, err := parseClock("time", c.in)
		if c.ok && (err != nil || got != c.want) {
			t.Errorf("parseClock(%q) = %d, %v; want %d", c.in, got, err, c.want)
		}
		if !c.ok && err == nil {
			t.Errorf("parseClock(%q): expected error", c.in)
		}
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{570, "09:30"},
		{1439, "23:59"},
		{1470, "00:30"}, // wraps past midnight
	}
	for _, c := range cases {
		if got := formatClock(c.in); got != c.want {
			t.Errorf("formatClock(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}
