package models

// Conflict describes one existing booking whose effective interval overlaps a
// proposed time span. Start and end are formatted "HH:MM".
type Conflict struct {
	BookingID    string        `json:"bookingId"`
	CustomerName string        `json:"customerName"`
	ServiceName  string        `json:"serviceName"`
	StartTime    string        `json:"startTime"`
	EndTime      string        `json:"endTime"`
	Status       BookingStatus `json:"status"`
}

// ConflictReport is the derived result of a conflict check. Not persisted.
type ConflictReport struct {
	HasConflicts bool       `json:"hasConflicts"`
	Conflicts    []Conflict `json:"conflicts"`
}

// ScheduleSummary carries the counts shown on top of a daily schedule view.
type ScheduleSummary struct {
	TotalBookings       int `json:"totalBookings"`
	TotalAvailableStaff int `json:"totalAvailableStaff"`
	BusySlots           int `json:"busySlots"`
}

// DailySchedule is the composed view of bookings and availability for one
// calendar date. Derived, ephemeral.
type DailySchedule struct {
	Date         string               `json:"date"`
	Bookings     []Booking            `json:"bookings"`
	Availability []AvailabilityRecord `json:"availability"`
	Summary      ScheduleSummary      `json:"summary"`
}

// CellState is the render state of one calendar grid cell. Bookings take
// priority over a bare availability declaration, which takes priority over no
// data at all.
type CellState string

const (
	CellNone      CellState = "none"
	CellAvailable CellState = "available"
	CellBusy      CellState = "busy"
	CellOff       CellState = "off"
	CellBooked    CellState = "booked"
)

// CalendarCell is one day of the weekly/monthly grid.
type CalendarCell struct {
	Date         string               `json:"date"`
	State        CellState            `json:"state"`
	Availability []AvailabilityRecord `json:"availability,omitempty"`
	BookingCount int                  `json:"bookingCount"`
}
