package models

import "time"

// AvailabilityStatus is the day-level status a staff member declares for a date.
type AvailabilityStatus string

const (
	StatusAvailable AvailabilityStatus = "available"
	StatusBusy      AvailabilityStatus = "busy"
	StatusOff       AvailabilityStatus = "off"
)

// Valid reports whether s is one of the declared day-level statuses.
func (s AvailabilityStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusBusy, StatusOff:
		return true
	}
	return false
}

// TimeWindow is one contiguous interval within a day. Times are 24h "HH:MM"
// strings; StartTime precedes EndTime on the clock for any valid window.
type TimeWindow struct {
	StartTime   string `bson:"startTime" json:"startTime"`
	EndTime     string `bson:"endTime" json:"endTime"`
	IsAvailable bool   `bson:"isAvailable" json:"isAvailable"`
}

// AvailabilityRecord is a staff member's declared status and time windows for
// one calendar date. At most one record exists per (staffId, date); a later
// submission for the same key fully replaces the earlier one.
type AvailabilityRecord struct {
	ID          string             `bson:"id" json:"id"`
	StaffID     string             `bson:"staffId" json:"staffId"`
	Date        string             `bson:"date" json:"date"` // "YYYY-MM-DD", time-of-day discarded
	Status      AvailabilityStatus `bson:"status" json:"status"`
	TimeWindows []TimeWindow       `bson:"timeWindows" json:"timeWindows"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// EarliestWindowStart returns the smallest window start time, or "" when the
// record has no windows. Used as the secondary sort key for listings.
func (r AvailabilityRecord) EarliestWindowStart() string {
	earliest := ""
	for _, w := range r.TimeWindows {
		if earliest == "" || w.StartTime < earliest {
			earliest = w.StartTime
		}
	}
	return earliest
}
