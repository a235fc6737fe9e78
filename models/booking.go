package models

import "time"

// BookingStatus is the lifecycle state of an event booking.
type BookingStatus string

const (
	BookingInquiry    BookingStatus = "inquiry"
	BookingQuoted     BookingStatus = "quoted"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "inprogress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

// Valid reports whether s is a known booking status.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingInquiry, BookingQuoted, BookingConfirmed,
		BookingInProgress, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Terminal reports whether a booking in this status can no longer move.
func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// CanTransitionTo reports whether next is a legal successor of s. Any
// non-terminal booking may be cancelled; otherwise the lifecycle is
// inquiry -> quoted -> confirmed -> inprogress -> completed.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == BookingCancelled {
		return true
	}
	switch s {
	case BookingInquiry:
		return next == BookingQuoted
	case BookingQuoted:
		return next == BookingConfirmed
	case BookingConfirmed:
		return next == BookingInProgress
	case BookingInProgress:
		return next == BookingCompleted
	}
	return false
}

// Booking is an event booking record. Customer and service names are
// denormalized onto the document so schedule views render without joins.
type Booking struct {
	ID            string        `bson:"id" json:"id"`
	StaffID       string        `bson:"staffId,omitempty" json:"staffId,omitempty"` // empty until assigned
	CustomerID    string        `bson:"customerId" json:"customerId"`
	CustomerName  string        `bson:"customerName,omitempty" json:"customerName,omitempty"`
	ServiceID     string        `bson:"serviceId,omitempty" json:"serviceId,omitempty"`
	ServiceName   string        `bson:"serviceName,omitempty" json:"serviceName,omitempty"`
	EventDate     time.Time     `bson:"eventDate" json:"eventDate"`
	EventLocation string        `bson:"eventLocation,omitempty" json:"eventLocation,omitempty"`
	Status        BookingStatus `bson:"status" json:"status"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt"`
}
