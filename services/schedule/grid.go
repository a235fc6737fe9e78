package schedule

import (
	"context"

	availabilityRepo "evently/database/repository/availability"
	bookingRepo "evently/database/repository/booking"
	"evently/models"
)

// BuildGrid composes availability and bookings across an inclusive date range
// into a per-day status matrix for calendar rendering. Render priority per
// cell: bookings present > availability record present > no data. Pure read.
func (s *DefaultScheduleService) BuildGrid(ctx context.Context, startDate, endDate, staffID string) ([]models.CalendarCell, error) {
	start, err := parseDate("startDate", startDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("endDate", endDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, NewValidationError("endDate", "end date must not be before start date")
	}

	records, err := s.Availability.Get(ctx, availabilityRepo.Filter{
		StaffID:   staffID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return nil, err
	}
	byDate := make(map[string][]models.AvailabilityRecord, len(records))
	for _, rec := range records {
		byDate[rec.Date] = append(byDate[rec.Date], rec)
	}

	var cells []models.CalendarCell
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		date := day.Format(dateLayout)

		bookings, err := s.Bookings.FindActiveOnDate(ctx, day, bookingRepo.QueryOptions{
			StaffID:          staffID,
			ExcludedStatuses: scheduleExcludedStatuses,
		})
		if err != nil {
			return nil, err
		}

		cell := models.CalendarCell{
			Date:         date,
			State:        cellState(byDate[date], len(bookings)),
			Availability: byDate[date],
			BookingCount: len(bookings),
		}
		cells = append(cells, cell)
	}
	return cells, nil
}

// cellState folds a day's data into one render state. A booked day wins over
// any availability declaration but does not touch the underlying records.
// When several staff members declared for the same day, the most permissive
// status is shown: available over busy over off.
func cellState(records []models.AvailabilityRecord, bookingCount int) models.CellState {
	if bookingCount > 0 {
		return models.CellBooked
	}
	if len(records) == 0 {
		return models.CellNone
	}
	state := models.CellOff
	for _, rec := range records {
		switch rec.Status {
		case models.StatusAvailable:
			return models.CellAvailable
		case models.StatusBusy:
			state = models.CellBusy
		}
	}
	return state
}
