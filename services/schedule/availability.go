package schedule

import (
	"context"
	"errors"
	"fmt"

	availabilityRepo "evently/database/repository/availability"
	"evently/models"
	"evently/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ListAvailability returns availability records matching the filter, sorted
// by date ascending then by each record's earliest window start.
func (s *DefaultScheduleService) ListAvailability(ctx context.Context, filter ListFilter) ([]models.AvailabilityRecord, error) {
	if filter.StartDate != "" {
		if _, err := parseDate("startDate", filter.StartDate); err != nil {
			return nil, err
		}
	}
	if filter.EndDate != "" {
		if _, err := parseDate("endDate", filter.EndDate); err != nil {
			return nil, err
		}
	}

	records, err := s.Availability.Get(ctx, availabilityRepo.Filter{
		StaffID:   filter.StaffID,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
	})
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.AvailabilityRecord{}
	}
	return records, nil
}

// UpsertAvailability validates and stores a staff member's declaration for
// one date. A submission for an existing (staff, date) key replaces the prior
// status, windows and notes wholesale; nothing is merged.
func (s *DefaultScheduleService) UpsertAvailability(ctx context.Context, input UpsertInput) (*models.AvailabilityRecord, error) {
	if input.StaffID == "" {
		return nil, NewValidationError("staff", "staff member is required")
	}
	if _, err := parseDate("date", input.Date); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = models.StatusAvailable
	}
	if !status.Valid() {
		return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", input.Status))
	}

	windows := make([]models.TimeWindow, 0, len(input.TimeWindows))
	for _, w := range input.TimeWindows {
		window, err := NewTimeWindow(w.StartTime, w.EndTime, w.IsAvailable)
		if err != nil {
			return nil, err
		}
		windows = append(windows, window)
	}

	record, err := s.Availability.Upsert(ctx, input.StaffID, input.Date, status, windows, input.Notes)
	if err != nil {
		return nil, err
	}

	s.invalidateScheduleCache(ctx, input.Date, input.StaffID)
	utils.GetLogger().Info("availability upserted",
		zap.String("staffId", input.StaffID),
		zap.String("date", input.Date),
		zap.String("status", string(status)))
	return record, nil
}

// DeleteAvailability removes a record. Staff may delete only their own
// records; admins may delete any. The target is fetched first so the
// ownership check runs before any mutation.
func (s *DefaultScheduleService) DeleteAvailability(ctx context.Context, recordID string, requester Requester) error {
	record, err := s.Availability.GetByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &NotFoundError{Message: fmt.Sprintf("availability record %s not found", recordID)}
		}
		return err
	}

	if requester.Role != RoleAdmin && requester.StaffID != record.StaffID {
		return &AuthorizationError{Message: "only the record's staff member or an admin may delete it"}
	}

	if err := s.Availability.Delete(ctx, recordID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &NotFoundError{Message: fmt.Sprintf("availability record %s not found", recordID)}
		}
		return err
	}

	s.invalidateScheduleCache(ctx, record.Date, record.StaffID)
	utils.GetLogger().Info("availability deleted",
		zap.String("recordId", recordID),
		zap.String("staffId", record.StaffID),
		zap.String("date", record.Date))
	return nil
}
