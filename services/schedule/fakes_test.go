package schedule

import (
	"context"
	"sort"
	"time"

	availabilityRepo "evently/database/repository/availability"
	bookingRepo "evently/database/repository/booking"
	"evently/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeAvailabilityRepo is an in-memory AvailabilityRepository with the same
// keying and ordering semantics as the Mongo implementation.
type fakeAvailabilityRepo struct {
	records []models.AvailabilityRecord
}

func (f *fakeAvailabilityRepo) Get(_ context.Context, filter availabilityRepo.Filter) ([]models.AvailabilityRecord, error) {
	var out []models.AvailabilityRecord
	for _, rec := range f.records {
		if filter.StaffID != "" && rec.StaffID != filter.StaffID {
			continue
		}
		if filter.StartDate != "" && rec.Date < filter.StartDate {
			continue
		}
		if filter.EndDate != "" && rec.Date > filter.EndDate {
			continue
		}
		out = append(out, rec)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].EarliestWindowStart() < out[j].EarliestWindowStart()
	})
	return out, nil
}

func (f *fakeAvailabilityRepo) GetByID(_ context.Context, recordID string) (*models.AvailabilityRecord, error) {
	for i := range f.records {
		if f.records[i].ID == recordID {
			rec := f.records[i]
			return &rec, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeAvailabilityRepo) Upsert(_ context.Context, staffID, date string, status models.AvailabilityStatus, windows []models.TimeWindow, notes string) (*models.AvailabilityRecord, error) {
	if windows == nil {
		windows = []models.TimeWindow{}
	}
	for i := range f.records {
		if f.records[i].StaffID == staffID && f.records[i].Date == date {
			f.records[i].Status = status
			f.records[i].TimeWindows = windows
			f.records[i].Notes = notes
			f.records[i].UpdatedAt = time.Now()
			rec := f.records[i]
			return &rec, nil
		}
	}
	rec := models.AvailabilityRecord{
		ID:          uuid.New().String(),
		StaffID:     staffID,
		Date:        date,
		Status:      status,
		TimeWindows: windows,
		Notes:       notes,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	f.records = append(f.records, rec)
	return &rec, nil
}

func (f *fakeAvailabilityRepo) Delete(_ context.Context, recordID string) error {
	for i := range f.records {
		if f.records[i].ID == recordID {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeAvailabilityRepo) EnsureIndexes() error { return nil }

// fakeBookingRepo is an in-memory BookingRepository.
type fakeBookingRepo struct {
	bookings []models.Booking
}

func (f *fakeBookingRepo) FindActiveOnDate(_ context.Context, day time.Time, opts bookingRepo.QueryOptions) ([]models.Booking, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	excluded := make(map[models.BookingStatus]bool, len(opts.ExcludedStatuses))
	for _, s := range opts.ExcludedStatuses {
		excluded[s] = true
	}

	var out []models.Booking
	for _, b := range f.bookings {
		if b.EventDate.Before(dayStart) || !b.EventDate.Before(dayEnd) {
			continue
		}
		if excluded[b.Status] {
			continue
		}
		if opts.StaffID != "" && b.StaffID != opts.StaffID {
			continue
		}
		if opts.ExcludeBookingID != "" && b.ID == opts.ExcludeBookingID {
			continue
		}
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EventDate.Before(out[j].EventDate)
	})
	return out, nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, bookingID string) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == bookingID {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeBookingRepo) Create(_ context.Context, booking models.Booking) (*models.Booking, error) {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	f.bookings = append(f.bookings, booking)
	return &booking, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, bookingID string, status models.BookingStatus) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == bookingID {
			f.bookings[i].Status = status
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeBookingRepo) EnsureIndexes() error { return nil }

// fakeServiceRepo is an in-memory EventServiceRepository.
type fakeServiceRepo struct {
	services map[string]models.EventService
}

func (f *fakeServiceRepo) GetByID(_ context.Context, serviceID string) (*models.EventService, error) {
	if svc, ok := f.services[serviceID]; ok {
		return &svc, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeServiceRepo) List(_ context.Context) ([]models.EventService, error) {
	var out []models.EventService
	for _, svc := range f.services {
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeServiceRepo) Create(_ context.Context, svc models.EventService) (*models.EventService, error) {
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	if f.services == nil {
		f.services = make(map[string]models.EventService)
	}
	f.services[svc.ID] = svc
	return &svc, nil
}

// newTestService wires a schedule service over in-memory fakes. Caching is
// disabled by leaving the redis client nil.
func newTestService(avail *fakeAvailabilityRepo, bookings *fakeBookingRepo, services *fakeServiceRepo) *DefaultScheduleService {
	if avail == nil {
		avail = &fakeAvailabilityRepo{}
	}
	if bookings == nil {
		bookings = &fakeBookingRepo{}
	}
	if services == nil {
		services = &fakeServiceRepo{}
	}
	return &DefaultScheduleService{
		Availability:       avail,
		Bookings:           bookings,
		Services:           services,
		DefaultDurationMin: 60,
	}
}

// localDate builds a server-local instant on the given date.
func localDate(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.Local)
}
