package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"valoredash-service/internal/app/contracts"
	"valoredash-service/internal/app/models"
	"valoredash-service/internal/pkg/dto/requests"
)

type mockAgendaRepo struct{ mock.Mock }

func (m *mockAgendaRepo) FindAll(ctx context.Context) ([]models.Agenda, error) {
	args := m.Called(ctx)
	agendas, _ := args.Get(0).([]models.Agenda)
	return agendas, args.Error(1)
}

func (m *mockAgendaRepo) FindByID(ctx context.Context, agendaID string) (*models.Agenda, error) {
	args := m.Called(ctx, agendaID)
	agenda, _ := args.Get(0).(*models.Agenda)
	return agenda, args.Error(1)
}

func (m *mockAgendaRepo) Create(ctx context.Context, agenda *models.Agenda) (string, error) {
	args := m.Called(ctx, agenda)
	return args.String(0), args.Error(1)
}

func (m *mockAgendaRepo) Update(ctx context.Context, agenda *models.Agenda) error {
	return m.Called(ctx, agenda).Error(0)
}

func (m *mockAgendaRepo) Delete(ctx context.Context, agendaID string) error {
	return m.Called(ctx, agendaID).Error(0)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	args := m.Called(ctx, bookingID)
	booking, _ := args.Get(0).(*models.Booking)
	return booking, args.Error(1)
}

func (m *mockBookingRepo) FindActiveByAgendaIDAndDate(ctx context.Context, agendaID, date string) ([]models.Booking, error) {
	args := m.Called(ctx, agendaID, date)
	bookings, _ := args.Get(0).([]models.Booking)
	return bookings, args.Error(1)
}

func (m *mockBookingRepo) FindActiveByAgendaIDAndDateRange(ctx context.Context, agendaID, startDate, endDate string) ([]models.Booking, error) {
	args := m.Called(ctx, agendaID, startDate, endDate)
	bookings, _ := args.Get(0).([]models.Booking)
	return bookings, args.Error(1)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *models.Booking) (string, error) {
	args := m.Called(ctx, booking)
	return args.String(0), args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus) error {
	return m.Called(ctx, bookingID, status).Error(0)
}

type mockAvailabilityUsecase struct{ mock.Mock }

func (m *mockAvailabilityUsecase) GetDayAvailability(ctx context.Context, agendaID, date string) (*contracts.DayAvailability, error) {
	args := m.Called(ctx, agendaID, date)
	day, _ := args.Get(0).(*contracts.DayAvailability)
	return day, args.Error(1)
}

func (m *mockAvailabilityUsecase) InvalidateDay(ctx context.Context, agendaID, date string) {
	m.Called(ctx, agendaID, date)
}

func (m *mockAvailabilityUsecase) WarmAgendaWindow(ctx context.Context, agendaID string, days int) error {
	return m.Called(ctx, agendaID, days).Error(0)
}

type mockLocker struct{ mock.Mock }

func (m *mockLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *mockLocker) Unlock(ctx context.Context, key, lockValue string) error {
	return m.Called(ctx, key, lockValue).Error(0)
}

func (m *mockLocker) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	return m.Called(ctx, key, lockValue, expiration).Error(0)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, message contracts.BookingEventMessage) error {
	return m.Called(ctx, message).Error(0)
}

type bookingFixture struct {
	agendaRepo          *mockAgendaRepo
	bookingRepo         *mockBookingRepo
	availabilityUsecase *mockAvailabilityUsecase
	locker              *mockLocker
	publisher           *mockPublisher
	usecase             contracts.BookingUsecase
}

func newBookingFixture() *bookingFixture {
	f := &bookingFixture{
		agendaRepo:          new(mockAgendaRepo),
		bookingRepo:         new(mockBookingRepo),
		availabilityUsecase: new(mockAvailabilityUsecase),
		locker:              new(mockLocker),
		publisher:           new(mockPublisher),
	}
	f.usecase = NewBookingUsecase(
		f.agendaRepo,
		f.bookingRepo,
		f.availabilityUsecase,
		f.locker,
		f.publisher,
		zap.NewNop(),
		15*time.Second,
	)
	return f
}

func openDay(times ...contracts.Slot) *contracts.DayAvailability {
	return &contracts.DayAvailability{
		AgendaID: "agenda-1",
		Date:     "2026-08-31",
		Open:     true,
		Slots:    times,
	}
}

func TestCreateBookingHappyPath(t *testing.T) {
	f := newBookingFixture()

	f.agendaRepo.On("FindByID", mock.Anything, "agenda-1").Return(&models.Agenda{
		ID: "agenda-1", Name: "Consultation", DurationMinutes: 60, MaxParticipants: 1, Active: true,
	}, nil)
	f.locker.On("TryLock", mock.Anything, "booking:lock:day:agenda-1:2026-08-31", 15*time.Second).
		Return(true, "lock-token", nil)
	f.locker.On("Unlock", mock.Anything, "booking:lock:day:agenda-1:2026-08-31", "lock-token").Return(nil)
	f.availabilityUsecase.On("InvalidateDay", mock.Anything, "agenda-1", "2026-08-31").Return()
	f.availabilityUsecase.On("GetDayAvailability", mock.Anything, "agenda-1", "2026-08-31").
		Return(openDay(
			contracts.Slot{Time: "09:00", Available: true},
			contracts.Slot{Time: "10:00", Available: true},
		), nil)
	f.bookingRepo.On("Create", mock.Anything, mock.Anything).Return("booking-1", nil)
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	booking, err := f.usecase.CreateBooking(context.Background(), &requests.CreateBooking{
		AgendaID:  "agenda-1",
		Date:      "2026-08-31",
		StartTime: "10:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, "booking-1", booking.ID)
	assert.Equal(t, "10:00", booking.StartTime)
	assert.Equal(t, "11:00", booking.EndTime, "end time is start plus duration")
	assert.Equal(t, models.BookingStatusScheduled, booking.Status)
	f.locker.AssertCalled(t, "Unlock", mock.Anything, "booking:lock:day:agenda-1:2026-08-31", "lock-token")
	f.publisher.AssertCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreateBookingRejectsOccupiedSlot(t *testing.T) {
	f := newBookingFixture()

	f.agendaRepo.On("FindByID", mock.Anything, "agenda-1").Return(&models.Agenda{
		ID: "agenda-1", Name: "Consultation", DurationMinutes: 60, MaxParticipants: 1, Active: true,
	}, nil)
	f.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-token", nil)
	f.locker.On("Unlock", mock.Anything, mock.Anything, "lock-token").Return(nil)
	f.availabilityUsecase.On("InvalidateDay", mock.Anything, "agenda-1", "2026-08-31").Return()
	f.availabilityUsecase.On("GetDayAvailability", mock.Anything, "agenda-1", "2026-08-31").
		Return(openDay(contracts.Slot{Time: "10:00", Available: false, Reason: "time occupied"}), nil)

	_, err := f.usecase.CreateBooking(context.Background(), &requests.CreateBooking{
		AgendaID:  "agenda-1",
		Date:      "2026-08-31",
		StartTime: "10:00",
	})

	assert.Error(t, err)
	f.bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreateBookingRejectsOffGridStart(t *testing.T) {
	f := newBookingFixture()

	f.agendaRepo.On("FindByID", mock.Anything, "agenda-1").Return(&models.Agenda{
		ID: "agenda-1", Name: "Consultation", DurationMinutes: 60, MaxParticipants: 1, Active: true,
	}, nil)
	f.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-token", nil)
	f.locker.On("Unlock", mock.Anything, mock.Anything, "lock-token").Return(nil)
	f.availabilityUsecase.On("InvalidateDay", mock.Anything, "agenda-1", "2026-08-31").Return()
	f.availabilityUsecase.On("GetDayAvailability", mock.Anything, "agenda-1", "2026-08-31").
		Return(openDay(contracts.Slot{Time: "09:00", Available: true}), nil)

	_, err := f.usecase.CreateBooking(context.Background(), &requests.CreateBooking{
		AgendaID:  "agenda-1",
		Date:      "2026-08-31",
		StartTime: "09:17",
	})

	assert.Error(t, err, "start times must land on the slot grid")
	f.bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBookingWhenDayLocked(t *testing.T) {
	f := newBookingFixture()

	f.agendaRepo.On("FindByID", mock.Anything, "agenda-1").Return(&models.Agenda{
		ID: "agenda-1", Name: "Consultation", DurationMinutes: 60, MaxParticipants: 1, Active: true,
	}, nil)
	f.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(false, "", nil)

	_, err := f.usecase.CreateBooking(context.Background(), &requests.CreateBooking{
		AgendaID:  "agenda-1",
		Date:      "2026-08-31",
		StartTime: "10:00",
	})

	assert.Error(t, err)
	f.availabilityUsecase.AssertNotCalled(t, "GetDayAvailability", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelBooking(t *testing.T) {
	f := newBookingFixture()

	booking := &models.Booking{
		ID: "booking-1", AgendaID: "agenda-1", Date: "2026-08-31",
		StartTime: "10:00", EndTime: "11:00", Status: models.BookingStatusScheduled,
	}
	f.bookingRepo.On("FindByID", mock.Anything, "booking-1").Return(booking, nil)
	f.bookingRepo.On("UpdateStatus", mock.Anything, "booking-1", models.BookingStatusCancelled).Return(nil)
	f.availabilityUsecase.On("InvalidateDay", mock.Anything, "agenda-1", "2026-08-31").Return()
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	err := f.usecase.CancelBooking(context.Background(), "booking-1")

	assert.NoError(t, err)
	f.availabilityUsecase.AssertCalled(t, "InvalidateDay", mock.Anything, "agenda-1", "2026-08-31")
}

func TestCancelBookingAlreadyCancelled(t *testing.T) {
	f := newBookingFixture()

	booking := &models.Booking{
		ID: "booking-1", AgendaID: "agenda-1", Date: "2026-08-31",
		StartTime: "10:00", EndTime: "11:00", Status: models.BookingStatusCancelled,
	}
	f.bookingRepo.On("FindByID", mock.Anything, "booking-1").Return(booking, nil)

	err := f.usecase.CancelBooking(context.Background(), "booking-1")

	assert.Error(t, err)
	f.bookingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelBookingUnknown(t *testing.T) {
	f := newBookingFixture()
	f.bookingRepo.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

	err := f.usecase.CancelBooking(context.Background(), "ghost")

	assert.Error(t, err)
}
