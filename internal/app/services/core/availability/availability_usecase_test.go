package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"valoredash-service/internal/app/contracts"
	"valoredash-service/internal/app/models"
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

type mockOperatingHourRepo struct{ mock.Mock }

func (m *mockOperatingHourRepo) FindByAgendaID(ctx context.Context, agendaID string) ([]models.OperatingHourRule, error) {
	args := m.Called(ctx, agendaID)
	rules, _ := args.Get(0).([]models.OperatingHourRule)
	return rules, args.Error(1)
}

func (m *mockOperatingHourRepo) Create(ctx context.Context, rule *models.OperatingHourRule) (string, error) {
	args := m.Called(ctx, rule)
	return args.String(0), args.Error(1)
}

func (m *mockOperatingHourRepo) Update(ctx context.Context, rule *models.OperatingHourRule) error {
	return m.Called(ctx, rule).Error(0)
}

func (m *mockOperatingHourRepo) Delete(ctx context.Context, ruleID string) error {
	return m.Called(ctx, ruleID).Error(0)
}

type mockDateExceptionRepo struct{ mock.Mock }

func (m *mockDateExceptionRepo) FindByAgendaID(ctx context.Context, agendaID string) ([]models.DateException, error) {
	args := m.Called(ctx, agendaID)
	exceptionList, _ := args.Get(0).([]models.DateException)
	return exceptionList, args.Error(1)
}

func (m *mockDateExceptionRepo) FindByAgendaIDAndDate(ctx context.Context, agendaID, date string) (*models.DateException, error) {
	args := m.Called(ctx, agendaID, date)
	exception, _ := args.Get(0).(*models.DateException)
	return exception, args.Error(1)
}

func (m *mockDateExceptionRepo) Create(ctx context.Context, exception *models.DateException) (string, error) {
	args := m.Called(ctx, exception)
	return args.String(0), args.Error(1)
}

func (m *mockDateExceptionRepo) Update(ctx context.Context, exception *models.DateException) error {
	return m.Called(ctx, exception).Error(0)
}

func (m *mockDateExceptionRepo) Delete(ctx context.Context, exceptionID string) error {
	return m.Called(ctx, exceptionID).Error(0)
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

type mockCache struct{ mock.Mock }

func (m *mockCache) Get(ctx context.Context, key string, target interface{}) (bool, error) {
	args := m.Called(ctx, key, target)
	return args.Bool(0), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *mockCache) Invalidate(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type usecaseFixture struct {
	agendaRepo        *mockAgendaRepo
	operatingHourRepo *mockOperatingHourRepo
	dateExceptionRepo *mockDateExceptionRepo
	bookingRepo       *mockBookingRepo
	cache             *mockCache
	usecase           contracts.AvailabilityUsecase
}

func newUsecaseFixture() *usecaseFixture {
	f := &usecaseFixture{
		agendaRepo:        new(mockAgendaRepo),
		operatingHourRepo: new(mockOperatingHourRepo),
		dateExceptionRepo: new(mockDateExceptionRepo),
		bookingRepo:       new(mockBookingRepo),
		cache:             new(mockCache),
	}
	f.usecase = NewAvailabilityUsecase(
		f.agendaRepo,
		f.operatingHourRepo,
		f.dateExceptionRepo,
		f.bookingRepo,
		f.cache,
		zap.NewNop(),
		time.Minute,
	)
	return f
}

func TestGetDayAvailabilityComputesAndCaches(t *testing.T) {
	f := newUsecaseFixture()
	agenda := testAgenda(60, 0, 1)

	f.agendaRepo.On("FindByID", mock.Anything, "agenda-1").Return(agenda, nil)
	f.cache.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	f.operatingHourRepo.On("FindByAgendaID", mock.Anything, "agenda-1").
		Return([]models.OperatingHourRule{mondayRule("09:00", "11:00", true)}, nil)
	f.dateExceptionRepo.On("FindByAgendaIDAndDate", mock.Anything, "agenda-1", mondayDate).Return(nil, nil)
	f.bookingRepo.On("FindActiveByAgendaIDAndDate", mock.Anything, "agenda-1", mondayDate).
		Return([]models.Booking{{StartTime: "09:00", EndTime: "10:00", Status: models.BookingStatusScheduled}}, nil)
	f.cache.On("Set", mock.Anything, mock.Anything, mock.Anything, time.Minute).Return(nil)

	day, err := f.usecase.GetDayAvailability(context.Background(), "agenda-1", mondayDate)

	assert.NoError(t, err)
	assert.True(t, day.Open)
	assert.Equal(t, []string{"09:00", "10:00"}, slotTimes(day.Slots))
	assert.False(t, day.Slots[0].Available)
	assert.True(t, day.Slots[1].Available)
	f.cache.AssertCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, time.Minute)
}

func TestGetDayAvailabilityCacheHitSkipsStore(t *testing.T) {
	f := newUsecaseFixture()
	agenda := testAgenda(60, 0, 1)

	cached := contracts.DayAvailability{
		AgendaID: "agenda-1",
		Date:     mondayDate,
		Open:     true,
		Slots:    []contracts.Slot{{Time: "09:00", Available: true}},
	}

	f.agendaRepo.On("FindByID", mock.Anything, "agenda-1").Return(agenda, nil)
	f.cache.On("Get", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			target := args.Get(2).(*contracts.DayAvailability)
			*target = cached
		}).
		Return(true, nil)

	day, err := f.usecase.GetDayAvailability(context.Background(), "agenda-1", mondayDate)

	assert.NoError(t, err)
	assert.Equal(t, &cached, day)
	f.operatingHourRepo.AssertNotCalled(t, "FindByAgendaID", mock.Anything, mock.Anything)
	f.bookingRepo.AssertNotCalled(t, "FindActiveByAgendaIDAndDate", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetDayAvailabilityDegradesOnStoreFailure(t *testing.T) {
	f := newUsecaseFixture()
	agenda := testAgenda(60, 0, 1)

	f.agendaRepo.On("FindByID", mock.Anything, "agenda-1").Return(agenda, nil)
	f.cache.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	f.operatingHourRepo.On("FindByAgendaID", mock.Anything, "agenda-1").
		Return(nil, errors.New("mongo timeout"))
	f.dateExceptionRepo.On("FindByAgendaIDAndDate", mock.Anything, "agenda-1", mondayDate).Return(nil, nil)
	f.bookingRepo.On("FindActiveByAgendaIDAndDate", mock.Anything, "agenda-1", mondayDate).Return(nil, nil)

	day, err := f.usecase.GetDayAvailability(context.Background(), "agenda-1", mondayDate)

	assert.NoError(t, err, "store failures degrade instead of erroring")
	assert.False(t, day.Open)
	assert.Equal(t, ReasonLoadFailed, day.Reason)
	assert.Empty(t, day.Slots)
	f.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetDayAvailabilityUnknownAgenda(t *testing.T) {
	f := newUsecaseFixture()

	f.agendaRepo.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

	day, err := f.usecase.GetDayAvailability(context.Background(), "ghost", mondayDate)

	assert.Error(t, err)
	assert.Nil(t, day)
}

func TestGetDayAvailabilityInactiveAgenda(t *testing.T) {
	f := newUsecaseFixture()
	agenda := testAgenda(60, 0, 1)
	agenda.Active = false

	f.agendaRepo.On("FindByID", mock.Anything, "agenda-1").Return(agenda, nil)

	day, err := f.usecase.GetDayAvailability(context.Background(), "agenda-1", mondayDate)

	assert.NoError(t, err)
	assert.False(t, day.Open)
	assert.Equal(t, ReasonAgendaInactive, day.Reason)
	f.cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetDayAvailabilityRejectsBadDate(t *testing.T) {
	f := newUsecaseFixture()

	day, err := f.usecase.GetDayAvailability(context.Background(), "agenda-1", "not-a-date")

	assert.Error(t, err)
	assert.Nil(t, day)
}

func TestInvalidateDay(t *testing.T) {
	f := newUsecaseFixture()
	f.cache.On("Invalidate", mock.Anything, "availability:day:agenda-1:"+mondayDate).Return(nil)

	f.usecase.InvalidateDay(context.Background(), "agenda-1", mondayDate)

	f.cache.AssertExpectations(t)
}
