package cancel_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	costlogRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/costlog"
)

// Фейки зависимостей use case

type fakeBookingRepo struct {
	booking    *domain.Booking
	getErr     error
	deletedIDs []int64
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) DeleteByID(_ context.Context, id int64) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

type fakeCostLogRepo struct {
	deletedTitles []string
	deleteErr     error
}

func (f *fakeCostLogRepo) DeleteByTitle(_ context.Context, title string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedTitles = append(f.deletedTitles, title)
	return nil
}

type fakeParticipantRepo struct {
	deletedTitles []string
}

func (f *fakeParticipantRepo) DeleteByTitle(_ context.Context, title string) error {
	f.deletedTitles = append(f.deletedTitles, title)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time { return f.now }

type warnCountLogger struct {
	warns int
}

func (l *warnCountLogger) Info(string, ...interface{})  {}
func (l *warnCountLogger) Warn(string, ...interface{})  { l.warns++ }
func (l *warnCountLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC)

func futureBooking() *domain.Booking {
	return &domain.Booking{
		ID:        5,
		Title:     "Sprint review",
		RoomID:    2,
		Date:      time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		StartHour: 9,
		EndHour:   11,
	}
}

func newTestUseCase(
	bRepo *fakeBookingRepo,
	cRepo *fakeCostLogRepo,
	pRepo *fakeParticipantRepo,
	log Logger,
) *UseCase {
	uc := NewUseCase(bRepo, cRepo, pRepo, fakeTxManager{}, log)
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

func TestExecute_Success(t *testing.T) {
	bRepo := &fakeBookingRepo{booking: futureBooking()}
	cRepo := &fakeCostLogRepo{}
	pRepo := &fakeParticipantRepo{}
	uc := newTestUseCase(bRepo, cRepo, pRepo, &warnCountLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 5})
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "Sprint review", resp.Title)

	// Участники, cost log и бронирование удалены вместе
	assert.Equal(t, []string{"Sprint review"}, pRepo.deletedTitles)
	assert.Equal(t, []string{"Sprint review"}, cRepo.deletedTitles)
	assert.Equal(t, []int64{5}, bRepo.deletedIDs)
}

func TestExecute_NotFound(t *testing.T) {
	bRepo := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	uc := newTestUseCase(bRepo, &fakeCostLogRepo{}, &fakeParticipantRepo{}, &warnCountLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 5})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_OnlyFutureBookingsCanBeCancelled(t *testing.T) {
	t.Run("today is rejected", func(t *testing.T) {
		booking := futureBooking()
		booking.Date = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
		bRepo := &fakeBookingRepo{booking: booking}
		uc := newTestUseCase(bRepo, &fakeCostLogRepo{}, &fakeParticipantRepo{}, &warnCountLogger{})

		_, err := uc.Execute(context.Background(), &Request{BookingID: 5})
		assert.ErrorIs(t, err, ErrBookingNotFuture)
		assert.Empty(t, bRepo.deletedIDs)
	})

	t.Run("past is rejected", func(t *testing.T) {
		booking := futureBooking()
		booking.Date = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		bRepo := &fakeBookingRepo{booking: booking}
		uc := newTestUseCase(bRepo, &fakeCostLogRepo{}, &fakeParticipantRepo{}, &warnCountLogger{})

		_, err := uc.Execute(context.Background(), &Request{BookingID: 5})
		assert.ErrorIs(t, err, ErrBookingNotFuture)
	})

	t.Run("tomorrow is allowed", func(t *testing.T) {
		bRepo := &fakeBookingRepo{booking: futureBooking()}
		uc := newTestUseCase(bRepo, &fakeCostLogRepo{}, &fakeParticipantRepo{}, &warnCountLogger{})

		_, err := uc.Execute(context.Background(), &Request{BookingID: 5})
		assert.NoError(t, err)
	})
}

func TestExecute_MissingCostLogIsWarningNotFailure(t *testing.T) {
	bRepo := &fakeBookingRepo{booking: futureBooking()}
	cRepo := &fakeCostLogRepo{deleteErr: costlogRepo.ErrCostLogNotFound}
	log := &warnCountLogger{}
	uc := newTestUseCase(bRepo, cRepo, &fakeParticipantRepo{}, log)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 5})
	require.NoError(t, err)

	// Отмена прошла, нарушение целостности залогировано
	assert.Equal(t, []int64{5}, bRepo.deletedIDs)
	assert.Equal(t, 1, log.warns)
}

func TestExecute_InvalidID(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCostLogRepo{}, &fakeParticipantRepo{}, &warnCountLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
