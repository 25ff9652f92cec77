package bookings

import (
	"context"
	"errors"
	"testing"
	"vitaliv-service/internal/app/config"
	"vitaliv-service/internal/app/contracts"
	"vitaliv-service/internal/app/models"
	"vitaliv-service/internal/pkg/constvars"
	"vitaliv-service/internal/pkg/dto/requests"
	"vitaliv-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	args := m.Called(ctx, booking)
	return args.String(0), args.Error(1)
}

func (m *MockBookingRepository) FindBookingByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindActiveBookingBySlot(ctx context.Context, date, startTime string) (*models.Booking, error) {
	args := m.Called(ctx, date, startTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindActiveBookingsByDateRange(ctx context.Context, fromDate, toDate string) ([]models.Booking, error) {
	args := m.Called(ctx, fromDate, toDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateBooking(ctx context.Context, booking *models.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

type MockBookingSlotRepository struct {
	mock.Mock
}

func (m *MockBookingSlotRepository) FindSlot(ctx context.Context, date, startTime string) (*models.BookingSlot, error) {
	args := m.Called(ctx, date, startTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingSlot), args.Error(1)
}

func (m *MockBookingSlotRepository) FindSlotsByDateRange(ctx context.Context, fromDate, toDate string) ([]models.BookingSlot, error) {
	args := m.Called(ctx, fromDate, toDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookingSlot), args.Error(1)
}

func (m *MockBookingSlotRepository) UpsertSlot(ctx context.Context, slot *models.BookingSlot) error {
	args := m.Called(ctx, slot)
	return args.Error(0)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockBookingNotifier struct {
	mock.Mock
}

func (m *MockBookingNotifier) PublishBookingEvent(ctx context.Context, event *contracts.BookingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func newTestBookingUsecase(
	bookingRepository *MockBookingRepository,
	bookingSlotRepository *MockBookingSlotRepository,
	sessionService *MockSessionService,
	bookingNotifier *MockBookingNotifier,
) *bookingUsecase {
	return &bookingUsecase{
		BookingRepository:     bookingRepository,
		BookingSlotRepository: bookingSlotRepository,
		SessionService:        sessionService,
		BookingNotifier:       bookingNotifier,
		InternalConfig: &config.InternalConfig{
			Booking: config.AppBooking{
				NotificationQueue:     "booking-events-test",
				SlotDurationInMinutes: 60,
				DayStartHour:          9,
				DayEndHour:            17,
			},
		},
		Log: zap.NewNop(),
	}
}

func customerSessionData() (string, *models.Session) {
	session := &models.Session{
		SessionID: "session-id",
		UserID:    "customer-user-id",
		Username:  "testcustomer",
		Role:      constvars.RoleCustomer,
	}
	return "raw-session-data", session
}

func TestBookingUsecase_CreateBooking(t *testing.T) {
	sessionData, session := customerSessionData()

	request := &requests.CreateBooking{
		Date:      "2026-09-01",
		StartTime: "10:00",
	}

	t.Run("Open Free Slot Books and Publishes", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		slotRepo := new(MockBookingSlotRepository)
		sessionService := new(MockSessionService)
		notifier := new(MockBookingNotifier)
		uc := newTestBookingUsecase(bookingRepo, slotRepo, sessionService, notifier)

		sessionService.On("ParseSessionData", mock.Anything, sessionData).Return(session, nil)
		slotRepo.On("FindSlot", mock.Anything, "2026-09-01", "10:00").Return(&models.BookingSlot{
			Date:      "2026-09-01",
			StartTime: "10:00",
			Open:      true,
		}, nil)
		bookingRepo.On("FindActiveBookingBySlot", mock.Anything, "2026-09-01", "10:00").Return(nil, nil)
		bookingRepo.On("CreateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return("booking-id-1", nil)
		notifier.On("PublishBookingEvent", mock.Anything, mock.MatchedBy(func(event *contracts.BookingEvent) bool {
			return event.Type == contracts.BookingEventCreated && event.BookingID == "booking-id-1"
		})).Return(nil)

		result, err := uc.CreateBooking(context.Background(), sessionData, request)

		assert.NoError(t, err)
		assert.Equal(t, "booking-id-1", result.ID)
		assert.Equal(t, "11:00", result.EndTime)
		bookingRepo.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("Slot Without Document is Closed", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		slotRepo := new(MockBookingSlotRepository)
		sessionService := new(MockSessionService)
		notifier := new(MockBookingNotifier)
		uc := newTestBookingUsecase(bookingRepo, slotRepo, sessionService, notifier)

		sessionService.On("ParseSessionData", mock.Anything, sessionData).Return(session, nil)
		slotRepo.On("FindSlot", mock.Anything, "2026-09-01", "10:00").Return(nil, nil)

		result, err := uc.CreateBooking(context.Background(), sessionData, request)

		assert.Nil(t, result)
		assertCustomErrorStatus(t, err, constvars.StatusConflict)
		bookingRepo.AssertNotCalled(t, "CreateBooking")
	})

	t.Run("Slot Already Taken", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		slotRepo := new(MockBookingSlotRepository)
		sessionService := new(MockSessionService)
		notifier := new(MockBookingNotifier)
		uc := newTestBookingUsecase(bookingRepo, slotRepo, sessionService, notifier)

		sessionService.On("ParseSessionData", mock.Anything, sessionData).Return(session, nil)
		slotRepo.On("FindSlot", mock.Anything, "2026-09-01", "10:00").Return(&models.BookingSlot{
			Date:      "2026-09-01",
			StartTime: "10:00",
			Open:      true,
		}, nil)
		bookingRepo.On("FindActiveBookingBySlot", mock.Anything, "2026-09-01", "10:00").Return(&models.Booking{
			ID:     "existing-booking",
			Status: models.BookingStatusActive,
		}, nil)

		result, err := uc.CreateBooking(context.Background(), sessionData, request)

		assert.Nil(t, result)
		assertCustomErrorStatus(t, err, constvars.StatusConflict)
		bookingRepo.AssertNotCalled(t, "CreateBooking")
	})

	t.Run("Publish Failure Does Not Fail the Booking", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		slotRepo := new(MockBookingSlotRepository)
		sessionService := new(MockSessionService)
		notifier := new(MockBookingNotifier)
		uc := newTestBookingUsecase(bookingRepo, slotRepo, sessionService, notifier)

		sessionService.On("ParseSessionData", mock.Anything, sessionData).Return(session, nil)
		slotRepo.On("FindSlot", mock.Anything, "2026-09-01", "10:00").Return(&models.BookingSlot{
			Date:      "2026-09-01",
			StartTime: "10:00",
			Open:      true,
		}, nil)
		bookingRepo.On("FindActiveBookingBySlot", mock.Anything, "2026-09-01", "10:00").Return(nil, nil)
		bookingRepo.On("CreateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return("booking-id-2", nil)
		notifier.On("PublishBookingEvent", mock.Anything, mock.Anything).Return(errors.New("broker down"))

		result, err := uc.CreateBooking(context.Background(), sessionData, request)

		assert.NoError(t, err)
		assert.Equal(t, "booking-id-2", result.ID)
	})
}

func TestBookingUsecase_ToggleSlot(t *testing.T) {
	request := &requests.ToggleBookingSlot{
		Date:      "2026-09-01",
		StartTime: "10:00",
	}

	t.Run("Toggling a Missing Slot Opens It", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		slotRepo := new(MockBookingSlotRepository)
		sessionService := new(MockSessionService)
		notifier := new(MockBookingNotifier)
		uc := newTestBookingUsecase(bookingRepo, slotRepo, sessionService, notifier)

		slotRepo.On("FindSlot", mock.Anything, "2026-09-01", "10:00").Return(nil, nil)
		slotRepo.On("UpsertSlot", mock.Anything, mock.MatchedBy(func(slot *models.BookingSlot) bool {
			return slot.Open
		})).Return(nil)

		err := uc.ToggleSlot(context.Background(), request)

		assert.NoError(t, err)
		slotRepo.AssertExpectations(t)
	})

	t.Run("Toggling an Open Slot Closes It", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		slotRepo := new(MockBookingSlotRepository)
		sessionService := new(MockSessionService)
		notifier := new(MockBookingNotifier)
		uc := newTestBookingUsecase(bookingRepo, slotRepo, sessionService, notifier)

		slotRepo.On("FindSlot", mock.Anything, "2026-09-01", "10:00").Return(&models.BookingSlot{
			Date:      "2026-09-01",
			StartTime: "10:00",
			Open:      true,
		}, nil)
		bookingRepo.On("FindActiveBookingBySlot", mock.Anything, "2026-09-01", "10:00").Return(nil, nil)
		slotRepo.On("UpsertSlot", mock.Anything, mock.MatchedBy(func(slot *models.BookingSlot) bool {
			return !slot.Open
		})).Return(nil)

		err := uc.ToggleSlot(context.Background(), request)

		assert.NoError(t, err)
		slotRepo.AssertExpectations(t)
	})

	t.Run("Closing a Booked Slot is Rejected", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		slotRepo := new(MockBookingSlotRepository)
		sessionService := new(MockSessionService)
		notifier := new(MockBookingNotifier)
		uc := newTestBookingUsecase(bookingRepo, slotRepo, sessionService, notifier)

		slotRepo.On("FindSlot", mock.Anything, "2026-09-01", "10:00").Return(&models.BookingSlot{
			Date:      "2026-09-01",
			StartTime: "10:00",
			Open:      true,
		}, nil)
		bookingRepo.On("FindActiveBookingBySlot", mock.Anything, "2026-09-01", "10:00").Return(&models.Booking{
			ID:     "booking-id-1",
			Status: models.BookingStatusActive,
		}, nil)

		err := uc.ToggleSlot(context.Background(), request)

		assertCustomErrorStatus(t, err, constvars.StatusConflict)
		slotRepo.AssertNotCalled(t, "UpsertSlot")
	})

	t.Run("Slot Outside Working Hours is Rejected", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		slotRepo := new(MockBookingSlotRepository)
		sessionService := new(MockSessionService)
		notifier := new(MockBookingNotifier)
		uc := newTestBookingUsecase(bookingRepo, slotRepo, sessionService, notifier)

		err := uc.ToggleSlot(context.Background(), &requests.ToggleBookingSlot{
			Date:      "2026-09-01",
			StartTime: "23:00",
		})

		assertCustomErrorStatus(t, err, constvars.StatusBadRequest)
		slotRepo.AssertNotCalled(t, "FindSlot")
		slotRepo.AssertNotCalled(t, "UpsertSlot")
	})

	t.Run("Slot at Closing Time is Rejected", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		slotRepo := new(MockBookingSlotRepository)
		sessionService := new(MockSessionService)
		notifier := new(MockBookingNotifier)
		uc := newTestBookingUsecase(bookingRepo, slotRepo, sessionService, notifier)

		err := uc.ToggleSlot(context.Background(), &requests.ToggleBookingSlot{
			Date:      "2026-09-01",
			StartTime: "17:00",
		})

		assertCustomErrorStatus(t, err, constvars.StatusBadRequest)
		slotRepo.AssertNotCalled(t, "UpsertSlot")
	})
}

func TestBookingUsecase_CancelBooking(t *testing.T) {
	sessionData, session := customerSessionData()

	t.Run("Owner Cancels and Event is Published", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		slotRepo := new(MockBookingSlotRepository)
		sessionService := new(MockSessionService)
		notifier := new(MockBookingNotifier)
		uc := newTestBookingUsecase(bookingRepo, slotRepo, sessionService, notifier)

		sessionService.On("ParseSessionData", mock.Anything, sessionData).Return(session, nil)
		bookingRepo.On("FindBookingByID", mock.Anything, "booking-id-1").Return(&models.Booking{
			ID:        "booking-id-1",
			UserID:    session.UserID,
			Date:      "2026-09-01",
			StartTime: "10:00",
			Status:    models.BookingStatusActive,
		}, nil)
		bookingRepo.On("UpdateBooking", mock.Anything, mock.MatchedBy(func(booking *models.Booking) bool {
			return booking.Status == models.BookingStatusCancelled
		})).Return(nil)
		notifier.On("PublishBookingEvent", mock.Anything, mock.MatchedBy(func(event *contracts.BookingEvent) bool {
			return event.Type == contracts.BookingEventCancelled
		})).Return(nil)

		err := uc.CancelBooking(context.Background(), sessionData, "booking-id-1")

		assert.NoError(t, err)
		bookingRepo.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("Stranger Cannot Cancel", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		slotRepo := new(MockBookingSlotRepository)
		sessionService := new(MockSessionService)
		notifier := new(MockBookingNotifier)
		uc := newTestBookingUsecase(bookingRepo, slotRepo, sessionService, notifier)

		sessionService.On("ParseSessionData", mock.Anything, sessionData).Return(session, nil)
		bookingRepo.On("FindBookingByID", mock.Anything, "booking-id-1").Return(&models.Booking{
			ID:     "booking-id-1",
			UserID: "someone-else",
			Status: models.BookingStatusActive,
		}, nil)

		err := uc.CancelBooking(context.Background(), sessionData, "booking-id-1")

		assertCustomErrorStatus(t, err, constvars.StatusForbidden)
		bookingRepo.AssertNotCalled(t, "UpdateBooking")
	})

	t.Run("Admin Cancels Any Booking", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		slotRepo := new(MockBookingSlotRepository)
		sessionService := new(MockSessionService)
		notifier := new(MockBookingNotifier)
		uc := newTestBookingUsecase(bookingRepo, slotRepo, sessionService, notifier)

		adminSession := &models.Session{
			SessionID: "admin-session",
			UserID:    "admin-user-id",
			Role:      constvars.RoleAdmin,
		}
		sessionService.On("ParseSessionData", mock.Anything, "admin-session-data").Return(adminSession, nil)
		bookingRepo.On("FindBookingByID", mock.Anything, "booking-id-1").Return(&models.Booking{
			ID:     "booking-id-1",
			UserID: "someone-else",
			Status: models.BookingStatusActive,
		}, nil)
		bookingRepo.On("UpdateBooking", mock.Anything, mock.Anything).Return(nil)
		notifier.On("PublishBookingEvent", mock.Anything, mock.Anything).Return(nil)

		err := uc.CancelBooking(context.Background(), "admin-session-data", "booking-id-1")

		assert.NoError(t, err)
		bookingRepo.AssertExpectations(t)
	})

	t.Run("Cancelled Booking is Treated as Missing", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		slotRepo := new(MockBookingSlotRepository)
		sessionService := new(MockSessionService)
		notifier := new(MockBookingNotifier)
		uc := newTestBookingUsecase(bookingRepo, slotRepo, sessionService, notifier)

		sessionService.On("ParseSessionData", mock.Anything, sessionData).Return(session, nil)
		bookingRepo.On("FindBookingByID", mock.Anything, "booking-id-1").Return(&models.Booking{
			ID:     "booking-id-1",
			UserID: session.UserID,
			Status: models.BookingStatusCancelled,
		}, nil)

		err := uc.CancelBooking(context.Background(), sessionData, "booking-id-1")

		assertCustomErrorStatus(t, err, constvars.StatusNotFound)
		bookingRepo.AssertNotCalled(t, "UpdateBooking")
	})
}

func TestBookingUsecase_GetWeek(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	slotRepo := new(MockBookingSlotRepository)
	sessionService := new(MockSessionService)
	notifier := new(MockBookingNotifier)
	uc := newTestBookingUsecase(bookingRepo, slotRepo, sessionService, notifier)

	// 2026-09-02 is a Wednesday; the week starts Monday 2026-08-31.
	slotRepo.On("FindSlotsByDateRange", mock.Anything, "2026-08-31", "2026-09-06").Return([]models.BookingSlot{
		{Date: "2026-09-01", StartTime: "10:00", Open: true},
		{Date: "2026-09-01", StartTime: "11:00", Open: true},
	}, nil)
	bookingRepo.On("FindActiveBookingsByDateRange", mock.Anything, "2026-08-31", "2026-09-06").Return([]models.Booking{
		{Date: "2026-09-01", StartTime: "11:00", Status: models.BookingStatusActive},
	}, nil)

	week, err := uc.GetWeek(context.Background(), "2026-09-02")

	assert.NoError(t, err)
	assert.Equal(t, "2026-08-31", week.WeekStart)
	assert.Len(t, week.Days, 7)
	// 9:00 through 16:00 at 60 minute granularity.
	assert.Len(t, week.Days[0].Slots, 8)

	tuesday := week.Days[1]
	assert.Equal(t, "2026-09-01", tuesday.Date)

	statusByStart := make(map[string]string)
	for _, slot := range tuesday.Slots {
		statusByStart[slot.StartTime] = slot.Status
	}
	assert.Equal(t, models.SlotStatusOpen, statusByStart["10:00"])
	assert.Equal(t, models.SlotStatusBooked, statusByStart["11:00"])
	assert.Equal(t, models.SlotStatusClosed, statusByStart["09:00"])
}

func assertCustomErrorStatus(t *testing.T, err error, expectedStatus int) {
	t.Helper()
	var customErr *exceptions.CustomError
	assert.Error(t, err)
	if assert.ErrorAs(t, err, &customErr) {
		assert.Equal(t, expectedStatus, customErr.StatusCode)
	}
}
