package bookings

import (
	"context"
	"sync"
	"time"
	"vitaliv-service/internal/app/config"
	"vitaliv-service/internal/app/contracts"
	"vitaliv-service/internal/app/models"
	"vitaliv-service/internal/pkg/constvars"
	"vitaliv-service/internal/pkg/dto/requests"
	"vitaliv-service/internal/pkg/dto/responses"
	"vitaliv-service/internal/pkg/exceptions"
	"vitaliv-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	BookingRepository     contracts.BookingRepository
	BookingSlotRepository contracts.BookingSlotRepository
	SessionService        contracts.SessionService
	BookingNotifier       contracts.BookingNotifier
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

func NewBookingUsecase(
	bookingRepository contracts.BookingRepository,
	bookingSlotRepository contracts.BookingSlotRepository,
	sessionService contracts.SessionService,
	bookingNotifier contracts.BookingNotifier,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		instance := &bookingUsecase{
			BookingRepository:     bookingRepository,
			BookingSlotRepository: bookingSlotRepository,
			SessionService:        sessionService,
			BookingNotifier:       bookingNotifier,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
		bookingUsecaseInstance = instance
	})
	return bookingUsecaseInstance
}

func (uc *bookingUsecase) GetWeek(ctx context.Context, weekStart string) (*responses.BookingWeek, error) {
	var startDay time.Time
	if weekStart == "" {
		startDay = utils.WeekStart(time.Now())
	} else {
		parsed, err := time.Parse(constvars.DateOnlyFormat, weekStart)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		startDay = utils.WeekStart(parsed)
	}
	endDay := startDay.AddDate(0, 0, 6)

	fromDate := startDay.Format(constvars.DateOnlyFormat)
	toDate := endDay.Format(constvars.DateOnlyFormat)

	slots, err := uc.BookingSlotRepository.FindSlotsByDateRange(ctx, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	bookings, err := uc.BookingRepository.FindActiveBookingsByDateRange(ctx, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	openSlots := make(map[string]bool, len(slots))
	for _, slot := range slots {
		openSlots[slotKey(slot.Date, slot.StartTime)] = slot.Open
	}
	bookedSlots := make(map[string]bool, len(bookings))
	for _, booking := range bookings {
		bookedSlots[slotKey(booking.Date, booking.StartTime)] = true
	}

	week := &responses.BookingWeek{
		WeekStart: fromDate,
		Days:      make([]responses.BookingDay, 0, 7),
	}
	for dayOffset := 0; dayOffset < 7; dayOffset++ {
		day := startDay.AddDate(0, 0, dayOffset)
		date := day.Format(constvars.DateOnlyFormat)

		bookingDay := responses.BookingDay{Date: date}
		for _, startTime := range uc.slotStartTimes() {
			status := models.SlotStatusClosed
			if bookedSlots[slotKey(date, startTime)] {
				status = models.SlotStatusBooked
			} else if openSlots[slotKey(date, startTime)] {
				status = models.SlotStatusOpen
			}
			bookingDay.Slots = append(bookingDay.Slots, responses.BookingSlot{
				StartTime: startTime,
				EndTime:   utils.CalculateSlotEndTime(startTime, uc.InternalConfig.Booking.SlotDurationInMinutes),
				Status:    status,
			})
		}
		week.Days = append(week.Days, bookingDay)
	}

	return week, nil
}

func (uc *bookingUsecase) ToggleSlot(ctx context.Context, request *requests.ToggleBookingSlot) error {
	dayStart := time.Date(0, 1, 1, uc.InternalConfig.Booking.DayStartHour, 0, 0, 0, time.UTC).Format(constvars.SlotTimeFormat)
	dayEnd := time.Date(0, 1, 1, uc.InternalConfig.Booking.DayEndHour, 0, 0, 0, time.UTC).Format(constvars.SlotTimeFormat)
	if !utils.IsTimeWithinRange(request.StartTime, dayStart, dayEnd) {
		return exceptions.ErrBookingTimeOutsideHours(nil)
	}

	slot, err := uc.BookingSlotRepository.FindSlot(ctx, request.Date, request.StartTime)
	if err != nil {
		return err
	}

	open := true
	if slot != nil {
		open = !slot.Open
	}

	if !open {
		// Closing a slot that still holds an active booking is rejected.
		activeBooking, err := uc.BookingRepository.FindActiveBookingBySlot(ctx, request.Date, request.StartTime)
		if err != nil {
			return err
		}
		if activeBooking != nil {
			return exceptions.ErrBookingSlotStillBooked(nil)
		}
	}

	now := time.Now()
	return uc.BookingSlotRepository.UpsertSlot(ctx, &models.BookingSlot{
		Date:      request.Date,
		StartTime: request.StartTime,
		Open:      open,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	})
}

func (uc *bookingUsecase) CreateBooking(ctx context.Context, sessionData string, request *requests.CreateBooking) (*responses.Booking, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	slot, err := uc.BookingSlotRepository.FindSlot(ctx, request.Date, request.StartTime)
	if err != nil {
		return nil, err
	}
	if slot == nil || !slot.Open {
		return nil, exceptions.ErrBookingSlotUnavailable(nil)
	}

	existingBooking, err := uc.BookingRepository.FindActiveBookingBySlot(ctx, request.Date, request.StartTime)
	if err != nil {
		return nil, err
	}
	if existingBooking != nil {
		return nil, exceptions.ErrBookingSlotUnavailable(nil)
	}

	now := time.Now()
	booking := &models.Booking{
		UserID:    session.UserID,
		Date:      request.Date,
		StartTime: request.StartTime,
		EndTime:   utils.CalculateSlotEndTime(request.StartTime, uc.InternalConfig.Booking.SlotDurationInMinutes),
		Note:      request.Note,
		Status:    models.BookingStatusActive,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	bookingID, err := uc.BookingRepository.CreateBooking(ctx, booking)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, contracts.BookingEventCreated, bookingID, session.UserID, request.Date, request.StartTime)

	return &responses.Booking{
		ID:        bookingID,
		Date:      booking.Date,
		StartTime: booking.StartTime,
		EndTime:   booking.EndTime,
		Note:      booking.Note,
		CreatedAt: now.Format(time.RFC3339),
	}, nil
}

func (uc *bookingUsecase) CancelBooking(ctx context.Context, sessionData, bookingID string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	booking, err := uc.BookingRepository.FindBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking == nil || booking.Status != models.BookingStatusActive {
		return exceptions.ErrBookingNotFound(nil)
	}
	if booking.UserID != session.UserID && session.Role != constvars.RoleAdmin {
		return exceptions.ErrBookingNotOwned(nil)
	}

	booking.Status = models.BookingStatusCancelled
	booking.UpdatedAt = time.Now()
	if err := uc.BookingRepository.UpdateBooking(ctx, booking); err != nil {
		return err
	}

	uc.publishEvent(ctx, contracts.BookingEventCancelled, booking.ID, booking.UserID, booking.Date, booking.StartTime)
	return nil
}

// publishEvent must not fail the booking itself; a broker outage is
// logged and the event is lost.
func (uc *bookingUsecase) publishEvent(ctx context.Context, eventType, bookingID, userID, date, startTime string) {
	err := uc.BookingNotifier.PublishBookingEvent(ctx, &contracts.BookingEvent{
		Type:      eventType,
		BookingID: bookingID,
		UserID:    userID,
		Date:      date,
		StartTime: startTime,
	})
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Error("BookingUsecase: failed to publish booking event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

func (uc *bookingUsecase) slotStartTimes() []string {
	duration := time.Duration(uc.InternalConfig.Booking.SlotDurationInMinutes) * time.Minute
	dayStart := time.Date(0, 1, 1, uc.InternalConfig.Booking.DayStartHour, 0, 0, 0, time.UTC)
	dayEnd := time.Date(0, 1, 1, uc.InternalConfig.Booking.DayEndHour, 0, 0, 0, time.UTC)

	startTimes := []string{}
	for slotStart := dayStart; slotStart.Before(dayEnd); slotStart = slotStart.Add(duration) {
		startTimes = append(startTimes, slotStart.Format(constvars.SlotTimeFormat))
	}
	return startTimes
}

func slotKey(date, startTime string) string {
	return date + " " + startTime
}
