package contracts

import (
	"context"
	"vitaliv-service/internal/app/models"
	"vitaliv-service/internal/pkg/dto/requests"
	"vitaliv-service/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	GetWeek(ctx context.Context, weekStart string) (*responses.BookingWeek, error)
	ToggleSlot(ctx context.Context, request *requests.ToggleBookingSlot) error
	CreateBooking(ctx context.Context, sessionData string, request *requests.CreateBooking) (*responses.Booking, error)
	CancelBooking(ctx context.Context, sessionData, bookingID string) error
}

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *models.Booking) (bookingID string, err error)
	FindBookingByID(ctx context.Context, bookingID string) (*models.Booking, error)
	FindActiveBookingBySlot(ctx context.Context, date, startTime string) (*models.Booking, error)
	FindActiveBookingsByDateRange(ctx context.Context, fromDate, toDate string) ([]models.Booking, error)
	UpdateBooking(ctx context.Context, booking *models.Booking) error
}

type BookingSlotRepository interface {
	FindSlot(ctx context.Context, date, startTime string) (*models.BookingSlot, error)
	FindSlotsByDateRange(ctx context.Context, fromDate, toDate string) ([]models.BookingSlot, error)
	UpsertSlot(ctx context.Context, slot *models.BookingSlot) error
}
