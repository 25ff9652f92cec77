package contracts

import "context"

const (
	BookingEventCreated   = "booking.created"
	BookingEventCancelled = "booking.cancelled"
)

type BookingEvent struct {
	Type      string `json:"type"`
	BookingID string `json:"booking_id"`
	UserID    string `json:"user_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
}

type BookingNotifier interface {
	PublishBookingEvent(ctx context.Context, event *BookingEvent) error
}
