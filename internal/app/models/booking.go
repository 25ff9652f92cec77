package models

const (
	BookingStatusActive    = "active"
	BookingStatusCancelled = "cancelled"

	SlotStatusOpen   = "open"
	SlotStatusClosed = "closed"
	SlotStatusBooked = "booked"
)

type Booking struct {
	ID        string `bson:"_id,omitempty"`
	UserID    string `bson:"userId"`
	Date      string `bson:"date"`
	StartTime string `bson:"startTime"`
	EndTime   string `bson:"endTime"`
	Note      string `bson:"note,omitempty"`
	Status    string `bson:"status"`
	TimeModel `bson:",inline"`
}

// BookingSlot is one admin-managed calendar slot. Slots without a
// document are closed; the admin opens them through the toggle.
type BookingSlot struct {
	ID        string `bson:"_id,omitempty"`
	Date      string `bson:"date"`
	StartTime string `bson:"startTime"`
	Open      bool   `bson:"open"`
	TimeModel `bson:",inline"`
}
