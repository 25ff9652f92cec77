package responses

type BookingWeek struct {
	WeekStart string       `json:"week_start"`
	Days      []BookingDay `json:"days"`
}

type BookingDay struct {
	Date  string        `json:"date"`
	Slots []BookingSlot `json:"slots"`
}

type BookingSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
}

type Booking struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Note      string `json:"note,omitempty"`
	CreatedAt string `json:"created_at"`
}
