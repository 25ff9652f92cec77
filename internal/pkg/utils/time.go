package utils

import "time"

// WeekStart returns midnight of the Monday of the week containing t,
// in t's location.
func WeekStart(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	day := t.AddDate(0, 0, -(weekday - 1))
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, t.Location())
}

func IsTimeWithinRange(requestedTime, startTime, endTime string) bool {
	requested, _ := time.Parse("15:04", requestedTime)
	start, _ := time.Parse("15:04", startTime)
	end, _ := time.Parse("15:04", endTime)

	return requested.Equal(start) || (requested.After(start) && requested.Before(end))
}

func CalculateSlotEndTime(startTime string, durationInMinutes int) string {
	start, _ := time.Parse("15:04", startTime)
	end := start.Add(time.Duration(durationInMinutes) * time.Minute)
	return end.Format("15:04")
}
