package domain

import "time"

// DefaultSlots is the bookable schedule on a weekday with no override.
var DefaultSlots = []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"}

// AvailabilityRecord overrides the default schedule for a single date.
// An override with no slots makes the date unavailable.
type AvailabilityRecord struct {
	Date  string   `json:"date" bson:"_id"` // YYYY-MM-DD
	Slots []string `json:"slots" bson:"slots"`
}

// DayAvailability is the answer to "can this date be booked, and when".
type DayAvailability struct {
	Available bool     `json:"available"`
	Slots     []string `json:"slots"`
}

// Availability resolves the bookable slots for date given an optional
// override. Without an override, weekdays get the default slots and weekends
// none. "No slots available" is a normal result, not an error.
func Availability(date string, override *AvailabilityRecord) DayAvailability {
	if override != nil {
		return DayAvailability{Available: len(override.Slots) > 0, Slots: override.Slots}
	}
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return DayAvailability{Available: false, Slots: []string{}}
	}
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return DayAvailability{Available: false, Slots: []string{}}
	}
	return DayAvailability{Available: true, Slots: DefaultSlots}
}
