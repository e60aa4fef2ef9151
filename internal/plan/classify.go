package plan

import (
	"time"

	"github.com/ShreyasBadgujar/hotel-booking/internal/model"
)

// Classification splits a day's bookings into housekeeping-relevant groups.
// The three predicates are evaluated independently: a booking that checks in
// and out on the same day appears in both Checkins and Checkouts.
type Classification struct {
	Checkouts []model.Booking
	Checkins  []model.Booking
	Stayovers []model.Booking
}

// ClassifyDay buckets bookings against one calendar day. The day spans
// [dayStart, dayStart+24h): a checkout or checkin counts when its timestamp
// falls inside the day; a stayover is a booking that strictly spans the day
// without starting or ending on it. Callers filter cancelled bookings first.
func ClassifyDay(day time.Time, bookings []model.Booking) Classification {
	dayStart := midnight(day)
	dayEnd := dayStart.Add(24 * time.Hour)

	var c Classification
	for _, b := range bookings {
		if within(b.CheckOutDate, dayStart, dayEnd) {
			c.Checkouts = append(c.Checkouts, b)
		}
		if within(b.CheckInDate, dayStart, dayEnd) {
			c.Checkins = append(c.Checkins, b)
		}
		if b.CheckInDate.Before(dayStart) && !b.CheckOutDate.Before(dayEnd) {
			c.Stayovers = append(c.Stayovers, b)
		}
	}
	return c
}

// within reports t in [start, end).
func within(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
