package plan

import (
	"time"

	"github.com/ShreyasBadgujar/hotel-booking/internal/model"
)

// Days outside [MinPlanDays, MaxPlanDays] are clamped, not rejected.
const (
	MinPlanDays = 1
	MaxPlanDays = 31
)

// Task is one housekeeping action tied to a booking. RoomType is resolved
// from the room records and omitted when the room is unknown.
type Task struct {
	BookingID string `json:"bookingId"`
	RoomID    string `json:"roomId"`
	RoomType  string `json:"roomType,omitempty"`
}

// DayTotals aggregates one day's counts and staffing estimate.
type DayTotals struct {
	Checkins        int     `json:"checkins"`
	Checkouts       int     `json:"checkouts"`
	Stayovers       int     `json:"stayovers"`
	WorkloadMinutes float64 `json:"workloadMinutes"`
	StaffNeeded     int     `json:"staffNeeded"`
}

// DayTasks lists the bookings behind each total, in booking input order.
type DayTasks struct {
	Checkouts []Task `json:"checkouts"`
	Checkins  []Task `json:"checkins"`
	Stayovers []Task `json:"stayovers"`
}

// DayPlan is the computed housekeeping plan for one calendar day.
type DayPlan struct {
	Date   string    `json:"date"`
	Totals DayTotals `json:"totals"`
	Tasks  DayTasks  `json:"tasks"`
}

// ClampDays bounds a requested plan length to the supported window.
func ClampDays(days int) int {
	if days < MinPlanDays {
		return MinPlanDays
	}
	if days > MaxPlanDays {
		return MaxPlanDays
	}
	return days
}

// Assemble computes one DayPlan per day for `days` consecutive days starting
// at the local midnight of `now`. Cancelled bookings and bookings entirely
// outside the window are dropped once up front; the per-day predicates in
// ClassifyDay still decide each day's buckets.
func Assemble(now time.Time, days int, rates Rates, bookings []model.Booking, rooms []model.Room) []DayPlan {
	days = ClampDays(days)
	windowStart := midnight(now)
	windowEnd := windowStart.AddDate(0, 0, days)

	candidates := make([]model.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Cancelled() {
			continue
		}
		// Overlaps [windowStart, windowEnd): starts before the window ends
		// and ends on or after the window start.
		if b.CheckInDate.Before(windowEnd) && !b.CheckOutDate.Before(windowStart) {
			candidates = append(candidates, b)
		}
	}

	roomTypes := make(map[string]string, len(rooms))
	for _, r := range rooms {
		roomTypes[r.ID] = r.RoomType
	}

	plans := make([]DayPlan, 0, days)
	for i := 0; i < days; i++ {
		day := windowStart.AddDate(0, 0, i)
		c := ClassifyDay(day, candidates)
		w := rates.Estimate(Counts{
			Checkouts: len(c.Checkouts),
			Checkins:  len(c.Checkins),
			Stayovers: len(c.Stayovers),
		})

		plans = append(plans, DayPlan{
			Date: day.Format("2006-01-02"),
			Totals: DayTotals{
				Checkins:        len(c.Checkins),
				Checkouts:       len(c.Checkouts),
				Stayovers:       len(c.Stayovers),
				WorkloadMinutes: w.Minutes,
				StaffNeeded:     w.StaffNeeded,
			},
			Tasks: DayTasks{
				Checkouts: tasks(c.Checkouts, roomTypes),
				Checkins:  tasks(c.Checkins, roomTypes),
				Stayovers: tasks(c.Stayovers, roomTypes),
			},
		})
	}
	return plans
}

func tasks(bookings []model.Booking, roomTypes map[string]string) []Task {
	out := make([]Task, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, Task{
			BookingID: b.ID,
			RoomID:    b.RoomID,
			RoomType:  roomTypes[b.RoomID],
		})
	}
	return out
}
