package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShreyasBadgujar/hotel-booking/internal/model"
)

func TestClampDays(t *testing.T) {
	assert.Equal(t, 1, ClampDays(0))
	assert.Equal(t, 1, ClampDays(-5))
	assert.Equal(t, 1, ClampDays(1))
	assert.Equal(t, 7, ClampDays(7))
	assert.Equal(t, 31, ClampDays(31))
	assert.Equal(t, 31, ClampDays(40))
}

func TestAssemble_DayCountIsClamped(t *testing.T) {
	now := day(0).Add(15 * time.Hour)
	assert.Len(t, Assemble(now, 40, DefaultRates, nil, nil), 31)
	assert.Len(t, Assemble(now, 0, DefaultRates, nil, nil), 1)
}

func TestAssemble_FiveDayScenario(t *testing.T) {
	// One booking from day 0 to day 3, planned over five days.
	bookings := []model.Booking{booking("b1", day(0), day(3))}
	rooms := []model.Room{{ID: "r-b1", HotelID: "h1", RoomType: "Suite"}}

	plans := Assemble(day(0).Add(10*time.Hour), 5, DefaultRates, bookings, rooms)
	require.Len(t, plans, 5)

	assert.Equal(t, DayTotals{Checkins: 1, WorkloadMinutes: 10, StaffNeeded: 1}, plans[0].Totals)
	assert.Equal(t, DayTotals{Stayovers: 1, WorkloadMinutes: 20, StaffNeeded: 1}, plans[1].Totals)
	assert.Equal(t, DayTotals{Stayovers: 1, WorkloadMinutes: 20, StaffNeeded: 1}, plans[2].Totals)
	assert.Equal(t, DayTotals{Checkouts: 1, WorkloadMinutes: 60, StaffNeeded: 1}, plans[3].Totals)
	assert.Equal(t, DayTotals{WorkloadMinutes: 0, StaffNeeded: 1}, plans[4].Totals)

	// Dates ascend from today's midnight, one entry per day.
	for i, p := range plans {
		assert.Equal(t, day(i).Format("2006-01-02"), p.Date)
	}

	// Task entries resolve the room type via the room lookup.
	require.Len(t, plans[0].Tasks.Checkins, 1)
	assert.Equal(t, Task{BookingID: "b1", RoomID: "r-b1", RoomType: "Suite"}, plans[0].Tasks.Checkins[0])
}

func TestAssemble_CancelledBookingsExcluded(t *testing.T) {
	cancelled := booking("b1", day(0), day(2))
	cancelled.Status = model.StatusCancelled

	plans := Assemble(day(0), 3, DefaultRates, []model.Booking{cancelled}, nil)
	for _, p := range plans {
		assert.Equal(t, DayTotals{WorkloadMinutes: 0, StaffNeeded: 1}, p.Totals)
		assert.Empty(t, p.Tasks.Checkins)
		assert.Empty(t, p.Tasks.Checkouts)
		assert.Empty(t, p.Tasks.Stayovers)
	}
}

func TestAssemble_BookingsOutsideWindowIgnored(t *testing.T) {
	bookings := []model.Booking{
		booking("past", day(-10), day(-5)),
		booking("future", day(10), day(12)),
		booking("current", day(1), day(2)),
	}

	plans := Assemble(day(0), 3, DefaultRates, bookings, nil)
	require.Len(t, plans, 3)

	assert.Empty(t, plans[0].Tasks.Checkins)
	require.Len(t, plans[1].Tasks.Checkins, 1)
	assert.Equal(t, "current", plans[1].Tasks.Checkins[0].BookingID)
	require.Len(t, plans[2].Tasks.Checkouts, 1)
	assert.Equal(t, "current", plans[2].Tasks.Checkouts[0].BookingID)
}

func TestAssemble_MissingRoomLeavesTypeEmpty(t *testing.T) {
	plans := Assemble(day(0), 1, DefaultRates, []model.Booking{booking("b1", day(0), day(1))}, nil)
	require.Len(t, plans[0].Tasks.Checkins, 1)
	assert.Equal(t, "", plans[0].Tasks.Checkins[0].RoomType)
}
