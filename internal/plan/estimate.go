package plan

import "math"

// Rates holds the fixed housekeeping time model. The values are
// configuration, not hidden logic: the API echoes them back next to every
// plan so consumers can audit the math.
type Rates struct {
	CheckoutCleanMin float64
	StayoverCleanMin float64
	CheckinPrepMin   float64
	StaffShiftMin    float64
}

// DefaultRates matches a full clean after checkout, a touch-up for a
// stayover, and a quick pre-arrival check, against an eight-hour shift.
var DefaultRates = Rates{
	CheckoutCleanMin: 60,
	StayoverCleanMin: 20,
	CheckinPrepMin:   10,
	StaffShiftMin:    480,
}

// Counts carries a day's classification totals.
type Counts struct {
	Checkouts int
	Checkins  int
	Stayovers int
}

// Workload is the estimator output for one day.
type Workload struct {
	Minutes     float64
	StaffNeeded int
}

// Estimate converts event counts into workload minutes and a headcount.
// Staffing never drops below one even for an empty day.
func (r Rates) Estimate(c Counts) Workload {
	minutes := float64(c.Checkouts)*r.CheckoutCleanMin +
		float64(c.Stayovers)*r.StayoverCleanMin +
		float64(c.Checkins)*r.CheckinPrepMin

	staff := int(math.Ceil(minutes / r.StaffShiftMin))
	if staff < 1 {
		staff = 1
	}

	return Workload{Minutes: minutes, StaffNeeded: staff}
}
