package utils

import "time"

// Market session status values.
const (
	StatusOpen       = "OPEN"
	StatusClosed     = "CLOSED"
	StatusPreMarket  = "PRE_MARKET"
	StatusAfterHours = "AFTER_HOURS"
)

// EasternLocation is the timezone for US markets.
var EasternLocation *time.Location

func init() {
	var err error
	EasternLocation, err = time.LoadLocation("America/New_York")
	if err != nil {
		// Fallback to UTC-5
		EasternLocation = time.FixedZone("EST", -5*60*60)
	}
}

// MarketStatus returns the US equity session status at t.
// Pre-market runs 4:00-9:30 ET, the regular session 9:30-16:00, and
// after-hours 16:00-20:00, weekdays only.
func MarketStatus(t time.Time) string {
	et := t.In(EasternLocation)

	if et.Weekday() == time.Saturday || et.Weekday() == time.Sunday {
		return StatusClosed
	}

	minutes := et.Hour()*60 + et.Minute()
	switch {
	case minutes >= 4*60 && minutes < 9*60+30:
		return StatusPreMarket
	case minutes >= 9*60+30 && minutes < 16*60:
		return StatusOpen
	case minutes >= 16*60 && minutes < 20*60:
		return StatusAfterHours
	}
	return StatusClosed
}

// IsMarketOpen returns true if the regular session is open at t.
func IsMarketOpen(t time.Time) bool {
	return MarketStatus(t) == StatusOpen
}

// IsPreMarket returns true during the pre-market session.
func IsPreMarket(t time.Time) bool {
	return MarketStatus(t) == StatusPreMarket
}

// IsAfterHours returns true during the after-hours session.
func IsAfterHours(t time.Time) bool {
	return MarketStatus(t) == StatusAfterHours
}

// NextMarketOpen returns the next regular session open after t.
func NextMarketOpen(t time.Time) time.Time {
	et := t.In(EasternLocation)

	next := time.Date(et.Year(), et.Month(), et.Day(), 9, 30, 0, 0, EasternLocation)
	if et.After(next) {
		next = next.AddDate(0, 0, 1)
	}

	// Skip weekends
	for next.Weekday() == time.Saturday || next.Weekday() == time.Sunday {
		next = next.AddDate(0, 0, 1)
	}

	return next
}

// MarketClose returns the regular session close on t's calendar day.
func MarketClose(t time.Time) time.Time {
	et := t.In(EasternLocation)
	return time.Date(et.Year(), et.Month(), et.Day(), 16, 0, 0, 0, EasternLocation)
}

// TimeUntilClose returns the duration from t until the regular session
// close on the same day. The result is negative after the close.
func TimeUntilClose(t time.Time) time.Duration {
	return MarketClose(t).Sub(t)
}
