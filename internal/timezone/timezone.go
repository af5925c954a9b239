package timezone

import (
	"log/slog"
	"time"
)

const DefaultTimezone = "Europe/Rome"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves tz, falling back to DefaultTimezone and then UTC.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		slog.Warn("timezone data unavailable, using UTC", "tz", DefaultTimezone)
		return time.UTC
	}
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Clock returns the current time in a fixed location. Tests swap Now.
type Clock struct {
	Loc *time.Location
	Now func() time.Time
}

func NewClock(tz string) Clock {
	return Clock{Loc: Location(tz), Now: time.Now}
}

func (c Clock) Current() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	loc := c.Loc
	if loc == nil {
		loc = time.UTC
	}
	return now().In(loc)
}
