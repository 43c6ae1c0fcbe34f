package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the size of the per-day minute grid.
const MinutesPerDay = 1440

// MalformedTimeError reports a wall-clock value that is not a valid "HH:MM".
type MalformedTimeError struct {
	Value string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("malformed time %q: want HH:MM between 00:00 and 23:59", e.Value)
}

// TimeToMinutes parses a wall-clock "HH:MM" value into minutes from midnight.
func TimeToMinutes(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, &MalformedTimeError{Value: value}
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, &MalformedTimeError{Value: value}
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, &MalformedTimeError{Value: value}
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, &MalformedTimeError{Value: value}
	}
	return hour*60 + minute, nil
}

// MinutesToTime renders minutes from midnight as zero-padded "HH:MM".
// Minute 1440 is the exclusive end of day and renders as "24:00" so slot
// boundaries stay printable.
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate interprets a "YYYY-MM-DD" value as midnight in loc.
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed date %q: want YYYY-MM-DD", date)
	}
	return day, nil
}

// MinuteSpan converts an absolute [start,end) interval to minute-of-day
// bounds on the given civil day in loc. Portions that fall on other days are
// clipped; the second return is false when nothing overlaps the day.
func MinuteSpan(start, end time.Time, date string, loc *time.Location) (int, int, bool) {
	if !end.After(start) {
		return 0, 0, false
	}

	s := start.In(loc)
	e := end.In(loc)
	sDate := s.Format("2006-01-02")
	eDate := e.Format("2006-01-02")

	if sDate > date || eDate < date {
		return 0, 0, false
	}

	from := 0
	if sDate == date {
		from = s.Hour()*60 + s.Minute()
	}
	to := MinutesPerDay
	if eDate == date {
		to = e.Hour()*60 + e.Minute()
	}
	if eDate == date && to == 0 {
		// Ends exactly at midnight of the target day, so nothing is blocked.
		return 0, 0, false
	}
	if to <= from {
		return 0, 0, false
	}
	return from, to, true
}

// clampRange trims a half-open minute interval to the [0,1440) grid.
func clampRange(from, to int) (int, int, bool) {
	if from < 0 {
		from = 0
	}
	if to > MinutesPerDay {
		to = MinutesPerDay
	}
	if to <= from {
		return 0, 0, false
	}
	return from, to, true
}
