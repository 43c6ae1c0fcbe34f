package models

import "time"

// WorkScheduleEntry is one recurring weekly availability window for a volunteer.
// Times are wall-clock "HH:MM" values in the organization's zone. Entries for
// the same weekday may overlap or repeat; the availability engine treats them
// as a union.
type WorkScheduleEntry struct {
	DayOfWeek time.Weekday `bson:"dayOfWeek" json:"dayOfWeek"`
	Start     string       `bson:"start" json:"start"` // e.g. "09:00"
	End       string       `bson:"end" json:"end"`     // e.g. "17:00"
}

// Exception kinds for a volunteer's date-specific schedule override.
const (
	ExceptionUnavailable = "unavailable" // whole day blocked, schedule ignored
	ExceptionAvailable   = "available"   // accepted; no effect beyond the weekly schedule
	ExceptionModified    = "modified"    // availability restricted to [Start,End) for that date
)

// ScheduleException overrides a volunteer's recurring schedule on one calendar
// day. Start/End are only meaningful for the "modified" kind. A volunteer may
// carry several exceptions, but at most one is honored per date (first wins).
type ScheduleException struct {
	Date  string `bson:"date" json:"date"` // "2006-01-02"
	Kind  string `bson:"kind" json:"kind"`
	Start string `bson:"start,omitempty" json:"start,omitempty"`
	End   string `bson:"end,omitempty" json:"end,omitempty"`
}

// Volunteer is a shelter volunteer who can host adoption visits.
type Volunteer struct {
	ID                 string              `bson:"id" json:"id"`
	OrganizationID     string              `bson:"organizationId" json:"organizationId"`
	Name               string              `bson:"name" json:"name"`
	Email              string              `bson:"email,omitempty" json:"email,omitempty"`
	Phone              string              `bson:"phone,omitempty" json:"phone,omitempty"`
	Active             bool                `bson:"active" json:"active"`
	WorkSchedule       []WorkScheduleEntry `bson:"workSchedule,omitempty" json:"workSchedule,omitempty"`
	ScheduleExceptions []ScheduleException `bson:"scheduleExceptions,omitempty" json:"scheduleExceptions,omitempty"`
	CreatedAt          time.Time           `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt          time.Time           `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// ExceptionOn returns the exception honored for the given date, or nil. When
// the stored list carries duplicates for one date (a data-quality anomaly) the
// first entry wins, which keeps the at-most-one-per-date invariant enforced in
// one place.
func (v *Volunteer) ExceptionOn(date string) *ScheduleException {
	for i := range v.ScheduleExceptions {
		if v.ScheduleExceptions[i].Date == date {
			return &v.ScheduleExceptions[i]
		}
	}
	return nil
}

// EntriesFor returns the volunteer's recurring schedule entries for a weekday.
func (v *Volunteer) EntriesFor(day time.Weekday) []WorkScheduleEntry {
	var out []WorkScheduleEntry
	for _, e := range v.WorkSchedule {
		if e.DayOfWeek == day {
			out = append(out, e)
		}
	}
	return out
}
