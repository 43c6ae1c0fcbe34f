package availability

import (
	"time"

	"shelterhub/models"
)

// dayContext pins the calendar day a computation runs against.
type dayContext struct {
	date    string
	weekday time.Weekday
	loc     *time.Location
}

// volunteerDay holds one volunteer's resolved state for the target day.
// allowed marks the minutes the volunteer's schedule and exceptions leave
// open; busy additionally folds in the volunteer's own appointments.
type volunteerDay struct {
	id      string
	allowed [MinutesPerDay]bool
	busy    [MinutesPerDay]bool
}

// resolveVolunteerDay derives a volunteer's open minutes for one day.
//
// A dated exception takes priority over the weekly schedule: "unavailable"
// closes the whole day, "modified" with both bounds replaces the weekly
// window. A volunteer with no weekly entries and no exception for the day is
// closed entirely. Bounds that fail to parse are skipped; schedule writes
// are validated upstream.
func resolveVolunteerDay(day dayContext, v *models.Volunteer) *volunteerDay {
	vd := &volunteerDay{id: v.ID}

	exc := v.ExceptionOn(day.date)
	entries := v.EntriesFor(day.weekday)

	switch {
	case exc != nil && exc.Kind == models.ExceptionUnavailable:
		// Whole day closed.
	case exc == nil && len(entries) == 0:
		// No recurring schedule for this weekday.
	case exc != nil && exc.Kind == models.ExceptionModified && exc.Start != "" && exc.End != "":
		from, errFrom := TimeToMinutes(exc.Start)
		to, errTo := TimeToMinutes(exc.End)
		if errFrom == nil && errTo == nil {
			vd.markAllowed(from, to)
			break
		}
		fallthrough
	default:
		for _, entry := range entries {
			from, errFrom := TimeToMinutes(entry.Start)
			to, errTo := TimeToMinutes(entry.End)
			if errFrom != nil || errTo != nil {
				continue
			}
			vd.markAllowed(from, to)
		}
	}

	vd.busy = vd.allowed
	for m := range vd.busy {
		vd.busy[m] = !vd.busy[m]
	}
	return vd
}

func (vd *volunteerDay) markAllowed(from, to int) {
	from, to, ok := clampRange(from, to)
	if !ok {
		return
	}
	for m := from; m < to; m++ {
		vd.allowed[m] = true
	}
}

// applyAppointments blocks the minutes covered by this volunteer's own
// active appointments.
func (vd *volunteerDay) applyAppointments(day dayContext, appts []models.Appointment) {
	for i := range appts {
		appt := &appts[i]
		if appt.VolunteerID != vd.id || !appt.IsActive() {
			continue
		}
		from, to, ok := MinuteSpan(appt.StartTime, appt.EndTime, day.date, day.loc)
		if !ok {
			continue
		}
		for m := from; m < to; m++ {
			vd.busy[m] = true
		}
	}
}

// dayGrid is the shared per-minute busy counter across all resolved
// volunteers. A minute is free while busy[m] < total.
type dayGrid struct {
	busy  [MinutesPerDay]int
	total int
}

func newDayGrid(total int) *dayGrid {
	return &dayGrid{total: total}
}

// add folds one volunteer's blocked minutes into the counter.
func (g *dayGrid) add(vd *volunteerDay) {
	for m := range vd.busy {
		if vd.busy[m] {
			g.busy[m]++
		}
	}
}

// blockAll closes a minute range for every volunteer at once. Used for
// pet-wide blackouts, which no volunteer can serve around.
func (g *dayGrid) blockAll(from, to int) {
	from, to, ok := clampRange(from, to)
	if !ok {
		return
	}
	for m := from; m < to; m++ {
		g.busy[m] += g.total
	}
}

// applyPetBlackouts closes the pet's weekly exception windows and the spans
// of appointments already holding this pet.
func (g *dayGrid) applyPetBlackouts(day dayContext, pet *models.Pet, appts []models.Appointment) {
	if pet == nil {
		return
	}
	for _, exc := range pet.ExceptionsFor(day.weekday) {
		from, errFrom := TimeToMinutes(exc.Start)
		to, errTo := TimeToMinutes(exc.End)
		if errFrom != nil || errTo != nil {
			continue
		}
		g.blockAll(from, to)
	}
	for i := range appts {
		appt := &appts[i]
		if appt.PetID != pet.ID || !appt.IsActive() {
			continue
		}
		from, to, ok := MinuteSpan(appt.StartTime, appt.EndTime, day.date, day.loc)
		if !ok {
			continue
		}
		g.blockAll(from, to)
	}
}
