package availability

import (
	"testing"
	"time"

	"shelterhub/models"

	"github.com/stretchr/testify/assert"
)

var monday = dayContext{date: "2026-08-31", weekday: time.Monday, loc: time.UTC}

func mondayNineToFive() *models.Volunteer {
	return &models.Volunteer{
		ID: "vol-1",
		WorkSchedule: []models.WorkScheduleEntry{
			{DayOfWeek: time.Monday, Start: "09:00", End: "17:00"},
		},
	}
}

// assertOpenWindow checks that exactly [from,to) is open on the volunteer's day.
func assertOpenWindow(t *testing.T, vd *volunteerDay, from, to int) {
	t.Helper()
	for m := 0; m < MinutesPerDay; m++ {
		want := m >= from && m < to
		if vd.allowed[m] != want {
			t.Fatalf("minute %d (%s): allowed=%v, want %v", m, MinutesToTime(m), vd.allowed[m], want)
		}
	}
}

func TestResolveVolunteerDay(t *testing.T) {
	t.Run("weekly entry opens its window", func(t *testing.T) {
		vd := resolveVolunteerDay(monday, mondayNineToFive())
		assertOpenWindow(t, vd, 540, 1020)
		assert.True(t, vd.busy[0])
		assert.False(t, vd.busy[540])
		assert.True(t, vd.busy[1020])
	})

	t.Run("multiple entries form a union", func(t *testing.T) {
		v := &models.Volunteer{
			ID: "vol-1",
			WorkSchedule: []models.WorkScheduleEntry{
				{DayOfWeek: time.Monday, Start: "09:00", End: "12:00"},
				{DayOfWeek: time.Monday, Start: "13:00", End: "17:00"},
			},
		}
		vd := resolveVolunteerDay(monday, v)
		assert.True(t, vd.allowed[540])
		assert.True(t, vd.allowed[719])
		assert.False(t, vd.allowed[720])
		assert.False(t, vd.allowed[779])
		assert.True(t, vd.allowed[780])
		assert.False(t, vd.allowed[1020])
	})

	t.Run("entries for other weekdays stay closed", func(t *testing.T) {
		v := &models.Volunteer{
			ID: "vol-1",
			WorkSchedule: []models.WorkScheduleEntry{
				{DayOfWeek: time.Tuesday, Start: "09:00", End: "17:00"},
			},
		}
		vd := resolveVolunteerDay(monday, v)
		assertOpenWindow(t, vd, 0, 0)
	})

	t.Run("no schedule at all means closed", func(t *testing.T) {
		vd := resolveVolunteerDay(monday, &models.Volunteer{ID: "vol-1"})
		assertOpenWindow(t, vd, 0, 0)
	})

	t.Run("unavailable exception closes the day", func(t *testing.T) {
		v := mondayNineToFive()
		v.ScheduleExceptions = []models.ScheduleException{
			{Date: "2026-08-31", Kind: models.ExceptionUnavailable},
		}
		vd := resolveVolunteerDay(monday, v)
		assertOpenWindow(t, vd, 0, 0)
	})

	t.Run("modified exception replaces the weekly window", func(t *testing.T) {
		v := mondayNineToFive()
		v.ScheduleExceptions = []models.ScheduleException{
			{Date: "2026-08-31", Kind: models.ExceptionModified, Start: "10:00", End: "14:00"},
		}
		vd := resolveVolunteerDay(monday, v)
		assertOpenWindow(t, vd, 600, 840)
	})

	t.Run("modified exception without bounds falls back to weekly entries", func(t *testing.T) {
		v := mondayNineToFive()
		v.ScheduleExceptions = []models.ScheduleException{
			{Date: "2026-08-31", Kind: models.ExceptionModified},
		}
		vd := resolveVolunteerDay(monday, v)
		assertOpenWindow(t, vd, 540, 1020)
	})

	t.Run("available exception keeps weekly entries", func(t *testing.T) {
		v := mondayNineToFive()
		v.ScheduleExceptions = []models.ScheduleException{
			{Date: "2026-08-31", Kind: models.ExceptionAvailable},
		}
		vd := resolveVolunteerDay(monday, v)
		assertOpenWindow(t, vd, 540, 1020)
	})

	t.Run("available exception without entries opens nothing", func(t *testing.T) {
		v := &models.Volunteer{
			ID: "vol-1",
			ScheduleExceptions: []models.ScheduleException{
				{Date: "2026-08-31", Kind: models.ExceptionAvailable},
			},
		}
		vd := resolveVolunteerDay(monday, v)
		assertOpenWindow(t, vd, 0, 0)
	})

	t.Run("exception for another date is ignored", func(t *testing.T) {
		v := mondayNineToFive()
		v.ScheduleExceptions = []models.ScheduleException{
			{Date: "2026-09-01", Kind: models.ExceptionUnavailable},
		}
		vd := resolveVolunteerDay(monday, v)
		assertOpenWindow(t, vd, 540, 1020)
	})

	t.Run("first exception for the date wins", func(t *testing.T) {
		v := mondayNineToFive()
		v.ScheduleExceptions = []models.ScheduleException{
			{Date: "2026-08-31", Kind: models.ExceptionModified, Start: "10:00", End: "12:00"},
			{Date: "2026-08-31", Kind: models.ExceptionUnavailable},
		}
		vd := resolveVolunteerDay(monday, v)
		assertOpenWindow(t, vd, 600, 720)
	})

	t.Run("malformed entry is skipped", func(t *testing.T) {
		v := &models.Volunteer{
			ID: "vol-1",
			WorkSchedule: []models.WorkScheduleEntry{
				{DayOfWeek: time.Monday, Start: "9am", End: "17:00"},
				{DayOfWeek: time.Monday, Start: "13:00", End: "15:00"},
			},
		}
		vd := resolveVolunteerDay(monday, v)
		assertOpenWindow(t, vd, 780, 900)
	})

	t.Run("inverted entry opens nothing", func(t *testing.T) {
		v := &models.Volunteer{
			ID: "vol-1",
			WorkSchedule: []models.WorkScheduleEntry{
				{DayOfWeek: time.Monday, Start: "17:00", End: "09:00"},
			},
		}
		vd := resolveVolunteerDay(monday, v)
		assertOpenWindow(t, vd, 0, 0)
	})
}

func apptAt(volID, petID, status string, startHour, endHour int) models.Appointment {
	return models.Appointment{
		ID:          "appt-" + volID,
		VolunteerID: volID,
		PetID:       petID,
		Status:      status,
		StartTime:   time.Date(2026, 8, 31, startHour, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2026, 8, 31, endHour, 0, 0, 0, time.UTC),
	}
}

func TestApplyAppointments(t *testing.T) {
	t.Run("own appointment blocks its span only", func(t *testing.T) {
		vd := resolveVolunteerDay(monday, mondayNineToFive())
		vd.applyAppointments(monday, []models.Appointment{
			apptAt("vol-1", "", models.AppointmentConfirmed, 12, 13),
		})
		assert.False(t, vd.busy[719])
		assert.True(t, vd.busy[720])
		assert.True(t, vd.busy[779])
		assert.False(t, vd.busy[780])
		// The schedule window itself is untouched.
		assert.True(t, vd.allowed[720])
	})

	t.Run("another volunteer's appointment is ignored", func(t *testing.T) {
		vd := resolveVolunteerDay(monday, mondayNineToFive())
		vd.applyAppointments(monday, []models.Appointment{
			apptAt("vol-2", "", models.AppointmentConfirmed, 12, 13),
		})
		assert.False(t, vd.busy[720])
	})

	t.Run("inactive statuses do not block", func(t *testing.T) {
		vd := resolveVolunteerDay(monday, mondayNineToFive())
		vd.applyAppointments(monday, []models.Appointment{
			apptAt("vol-1", "", models.AppointmentCancelled, 12, 13),
			apptAt("vol-1", "", models.AppointmentCompleted, 14, 15),
			apptAt("vol-1", "", models.AppointmentExpired, 15, 16),
		})
		assert.False(t, vd.busy[720])
		assert.False(t, vd.busy[840])
		assert.False(t, vd.busy[900])
	})

	t.Run("every blocking status counts", func(t *testing.T) {
		for _, status := range models.ActiveAppointmentStatuses {
			vd := resolveVolunteerDay(monday, mondayNineToFive())
			vd.applyAppointments(monday, []models.Appointment{
				apptAt("vol-1", "", status, 12, 13),
			})
			assert.True(t, vd.busy[720], "status %s should block", status)
		}
	})
}

func TestDayGrid(t *testing.T) {
	t.Run("counter accumulates per volunteer", func(t *testing.T) {
		a := resolveVolunteerDay(monday, mondayNineToFive())
		b := resolveVolunteerDay(monday, &models.Volunteer{ID: "vol-2"})
		g := newDayGrid(2)
		g.add(a)
		g.add(b)
		assert.Equal(t, 2, g.busy[0])
		assert.Equal(t, 1, g.busy[540])
		assert.Equal(t, 2, g.busy[1020])
	})

	t.Run("pet exceptions close the window for everyone", func(t *testing.T) {
		g := newDayGrid(3)
		pet := &models.Pet{
			ID: "pet-1",
			Exceptions: []models.PetException{
				{DayOfWeek: time.Monday, Start: "12:00", End: "13:00", Reason: "grooming"},
				{DayOfWeek: time.Tuesday, Start: "09:00", End: "10:00"},
			},
		}
		g.applyPetBlackouts(monday, pet, nil)
		assert.Equal(t, 3, g.busy[720])
		assert.Equal(t, 3, g.busy[779])
		assert.Equal(t, 0, g.busy[780])
		// Tuesday exception does not apply on Monday.
		assert.Equal(t, 0, g.busy[540])
	})

	t.Run("appointments holding the pet block everyone", func(t *testing.T) {
		g := newDayGrid(2)
		pet := &models.Pet{ID: "pet-1"}
		g.applyPetBlackouts(monday, pet, []models.Appointment{
			apptAt("vol-9", "pet-1", models.AppointmentPending, 10, 11),
			apptAt("vol-9", "pet-2", models.AppointmentPending, 14, 15),
			apptAt("vol-9", "pet-1", models.AppointmentCancelled, 16, 17),
		})
		assert.Equal(t, 2, g.busy[600])
		assert.Equal(t, 0, g.busy[840], "other pets do not block")
		assert.Equal(t, 0, g.busy[960], "cancelled holds do not block")
	})

	t.Run("nil pet is a no-op", func(t *testing.T) {
		g := newDayGrid(1)
		g.applyPetBlackouts(monday, nil, []models.Appointment{
			apptAt("vol-1", "pet-1", models.AppointmentPending, 10, 11),
		})
		assert.Equal(t, 0, g.busy[600])
	})
}
