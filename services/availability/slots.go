package availability

import "shelterhub/models"

// freeMinutes selects the minutes at which at least one volunteer can host a
// visit. The shared counter rejects a minute cheaply when every volunteer is
// blocked; a surviving minute is then confirmed against each volunteer's own
// schedule, so a stale or skewed counter can never open a minute nobody
// actually has free.
func freeMinutes(g *dayGrid, vols []*volunteerDay) []int {
	free := make([]int, 0, MinutesPerDay)
	for m := 0; m < MinutesPerDay; m++ {
		if g.busy[m] >= g.total {
			continue
		}
		for _, vd := range vols {
			if vd.allowed[m] {
				free = append(free, m)
				break
			}
		}
	}
	return free
}

// groupSlots merges maximal runs of consecutive free minutes into bookable
// windows, dropping runs shorter than minDuration.
func groupSlots(free []int, minDuration int) []models.AvailableTimeSlot {
	slots := []models.AvailableTimeSlot{}
	if len(free) == 0 {
		return slots
	}

	runStart := free[0]
	prev := free[0]
	flush := func(end int) {
		length := end - runStart
		if length < minDuration {
			return
		}
		slots = append(slots, models.AvailableTimeSlot{
			Start:           runStart,
			End:             end,
			StartTime:       MinutesToTime(runStart),
			EndTime:         MinutesToTime(end),
			DurationMinutes: length,
		})
	}

	for _, m := range free[1:] {
		if m != prev+1 {
			flush(prev + 1)
			runStart = m
		}
		prev = m
	}
	flush(prev + 1)
	return slots
}
