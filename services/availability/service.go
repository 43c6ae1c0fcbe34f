package availability

import (
	"context"
	"time"

	"shelterhub/models"
	"shelterhub/utils"

	"go.uber.org/zap"
)

// ComputeAvailability resolves every scheduling constraint for one shelter
// day and returns the bookable windows. The computation itself is pure; all
// state arrives through DataAccess reads up front.
func (e *DefaultEngine) ComputeAvailability(ctx context.Context, orgID string, req models.AvailabilityRequest) (*models.AvailabilityResult, error) {
	logger := utils.GetLogger()

	if len(req.VolunteerIDs) == 0 {
		return nil, NewInvalidArgument("volunteerIds must not be empty")
	}
	duration := req.DurationMinutes
	if duration == 0 {
		duration = e.DefaultDuration
	}
	if duration <= 0 || duration > MinutesPerDay {
		return nil, NewInvalidArgument("durationMinutes must be between 1 and %d", MinutesPerDay)
	}

	org, err := e.Data.OrganizationByID(ctx, orgID)
	if err != nil {
		return nil, NewDependencyError("resolving organization", err)
	}
	if org == nil {
		return nil, NewNotFound("organization %s not found", orgID)
	}

	zone := req.Timezone
	if zone == "" {
		zone = org.Timezone
	}
	if zone == "" {
		zone = e.DefaultZone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, NewInvalidArgument("unknown timezone %q", zone)
	}

	dayStart, err := ParseDate(req.Date, loc)
	if err != nil {
		return nil, NewInvalidArgument("%v", err)
	}
	dayEnd := dayStart.AddDate(0, 0, 1)
	day := dayContext{date: req.Date, weekday: dayStart.Weekday(), loc: loc}

	var pet *models.Pet
	if req.PetID != "" {
		pet, err = e.Data.PetByID(ctx, orgID, req.PetID)
		if err != nil {
			return nil, NewDependencyError("loading pet record", err)
		}
	}

	eligible := FilterEligible(req.VolunteerIDs, pet)
	if len(eligible) == 0 {
		return &models.AvailabilityResult{
			Slots:    []models.AvailableTimeSlot{},
			Date:     req.Date,
			Timezone: zone,
			Note:     "none of the requested volunteers may host this pet",
		}, nil
	}

	type apptFetch struct {
		appts []models.Appointment
		err   error
	}
	apptCh := make(chan apptFetch, 1)
	go func() {
		appts, err := e.Data.AppointmentsOverlapping(ctx, orgID, dayStart, dayEnd)
		apptCh <- apptFetch{appts: appts, err: err}
	}()

	vols, err := e.Data.VolunteersByIDs(ctx, orgID, eligible)
	if err != nil {
		return nil, NewDependencyError("loading volunteer records", err)
	}
	if missing := missingIDs(eligible, vols); len(missing) > 0 {
		logger.Warn("availability: skipping unknown volunteers",
			zap.String("orgID", orgID), zap.Strings("volunteerIDs", missing))
	}
	if len(vols) == 0 {
		return &models.AvailabilityResult{
			Slots:                   []models.AvailableTimeSlot{},
			Date:                    req.Date,
			Timezone:                zone,
			TotalEligibleVolunteers: len(eligible),
			Note:                    "no active volunteer records matched the request",
		}, nil
	}

	fetched := <-apptCh
	if fetched.err != nil {
		return nil, NewDependencyError("loading appointments", fetched.err)
	}

	days := make([]*volunteerDay, 0, len(vols))
	grid := newDayGrid(len(vols))
	for i := range vols {
		vd := resolveVolunteerDay(day, &vols[i])
		vd.applyAppointments(day, fetched.appts)
		grid.add(vd)
		days = append(days, vd)
	}
	grid.applyPetBlackouts(day, pet, fetched.appts)

	slots := groupSlots(freeMinutes(grid, days), duration)

	logger.Debug("availability computed",
		zap.String("orgID", orgID), zap.String("date", req.Date),
		zap.Int("volunteers", len(vols)), zap.Int("slots", len(slots)))

	return &models.AvailabilityResult{
		Slots:                   slots,
		Date:                    req.Date,
		Timezone:                zone,
		TotalEligibleVolunteers: len(eligible),
		VolunteersResolved:      len(vols),
	}, nil
}

func missingIDs(wanted []string, got []models.Volunteer) []string {
	found := make(map[string]struct{}, len(got))
	for i := range got {
		found[got[i].ID] = struct{}{}
	}
	var missing []string
	for _, id := range wanted {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
