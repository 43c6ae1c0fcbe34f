package appointments

import (
	"context"
	"time"

	"shelterhub/metrics"
	"shelterhub/models"
	"shelterhub/services/availability"
	"shelterhub/services/tasks"
	"shelterhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Book re-runs the availability computation for the requested window, then
// creates the visit as an unconfirmed hold. A delayed queue task releases the
// hold if nobody confirms before HoldTTL elapses.
func (s *DefaultAppointmentService) Book(ctx context.Context, orgID string, req BookRequest) (*models.Appointment, error) {
	if req.VolunteerID == "" || req.Date == "" || req.AdopterName == "" {
		return nil, availability.NewInvalidArgument("volunteerId, date and adopterName are required")
	}
	if req.Start < 0 || req.End > availability.MinutesPerDay || req.End <= req.Start {
		return nil, availability.NewInvalidArgument("start and end must form a window within the day")
	}

	res, err := s.Engine.ComputeAvailability(ctx, orgID, models.AvailabilityRequest{
		VolunteerIDs:    []string{req.VolunteerID},
		PetID:           req.PetID,
		Date:            req.Date,
		DurationMinutes: req.End - req.Start,
		Timezone:        req.Timezone,
	})
	if err != nil {
		return nil, err
	}
	if !windowWithin(res.Slots, req.Start, req.End) {
		return nil, availability.NewPreconditionFailed("window %s-%s on %s is no longer available",
			availability.MinutesToTime(req.Start), availability.MinutesToTime(req.End), req.Date)
	}

	loc, err := time.LoadLocation(res.Timezone)
	if err != nil {
		return nil, availability.NewDependencyError("loading timezone", err)
	}
	dayStart, err := availability.ParseDate(req.Date, loc)
	if err != nil {
		return nil, availability.NewInvalidArgument("%v", err)
	}

	now := time.Now().UTC()
	appt := &models.Appointment{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		VolunteerID:    req.VolunteerID,
		PetID:          req.PetID,
		AdopterName:    req.AdopterName,
		AdopterEmail:   req.AdopterEmail,
		Date:           req.Date,
		StartTime:      dayStart.Add(time.Duration(req.Start) * time.Minute),
		EndTime:        dayStart.Add(time.Duration(req.End) * time.Minute),
		Status:         models.AppointmentPending,
		Notes:          req.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Repo.Create(ctx, appt); err != nil {
		return nil, availability.NewDependencyError("creating appointment", err)
	}
	s.scheduleExpiry(appt)
	metrics.IncAppointmentTransition(models.AppointmentPending)

	utils.GetLogger().Info("appointment hold created",
		zap.String("appointmentID", appt.ID), zap.String("orgID", orgID),
		zap.String("date", req.Date), zap.String("volunteerID", req.VolunteerID))
	return appt, nil
}

func (s *DefaultAppointmentService) scheduleExpiry(appt *models.Appointment) {
	payload := models.AppointmentExpirePayload{
		AppointmentID:  appt.ID,
		OrganizationID: appt.OrganizationID,
	}
	task, opts, err := tasks.NewAppointmentExpireTask(payload, time.Now().Add(s.HoldTTL))
	if err == nil {
		_, err = s.Queue.Enqueue(task, opts...)
	}
	if err != nil {
		utils.GetLogger().Error("Failed to enqueue appointment expiry task",
			zap.Error(err), zap.String("appointmentID", appt.ID))
	}
}

func (s *DefaultAppointmentService) Confirm(ctx context.Context, orgID, id string) (*models.Appointment, error) {
	return s.transition(ctx, orgID, id,
		[]string{models.AppointmentPending}, models.AppointmentConfirmed)
}

// Assign pins the hosting volunteer. The candidate's own schedule is
// re-verified for the visit window, without the pet dimension: the
// appointment already holds the pet, and that hold must not veto its own
// assignment.
func (s *DefaultAppointmentService) Assign(ctx context.Context, orgID, id, volunteerID string) (*models.Appointment, error) {
	if volunteerID == "" {
		return nil, availability.NewInvalidArgument("volunteerId is required")
	}

	appt, err := s.Repo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, availability.NewDependencyError("fetching appointment", err)
	}
	if appt == nil {
		return nil, availability.NewNotFound("appointment %s not found", id)
	}
	if appt.VolunteerID == volunteerID && appt.Status == models.AppointmentAssigned {
		return appt, nil
	}

	res, err := s.Engine.ComputeAvailability(ctx, orgID, models.AvailabilityRequest{
		VolunteerIDs:    []string{volunteerID},
		Date:            appt.Date,
		DurationMinutes: 1,
	})
	if err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(res.Timezone)
	if err != nil {
		return nil, availability.NewDependencyError("loading timezone", err)
	}
	from, to, ok := availability.MinuteSpan(appt.StartTime, appt.EndTime, appt.Date, loc)
	if !ok || !windowWithin(res.Slots, from, to) {
		return nil, availability.NewPreconditionFailed("volunteer %s is not free for appointment %s", volunteerID, id)
	}

	updated, err := s.Repo.AssignVolunteer(ctx, orgID, id, volunteerID,
		[]string{models.AppointmentPending, models.AppointmentConfirmed, models.AppointmentAssigned})
	if err != nil {
		return nil, availability.NewDependencyError("assigning volunteer", err)
	}
	if updated == nil {
		return nil, availability.NewPreconditionFailed("appointment %s is %s", id, appt.Status)
	}
	metrics.IncAppointmentTransition(models.AppointmentAssigned)
	return updated, nil
}

func (s *DefaultAppointmentService) CheckIn(ctx context.Context, orgID, id string) (*models.Appointment, error) {
	return s.transition(ctx, orgID, id,
		[]string{models.AppointmentConfirmed, models.AppointmentAssigned}, models.AppointmentInProgress)
}

func (s *DefaultAppointmentService) Complete(ctx context.Context, orgID, id string) (*models.Appointment, error) {
	return s.transition(ctx, orgID, id,
		[]string{models.AppointmentInProgress}, models.AppointmentCompleted)
}

func (s *DefaultAppointmentService) Cancel(ctx context.Context, orgID, id string) (*models.Appointment, error) {
	return s.transition(ctx, orgID, id,
		models.ActiveAppointmentStatuses, models.AppointmentCancelled)
}

func (s *DefaultAppointmentService) transition(ctx context.Context, orgID, id string, from []string, to string) (*models.Appointment, error) {
	appt, err := s.Repo.TransitionStatus(ctx, orgID, id, from, to)
	if err != nil {
		return nil, availability.NewDependencyError("updating appointment", err)
	}
	if appt == nil {
		existing, err := s.Repo.GetByID(ctx, orgID, id)
		if err != nil {
			return nil, availability.NewDependencyError("fetching appointment", err)
		}
		if existing == nil {
			return nil, availability.NewNotFound("appointment %s not found", id)
		}
		return nil, availability.NewPreconditionFailed("appointment %s is %s", id, existing.Status)
	}
	metrics.IncAppointmentTransition(to)
	return appt, nil
}

func (s *DefaultAppointmentService) GetByID(ctx context.Context, orgID, id string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, availability.NewDependencyError("fetching appointment", err)
	}
	if appt == nil {
		return nil, availability.NewNotFound("appointment %s not found", id)
	}
	return appt, nil
}

func (s *DefaultAppointmentService) ListByDate(ctx context.Context, orgID, date, timezone string) ([]models.Appointment, error) {
	org, err := s.Orgs.GetByID(ctx, orgID)
	if err != nil {
		return nil, availability.NewDependencyError("resolving organization", err)
	}
	if org == nil {
		return nil, availability.NewNotFound("organization %s not found", orgID)
	}

	zone := timezone
	if zone == "" {
		zone = org.Timezone
	}
	if zone == "" {
		zone = s.DefaultZone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, availability.NewInvalidArgument("unknown timezone %q", zone)
	}
	dayStart, err := availability.ParseDate(date, loc)
	if err != nil {
		return nil, availability.NewInvalidArgument("%v", err)
	}

	appts, err := s.Repo.ListByRange(ctx, orgID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, availability.NewDependencyError("listing appointments", err)
	}
	if appts == nil {
		appts = []models.Appointment{}
	}
	return appts, nil
}

// Expire releases a hold that never got confirmed. Repository errors are
// returned so the queue retries the task.
func (s *DefaultAppointmentService) Expire(ctx context.Context, orgID, id string) (bool, error) {
	appt, err := s.Repo.TransitionStatus(ctx, orgID, id,
		[]string{models.AppointmentPending}, models.AppointmentExpired)
	if err != nil {
		return false, err
	}
	if appt == nil {
		return false, nil
	}
	metrics.IncHoldExpired()
	metrics.IncAppointmentTransition(models.AppointmentExpired)
	utils.GetLogger().Info("released unconfirmed appointment hold",
		zap.String("appointmentID", id), zap.String("orgID", orgID))
	return true, nil
}

func windowWithin(slots []models.AvailableTimeSlot, start, end int) bool {
	for _, slot := range slots {
		if slot.Start <= start && end <= slot.End {
			return true
		}
	}
	return false
}
