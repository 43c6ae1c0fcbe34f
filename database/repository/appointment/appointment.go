package appointmentRepo

import (
	"context"
	"time"

	"shelterhub/models"
)

// AppointmentRepository defines data access methods for adoption-visit
// appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, orgID, id string) (*models.Appointment, error)
	// FindOverlapping returns appointments whose [startTime, endTime) span
	// intersects [from, to) and whose status is one of statuses.
	FindOverlapping(ctx context.Context, orgID string, from, to time.Time, statuses []string) ([]models.Appointment, error)
	ListByRange(ctx context.Context, orgID string, from, to time.Time) ([]models.Appointment, error)
	// TransitionStatus atomically moves an appointment from one of the given
	// statuses to the target status. It returns nil when no appointment
	// matched, either because the record is missing or because it has
	// already left the expected state.
	TransitionStatus(ctx context.Context, orgID, id string, from []string, to string) (*models.Appointment, error)
	// AssignVolunteer sets the hosting volunteer and marks the appointment
	// assigned, with the same conditional semantics as TransitionStatus.
	AssignVolunteer(ctx context.Context, orgID, id, volunteerID string, from []string) (*models.Appointment, error)
}
