package availability

import (
	"context"
	"time"

	"shelterhub/models"
)

// DataAccess is the narrow read surface the engine computes from. The
// production implementation wraps the Mongo repositories; tests plug in
// in-memory fakes.
type DataAccess interface {
	// OrganizationByID resolves the caller's organization scope.
	OrganizationByID(ctx context.Context, orgID string) (*models.Organization, error)
	// VolunteersByIDs returns the volunteers from ids that exist, are active,
	// and belong to the organization. Missing IDs are simply absent.
	VolunteersByIDs(ctx context.Context, orgID string, ids []string) ([]models.Volunteer, error)
	// PetByID returns nil without error when no such pet record exists.
	PetByID(ctx context.Context, orgID, petID string) (*models.Pet, error)
	// AppointmentsOverlapping returns appointments in a blocking status whose
	// span intersects [dayStart, dayEnd).
	AppointmentsOverlapping(ctx context.Context, orgID string, dayStart, dayEnd time.Time) ([]models.Appointment, error)
}

// Engine computes bookable adoption-visit windows for a shelter's day.
type Engine interface {
	ComputeAvailability(ctx context.Context, orgID string, req models.AvailabilityRequest) (*models.AvailabilityResult, error)
}

// DefaultEngine is the production implementation.
type DefaultEngine struct {
	Data DataAccess

	// DefaultDuration is the slot length used when a request omits one.
	DefaultDuration int
	// DefaultZone is the IANA zone used when neither the request nor the
	// organization record carries one.
	DefaultZone string
}
