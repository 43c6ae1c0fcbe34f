package availability

import (
	"context"
	"time"

	appointmentRepo "shelterhub/database/repository/appointment"
	orgRepo "shelterhub/database/repository/organization"
	petRepo "shelterhub/database/repository/pet"
	volunteerRepo "shelterhub/database/repository/volunteer"
	"shelterhub/models"
)

// RepoData adapts the Mongo repositories to the engine's DataAccess surface.
type RepoData struct {
	Orgs  orgRepo.OrganizationRepository
	Vols  volunteerRepo.VolunteerRepository
	Pets  petRepo.PetRepository
	Appts appointmentRepo.AppointmentRepository
}

func (d *RepoData) OrganizationByID(ctx context.Context, orgID string) (*models.Organization, error) {
	return d.Orgs.GetByID(ctx, orgID)
}

func (d *RepoData) VolunteersByIDs(ctx context.Context, orgID string, ids []string) ([]models.Volunteer, error) {
	return d.Vols.GetByIDs(ctx, orgID, ids)
}

func (d *RepoData) PetByID(ctx context.Context, orgID, petID string) (*models.Pet, error) {
	return d.Pets.GetByID(ctx, orgID, petID)
}

func (d *RepoData) AppointmentsOverlapping(ctx context.Context, orgID string, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	return d.Appts.FindOverlapping(ctx, orgID, dayStart, dayEnd, models.ActiveAppointmentStatuses)
}
