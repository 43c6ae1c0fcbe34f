package roster

import (
	"context"
	"fmt"

	petRepo "shelterhub/database/repository/pet"
	volunteerRepo "shelterhub/database/repository/volunteer"
	"shelterhub/models"
)

// VolunteerProfile carries the editable identity fields of a volunteer.
type VolunteerProfile struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// PetProfile carries the editable identity fields of a pet.
type PetProfile struct {
	Name    string `json:"name" binding:"required"`
	Species string `json:"species,omitempty"`
	Breed   string `json:"breed,omitempty"`
	Status  string `json:"status,omitempty"`
}

// RosterService manages volunteer and pet records, including the schedule
// data the availability engine computes from. All writes are validated here,
// so the engine can trust what it reads.
type RosterService interface {
	CreateVolunteer(ctx context.Context, orgID string, profile VolunteerProfile, schedule []models.WorkScheduleEntry) (*models.Volunteer, error)
	GetVolunteer(ctx context.Context, orgID, id string) (*models.Volunteer, error)
	ListVolunteers(ctx context.Context, orgID string) ([]models.Volunteer, error)
	UpdateVolunteerProfile(ctx context.Context, orgID, id string, profile VolunteerProfile) (*models.Volunteer, error)
	DeactivateVolunteer(ctx context.Context, orgID, id string) error
	ReplaceWorkSchedule(ctx context.Context, orgID, id string, entries []models.WorkScheduleEntry) (*models.Volunteer, error)
	AddScheduleException(ctx context.Context, orgID, id string, exc models.ScheduleException) (*models.Volunteer, error)
	RemoveScheduleException(ctx context.Context, orgID, id, date string) (*models.Volunteer, error)

	CreatePet(ctx context.Context, orgID string, profile PetProfile) (*models.Pet, error)
	GetPet(ctx context.Context, orgID, id string) (*models.Pet, error)
	ListPets(ctx context.Context, orgID string) ([]models.Pet, error)
	UpdatePetProfile(ctx context.Context, orgID, id string, profile PetProfile) (*models.Pet, error)
	SetPetEligibility(ctx context.Context, orgID, id string, volunteerIDs []string) (*models.Pet, error)
	AddPetException(ctx context.Context, orgID, id string, exc models.PetException) (*models.Pet, error)
}

// DefaultRosterService is the production implementation.
type DefaultRosterService struct {
	Volunteers volunteerRepo.VolunteerRepository
	Pets       petRepo.PetRepository
}

func NewDefaultRosterService(
	volunteers volunteerRepo.VolunteerRepository,
	pets petRepo.PetRepository,
) (*DefaultRosterService, error) {
	if volunteers == nil || pets == nil {
		return nil, fmt.Errorf("roster service initialization error: one or more dependencies are nil")
	}

	return &DefaultRosterService{Volunteers: volunteers, Pets: pets}, nil
}
