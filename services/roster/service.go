package roster

import (
	"context"
	"strings"
	"time"

	"shelterhub/models"
	"shelterhub/services/availability"

	"github.com/google/uuid"
)

func (s *DefaultRosterService) CreateVolunteer(ctx context.Context, orgID string, profile VolunteerProfile, schedule []models.WorkScheduleEntry) (*models.Volunteer, error) {
	if strings.TrimSpace(profile.Name) == "" {
		return nil, availability.NewInvalidArgument("volunteer name is required")
	}
	if err := validateWorkSchedule(schedule); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	v := &models.Volunteer{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		Name:           profile.Name,
		Email:          profile.Email,
		Phone:          profile.Phone,
		Active:         true,
		WorkSchedule:   schedule,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Volunteers.Create(ctx, v); err != nil {
		return nil, availability.NewDependencyError("creating volunteer", err)
	}
	return v, nil
}

func (s *DefaultRosterService) GetVolunteer(ctx context.Context, orgID, id string) (*models.Volunteer, error) {
	v, err := s.Volunteers.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, availability.NewDependencyError("fetching volunteer", err)
	}
	if v == nil {
		return nil, availability.NewNotFound("volunteer %s not found", id)
	}
	return v, nil
}

func (s *DefaultRosterService) ListVolunteers(ctx context.Context, orgID string) ([]models.Volunteer, error) {
	vols, err := s.Volunteers.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, availability.NewDependencyError("listing volunteers", err)
	}
	if vols == nil {
		vols = []models.Volunteer{}
	}
	return vols, nil
}

func (s *DefaultRosterService) UpdateVolunteerProfile(ctx context.Context, orgID, id string, profile VolunteerProfile) (*models.Volunteer, error) {
	if strings.TrimSpace(profile.Name) == "" {
		return nil, availability.NewInvalidArgument("volunteer name is required")
	}
	v, err := s.GetVolunteer(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	v.Name = profile.Name
	v.Email = profile.Email
	v.Phone = profile.Phone
	if err := s.Volunteers.Update(ctx, v); err != nil {
		return nil, availability.NewDependencyError("updating volunteer", err)
	}
	return v, nil
}

func (s *DefaultRosterService) DeactivateVolunteer(ctx context.Context, orgID, id string) error {
	if _, err := s.GetVolunteer(ctx, orgID, id); err != nil {
		return err
	}
	if err := s.Volunteers.Deactivate(ctx, orgID, id); err != nil {
		return availability.NewDependencyError("deactivating volunteer", err)
	}
	return nil
}

func (s *DefaultRosterService) ReplaceWorkSchedule(ctx context.Context, orgID, id string, entries []models.WorkScheduleEntry) (*models.Volunteer, error) {
	if err := validateWorkSchedule(entries); err != nil {
		return nil, err
	}
	v, err := s.Volunteers.ReplaceWorkSchedule(ctx, orgID, id, entries)
	if err != nil {
		return nil, availability.NewDependencyError("replacing work schedule", err)
	}
	if v == nil {
		return nil, availability.NewNotFound("volunteer %s not found", id)
	}
	return v, nil
}

func (s *DefaultRosterService) AddScheduleException(ctx context.Context, orgID, id string, exc models.ScheduleException) (*models.Volunteer, error) {
	if err := validateScheduleException(exc); err != nil {
		return nil, err
	}
	v, err := s.Volunteers.AddScheduleException(ctx, orgID, id, exc)
	if err != nil {
		return nil, availability.NewDependencyError("adding schedule exception", err)
	}
	if v == nil {
		return nil, availability.NewNotFound("volunteer %s not found", id)
	}
	return v, nil
}

func (s *DefaultRosterService) RemoveScheduleException(ctx context.Context, orgID, id, date string) (*models.Volunteer, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, availability.NewInvalidArgument("malformed exception date %q: want YYYY-MM-DD", date)
	}
	v, err := s.Volunteers.RemoveScheduleException(ctx, orgID, id, date)
	if err != nil {
		return nil, availability.NewDependencyError("removing schedule exception", err)
	}
	if v == nil {
		return nil, availability.NewNotFound("volunteer %s not found", id)
	}
	return v, nil
}

func (s *DefaultRosterService) CreatePet(ctx context.Context, orgID string, profile PetProfile) (*models.Pet, error) {
	if strings.TrimSpace(profile.Name) == "" {
		return nil, availability.NewInvalidArgument("pet name is required")
	}
	status := profile.Status
	if status == "" {
		status = models.PetStatusAdoptable
	}

	now := time.Now().UTC()
	p := &models.Pet{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		Name:           profile.Name,
		Species:        profile.Species,
		Breed:          profile.Breed,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Pets.Create(ctx, p); err != nil {
		return nil, availability.NewDependencyError("creating pet", err)
	}
	return p, nil
}

func (s *DefaultRosterService) GetPet(ctx context.Context, orgID, id string) (*models.Pet, error) {
	p, err := s.Pets.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, availability.NewDependencyError("fetching pet", err)
	}
	if p == nil {
		return nil, availability.NewNotFound("pet %s not found", id)
	}
	return p, nil
}

func (s *DefaultRosterService) ListPets(ctx context.Context, orgID string) ([]models.Pet, error) {
	pets, err := s.Pets.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, availability.NewDependencyError("listing pets", err)
	}
	if pets == nil {
		pets = []models.Pet{}
	}
	return pets, nil
}

func (s *DefaultRosterService) UpdatePetProfile(ctx context.Context, orgID, id string, profile PetProfile) (*models.Pet, error) {
	if strings.TrimSpace(profile.Name) == "" {
		return nil, availability.NewInvalidArgument("pet name is required")
	}
	p, err := s.GetPet(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	p.Name = profile.Name
	p.Species = profile.Species
	p.Breed = profile.Breed
	if profile.Status != "" {
		p.Status = profile.Status
	}
	if err := s.Pets.Update(ctx, p); err != nil {
		return nil, availability.NewDependencyError("updating pet", err)
	}
	return p, nil
}

// SetPetEligibility replaces the pet's allow-list. An empty list clears the
// restriction so any volunteer may host. Every listed volunteer must exist
// and be active.
func (s *DefaultRosterService) SetPetEligibility(ctx context.Context, orgID, id string, volunteerIDs []string) (*models.Pet, error) {
	if len(volunteerIDs) > 0 {
		found, err := s.Volunteers.GetByIDs(ctx, orgID, volunteerIDs)
		if err != nil {
			return nil, availability.NewDependencyError("verifying volunteers", err)
		}
		known := make(map[string]struct{}, len(found))
		for i := range found {
			known[found[i].ID] = struct{}{}
		}
		for _, vid := range volunteerIDs {
			if _, ok := known[vid]; !ok {
				return nil, availability.NewInvalidArgument("volunteer %s does not exist or is inactive", vid)
			}
		}
	}

	p, err := s.Pets.SetEligibleVolunteers(ctx, orgID, id, volunteerIDs)
	if err != nil {
		return nil, availability.NewDependencyError("setting pet eligibility", err)
	}
	if p == nil {
		return nil, availability.NewNotFound("pet %s not found", id)
	}
	return p, nil
}

func (s *DefaultRosterService) AddPetException(ctx context.Context, orgID, id string, exc models.PetException) (*models.Pet, error) {
	if err := validatePetException(exc); err != nil {
		return nil, err
	}
	p, err := s.Pets.AddException(ctx, orgID, id, exc)
	if err != nil {
		return nil, availability.NewDependencyError("adding pet exception", err)
	}
	if p == nil {
		return nil, availability.NewNotFound("pet %s not found", id)
	}
	return p, nil
}
