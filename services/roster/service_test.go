package roster

import (
	"context"
	"testing"
	"time"

	"shelterhub/models"
	"shelterhub/services/availability"

	"github.com/stretchr/testify/assert"
)

type fakeVolRepo struct {
	vols map[string]*models.Volunteer
}

func newFakeVolRepo() *fakeVolRepo {
	return &fakeVolRepo{vols: map[string]*models.Volunteer{}}
}

func (f *fakeVolRepo) Create(ctx context.Context, v *models.Volunteer) error {
	cp := *v
	f.vols[v.ID] = &cp
	return nil
}

func (f *fakeVolRepo) GetByID(ctx context.Context, orgID, id string) (*models.Volunteer, error) {
	v, ok := f.vols[id]
	if !ok || v.OrganizationID != orgID {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (f *fakeVolRepo) GetByIDs(ctx context.Context, orgID string, ids []string) ([]models.Volunteer, error) {
	var out []models.Volunteer
	for _, id := range ids {
		if v, ok := f.vols[id]; ok && v.OrganizationID == orgID && v.Active {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *fakeVolRepo) ListByOrganization(ctx context.Context, orgID string) ([]models.Volunteer, error) {
	var out []models.Volunteer
	for _, v := range f.vols {
		if v.OrganizationID == orgID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *fakeVolRepo) Update(ctx context.Context, v *models.Volunteer) error {
	cp := *v
	f.vols[v.ID] = &cp
	return nil
}

func (f *fakeVolRepo) Deactivate(ctx context.Context, orgID, id string) error {
	f.vols[id].Active = false
	return nil
}

func (f *fakeVolRepo) ReplaceWorkSchedule(ctx context.Context, orgID, id string, entries []models.WorkScheduleEntry) (*models.Volunteer, error) {
	v, ok := f.vols[id]
	if !ok || v.OrganizationID != orgID {
		return nil, nil
	}
	v.WorkSchedule = entries
	cp := *v
	return &cp, nil
}

func (f *fakeVolRepo) AddScheduleException(ctx context.Context, orgID, id string, exc models.ScheduleException) (*models.Volunteer, error) {
	v, ok := f.vols[id]
	if !ok || v.OrganizationID != orgID {
		return nil, nil
	}
	v.ScheduleExceptions = append(v.ScheduleExceptions, exc)
	cp := *v
	return &cp, nil
}

func (f *fakeVolRepo) RemoveScheduleException(ctx context.Context, orgID, id, date string) (*models.Volunteer, error) {
	v, ok := f.vols[id]
	if !ok || v.OrganizationID != orgID {
		return nil, nil
	}
	kept := v.ScheduleExceptions[:0]
	for _, exc := range v.ScheduleExceptions {
		if exc.Date != date {
			kept = append(kept, exc)
		}
	}
	v.ScheduleExceptions = kept
	cp := *v
	return &cp, nil
}

type fakePetRepo struct {
	pets map[string]*models.Pet
}

func newFakePetRepo() *fakePetRepo {
	return &fakePetRepo{pets: map[string]*models.Pet{}}
}

func (f *fakePetRepo) Create(ctx context.Context, p *models.Pet) error {
	cp := *p
	f.pets[p.ID] = &cp
	return nil
}

func (f *fakePetRepo) GetByID(ctx context.Context, orgID, id string) (*models.Pet, error) {
	p, ok := f.pets[id]
	if !ok || p.OrganizationID != orgID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePetRepo) ListByOrganization(ctx context.Context, orgID string) ([]models.Pet, error) {
	var out []models.Pet
	for _, p := range f.pets {
		if p.OrganizationID == orgID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePetRepo) Update(ctx context.Context, p *models.Pet) error {
	cp := *p
	f.pets[p.ID] = &cp
	return nil
}

func (f *fakePetRepo) SetEligibleVolunteers(ctx context.Context, orgID, id string, volunteerIDs []string) (*models.Pet, error) {
	p, ok := f.pets[id]
	if !ok || p.OrganizationID != orgID {
		return nil, nil
	}
	p.EligibleVolunteerIDs = volunteerIDs
	cp := *p
	return &cp, nil
}

func (f *fakePetRepo) AddException(ctx context.Context, orgID, id string, exc models.PetException) (*models.Pet, error) {
	p, ok := f.pets[id]
	if !ok || p.OrganizationID != orgID {
		return nil, nil
	}
	p.Exceptions = append(p.Exceptions, exc)
	cp := *p
	return &cp, nil
}

func newService(t *testing.T) (*DefaultRosterService, *fakeVolRepo, *fakePetRepo) {
	t.Helper()
	vols := newFakeVolRepo()
	pets := newFakePetRepo()
	svc, err := NewDefaultRosterService(vols, pets)
	assert.NoError(t, err)
	return svc, vols, pets
}

func TestCreateVolunteer(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	t.Run("creates with a valid schedule", func(t *testing.T) {
		v, err := svc.CreateVolunteer(ctx, "org-1", VolunteerProfile{Name: "Dana"}, []models.WorkScheduleEntry{
			{DayOfWeek: time.Monday, Start: "09:00", End: "17:00"},
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, v.ID)
		assert.True(t, v.Active)
		assert.Equal(t, "org-1", v.OrganizationID)
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		_, err := svc.CreateVolunteer(ctx, "org-1", VolunteerProfile{Name: "   "}, nil)
		assert.Equal(t, availability.CodeInvalidArgument, availability.CodeOf(err))
	})

	t.Run("rejects a malformed schedule entry", func(t *testing.T) {
		_, err := svc.CreateVolunteer(ctx, "org-1", VolunteerProfile{Name: "Dana"}, []models.WorkScheduleEntry{
			{DayOfWeek: time.Monday, Start: "9am", End: "17:00"},
		})
		assert.Equal(t, availability.CodeInvalidArgument, availability.CodeOf(err))
	})

	t.Run("rejects an inverted window", func(t *testing.T) {
		_, err := svc.CreateVolunteer(ctx, "org-1", VolunteerProfile{Name: "Dana"}, []models.WorkScheduleEntry{
			{DayOfWeek: time.Monday, Start: "17:00", End: "09:00"},
		})
		assert.Equal(t, availability.CodeInvalidArgument, availability.CodeOf(err))
	})
}

func TestWorkScheduleManagement(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)
	v, err := svc.CreateVolunteer(ctx, "org-1", VolunteerProfile{Name: "Dana"}, nil)
	assert.NoError(t, err)

	t.Run("replace schedule", func(t *testing.T) {
		updated, err := svc.ReplaceWorkSchedule(ctx, "org-1", v.ID, []models.WorkScheduleEntry{
			{DayOfWeek: time.Tuesday, Start: "10:00", End: "16:00"},
		})
		assert.NoError(t, err)
		assert.Len(t, updated.WorkSchedule, 1)
		assert.Equal(t, time.Tuesday, updated.WorkSchedule[0].DayOfWeek)
	})

	t.Run("replace rejects bad weekday", func(t *testing.T) {
		_, err := svc.ReplaceWorkSchedule(ctx, "org-1", v.ID, []models.WorkScheduleEntry{
			{DayOfWeek: 9, Start: "10:00", End: "16:00"},
		})
		assert.Equal(t, availability.CodeInvalidArgument, availability.CodeOf(err))
	})

	t.Run("unknown volunteer is not found", func(t *testing.T) {
		_, err := svc.ReplaceWorkSchedule(ctx, "org-1", "ghost", nil)
		assert.Equal(t, availability.CodeNotFound, availability.CodeOf(err))
	})

	t.Run("add and remove an exception", func(t *testing.T) {
		updated, err := svc.AddScheduleException(ctx, "org-1", v.ID, models.ScheduleException{
			Date: "2026-09-07", Kind: models.ExceptionUnavailable,
		})
		assert.NoError(t, err)
		assert.Len(t, updated.ScheduleExceptions, 1)

		updated, err = svc.RemoveScheduleException(ctx, "org-1", v.ID, "2026-09-07")
		assert.NoError(t, err)
		assert.Empty(t, updated.ScheduleExceptions)
	})

	t.Run("exception validation", func(t *testing.T) {
		_, err := svc.AddScheduleException(ctx, "org-1", v.ID, models.ScheduleException{
			Date: "next tuesday", Kind: models.ExceptionUnavailable,
		})
		assert.Equal(t, availability.CodeInvalidArgument, availability.CodeOf(err))

		_, err = svc.AddScheduleException(ctx, "org-1", v.ID, models.ScheduleException{
			Date: "2026-09-07", Kind: "vacation",
		})
		assert.Equal(t, availability.CodeInvalidArgument, availability.CodeOf(err))

		_, err = svc.AddScheduleException(ctx, "org-1", v.ID, models.ScheduleException{
			Date: "2026-09-07", Kind: models.ExceptionModified, Start: "10:00",
		})
		assert.Equal(t, availability.CodeInvalidArgument, availability.CodeOf(err))
	})
}

func TestPetManagement(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	t.Run("create defaults the status", func(t *testing.T) {
		p, err := svc.CreatePet(ctx, "org-1", PetProfile{Name: "Biscuit", Species: "dog"})
		assert.NoError(t, err)
		assert.Equal(t, models.PetStatusAdoptable, p.Status)
	})

	t.Run("eligibility requires known volunteers", func(t *testing.T) {
		v, err := svc.CreateVolunteer(ctx, "org-1", VolunteerProfile{Name: "Dana"}, nil)
		assert.NoError(t, err)
		p, err := svc.CreatePet(ctx, "org-1", PetProfile{Name: "Mochi"})
		assert.NoError(t, err)

		updated, err := svc.SetPetEligibility(ctx, "org-1", p.ID, []string{v.ID})
		assert.NoError(t, err)
		assert.Equal(t, []string{v.ID}, updated.EligibleVolunteerIDs)

		_, err = svc.SetPetEligibility(ctx, "org-1", p.ID, []string{v.ID, "ghost"})
		assert.Equal(t, availability.CodeInvalidArgument, availability.CodeOf(err))
	})

	t.Run("empty eligibility clears the restriction", func(t *testing.T) {
		p, err := svc.CreatePet(ctx, "org-1", PetProfile{Name: "Clover"})
		assert.NoError(t, err)
		updated, err := svc.SetPetEligibility(ctx, "org-1", p.ID, nil)
		assert.NoError(t, err)
		assert.Empty(t, updated.EligibleVolunteerIDs)
	})

	t.Run("pet exception validation", func(t *testing.T) {
		p, err := svc.CreatePet(ctx, "org-1", PetProfile{Name: "Pepper"})
		assert.NoError(t, err)

		updated, err := svc.AddPetException(ctx, "org-1", p.ID, models.PetException{
			DayOfWeek: time.Friday, Start: "12:00", End: "13:00", Reason: "grooming",
		})
		assert.NoError(t, err)
		assert.Len(t, updated.Exceptions, 1)

		_, err = svc.AddPetException(ctx, "org-1", p.ID, models.PetException{
			DayOfWeek: time.Friday, Start: "13:00", End: "12:00",
		})
		assert.Equal(t, availability.CodeInvalidArgument, availability.CodeOf(err))
	})

	t.Run("deactivated volunteers cannot join an allow-list", func(t *testing.T) {
		v, err := svc.CreateVolunteer(ctx, "org-1", VolunteerProfile{Name: "Riley"}, nil)
		assert.NoError(t, err)
		assert.NoError(t, svc.DeactivateVolunteer(ctx, "org-1", v.ID))

		p, err := svc.CreatePet(ctx, "org-1", PetProfile{Name: "Ziggy"})
		assert.NoError(t, err)
		_, err = svc.SetPetEligibility(ctx, "org-1", p.ID, []string{v.ID})
		assert.Equal(t, availability.CodeInvalidArgument, availability.CodeOf(err))
	})
}
