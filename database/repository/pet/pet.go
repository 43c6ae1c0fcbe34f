package petRepo

import (
	"context"

	"shelterhub/models"
)

// PetRepository defines data access methods for pet records.
type PetRepository interface {
	Create(ctx context.Context, pet *models.Pet) error
	// GetByID returns nil without error when no such pet exists; callers
	// decide whether a missing record is fatal.
	GetByID(ctx context.Context, orgID, id string) (*models.Pet, error)
	ListByOrganization(ctx context.Context, orgID string) ([]models.Pet, error)
	Update(ctx context.Context, pet *models.Pet) error
	SetEligibleVolunteers(ctx context.Context, orgID, id string, volunteerIDs []string) (*models.Pet, error)
	AddException(ctx context.Context, orgID, id string, exc models.PetException) (*models.Pet, error)
}
