package volunteerRepo

import (
	"context"

	"shelterhub/models"
)

// VolunteerRepository defines data access methods for volunteer records.
type VolunteerRepository interface {
	Create(ctx context.Context, volunteer *models.Volunteer) error
	GetByID(ctx context.Context, orgID, id string) (*models.Volunteer, error)
	// GetByIDs returns the active volunteers among ids that belong to the
	// organization. IDs with no matching record are silently absent.
	GetByIDs(ctx context.Context, orgID string, ids []string) ([]models.Volunteer, error)
	ListByOrganization(ctx context.Context, orgID string) ([]models.Volunteer, error)
	Update(ctx context.Context, volunteer *models.Volunteer) error
	Deactivate(ctx context.Context, orgID, id string) error
	ReplaceWorkSchedule(ctx context.Context, orgID, id string, entries []models.WorkScheduleEntry) (*models.Volunteer, error)
	AddScheduleException(ctx context.Context, orgID, id string, exc models.ScheduleException) (*models.Volunteer, error)
	RemoveScheduleException(ctx context.Context, orgID, id, date string) (*models.Volunteer, error)
}
