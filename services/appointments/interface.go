package appointments

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "shelterhub/database/repository/appointment"
	orgRepo "shelterhub/database/repository/organization"
	"shelterhub/models"
	"shelterhub/services/availability"

	"github.com/hibiken/asynq"
)

// BookRequest places a hold on a visit window. Start and End are minutes
// from midnight on Date, half-open.
type BookRequest struct {
	VolunteerID  string `json:"volunteerId" binding:"required"`
	PetID        string `json:"petId,omitempty"`
	Date         string `json:"date" binding:"required"` // "2006-01-02"
	Start        int    `json:"start"`
	End          int    `json:"end"`
	Timezone     string `json:"timezone,omitempty"`
	AdopterName  string `json:"adopterName" binding:"required"`
	AdopterEmail string `json:"adopterEmail,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// AppointmentService manages the adoption-visit lifecycle.
type AppointmentService interface {
	// Book re-verifies availability for the requested window and creates an
	// unconfirmed hold that expires unless confirmed in time.
	Book(ctx context.Context, orgID string, req BookRequest) (*models.Appointment, error)
	Confirm(ctx context.Context, orgID, id string) (*models.Appointment, error)
	// Assign pins the hosting volunteer on a pending or confirmed visit.
	Assign(ctx context.Context, orgID, id, volunteerID string) (*models.Appointment, error)
	CheckIn(ctx context.Context, orgID, id string) (*models.Appointment, error)
	Complete(ctx context.Context, orgID, id string) (*models.Appointment, error)
	Cancel(ctx context.Context, orgID, id string) (*models.Appointment, error)
	GetByID(ctx context.Context, orgID, id string) (*models.Appointment, error)
	ListByDate(ctx context.Context, orgID, date, timezone string) ([]models.Appointment, error)
	// Expire releases a still-unconfirmed hold. It reports false when the
	// appointment already left the pending state.
	Expire(ctx context.Context, orgID, id string) (bool, error)
}

// TaskQueue is the slice of the asynq client used to schedule delayed work.
type TaskQueue interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo        appointmentRepo.AppointmentRepository
	Orgs        orgRepo.OrganizationRepository
	Engine      availability.Engine
	Queue       TaskQueue
	HoldTTL     time.Duration
	DefaultZone string
}

func NewDefaultAppointmentService(
	repo appointmentRepo.AppointmentRepository,
	orgs orgRepo.OrganizationRepository,
	engine availability.Engine,
	queue TaskQueue,
	holdTTL time.Duration,
	defaultZone string,
) (*DefaultAppointmentService, error) {
	if repo == nil || orgs == nil || engine == nil || queue == nil {
		return nil, fmt.Errorf("appointment service initialization error: one or more dependencies are nil")
	}

	return &DefaultAppointmentService{
		Repo:        repo,
		Orgs:        orgs,
		Engine:      engine,
		Queue:       queue,
		HoldTTL:     holdTTL,
		DefaultZone: defaultZone,
	}, nil
}
