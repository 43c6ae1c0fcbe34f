package models

import "time"

// Appointment statuses. The first four are "active": they block time on the
// availability grid. The rest no longer hold a window.
const (
	AppointmentPending    = "pending_confirmation"
	AppointmentConfirmed  = "confirmed"
	AppointmentAssigned   = "assigned"
	AppointmentInProgress = "in_progress"
	AppointmentCompleted  = "completed"
	AppointmentCancelled  = "cancelled"
	AppointmentExpired    = "expired"
)

// ActiveAppointmentStatuses are the status values that count as scheduling
// conflicts.
var ActiveAppointmentStatuses = []string{
	AppointmentPending,
	AppointmentConfirmed,
	AppointmentAssigned,
	AppointmentInProgress,
}

// Appointment is a booked adoption visit. VolunteerID and PetID are each
// optional: a visit may be held before a host is assigned, and walk-in visits
// may not involve a specific pet. StartTime/EndTime are absolute instants;
// Date is denormalized in the organization's zone for day-scoped queries.
type Appointment struct {
	ID             string    `bson:"id" json:"id"`
	OrganizationID string    `bson:"organizationId" json:"organizationId"`
	VolunteerID    string    `bson:"volunteerId,omitempty" json:"volunteerId,omitempty"`
	PetID          string    `bson:"petId,omitempty" json:"petId,omitempty"`
	AdopterName    string    `bson:"adopterName,omitempty" json:"adopterName,omitempty"`
	AdopterEmail   string    `bson:"adopterEmail,omitempty" json:"adopterEmail,omitempty"`
	Date           string    `bson:"date" json:"date"` // "2006-01-02"
	StartTime      time.Time `bson:"startTime" json:"startTime"`
	EndTime        time.Time `bson:"endTime" json:"endTime"`
	Status         string    `bson:"status" json:"status"`
	Notes          string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// IsActive reports whether the appointment still blocks time.
func (a *Appointment) IsActive() bool {
	for _, s := range ActiveAppointmentStatuses {
		if a.Status == s {
			return true
		}
	}
	return false
}

// AppointmentExpirePayload is the queue payload for hold-expiry tasks.
type AppointmentExpirePayload struct {
	AppointmentID  string `json:"appointmentId"`
	OrganizationID string `json:"organizationId"`
}
