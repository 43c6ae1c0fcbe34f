package models

import "time"

// Organization is one shelter. Its timezone is the default zone for
// availability computations when a request does not name one.
type Organization struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Timezone  string    `bson:"timezone,omitempty" json:"timezone,omitempty"` // IANA name, e.g. "America/Chicago"
	Address   string    `bson:"address,omitempty" json:"address,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt,omitzero"`
}

// StaffAccount is a portal login belonging to one organization. Password and
// invitation flows live outside this service; requests arrive with a
// pre-issued token whose subject is the staff id.
type StaffAccount struct {
	ID             string    `bson:"id" json:"id"`
	Email          string    `bson:"email" json:"email"`
	OrganizationID string    `bson:"organizationId,omitempty" json:"organizationId,omitempty"`
	Role           string    `bson:"role,omitempty" json:"role,omitempty"`
	Active         bool      `bson:"active" json:"active"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt,omitzero"`
}
