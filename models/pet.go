package models

import "time"

// Pet statuses shown in the portal. Status does not gate scheduling; a pet
// on hold can still receive visits from its allow-listed volunteers.
const (
	PetStatusAdoptable = "adoptable"
	PetStatusHold      = "hold"
	PetStatusAdopted   = "adopted"
)

// PetException is a recurring weekly blackout window for one pet, independent
// of any volunteer (feeding, medication, kennel cleaning).
type PetException struct {
	DayOfWeek time.Weekday `bson:"dayOfWeek" json:"dayOfWeek"`
	Start     string       `bson:"start" json:"start"` // "HH:MM"
	End       string       `bson:"end" json:"end"`     // "HH:MM"
	Reason    string       `bson:"reason,omitempty" json:"reason,omitempty"`
}

// Pet is a schedulable shelter animal.
type Pet struct {
	ID             string         `bson:"id" json:"id"`
	OrganizationID string         `bson:"organizationId" json:"organizationId"`
	Name           string         `bson:"name" json:"name"`
	Species        string         `bson:"species,omitempty" json:"species,omitempty"`
	Breed          string         `bson:"breed,omitempty" json:"breed,omitempty"`
	Status         string         `bson:"status" json:"status"` // e.g. "adoptable", "hold", "adopted"
	// EligibleVolunteerIDs is an optional allow-list. Empty means every
	// volunteer may host visits for this pet.
	EligibleVolunteerIDs []string       `bson:"eligibleVolunteerIds,omitempty" json:"eligibleVolunteerIds,omitempty"`
	Exceptions           []PetException `bson:"exceptions,omitempty" json:"exceptions,omitempty"`
	CreatedAt            time.Time      `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt            time.Time      `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// ExceptionsFor returns the pet's blackout windows for a weekday.
func (p *Pet) ExceptionsFor(day time.Weekday) []PetException {
	var out []PetException
	for _, e := range p.Exceptions {
		if e.DayOfWeek == day {
			out = append(out, e)
		}
	}
	return out
}

// AllowsVolunteer reports whether the pet's allow-list admits the volunteer.
// An empty allow-list admits everyone.
func (p *Pet) AllowsVolunteer(volunteerID string) bool {
	if len(p.EligibleVolunteerIDs) == 0 {
		return true
	}
	for _, id := range p.EligibleVolunteerIDs {
		if id == volunteerID {
			return true
		}
	}
	return false
}
