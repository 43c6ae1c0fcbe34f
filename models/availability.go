package models

// AvailabilityRequest asks for the bookable windows on one calendar day.
type AvailabilityRequest struct {
	VolunteerIDs    []string `json:"volunteerIds" binding:"required"`
	PetID           string   `json:"petId,omitempty"`
	Date            string   `json:"date" binding:"required"` // "2006-01-02"
	DurationMinutes int      `json:"durationMinutes,omitempty"`
	Timezone        string   `json:"timezone,omitempty"` // IANA name
}

// AvailableTimeSlot is one bookable window, computed fresh per request and
// never persisted. Start/End are minutes from midnight; StartTime/EndTime are
// the same values rendered as "HH:MM" for display.
type AvailableTimeSlot struct {
	Start           int    `json:"start"`
	End             int    `json:"end"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// AvailabilityResult is the availability engine's response. Zero slots is a
// valid business outcome, optionally annotated with a human-readable note.
type AvailabilityResult struct {
	Slots                   []AvailableTimeSlot `json:"slots"`
	Date                    string              `json:"date"`
	Timezone                string              `json:"timezone,omitempty"` // zone the slots are expressed in
	TotalEligibleVolunteers int                 `json:"totalEligibleVolunteers"`
	VolunteersResolved      int                 `json:"volunteersResolved"`
	Note                    string              `json:"note,omitempty"`
}
