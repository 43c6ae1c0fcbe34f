package handlers

import (
	staffRepo "shelterhub/database/repository/staff"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	StaffRepo staffRepo.StaffRepository

	Availability *AvailabilityHandler
	Appointments *AppointmentHandler
	Roster       *RosterHandler
}
