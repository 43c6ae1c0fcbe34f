package handlers

import (
	"net/http"

	"shelterhub/models"
	"shelterhub/services/roster"
	"shelterhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RosterHandler exposes volunteer and pet record management.
type RosterHandler struct {
	Service roster.RosterService
}

// NewRosterHandler creates a new RosterHandler.
func NewRosterHandler(svc roster.RosterService) *RosterHandler {
	return &RosterHandler{Service: svc}
}

// createVolunteerRequest carries a new volunteer's profile together with an
// optional initial weekly schedule.
type createVolunteerRequest struct {
	Name         string                     `json:"name" binding:"required"`
	Email        string                     `json:"email,omitempty"`
	Phone        string                     `json:"phone,omitempty"`
	WorkSchedule []models.WorkScheduleEntry `json:"workSchedule,omitempty"`
}

// CreateVolunteerHandler registers a volunteer.
func (rh *RosterHandler) CreateVolunteerHandler(c *gin.Context) {
	logger := utils.GetLogger()

	orgID, ok := orgIDFromContext(c)
	if !ok {
		return
	}

	var req createVolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	profile := roster.VolunteerProfile{Name: req.Name, Email: req.Email, Phone: req.Phone}
	vol, err := rh.Service.CreateVolunteer(c.Request.Context(), orgID, profile, req.WorkSchedule)
	if err != nil {
		logger.Warn("Volunteer creation rejected", zap.String("orgId", orgID), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vol)
}

// GetVolunteerHandler returns one volunteer by id.
func (rh *RosterHandler) GetVolunteerHandler(c *gin.Context) {
	orgID, ok := orgIDFromContext(c)
	if !ok {
		return
	}

	vol, err := rh.Service.GetVolunteer(c.Request.Context(), orgID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vol)
}

// ListVolunteersHandler returns the organization's active volunteers.
func (rh *RosterHandler) ListVolunteersHandler(c *gin.Context) {
	orgID, ok := orgIDFromContext(c)
	if !ok {
		return
	}

	vols, err := rh.Service.ListVolunteers(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"volunteers": vols})
}

// UpdateVolunteerHandler updates a volunteer's profile fields.
func (rh *RosterHandler) UpdateVolunteerHandler(c *gin.Context) {
	orgID, ok := orgIDFromContext(c)
	if !ok {
		return
	}

	var profile roster.VolunteerProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	vol, err := rh.Service.UpdateVolunteerProfile(c.Request.Context(), orgID, c.Param("id"), profile)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vol)
}

// DeactivateVolunteerHandler removes a volunteer from scheduling without
// deleting their record.
func (rh *RosterHandler) DeactivateVolunteerHandler(c *gin.Context) {
	orgID, ok := orgIDFromContext(c)
	if !ok {
		return
	}

	if err := rh.Service.DeactivateVolunteer(c.Request.Context(), orgID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Volunteer deactivated"})
}

// ReplaceScheduleHandler swaps a volunteer's entire weekly schedule.
func (rh *RosterHandler) ReplaceScheduleHandler(c *gin.Context) {
	orgID, ok := orgIDFromContext(c)
	if !ok {
		return
	}

	var req struct {
		Entries []models.WorkScheduleEntry `json:"entries"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	vol, err := rh.Service.ReplaceWorkSchedule(c.Request.Context(), orgID, c.Param("id"), req.Entries)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vol)
}

// AddScheduleExceptionHandler records a date-specific schedule override.
func (rh *RosterHandler) AddScheduleExceptionHandler(c *gin.Context) {
	orgID, ok := orgIDFromContext(c)
	if !ok {
		return
	}

	var exc models.ScheduleException
	if err := c.ShouldBindJSON(&exc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	vol, err := rh.Service.AddScheduleException(c.Request.Context(), orgID, c.Param("id"), exc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vol)
}

// RemoveScheduleExceptionHandler drops the override for one date.
func (rh *RosterHandler) RemoveScheduleExceptionHandler(c *gin.Context) {
	orgID, ok := orgIDFromContext(c)
	if !ok {
		return
	}

	vol, err := rh.Service.RemoveScheduleException(c.Request.Context(), orgID, c.Param("id"), c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vol)
}

// CreatePetHandler registers a pet.
func (rh *RosterHandler) CreatePetHandler(c *gin.Context) {
	logger := utils.GetLogger()

	orgID, ok := orgIDFromContext(c)
	if !ok {
		return
	}

	var profile roster.PetProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	pet, err := rh.Service.CreatePet(c.Request.Context(), orgID, profile)
	if err != nil {
		logger.Warn("Pet creation rejected", zap.String("orgId", orgID), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, pet)
}

// GetPetHandler returns one pet by id.
func (rh *RosterHandler) GetPetHandler(c *gin.Context) {
	orgID, ok := orgIDFromContext(c)
	if !ok {
		return
	}

	pet, err := rh.Service.GetPet(c.Request.Context(), orgID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pet)
}

// ListPetsHandler returns the organization's pets.
func (rh *RosterHandler) ListPetsHandler(c *gin.Context) {
	orgID, ok := orgIDFromContext(c)
	if !ok {
		return
	}

	pets, err := rh.Service.ListPets(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pets": pets})
}

// UpdatePetHandler updates a pet's profile fields.
func (rh *RosterHandler) UpdatePetHandler(c *gin.Context) {
	orgID, ok := orgIDFromContext(c)
	if !ok {
		return
	}

	var profile roster.PetProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	pet, err := rh.Service.UpdatePetProfile(c.Request.Context(), orgID, c.Param("id"), profile)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pet)
}

// SetPetEligibilityHandler replaces a pet's volunteer allow-list. An empty
// list removes the restriction.
func (rh *RosterHandler) SetPetEligibilityHandler(c *gin.Context) {
	orgID, ok := orgIDFromContext(c)
	if !ok {
		return
	}

	var req struct {
		VolunteerIDs []string `json:"volunteerIds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	pet, err := rh.Service.SetPetEligibility(c.Request.Context(), orgID, c.Param("id"), req.VolunteerIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pet)
}

// AddPetExceptionHandler records a recurring weekly blackout for a pet.
func (rh *RosterHandler) AddPetExceptionHandler(c *gin.Context) {
	orgID, ok := orgIDFromContext(c)
	if !ok {
		return
	}

	var exc models.PetException
	if err := c.ShouldBindJSON(&exc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	pet, err := rh.Service.AddPetException(c.Request.Context(), orgID, c.Param("id"), exc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pet)
}
