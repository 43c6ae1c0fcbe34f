package handlers

import (
	"context"
	"net/http"

	"shelterhub/models"
	"shelterhub/services/appointments"
	"shelterhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes the adoption-visit lifecycle.
type AppointmentHandler struct {
	Service appointments.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(svc appointments.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// BookHandler places a hold on a visit window.
func (ah *AppointmentHandler) BookHandler(c *gin.Context) {
	logger := utils.GetLogger()

	orgID, ok := orgIDFromContext(c)
	if !ok {
		return
	}

	var req appointments.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	appt, err := ah.Service.Book(c.Request.Context(), orgID, req)
	if err != nil {
		logger.Warn("Booking rejected",
			zap.String("orgId", orgID), zap.String("volunteerId", req.VolunteerID), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, appt)
}

// GetHandler returns one appointment by id.
func (ah *AppointmentHandler) GetHandler(c *gin.Context) {
	orgID, ok := orgIDFromContext(c)
	if !ok {
		return
	}

	appt, err := ah.Service.GetByID(c.Request.Context(), orgID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ListByDateHandler returns the appointments overlapping one calendar day.
func (ah *AppointmentHandler) ListByDateHandler(c *gin.Context) {
	orgID, ok := orgIDFromContext(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'date' is required"})
		return
	}

	appts, err := ah.Service.ListByDate(c.Request.Context(), orgID, date, c.Query("timezone"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts, "date": date})
}

// ConfirmHandler moves a pending hold to confirmed.
func (ah *AppointmentHandler) ConfirmHandler(c *gin.Context) {
	ah.transition(c, ah.Service.Confirm)
}

// CheckInHandler marks a confirmed visit as in progress.
func (ah *AppointmentHandler) CheckInHandler(c *gin.Context) {
	ah.transition(c, ah.Service.CheckIn)
}

// CompleteHandler closes out a visit that ran.
func (ah *AppointmentHandler) CompleteHandler(c *gin.Context) {
	ah.transition(c, ah.Service.Complete)
}

// CancelHandler cancels any active appointment.
func (ah *AppointmentHandler) CancelHandler(c *gin.Context) {
	ah.transition(c, ah.Service.Cancel)
}

// AssignHandler pins the hosting volunteer on a visit.
func (ah *AppointmentHandler) AssignHandler(c *gin.Context) {
	logger := utils.GetLogger()

	orgID, ok := orgIDFromContext(c)
	if !ok {
		return
	}

	var req struct {
		VolunteerID string `json:"volunteerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	appt, err := ah.Service.Assign(c.Request.Context(), orgID, c.Param("id"), req.VolunteerID)
	if err != nil {
		logger.Warn("Assignment rejected",
			zap.String("appointmentId", c.Param("id")), zap.String("volunteerId", req.VolunteerID), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, appt)
}

// transition runs one lifecycle operation addressed by the :id route param.
func (ah *AppointmentHandler) transition(c *gin.Context, op func(ctx context.Context, orgID, id string) (*models.Appointment, error)) {
	orgID, ok := orgIDFromContext(c)
	if !ok {
		return
	}

	appt, err := op(c.Request.Context(), orgID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}
