package routes

import (
	"net/http"
	"time"

	"shelterhub/handlers"
	"shelterhub/middleware"
	"shelterhub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterAvailabilityRoutes registers the availability query endpoint.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))
		api.POST("/query", hb.Availability.QueryHandler)
	}
}

// RegisterAppointmentRoutes registers the adoption-visit lifecycle endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))
		api.POST("", hb.Appointments.BookHandler)
		api.GET("", hb.Appointments.ListByDateHandler)
		api.GET("/:id", hb.Appointments.GetHandler)
		api.POST("/:id/confirm", hb.Appointments.ConfirmHandler)
		api.POST("/:id/assign", hb.Appointments.AssignHandler)
		api.POST("/:id/checkin", hb.Appointments.CheckInHandler)
		api.POST("/:id/complete", hb.Appointments.CompleteHandler)
		api.POST("/:id/cancel", hb.Appointments.CancelHandler)
	}
}

// RegisterVolunteerRoutes registers volunteer roster management endpoints.
func RegisterVolunteerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/volunteers")
	{
		api.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))
		api.POST("", hb.Roster.CreateVolunteerHandler)
		api.GET("", hb.Roster.ListVolunteersHandler)
		api.GET("/:id", hb.Roster.GetVolunteerHandler)
		api.PUT("/:id", hb.Roster.UpdateVolunteerHandler)
		api.DELETE("/:id", hb.Roster.DeactivateVolunteerHandler)
		api.PUT("/:id/schedule", hb.Roster.ReplaceScheduleHandler)
		api.POST("/:id/schedule/exceptions", hb.Roster.AddScheduleExceptionHandler)
		api.DELETE("/:id/schedule/exceptions/:date", hb.Roster.RemoveScheduleExceptionHandler)
	}
}

// RegisterPetRoutes registers pet roster management endpoints.
func RegisterPetRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/pets")
	{
		api.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))
		api.POST("", hb.Roster.CreatePetHandler)
		api.GET("", hb.Roster.ListPetsHandler)
		api.GET("/:id", hb.Roster.GetPetHandler)
		api.PUT("/:id", hb.Roster.UpdatePetHandler)
		api.PUT("/:id/eligibility", hb.Roster.SetPetEligibilityHandler)
		api.POST("/:id/exceptions", hb.Roster.AddPetExceptionHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterMetricsRoute exposes Prometheus metrics.
func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAvailabilityRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterVolunteerRoutes(r, hb)
	RegisterPetRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterMetricsRoute(r)
}
