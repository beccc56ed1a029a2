package handlers

import (
	"net/http"

	"github.com/arnavshah/mentor-scheduler-api/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Version is reported by the root route
const Version = "3.0.0"

// NewRouter builds the gin engine with every route
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(logger.Middleware(h.Log), gin.Recovery())

	// Admin interface - serve static files from embedded FS
	r.StaticFS("/static", h.GetStaticFS())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Mentor Shift Scheduler API",
			"version": Version,
		})
	})
	if h.Metrics != nil {
		r.GET("/metrics", h.Metrics.Handler())
	}

	r.GET("/admin", h.AdminInterface)
	r.POST("/admin/login", h.Login)

	// Admin Endpoints
	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)
	}

	// Scheduler Endpoints
	api := r.Group("/api")
	api.Use(h.APIKeyMiddleware())
	{
		api.POST("/schedule", h.ScheduleJSON)
		api.POST("/schedule/csv", h.ScheduleCSV)
		api.POST("/validate", h.ValidateInput)
		api.GET("/usage", h.GetMyUsage)

		api.GET("/mentors", h.ListMentors)
		api.PUT("/mentors/:name", h.PutMentor)
		api.DELETE("/mentors/:name", h.DeleteMentor)

		api.GET("/holidays/:year/:month", h.GetHolidays)
		api.PUT("/holidays/:year/:month", h.PutHolidays)

		api.POST("/schedules/:year/:month", h.GenerateMonth)
		api.GET("/schedules/:year/:month", h.GetMonth)
		api.GET("/schedules/:year/:month/csv", h.MonthCSV)
		api.GET("/schedules/:year/:month/validate", h.ValidateMonth)
		api.PUT("/schedules/:year/:month/days/:day/:shift", h.Reassign)
	}

	// Legacy Routes
	r.POST("/schedule/json", h.APIKeyMiddleware(), h.ScheduleJSON)
	r.POST("/schedule/csv", h.APIKeyMiddleware(), h.ScheduleCSV)

	return r
}
