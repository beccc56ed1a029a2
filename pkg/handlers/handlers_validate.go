package handlers

import (
	"net/http"

	"github.com/arnavshah/mentor-scheduler-api/pkg/models"
	"github.com/arnavshah/mentor-scheduler-api/pkg/scheduler"
	"github.com/gin-gonic/gin"
)

// ValidateInput checks a schedule request without assigning any shifts
func (h *Handler) ValidateInput(c *gin.Context) {
	var input models.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	if len(input.MentorRoster) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "At least one mentor is required",
		})
		return
	}

	if len(input.SeasonalShiftInfo) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "At least one season is required",
		})
		return
	}

	if err := scheduler.CheckInput(input, h.Config.SchedulerOptions()); err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"mentor_count":  len(input.MentorRoster),
			"season_count":  len(input.SeasonalShiftInfo),
			"holiday_count": len(input.HolidayConfig.Dates),
			"days_in_month": scheduler.DaysInMonth(input.Year, input.Month),
		},
	})
}
