package handlers

import (
	"net/http"

	"github.com/arnavshah/mentor-scheduler-api/pkg/models"
	"github.com/arnavshah/mentor-scheduler-api/pkg/scheduler"
	"github.com/gin-gonic/gin"
)

// ListMentors returns the stored roster
func (h *Handler) ListMentors(c *gin.Context) {
	mentors, err := h.Store.ListMentors()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mentors": mentors})
}

// PutMentor creates or replaces a mentor's constraints
func (h *Handler) PutMentor(c *gin.Context) {
	var in models.MentorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := scheduler.NormalizeMentor(c.Param("name"), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := h.Store.UpsertMentor(m); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// DeleteMentor removes a mentor from the roster
func (h *Handler) DeleteMentor(c *gin.Context) {
	if err := h.Store.DeleteMentor(c.Param("name")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mentor removed"})
}

// GetHolidays returns the holiday days stored for a month
func (h *Handler) GetHolidays(c *gin.Context) {
	year, month, ok := monthParams(c)
	if !ok {
		return
	}
	dates, err := h.Store.GetHolidays(year, month)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year, "month": month, "dates": dates})
}

// PutHolidays replaces the holiday days of a month
func (h *Handler) PutHolidays(c *gin.Context) {
	year, month, ok := monthParams(c)
	if !ok {
		return
	}
	var req struct {
		Dates []int `json:"dates"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// an empty calendar catches bad months and out of range days
	if _, err := scheduler.BuildCalendar(year, month, req.Dates, allYear); err != nil {
		h.fail(c, err)
		return
	}
	if err := h.Store.SetHolidays(year, month, req.Dates); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year, "month": month, "dates": req.Dates})
}

var allYear = map[string]models.SeasonInfo{
	"all": {DateRange: models.DateRange{Start: "01-01", End: "01-01"}},
}
