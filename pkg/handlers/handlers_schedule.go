package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/arnavshah/mentor-scheduler-api/pkg/export"
	"github.com/arnavshah/mentor-scheduler-api/pkg/models"
	"github.com/arnavshah/mentor-scheduler-api/pkg/scheduler"
	"github.com/gin-gonic/gin"
)

func openShifts(r *models.ScheduleResult) int {
	n := 0
	for _, d := range r.AssignedDays {
		n += len(d.Shifts)
	}
	return n
}

func (h *Handler) generate(c *gin.Context, input models.ScheduleInput) (*models.ScheduleResult, bool) {
	result, err := scheduler.Generate(input, h.Config.SchedulerOptions())
	if h.Metrics != nil {
		h.Metrics.ObserveGeneration(result, err)
	}
	if err != nil {
		h.fail(c, err)
		return nil, false
	}

	h.RecordUsage(c, openShifts(result), len(result.Mentors))
	h.Log.Info().
		Int("year", result.Year).
		Int("month", result.Month).
		Int("mentors", len(result.Mentors)).
		Int("unfilled", scheduler.UnfilledShifts(result)).
		Msg("schedule generated")
	return result, true
}

// ScheduleJSON generates a schedule from a self-contained JSON request
func (h *Handler) ScheduleJSON(c *gin.Context) {
	var input models.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, ok := h.generate(c, input)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, result)
}

// ScheduleCSV generates a schedule from an uploaded mentors CSV, using the
// server's seasons and the stored holidays of the month
func (h *Handler) ScheduleCSV(c *gin.Context) {
	mentorsFile, _ := c.FormFile("mentors_file")
	if mentorsFile == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mentors_file is required"})
		return
	}
	year, err1 := strconv.Atoi(c.PostForm("year"))
	month, err2 := strconv.Atoi(c.PostForm("month"))
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month are required"})
		return
	}

	f, err := mentorsFile.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open mentors file"})
		return
	}
	defer f.Close()

	roster, err := export.ParseMentorsCSV(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input, err := h.monthInput(year, month, roster)
	if err != nil {
		h.fail(c, err)
		return
	}
	if v := c.PostForm("pay_period_length"); v != "" {
		if input.PayPeriodLength, err = strconv.Atoi(v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pay_period_length"})
			return
		}
	}

	result, ok := h.generate(c, input)
	if !ok {
		return
	}

	var out strings.Builder
	if err := export.WriteScheduleCSV(&out, result); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"csv": out.String(), "validation_messages": result.ValidationMessages})
}

// monthInput assembles a generation request from server config and stored
// data. A nil roster means the stored mentors.
func (h *Handler) monthInput(year, month int, roster map[string]models.MentorInput) (models.ScheduleInput, error) {
	input := models.ScheduleInput{Year: year, Month: month}
	if h.Shifts == nil {
		return input, fmt.Errorf("%w: no seasonal shift configuration loaded", scheduler.ErrData)
	}

	if roster == nil {
		mentors, err := h.Store.ListMentors()
		if err != nil {
			return input, err
		}
		roster = make(map[string]models.MentorInput, len(mentors))
		for _, m := range mentors {
			roster[m.Name] = scheduler.MentorInputFrom(m)
		}
	}

	dates, err := h.Store.GetHolidays(year, month)
	if err != nil {
		return input, err
	}

	input.SeasonalShiftInfo = h.Shifts.Seasons
	input.MentorRoster = roster
	input.HolidayConfig = models.HolidayConfig{ShiftHours: h.Shifts.HolidayHours, Dates: dates}
	return input, nil
}

func monthParams(c *gin.Context) (int, int, bool) {
	year, err1 := strconv.Atoi(c.Param("year"))
	month, err2 := strconv.Atoi(c.Param("month"))
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month must be integers"})
		return 0, 0, false
	}
	return year, month, true
}

// GenerateMonth generates the month from stored mentors and holidays and
// saves it, replacing any earlier schedule
func (h *Handler) GenerateMonth(c *gin.Context) {
	year, month, ok := monthParams(c)
	if !ok {
		return
	}

	lock := h.monthLock(year, month)
	lock.Lock()
	defer lock.Unlock()

	input, err := h.monthInput(year, month, nil)
	if err != nil {
		h.fail(c, err)
		return
	}
	result, ok := h.generate(c, input)
	if !ok {
		return
	}
	if err := h.Store.SaveSchedule(result); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GetMonth returns the stored schedule of a month
func (h *Handler) GetMonth(c *gin.Context) {
	year, month, ok := monthParams(c)
	if !ok {
		return
	}
	result, err := h.Store.GetSchedule(year, month)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// MonthCSV exports the stored schedule of a month as CSV
func (h *Handler) MonthCSV(c *gin.Context) {
	year, month, ok := monthParams(c)
	if !ok {
		return
	}
	result, err := h.Store.GetSchedule(year, month)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=schedule-%04d-%02d.csv", year, month))
	c.Header("Content-Type", "text/csv")
	c.Status(http.StatusOK)
	if err := export.WriteScheduleCSV(c.Writer, result); err != nil {
		h.Log.Error().Err(err).Msg("csv export failed")
	}
}

// ValidateMonth re-runs the validator on the stored schedule. The stored
// messages are left untouched.
func (h *Handler) ValidateMonth(c *gin.Context) {
	year, month, ok := monthParams(c)
	if !ok {
		return
	}
	result, err := h.Store.GetSchedule(year, month)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"validation_messages": scheduler.Validate(result, h.Config.DeviationThreshold),
		"fairness_score":      scheduler.CalculateFairnessScore(result),
	})
}

// Reassign replaces the mentor on one shift of a stored schedule
func (h *Handler) Reassign(c *gin.Context) {
	year, month, ok := monthParams(c)
	if !ok {
		return
	}
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "day must be an integer"})
		return
	}
	var req struct {
		Mentor *string `json:"mentor"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mentor := ""
	if req.Mentor != nil {
		mentor = strings.TrimSpace(*req.Mentor)
	}

	lock := h.monthLock(year, month)
	lock.Lock()
	defer lock.Unlock()

	result, err := h.Store.GetSchedule(year, month)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := scheduler.ReassignShift(result, day, c.Param("shift"), mentor); err != nil {
		h.fail(c, err)
		return
	}
	if err := h.Store.SaveSchedule(result); err != nil {
		h.fail(c, err)
		return
	}
	if h.Metrics != nil {
		h.Metrics.Reassignments.Inc()
	}

	c.JSON(http.StatusOK, result)
}
