package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnavshah/mentor-scheduler-api/pkg/models"
)

const requestYAML = `
year: 2024
month: 2
mentor_roster:
  Alice:
    hours_wanted_per_week: 10
    preferred_weekdays: [Monday]
  Bob:
    hours_wanted: 8
    unavailable_weekdays: [friday]
holiday_config:
  dates: [19]
`

const seasonsYAML = `
seasons:
  winter:
    date_range: {start: "10-01", end: "04-01"}
    shift_hours:
      Monday: {a_shift: 4, b_shift: 3}
      Tuesday: {a_shift: 4, b_shift: 3}
      Wednesday: {a_shift: 4, b_shift: 3}
      Thursday: {a_shift: 4, b_shift: 3}
      Friday: {a_shift: 4, b_shift: 3}
      Saturday: {a_shift: 6}
      Sunday: {a_shift: 6}
  summer:
    date_range: {start: "04-01", end: "10-01"}
    shift_hours:
      Monday: {a_shift: 5}
holiday_shift_hours:
  holiday_a_shift: 6
  holiday_b_shift: 5
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerate_JSON(t *testing.T) {
	input := writeFile(t, "request.yaml", requestYAML)
	seasons := writeFile(t, "seasons.yaml", seasonsYAML)

	out, err := execute(t, "generate", "--input", input, "--seasons", seasons)
	require.NoError(t, err)

	var result models.ScheduleResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.AssignedDays, 29)
	assert.Equal(t, "winter", result.AssignedDays[0].Season)
	assert.True(t, result.AssignedDays[18].Holiday)
	assert.Equal(t, []string{models.HolidayAShift, models.HolidayBShift}, result.AssignedDays[18].Shifts)
	assert.Len(t, result.Pay1.Days, 15)
	assert.Len(t, result.Mentors, 2)
}

func TestGenerate_CSVWithOverrides(t *testing.T) {
	input := writeFile(t, "request.yaml", requestYAML)
	seasons := writeFile(t, "seasons.yaml", seasonsYAML)
	roster := writeFile(t, "mentors.csv", "name,hours_wanted_per_week,unavailable_weekdays\nZoe,5,\n")

	out, err := execute(t, "generate", "-i", input, "--seasons", seasons,
		"--mentors-csv", roster, "--holiday", "1", "--format", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "date,weekday,season,pay_period,shift,hours,mentor", lines[0])
	assert.Equal(t, "2024-02-01,Thursday,winter,1,holiday_a_shift,6.00,Zoe", lines[1])
	assert.NotContains(t, out, "Alice")
}

func TestGenerate_YAML(t *testing.T) {
	input := writeFile(t, "request.yaml", requestYAML)
	seasons := writeFile(t, "seasons.yaml", seasonsYAML)

	out, err := execute(t, "generate", "-i", input, "--seasons", seasons, "-f", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "assigned_days:")
	assert.Contains(t, out, "validation_messages:")
}

func TestGenerate_Errors(t *testing.T) {
	input := writeFile(t, "request.yaml", requestYAML)

	_, err := execute(t, "generate", "-i", input)
	assert.Error(t, err, "no seasons anywhere")

	bad := writeFile(t, "request.txt", requestYAML)
	_, err = execute(t, "generate", "-i", bad)
	assert.ErrorContains(t, err, "unsupported input format")

	seasons := writeFile(t, "seasons.yaml", seasonsYAML)
	_, err = execute(t, "generate", "-i", input, "--seasons", seasons, "-f", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestValidate(t *testing.T) {
	input := writeFile(t, "request.yaml", requestYAML)
	seasons := writeFile(t, "seasons.yaml", seasonsYAML)

	out, err := execute(t, "validate", "-i", input, "--seasons", seasons)
	require.NoError(t, err)
	assert.Equal(t, "ok: 2 mentors, 29 days, 1 holidays\n", out)

	_, err = execute(t, "validate", "-i", input, "--seasons", seasons, "--pay-period", "0")
	assert.Error(t, err)
}
