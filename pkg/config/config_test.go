package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PAY_PERIOD_LENGTH", "14")
	t.Setenv("DEVIATION_THRESHOLD", "2.5")
	t.Setenv("SEASONS_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 14, cfg.PayPeriodLength)
	assert.Equal(t, 2.5, cfg.DeviationThreshold)
	assert.Equal(t, "seasons.yaml", cfg.SeasonsFile)

	opts := cfg.SchedulerOptions()
	assert.Equal(t, 14, opts.PayPeriodLength)
}

func TestLoad_RejectsNegative(t *testing.T) {
	t.Setenv("PREFERENCE_TOLERANCE", "-1")
	_, err := Load()
	assert.Error(t, err)
}

const seasonsYAML = `
seasons:
  summer:
    date_range: {start: "06-01", end: "09-01"}
    shift_hours:
      Monday: {a_shift: 4, b_shift: 3.5}
      Sunday: {a_shift: 2}
  winter:
    date_range: {start: "09-01", end: "06-01"}
    shift_hours:
      Monday: {a_shift: 3, b_shift: 3, c_shift: 2}
holiday_shift_hours:
  holiday_a_shift: 6
  holiday_b_shift: 5
`

func TestLoadShiftConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seasons.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seasonsYAML), 0o600))

	sc, err := LoadShiftConfig(path)
	require.NoError(t, err)
	require.Len(t, sc.Seasons, 2)
	assert.Equal(t, "06-01", sc.Seasons["summer"].DateRange.Start)
	assert.Equal(t, 3.5, sc.Seasons["summer"].ShiftHours["Monday"]["b_shift"])
	assert.Equal(t, 2.0, sc.Seasons["winter"].ShiftHours["Monday"]["c_shift"])
	assert.Equal(t, 6.0, sc.HolidayHours["holiday_a_shift"])
}

func TestLoadShiftConfig_Errors(t *testing.T) {
	_, err := LoadShiftConfig("seasons.toml")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"holiday_shift_hours": {}}`), 0o600))
	_, err = LoadShiftConfig(path)
	assert.Error(t, err)
}
