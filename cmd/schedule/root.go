package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arnavshah/mentor-scheduler-api/pkg/config"
	"github.com/arnavshah/mentor-scheduler-api/pkg/logger"
	"github.com/arnavshah/mentor-scheduler-api/pkg/models"
	"github.com/arnavshah/mentor-scheduler-api/pkg/scheduler"
)

type options struct {
	input       string
	seasons     string
	payPeriod   int
	tolerance   float64
	threshold   float64
	logLevel    string
	roster      string
	holidayDays []int
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "schedule",
		Short:        "Generate mentor shift schedules offline",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetLevel(opts.logLevel)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.input, "input", "i", "", "schedule request file (.yaml, .yml or .json)")
	pf.StringVar(&opts.seasons, "seasons", "", "seasons file used when the request has no seasonal_shift_info")
	pf.StringVar(&opts.roster, "mentors-csv", "", "mentors CSV replacing the request's mentor_roster")
	pf.IntSliceVar(&opts.holidayDays, "holiday", nil, "holiday day of month, repeatable")
	pf.IntVar(&opts.payPeriod, "pay-period", scheduler.DefaultPayPeriodLength, "days in the first pay period")
	pf.Float64Var(&opts.tolerance, "tolerance", 0, "hours a preferred mentor may exceed their target")
	pf.Float64Var(&opts.threshold, "threshold", scheduler.DefaultDeviationThreshold, "hours from target still reported as on target")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level")
	_ = root.MarkPersistentFlagRequired("input")

	root.AddCommand(newGenerateCmd(opts), newValidateCmd(opts))
	return root
}

func (o *options) schedulerOptions() scheduler.Options {
	return scheduler.Options{
		PayPeriodLength:     o.payPeriod,
		PreferenceTolerance: o.tolerance,
		DeviationThreshold:  o.threshold,
	}
}

// loadInput reads the request file and applies the command line overrides
func (o *options) loadInput() (models.ScheduleInput, error) {
	var in models.ScheduleInput
	data, err := os.ReadFile(o.input)
	if err != nil {
		return in, err
	}

	switch strings.ToLower(filepath.Ext(o.input)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &in)
	case ".json":
		err = json.Unmarshal(data, &in)
	default:
		return in, fmt.Errorf("unsupported input format: %s", filepath.Ext(o.input))
	}
	if err != nil {
		return in, fmt.Errorf("parse %s: %w", o.input, err)
	}

	if o.seasons != "" && len(in.SeasonalShiftInfo) == 0 {
		sc, err := config.LoadShiftConfig(o.seasons)
		if err != nil {
			return in, err
		}
		in.SeasonalShiftInfo = sc.Seasons
		if len(in.HolidayConfig.ShiftHours) == 0 {
			in.HolidayConfig.ShiftHours = sc.HolidayHours
		}
	}

	if o.roster != "" {
		if in.MentorRoster, err = readRoster(o.roster); err != nil {
			return in, err
		}
	}
	if len(o.holidayDays) > 0 {
		in.HolidayConfig.Dates = o.holidayDays
	}
	return in, nil
}
