package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arnavshah/mentor-scheduler-api/pkg/scheduler"
)

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a schedule request without assigning shifts",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := opts.loadInput()
			if err != nil {
				return err
			}
			if err := scheduler.CheckInput(in, opts.schedulerOptions()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d mentors, %d days, %d holidays\n",
				len(in.MentorRoster), scheduler.DaysInMonth(in.Year, in.Month), len(in.HolidayConfig.Dates))
			return nil
		},
	}
}
