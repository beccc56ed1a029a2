package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arnavshah/mentor-scheduler-api/pkg/export"
	"github.com/arnavshah/mentor-scheduler-api/pkg/logger"
	"github.com/arnavshah/mentor-scheduler-api/pkg/models"
	"github.com/arnavshah/mentor-scheduler-api/pkg/scheduler"
)

func newGenerateCmd(opts *options) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Assign mentors to every shift of the requested month",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := opts.loadInput()
			if err != nil {
				return err
			}
			result, err := scheduler.Generate(in, opts.schedulerOptions())
			if err != nil {
				return err
			}

			log := logger.New("schedule").Output(cmd.ErrOrStderr())
			log.Info().
				Int("year", result.Year).
				Int("month", result.Month).
				Int("unfilled", scheduler.UnfilledShifts(result)).
				Float64("fairness", result.FairnessScore).
				Msg("schedule generated")
			return writeResult(cmd.OutOrStdout(), result, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json, yaml or csv")
	return cmd
}

func writeResult(w io.Writer, r *models.ScheduleResult, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "csv":
		return export.WriteScheduleCSV(w, r)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func readRoster(path string) (map[string]models.MentorInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return export.ParseMentorsCSV(f)
}
