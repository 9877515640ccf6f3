package main

import (
	"fmt"
	"io"
	"time"

	"nutritrack/internal/core/domain/reminder"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const atLayout = "2006-01-02T15:04:05"

type nextOutput struct {
	TimeOfDay string      `json:"time_of_day" yaml:"time_of_day"`
	After     time.Time   `json:"after" yaml:"after"`
	Fires     []time.Time `json:"fires" yaml:"fires"`
}

func newNextCmd(opts *rootOptions) *cobra.Command {
	var (
		timeOfDay string
		at        string
		count     int
	)

	cmd := &cobra.Command{
		Use:     "next",
		Short:   "Print when a daily reminder fires next",
		Example: "  nutrictl next --time 08:00 --at 2024-03-15T09:00:00 --count 3",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := opts.location()
			if err != nil {
				return err
			}
			t, err := reminder.ParseTimeOfDay(timeOfDay)
			if err != nil {
				return err
			}
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}
			now := time.Now().In(loc)
			if at != "" {
				if now, err = time.ParseInLocation(atLayout, at, loc); err != nil {
					return fmt.Errorf("invalid --at value %q, expected %s", at, atLayout)
				}
			}

			out := nextOutput{TimeOfDay: t.String(), After: now}
			fire := t.NextAfter(now)
			for i := 0; i < count; i++ {
				out.Fires = append(out.Fires, fire)
				fire = t.FollowingDay(fire)
			}
			return render(cmd.OutOrStdout(), opts.output, out, func(w io.Writer) {
				printNext(w, out)
			})
		},
	}
	cmd.Flags().StringVarP(&timeOfDay, "time", "t", "", "reminder time of day as HH:MM")
	cmd.Flags().StringVar(&at, "at", "", "instant to compute from, "+atLayout+" (default now)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of upcoming fires to print")
	_ = cmd.MarkFlagRequired("time")
	return cmd
}

func printNext(w io.Writer, out nextOutput) {
	green := color.New(color.FgGreen).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	for _, fire := range out.Fires {
		fmt.Fprintf(w, "%s %s\n", green(fire.Format(time.RFC3339)), faint(fire.Weekday().String()))
	}
}
