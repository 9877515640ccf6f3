package main

import (
	"fmt"
	"io"
	"time"

	"nutritrack/internal/core/domain/period"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type rangeWindow struct {
	StartDate string `json:"start_date" yaml:"start_date"`
	EndDate   string `json:"end_date" yaml:"end_date"`
	Days      int    `json:"days" yaml:"days"`
}

type rangeOutput struct {
	Granularity string      `json:"granularity" yaml:"granularity"`
	Range       rangeWindow `json:"range" yaml:"range"`
	Previous    rangeWindow `json:"previous" yaml:"previous"`
}

func newRangeWindow(r period.Range) rangeWindow {
	return rangeWindow{StartDate: r.StartDate(), EndDate: r.EndDate(), Days: r.Days()}
}

func newRangeCmd(opts *rootOptions) *cobra.Command {
	var (
		date        string
		granularity string
	)

	cmd := &cobra.Command{
		Use:   "range",
		Short: "Resolve the date range of a period",
		Example: "  nutrictl range --date 2024-03-15 --granularity week\n" +
			"  nutrictl range -g month -o yaml",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := opts.location()
			if err != nil {
				return err
			}
			g, err := period.ParseGranularity(granularity)
			if err != nil {
				return err
			}
			ref := time.Now().In(loc)
			if date != "" {
				if ref, err = period.ParseDate(date, loc); err != nil {
					return err
				}
			}
			r, err := period.Resolve(ref, g)
			if err != nil {
				return err
			}

			out := rangeOutput{
				Granularity: g.String(),
				Range:       newRangeWindow(r),
				Previous:    newRangeWindow(r.Previous()),
			}
			return render(cmd.OutOrStdout(), opts.output, out, func(w io.Writer) {
				printRange(w, out)
			})
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "reference date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&granularity, "granularity", "g", period.GranularityDay.String(), "day, week, month or year")
	return cmd
}

func printRange(w io.Writer, out rangeOutput) {
	bold := color.New(color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	fmt.Fprintf(w, "%s %s .. %s %s\n",
		bold(out.Granularity), cyan(out.Range.StartDate), cyan(out.Range.EndDate),
		faint(fmt.Sprintf("(%d days)", out.Range.Days)))
	fmt.Fprintf(w, "%s %s .. %s\n", faint("previous"), out.Previous.StartDate, out.Previous.EndDate)
}
