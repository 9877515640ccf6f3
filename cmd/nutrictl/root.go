package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	timeZone string
	output   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "nutrictl",
		Short:         "Inspect nutritrack period ranges and reminder times",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.timeZone, "tz", "Local", "IANA time zone used for dates and times")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputText, "output format: text, json or yaml")

	cmd.AddCommand(newRangeCmd(opts))
	cmd.AddCommand(newNextCmd(opts))
	return cmd
}

func (o *rootOptions) location() (*time.Location, error) {
	loc, err := time.LoadLocation(o.timeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid --tz value %q: %w", o.timeZone, err)
	}
	return loc, nil
}
