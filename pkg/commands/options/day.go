// Package options defines shared flag helpers for CLI commands.
package options

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/dlync/murmur/pkg/timeutil"
)

// DayOptions captures the --on day selection flag.
type DayOptions struct {
	OnString string
}

// AddDayArgs wires the --on flag on the provided command.
func AddDayArgs(cmd *cobra.Command, o *DayOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a day, example: --on="2026-08-28". Defaults to today.`)
}

// Day resolves the flag to a day key in loc, defaulting to today.
func (o *DayOptions) Day(now time.Time, loc *time.Location) (string, error) {
	if o.OnString == "" {
		return timeutil.DayKey(now, loc), nil
	}
	t, err := timeutil.ParseDayKey(o.OnString, loc)
	if err != nil {
		return "", err
	}
	return timeutil.DayKey(t, loc), nil
}
