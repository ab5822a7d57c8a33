package options

import (
	"github.com/spf13/cobra"

	"github.com/dlync/murmur/pkg/timeutil"
)

// WindowOptions captures the trailing-window flag for frequency views.
type WindowOptions struct {
	WindowString string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVarP(&o.WindowString, "window", "w", timeutil.DefaultWindow,
		`Trailing window, example: --window=1w or --window=30d.`)
}

// Days resolves the flag to a whole number of calendar days.
func (o *WindowOptions) Days() (int, error) {
	return timeutil.ParseWindowDays(o.WindowString)
}
