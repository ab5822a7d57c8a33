package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/dlync/murmur/pkg/commands/options"
	"github.com/dlync/murmur/pkg/runner/cal"
	"github.com/dlync/murmur/pkg/timeutil"
)

func addCal(topLevel *cobra.Command) {
	do := &options.DayOptions{}
	var year bool

	cmd := &cobra.Command{
		Use:   "cal",
		Short: "Show the archive calendar",
		Example: `
murmur cal
murmur cal --on 2026-01-15
murmur cal --year
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			on := time.Now()
			if do.OnString != "" {
				on, err = timeutil.ParseDayKey(do.OnString, svc.Location)
				if err != nil {
					return err
				}
			}
			s := cal.Cal{
				On:      on,
				Year:    year,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDayArgs(cmd, do)
	cmd.Flags().BoolVar(&year, "year", false, "Show the whole year.")

	topLevel.AddCommand(cmd)
}
