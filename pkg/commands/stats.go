package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dlync/murmur/pkg/commands/options"
	"github.com/dlync/murmur/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	var habits bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show streak, counts, and what you felt most",
		Example: `
murmur stats
murmur stats --window 30d
murmur stats --habits
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			days, err := wo.Days()
			if err != nil {
				return err
			}
			s := stats.Stats{
				WindowDays: days,
				Habits:     habits,
				Service:    svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddWindowArgs(cmd, wo)
	cmd.Flags().BoolVar(&habits, "habits", false, "Rank habits kept instead of emotions felt.")

	topLevel.AddCommand(cmd)
}
