package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dlync/murmur/pkg/runner/habitlog"
)

func addHabit(topLevel *cobra.Command) {
	var list bool

	cmd := &cobra.Command{
		Use:   "habit [habit...]",
		Short: "Log today's habits",
		Long:  "Save today's confirmed habit snapshot. Saving again replaces the whole snapshot for the day. With no arguments, lists the habit catalog.",
		Example: `
murmur habit exercise reading
murmur habit --list
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := habitlog.HabitLog{
				Habits:  args,
				List:    list,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "List the habit catalog.")

	topLevel.AddCommand(cmd)
}
