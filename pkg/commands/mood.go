package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dlync/murmur/pkg/runner/moodlog"
)

func addMood(topLevel *cobra.Command) {
	var list bool

	cmd := &cobra.Command{
		Use:   "mood [emotion...]",
		Short: "Log how today felt",
		Long:  "Save today's confirmed emotion snapshot. Saving again replaces the whole snapshot for the day. With no arguments, lists the emotion catalog.",
		Example: `
murmur mood calm grateful
murmur mood --list
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := moodlog.MoodLog{
				Emotions: args,
				List:     list,
				Service:  svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "List the emotion catalog.")

	topLevel.AddCommand(cmd)
}
