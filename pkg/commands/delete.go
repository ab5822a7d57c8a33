package commands

import (
	"context"
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a thought",
		Long:  "Delete a thought by id. The streak is never changed by a deletion, only the derived counts.",
		Example: `
murmur delete 1724841000000
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a thought id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			user, err := svc.DeleteThought(context.Background(), args[0])
			if err != nil {
				return output.HandleError(err)
			}
			f := color.New(color.Faint)
			_, _ = f.Printf("deleted; %d thoughts remain, streak still %d\n", user.ThoughtsTotal, user.Streak)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
