package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func addUser(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "user <name>",
		Short: "Rename the profile",
		Example: `
murmur user wanderer
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a username")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			user, err := svc.UpdateUsername(context.Background(), strings.Join(args, " "))
			if err != nil {
				return output.HandleError(err)
			}
			f := color.New(color.Faint)
			_, _ = f.Printf("hello, %s\n", user.Username)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
