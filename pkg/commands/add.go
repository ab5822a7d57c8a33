package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dlync/murmur/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	var tag string

	cmd := &cobra.Command{
		Use:   "add <body>",
		Short: "Write a thought",
		Example: `
murmur add the rain finally stopped
murmur add --tag gratitude "**good** coffee this morning"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a thought body")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := add.Add{
				Body:    strings.Join(args, " "),
				Tag:     tag,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&tag, "tag", "t", "",
		"Optional free-form label, example: --tag gratitude.")

	topLevel.AddCommand(cmd)
}
