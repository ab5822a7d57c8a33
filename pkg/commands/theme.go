package commands

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/dlync/murmur/pkg/theme"
)

func addThemeCmd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "theme [key]",
		Short: "Show or switch the color theme",
		Long:  "The active theme's accent is what the {c:accent} color token in old entries resolves to, so switching themes restyles them without touching stored content.",
		Example: `
murmur theme
murmur theme dusk
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			ctx := context.Background()

			if len(args) == 1 {
				t, err := svc.SetTheme(ctx, args[0])
				if err != nil {
					return output.HandleError(err)
				}
				f := color.New(color.Faint)
				_, _ = f.Printf("theme set to %s\n", t.Key)
				return nil
			}

			active, err := svc.Theme(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			tbl := uitable.New()
			tbl.Separator = "  "
			for _, key := range theme.Keys() {
				t := theme.Lookup(key)
				mark := " "
				if t.Key == active.Key {
					mark = "●"
				}
				tbl.AddRow(mark, t.Key, t.Label, t.Palette.Accent)
			}
			fmt.Println("")
			_, _ = fmt.Fprintln(color.Output, tbl)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
