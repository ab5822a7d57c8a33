package commands

import (
	"context"
	"errors"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dlync/murmur/pkg/commands/options"
)

func addPhoto(topLevel *cobra.Command) {
	do := &options.DayOptions{}
	var remove bool

	cmd := &cobra.Command{
		Use:   "photo [uri]",
		Short: "Attach today's photo",
		Long:  "Attach one photo to today (replacing any existing one), show a day's photo, or remove it with --remove.",
		Example: `
murmur photo file:///pictures/sunset.jpg
murmur photo --on 2026-08-01
murmur photo --remove --on 2026-08-01
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			ctx := context.Background()
			f := color.New(color.Faint)

			if remove {
				day, err := do.Day(time.Now(), svc.Location)
				if err != nil {
					return err
				}
				if err := svc.RemovePhoto(ctx, day); err != nil {
					return output.HandleError(err)
				}
				_, _ = f.Printf("photo removed from %s\n", day)
				return nil
			}

			if len(args) == 0 {
				day, err := do.Day(time.Now(), svc.Location)
				if err != nil {
					return err
				}
				photo, ok, err := svc.PhotoOn(ctx, day)
				if err != nil {
					return output.HandleError(err)
				}
				if !ok {
					_, _ = f.Printf("no photo on %s\n", day)
					return nil
				}
				_, _ = f.Printf("%s: %s\n", photo.Date, photo.URI)
				return nil
			}

			if len(args) != 1 {
				return errors.New("requires a single photo uri")
			}
			photo, err := svc.SavePhoto(ctx, args[0])
			if err != nil {
				return output.HandleError(err)
			}
			_, _ = f.Printf("photo saved for %s\n", photo.Date)
			return nil
		},
	}

	options.AddDayArgs(cmd, do)
	cmd.Flags().BoolVar(&remove, "remove", false, "Remove the day's photo.")

	topLevel.AddCommand(cmd)
}
