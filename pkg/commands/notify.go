package commands

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func addNotify(topLevel *cobra.Command) {
	var enable, disable bool
	var at string

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Show or change the daily reminder",
		Long:  "Stores the reminder preference (enabled plus a wall-clock time). Actual scheduling belongs to the host platform.",
		Example: `
murmur notify
murmur notify --enable --at 21:00
murmur notify --disable
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			ctx := context.Background()
			f := color.New(color.Faint)

			settings, err := svc.Settings(ctx)
			if err != nil {
				return output.HandleError(err)
			}

			changed := false
			if enable {
				settings.Enabled = true
				changed = true
			}
			if disable {
				settings.Enabled = false
				changed = true
			}
			if at != "" {
				if _, err := fmt.Sscanf(at, "%d:%d", &settings.Hour, &settings.Minute); err != nil {
					return fmt.Errorf("invalid time %q, want HH:MM", at)
				}
				changed = true
			}

			if changed {
				if err := svc.SaveSettings(ctx, settings); err != nil {
					return output.HandleError(err)
				}
			}

			state := "off"
			if settings.Enabled {
				state = "on"
			}
			_, _ = f.Printf("daily reminder: %s at %02d:%02d\n", state, settings.Hour, settings.Minute)
			return nil
		},
	}

	cmd.Flags().BoolVar(&enable, "enable", false, "Turn the reminder on.")
	cmd.Flags().BoolVar(&disable, "disable", false, "Turn the reminder off.")
	cmd.Flags().StringVar(&at, "at", "", "Reminder time, example: --at 21:00.")

	topLevel.AddCommand(cmd)
}
