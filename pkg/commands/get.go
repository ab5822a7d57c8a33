package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/dlync/murmur/pkg/commands/options"
	"github.com/dlync/murmur/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	do := &options.DayOptions{}
	var all bool
	var showID bool
	var tag string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Read the journal",
		Long:  "Read one day of the journal (thoughts, moods, habits, photo, events, voice notes), or everything with --all.",
		Example: `
murmur get
murmur get --on 2026-08-01
murmur get --all --tag reflection
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:  showID,
				Tag:     tag,
				Service: svc,
			}
			if !all {
				day, err := do.Day(time.Now(), svc.Location)
				if err != nil {
					return err
				}
				s.Day = day
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDayArgs(cmd, do)
	cmd.Flags().BoolVar(&all, "all", false, "Show every entry ever written.")
	cmd.Flags().BoolVar(&showID, "show-ids", false, "Show entry ids (needed for delete).")
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "Only entries with this tag.")

	topLevel.AddCommand(cmd)
}
