package commands

import (
	"context"
	"errors"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dlync/murmur/pkg/commands/options"
)

func addVoice(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "voice",
		Short: "Manage voice notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addVoiceAdd(cmd)
	addVoiceList(cmd)
	addVoiceDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addVoiceAdd(parent *cobra.Command) {
	do := &options.DayOptions{}
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "add <uri>",
		Short: "Attach a voice note",
		Example: `
murmur voice add file:///recordings/morning.m4a --duration 42s
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a recording uri")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			day, err := do.Day(time.Now(), svc.Location)
			if err != nil {
				return err
			}
			n, err := svc.AddVoiceNote(context.Background(), day, args[0], duration)
			if err != nil {
				return output.HandleError(err)
			}
			f := color.New(color.Faint)
			_, _ = f.Printf("voice note saved for %s (%s)\n", n.Date, n.ID)
			return nil
		},
	}

	options.AddDayArgs(cmd, do)
	cmd.Flags().DurationVar(&duration, "duration", 0, "Recording length, example: --duration 42s.")

	parent.AddCommand(cmd)
}

func addVoiceList(parent *cobra.Command) {
	do := &options.DayOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a day's voice notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			day, err := do.Day(time.Now(), svc.Location)
			if err != nil {
				return err
			}
			notes, err := svc.VoiceNotesOn(context.Background(), day)
			if err != nil {
				return output.HandleError(err)
			}
			f := color.New(color.Faint)
			if len(notes) == 0 {
				_, _ = f.Printf("no voice notes on %s\n", day)
				return nil
			}
			for _, n := range notes {
				_, _ = f.Printf("%s  %s  %dms\n", n.ID, n.URI, n.DurationMs)
			}
			return nil
		},
	}

	options.AddDayArgs(cmd, do)
	parent.AddCommand(cmd)
}

func addVoiceDelete(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a voice note",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a voice note id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			return output.HandleError(svc.DeleteVoiceNote(context.Background(), args[0]))
		},
	}

	parent.AddCommand(cmd)
}
