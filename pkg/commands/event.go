package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dlync/murmur/pkg/commands/options"
)

func addEvent(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage calendar events",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEventAdd(cmd)
	addEventList(cmd)
	addEventEdit(cmd)
	addEventDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addEventAdd(parent *cobra.Command) {
	do := &options.DayOptions{}
	var note string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an event",
		Example: `
murmur event add "dentist" --on 2026-09-02 --note "bring the referral"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a title")
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
			e, err := svc.AddEvent(context.Background(), day, strings.Join(args, " "), note)
			if err != nil {
				return output.HandleError(err)
			}
			f := color.New(color.Faint)
			_, _ = f.Printf("○ %s on %s (%s)\n", e.Title, e.Date, e.ID)
			return nil
		},
	}

	options.AddDayArgs(cmd, do)
	cmd.Flags().StringVar(&note, "note", "", "Optional note.")

	parent.AddCommand(cmd)
}

func addEventList(parent *cobra.Command) {
	do := &options.DayOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			day, err := do.Day(time.Now(), svc.Location)
			if err != nil {
				return err
			}
			events, err := svc.EventsOn(context.Background(), day)
			if err != nil {
				return output.HandleError(err)
			}
			if len(events) == 0 {
				f := color.New(color.Faint, color.Italic)
				_, _ = f.Printf("no events on %s\n", day)
				return nil
			}
			for _, e := range events {
				if e.Note != "" {
					fmt.Printf("○ %s — %s (%s)\n", e.Title, e.Note, e.ID)
				} else {
					fmt.Printf("○ %s (%s)\n", e.Title, e.ID)
				}
			}
			return nil
		},
	}

	options.AddDayArgs(cmd, do)
	parent.AddCommand(cmd)
}

func addEventEdit(parent *cobra.Command) {
	var note string

	cmd := &cobra.Command{
		Use:   "edit <id> <title>",
		Short: "Rewrite an event",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires an id and a title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			e, err := svc.UpdateEvent(context.Background(), args[0], strings.Join(args[1:], " "), note)
			if err != nil {
				return output.HandleError(err)
			}
			f := color.New(color.Faint)
			_, _ = f.Printf("○ %s on %s\n", e.Title, e.Date)
			return nil
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "Optional note.")
	parent.AddCommand(cmd)
}

func addEventDelete(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an event",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an event id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			return output.HandleError(svc.DeleteEvent(context.Background(), args[0]))
		},
	}

	parent.AddCommand(cmd)
}
