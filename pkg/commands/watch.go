package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dlync/murmur/pkg/store"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print store change events until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			events, err := p.Watch(ctx)
			if err != nil {
				return err
			}

			f := color.New(color.Faint)
			for ev := range events {
				if ev.Key == "" {
					_, _ = f.Println("changed")
					continue
				}
				_, _ = fmt.Printf("changed: %s\n", ev.Key)
			}
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
