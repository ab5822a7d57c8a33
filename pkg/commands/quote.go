package commands

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dlync/murmur/pkg/quote"
)

func addQuote(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Show today's quote",
		RunE: func(cmd *cobra.Command, args []string) error {
			i := color.New(color.Italic)
			fmt.Println("")
			_, _ = i.Printf("%s\n\n", quote.ForDay(time.Now()))
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
