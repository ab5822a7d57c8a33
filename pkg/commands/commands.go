package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/dlync/murmur/pkg/app"
	"github.com/dlync/murmur/pkg/commands/options"
	"github.com/dlync/murmur/pkg/store"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "murmur",
		Short: "A quiet journal on the command line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, output)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addDelete(topLevel)
	addMood(topLevel)
	addHabit(topLevel)
	addCal(topLevel)
	addStats(topLevel)
	addEvent(topLevel)
	addPhoto(topLevel)
	addVoice(topLevel)
	addThemeCmd(topLevel)
	addUser(topLevel)
	addNotify(topLevel)
	addQuote(topLevel)
	addWatch(topLevel)
}

// loadService builds the composition root: persistence from config, the host
// calendar, and the wall clock.
func loadService() (*app.Service, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	return &app.Service{
		Persistence: p,
		Location:    time.Local,
		Clock:       time.Now,
	}, nil
}
