package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/sitecloner/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func listCommand() *cli.Command {
	var pc provisionConfig

	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "Print the site registry as JSON",
		Flags: slice.Flatten(
			pc.provision.Flags(),
			pc.registry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = logging.With(ctx, logging.Default())

			uc, cleanup, err := pc.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			sites, err := uc.ListSites(ctx)
			if err != nil {
				return err
			}

			return writeJSON(os.Stdout, sites)
		},
	}
}
