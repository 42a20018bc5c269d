package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/sitecloner/pkg/domain/model"
	"github.com/m-mizutani/sitecloner/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cloneCommand() *cli.Command {
	var (
		pc    provisionConfig
		input model.CloneSiteInput
	)

	return &cli.Command{
		Name:    "clone",
		Aliases: []string{"c"},
		Usage:   "Provision one site and print the result as JSON",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "site-name",
				Usage:       "Display name of the site",
				Destination: &input.SiteName,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "repo-name",
				Usage:       "Repository and worker name [a-z0-9-]",
				Destination: &input.RepoName,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "hero-line1",
				Usage:       "First line of the hero title",
				Destination: &input.HeroLine1,
			},
			&cli.StringFlag{
				Name:        "hero-line2",
				Usage:       "Second line of the hero title",
				Destination: &input.HeroLine2,
			},
		},
			pc.github.Flags(),
			pc.cloudflare.Flags(),
			pc.provision.Flags(),
			pc.registry.Flags(),
			pc.bigQuery.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = logging.With(ctx, logging.Default())

			uc, cleanup, err := pc.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			output, err := uc.CloneSite(ctx, &input)
			if err != nil {
				return err
			}

			return writeJSON(os.Stdout, output)
		},
	}
}
