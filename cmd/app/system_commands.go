package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/memoriz2/greensupia-sub000/cmd/app/commands"
	"github.com/memoriz2/greensupia-sub000/internal/app"
	"github.com/memoriz2/greensupia-sub000/internal/config"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the API server and, when enabled, the metrics server",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
		{
			Name:  "migrate",
			Usage: "Apply pending admin store migrations",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "steps",
					Usage: "Migrations to apply (negative rolls back, 0 applies all pending)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withMigrationConfig(ctx, func(container *app.Container, cfg *config.Config) error {
					return commands.RunMigrationSteps(
						container.Logger(), cfg.DBDriver, cfg.DBConnectionString, int(cmd.Int("steps")),
					)
				})
			},
			Commands: []*cli.Command{
				{
					Name:  "version",
					Usage: "Show the current schema version",
					Flags: []cli.Flag{formatFlag()},
					Action: func(ctx context.Context, cmd *cli.Command) error {
						return withMigrationConfig(ctx, func(container *app.Container, cfg *config.Config) error {
							return commands.RunMigrationVersion(
								container.Logger(), os.Stdout, cfg.DBDriver, cfg.DBConnectionString, cmd.String("format"),
							)
						})
					},
				},
			},
		},
	}
}

// withMigrationConfig loads configuration and a container for its logger only; migrations
// open their own connection through golang-migrate.
func withMigrationConfig(ctx context.Context, fn func(*app.Container, *config.Config) error) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	defer func() { _ = container.Shutdown(ctx) }()

	return fn(container, cfg)
}
