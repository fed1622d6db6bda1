package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/memoriz2/greensupia-sub000/cmd/app/commands"
	"github.com/memoriz2/greensupia-sub000/internal/app"
	"github.com/memoriz2/greensupia-sub000/internal/config"
)

func getAuthCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-admin",
			Usage: "Create an admin account",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "username",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "Admin username (letters, digits, dots, underscores, hyphens)",
				},
				passwordFlag("Admin password"),
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				adminUseCase, err := container.AdminUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateAdmin(
					ctx,
					adminUseCase,
					container.Logger(),
					commands.DefaultIO(),
					cmd.String("username"),
					cmd.String("password"),
					cmd.String("format"),
				)
			},
		},
	}
}
