package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/memoriz2/greensupia-sub000/cmd/app/commands"
	"github.com/memoriz2/greensupia-sub000/internal/config"
	cryptoService "github.com/memoriz2/greensupia-sub000/internal/crypto/service"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate-token",
			Usage: "Generate a random hex token (e.g. for AUTH_SESSION_SECRET)",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "length",
					Aliases: []string{"l"},
					Value:   32,
					Usage:   "Number of random bytes (0 selects the default of 32)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunGenerateToken(
					cryptoService.NewEncryptionService(),
					commands.DefaultIO(),
					int(cmd.Int("length")),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "seal-passphrase",
			Usage: "Seal the application passphrase with a KMS keeper",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "kms-key-uri",
					Usage: "KMS key URI (defaults to KMS_KEY_URI), e.g. hashivault://mykey or base64key://...",
				},
				&cli.StringFlag{
					Name:  "passphrase",
					Usage: "Passphrase to seal (read from stdin when omitted)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				keyURI := cmd.String("kms-key-uri")
				if keyURI == "" {
					keyURI = config.Load().KMSKeyURI
				}

				return commands.RunSealPassphrase(
					ctx,
					cryptoService.NewKMSService(),
					commands.DefaultIO(),
					keyURI,
					cmd.String("passphrase"),
					cmd.String("format"),
				)
			},
		},
	}
}
