package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/memoriz2/greensupia-sub000/cmd/app/commands"
	cryptoService "github.com/memoriz2/greensupia-sub000/internal/crypto/service"
)

func getCryptoCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "hash-password",
			Usage: "Hash a password with PBKDF2-SHA512",
			Flags: []cli.Flag{
				passwordFlag("Password to hash"),
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunHashPassword(
					cryptoService.NewEncryptionService(),
					commands.DefaultIO(),
					cmd.String("password"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "verify-password",
			Usage: "Verify a password against a salt:hash value",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "hash",
					Required: true,
					Usage:    "Stored salt:hash value",
				},
				passwordFlag("Password to verify"),
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunVerifyPassword(
					cryptoService.NewEncryptionService(),
					commands.DefaultIO(),
					cmd.String("password"),
					cmd.String("hash"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "encrypt",
			Usage: "Encrypt text with a password (AES-256-GCM)",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "plaintext",
					Aliases: []string{"t"},
					Usage:   "Text to encrypt (read from stdin when omitted)",
				},
				passwordFlag("Encryption password"),
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunEncrypt(
					cryptoService.NewEncryptionService(),
					commands.DefaultIO(),
					cmd.String("plaintext"),
					cmd.String("password"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "decrypt",
			Usage: "Decrypt a salt:iv:tag:ciphertext payload",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "payload",
					Aliases: []string{"d"},
					Usage:   "Encrypted payload (read from stdin when omitted)",
				},
				passwordFlag("Encryption password"),
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunDecrypt(
					cryptoService.NewEncryptionService(),
					commands.DefaultIO(),
					cmd.String("payload"),
					cmd.String("password"),
					cmd.String("format"),
				)
			},
		},
	}
}
