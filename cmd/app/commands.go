package main

import (
	"github.com/urfave/cli/v3"
)

func getCommands(version string) []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getSystemCommands(version)...)
	cmds = append(cmds, getCryptoCommands()...)
	cmds = append(cmds, getKeyCommands()...)
	cmds = append(cmds, getAuthCommands()...)
	return cmds
}

// formatFlag is the shared --format flag.
func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

// passwordFlag is an optional --password flag; commands prompt on stdin when it is empty.
func passwordFlag(usage string) cli.Flag {
	return &cli.StringFlag{
		Name:    "password",
		Aliases: []string{"p"},
		Usage:   usage + " (read from stdin when omitted)",
	}
}
