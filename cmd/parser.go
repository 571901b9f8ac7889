package cmd

import (
	"fmt"

	"github.com/sahib/termpasshash/version"
	"github.com/urfave/cli"
)

func formatGroup(category string) string {
	return category + " COMMANDS"
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		cli.BoolFlag{
			Name:  "legacy,l",
			Usage: "Use SHA3-512 iterated as hashing procedure",
		},
		cli.BoolFlag{
			Name:  "unmask,u",
			Usage: "Show the resulting hash in readable colors instead of the masked version",
		},
		cli.BoolFlag{
			Name:  "create,c",
			Usage: "Create a new hash; you will be asked twice to verify that both match",
		},
		cli.BoolFlag{
			Name:  "print,p",
			Usage: "Print the hash (masked or unmasked) instead of copying it to the clipboard",
		},
		cli.IntFlag{
			Name:  "rounds,r",
			Usage: "Number of rounds in legacy mode (0: ask)",
		},
		cli.IntFlag{
			Name:  "max-length,m",
			Usage: "Number of characters to keep from the hash (0: ask)",
		},
		cli.StringFlag{
			Name:   "password",
			Usage:  "Password to use instead of asking for it",
			EnvVar: "TERMPASSHASH_PASSWORD",
		},
		cli.StringFlag{
			Name:   "salt",
			Usage:  "Salt to use instead of asking for it",
			EnvVar: "TERMPASSHASH_SALT",
		},
		cli.BoolFlag{
			Name:  "mask-input,i",
			Usage: "Show '*' for every typed character of password and salt",
		},
		cli.BoolFlag{
			Name:  "base16,b",
			Usage: "Keep the legacy hash as hex instead of converting it to base64",
		},
		cli.StringFlag{
			Name:   "config",
			Usage:  "Path of the config file (default: ~/.config/termpasshash/config.yml)",
			EnvVar: "TERMPASSHASH_CONFIG",
		},
		cli.StringFlag{
			Name:   "log-path",
			Usage:  "Where to output the log. May be 'stderr' (default), 'stdout' or a file",
			Value:  "stderr",
			EnvVar: "TERMPASSHASH_LOG",
		},
		cli.BoolFlag{
			Name:  "verbose,V",
			Usage: "Print debug logs",
		},
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "termpasshash"
	app.Usage = "A program to hash your passwords"
	app.Description = appDescription
	app.Version = version.Details()
	app.EnableBashCompletion = true
	app.CommandNotFound = commandNotFound
	app.OnUsageError = func(ctx *cli.Context, err error, isSubcommand bool) error {
		return ExitCode{BadArgs, err.Error()}
	}

	miscGroup := formatGroup("MISC")

	app.Flags = globalFlags()
	app.Action = handleHash
	app.Commands = TranslateHelp([]cli.Command{
		{
			Name:     "config",
			Aliases:  []string{"cfg"},
			Category: miscGroup,
			Subcommands: []cli.Command{
				{
					Name:   "list",
					Action: handleConfigList,
				},
				{
					Name:   "get",
					Action: withArgCheck(needAtLeast(1), handleConfigGet),
				},
				{
					Name:   "set",
					Action: withArgCheck(needAtLeast(2), handleConfigSet),
				},
				{
					Name:   "doc",
					Action: withArgCheck(needAtLeast(1), handleConfigDoc),
				},
			},
		},
	})

	app.Before = func(ctx *cli.Context) error {
		if err := setLogPath(ctx.GlobalString("log-path")); err != nil {
			return ExitCode{BadArgs, fmt.Sprintf("log path: %v", err)}
		}

		setVerbose(ctx.GlobalBool("verbose"))
		return nil
	}

	return app
}

// RunCmdline starts the termpasshash commandline tool and returns
// the exit code of the process.
func RunCmdline(args []string) int {
	err := newApp().Run(args)
	if err != nil {
		printError(err)
	}

	return exitCodeFromError(err)
}
