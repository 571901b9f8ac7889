package cmd

import (
	"fmt"
	"strings"

	"github.com/sahib/config"
	"github.com/sahib/termpasshash/defaults"
	"github.com/urfave/cli"
)

// Help is the documentation of a single command.
type Help struct {
	Usage       string
	ArgsUsage   string
	Description string
	Complete    cli.BashCompleteFunc
	Flags       []cli.Flag
}

func die(msg string) {
	// be really pedantic when help is missing.
	panic(msg)
}

const appDescription = `Derive a reproducible hash from a password and a salt.

   The hash itself can be used as password for websites and the like.
   By default it is derived with argon2id and copied into the clipboard.
   Once you pressed enter, the clipboard is cleared again.

   Use »--create« when deriving a hash for the first time: you will be
   asked for everything twice and the hash is only accepted if both match.

   »--legacy« selects the old iterated SHA3-512 procedure. It is only
   there to reproduce hashes that were created with it.`

func completeConfigKeys(ctx *cli.Context) {
	cfg, err := config.Open(nil, defaults.Defaults, config.StrictnessPanic)
	if err != nil {
		return
	}

	for _, key := range cfg.Keys() {
		fmt.Println(key)
	}
}

// HelpTexts maps the dotted path of a command to its documentation.
var HelpTexts = map[string]Help{
	"config": {
		Usage: "View and modify config options",
		Description: `Show or edit the config file.

   The config is located at ~/.config/termpasshash/config.yml or at the
   path given by »--config«. If it does not exist, defaults are used and
   »config set« creates it. Values given on the command line always win
   over values in the config.

EXAMPLES:

   $ termpasshash config list                # Show all options
   $ termpasshash config doc argon2.time     # Show docs for a single option
   $ termpasshash config set legacy.default_rounds 12`,
	},
	"config.list": {
		Usage:       "Show all config options",
		Description: "Show all config options, their current values and documentation.",
	},
	"config.get": {
		Usage:       "Print the value of a single config option",
		ArgsUsage:   "<key>",
		Complete:    completeConfigKeys,
		Description: "Print the current value of the option »key« to stdout.",
	},
	"config.set": {
		Usage:       "Set the value of a config option",
		ArgsUsage:   "<key> <value>",
		Complete:    completeConfigKeys,
		Description: "Validate »value« and store it as new value of »key« in the config file.",
	},
	"config.doc": {
		Usage:       "Show the documentation of a config option",
		ArgsUsage:   "<key>",
		Complete:    completeConfigKeys,
		Description: "Show the value, default and documentation of »key«.",
	},
}

func injectHelp(cmd *cli.Command, path string) {
	help, ok := HelpTexts[path]
	if !ok {
		die(fmt.Sprintf("bug: no such help entry: %v", path))
	}

	cmd.Usage = help.Usage
	cmd.ArgsUsage = help.ArgsUsage
	cmd.Description = help.Description
	cmd.BashComplete = help.Complete
	cmd.Flags = help.Flags
}

func translateHelp(cmds []cli.Command, prefix []string) {
	for idx := range cmds {
		path := append(append([]string{}, prefix...), cmds[idx].Name)
		injectHelp(&cmds[idx], strings.Join(path, "."))
		translateHelp(cmds[idx].Subcommands, path)
	}
}

// TranslateHelp fills in the usage and description for each command.
// This is separated from the command definition to make things more readable,
// and separate logic from the (lengthy) documentation.
func TranslateHelp(cmds []cli.Command) []cli.Command {
	translateHelp(cmds, nil)
	return cmds
}
