package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/sahib/termpasshash/util"
	"github.com/urfave/cli"
	"github.com/xrash/smetrics"
)

const (
	maxSuggestions = 3
	minSimilarity  = 0.6
)

// Names people tend to type for our commands:
var staticSuggestions = map[string]string{
	"ls":   "list",
	"show": "get",
	"put":  "set",
	"help": "doc",
}

type suggestion struct {
	name  string
	score float64
}

// levenshteinRatio is 1.0 for equal strings and drops towards 0.0
// the more edits are needed. Substitutions count twice.
func levenshteinRatio(s, t string) float64 {
	lensum := float64(len(s) + len(t))
	if lensum == 0 {
		return 1.0
	}

	dist := float64(smetrics.WagnerFischer(s, t, 1, 1, 2))
	return (lensum - dist) / lensum
}

// bestScore is the similarity of typed to the name or any alias of cmd.
func bestScore(typed string, cmd cli.Command) float64 {
	best := levenshteinRatio(typed, cmd.Name)
	for _, alias := range cmd.Aliases {
		if score := levenshteinRatio(typed, alias); score > best {
			best = score
		}
	}

	return best
}

// resolvePath follows all but the last of args down the command tree.
// It returns the names it could resolve and the commands below them.
func resolvePath(cmds []cli.Command, args []string) ([]string, []cli.Command) {
	if len(args) == 0 {
		return nil, cmds
	}

	var path []string
	for _, arg := range args[:len(args)-1] {
		var next *cli.Command
		for idx := range cmds {
			if cmds[idx].HasName(arg) {
				next = &cmds[idx]
				break
			}
		}

		if next == nil {
			break
		}

		path = append(path, next.Name)
		cmds = next.Subcommands
	}

	return path, cmds
}

func findSimilarCommands(typed string, cmds []cli.Command) []suggestion {
	similars := []suggestion{}
	for _, cmd := range cmds {
		if score := bestScore(typed, cmd); score >= minSimilarity {
			similars = append(similars, suggestion{name: cmd.Name, score: score})
		}
	}

	if name, ok := staticSuggestions[typed]; ok {
		for _, cmd := range cmds {
			if cmd.Name == name {
				similars = append(similars, suggestion{name: name, score: 1.0})
				break
			}
		}
	}

	sort.SliceStable(similars, func(i, j int) bool {
		return similars[i].score > similars[j].score
	})

	return similars[:util.Min(len(similars), maxSuggestions)]
}

func printSuggestions(w io.Writer, path []string, typed string, cmds []cli.Command) {
	if len(path) == 0 {
		fmt.Fprintf(w, "`%s` is not a valid command. ", color.RedString(typed))
	} else {
		fmt.Fprintf(
			w,
			"`%s` is not a valid subcommand of `%s`. ",
			color.RedString(typed),
			color.YellowString(strings.Join(path, " ")),
		)
	}

	similars := findSimilarCommands(typed, cmds)
	if len(similars) == 0 {
		fmt.Fprintln(w)
		return
	}

	if len(similars) == 1 {
		fmt.Fprintf(w, "Did you maybe mean `%s`?\n", color.GreenString(similars[0].name))
		return
	}

	fmt.Fprintf(w, "\n\nDid you maybe mean one of those?\n")
	for _, similar := range similars {
		fmt.Fprintf(w, "  * %s\n", color.GreenString(similar.name))
	}
}

func commandNotFound(ctx *cli.Context, typed string) {
	root := ctx
	for root.Parent() != nil {
		root = root.Parent()
	}

	// Only suggest siblings of the command that was mistyped:
	path, cmds := resolvePath(root.App.Commands, root.Args())
	printSuggestions(os.Stdout, path, typed, cmds)
}
