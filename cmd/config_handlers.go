package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/fatih/color"
	e "github.com/pkg/errors"
	"github.com/sahib/config"
	"github.com/sahib/termpasshash/defaults"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func configPathFromContext(ctx *cli.Context) (string, error) {
	if path := ctx.GlobalString("config"); path != "" {
		return path, nil
	}

	return defaults.ConfigPath()
}

func openConfig(ctx *cli.Context) (*config.Config, string, error) {
	path, err := configPathFromContext(ctx)
	if err != nil {
		return nil, "", ExitCode{BadConfig, err.Error()}
	}

	log.Debugf("using config at %s", path)
	cfg, err := defaults.Open(path)
	if err != nil {
		return nil, "", ExitCode{BadConfig, fmt.Sprintf("config %s: %v", path, err)}
	}

	return cfg, path, nil
}

func checkConfigKey(cfg *config.Config, key string) error {
	if !cfg.IsValidKey(key) {
		return ExitCode{BadArgs, fmt.Sprintf("no such config key: %s", key)}
	}

	return nil
}

func uncastWithUnit(cfg *config.Config, key string) string {
	val := cfg.Uncast(key)
	if key == "argon2.memory_kib" {
		val += color.CyanString(" (%s)", humanize.IBytes(uint64(cfg.Int(key))*1024))
	}

	return val
}

func printConfigDocEntry(w io.Writer, cfg *config.Config, key string) {
	entry := cfg.GetDefault(key)

	val := uncastWithUnit(cfg, key)
	if val == "" {
		val = color.YellowString("(empty)")
	}

	defaultMarker := ""
	if cfg.IsDefault(key) {
		defaultMarker = color.CyanString("(default)")
	}

	fmt.Fprintf(w, "%s: %v %s\n", color.GreenString(key), val, defaultMarker)

	defaultVal := fmt.Sprintf("%v", entry.Default)
	if defaultVal == "" {
		defaultVal = color.YellowString("(empty)")
	}

	fmt.Fprintf(w, "  Default:       %v\n", defaultVal)
	fmt.Fprintf(w, "  Documentation: %v\n", entry.Docs)
	fmt.Fprintf(w, "  Needs restart: %v\n", yesify(entry.NeedsRestart))
}

func handleConfigList(ctx *cli.Context) error {
	cfg, _, err := openConfig(ctx)
	if err != nil {
		return err
	}

	for _, key := range cfg.Keys() {
		printConfigDocEntry(os.Stdout, cfg, key)
	}

	return nil
}

func handleConfigGet(ctx *cli.Context) error {
	cfg, _, err := openConfig(ctx)
	if err != nil {
		return err
	}

	key := ctx.Args().Get(0)
	if err := checkConfigKey(cfg, key); err != nil {
		return err
	}

	fmt.Println(cfg.Uncast(key))
	return nil
}

func setConfigValue(cfg *config.Config, key, val string) error {
	if err := checkConfigKey(cfg, key); err != nil {
		return err
	}

	casted, err := cfg.Cast(key, val)
	if err != nil {
		return ExitCode{BadArgs, fmt.Sprintf("config set: %v", err)}
	}

	if err := cfg.Set(key, casted); err != nil {
		return ExitCode{BadArgs, fmt.Sprintf("config set: %v", err)}
	}

	return nil
}

func handleConfigSet(ctx *cli.Context) error {
	cfg, path, err := openConfig(ctx)
	if err != nil {
		return err
	}

	key := ctx.Args().Get(0)
	val := strings.Join(ctx.Args()[1:], " ")
	if err := setConfigValue(cfg, key, val); err != nil {
		return err
	}

	if err := defaults.Save(path, cfg); err != nil {
		return ExitCode{BadConfig, e.Wrapf(err, "config %s", path).Error()}
	}

	if strings.HasPrefix(key, "argon2.") {
		fmt.Println("NOTE: Changing argon2 parameters changes every hash you derive.")
	}

	return nil
}

func handleConfigDoc(ctx *cli.Context) error {
	cfg, _, err := openConfig(ctx)
	if err != nil {
		return err
	}

	key := ctx.Args().Get(0)
	if err := checkConfigKey(cfg, key); err != nil {
		return err
	}

	printConfigDocEntry(os.Stdout, cfg, key)
	return nil
}
