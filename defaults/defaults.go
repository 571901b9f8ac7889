package defaults

import (
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	e "github.com/pkg/errors"
	"github.com/sahib/config"
)

// CurrentVersion is the current version of the config layout.
const CurrentVersion = 0

// Defaults is the default validation for termpasshash.
var Defaults = DefaultsV0

// ConfigPath returns the location of the config file:
// ~/.config/termpasshash/config.yml
func ConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", e.Wrap(err, "failed to find home directory")
	}

	return filepath.Join(home, ".config", "termpasshash", "config.yml"), nil
}

// Open loads the config at path. A path that does not exist yields a config
// that only consists of default values. A leading ~ is expanded.
func Open(path string) (*config.Config, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, e.Wrap(err, "failed to expand config path")
	}

	fd, err := os.Open(expanded)
	if os.IsNotExist(err) {
		return config.Open(nil, Defaults, config.StrictnessPanic)
	}

	if err != nil {
		return nil, e.Wrap(err, "failed to open config")
	}

	defer fd.Close()

	mgr := config.NewMigrater(CurrentVersion, config.StrictnessPanic)
	mgr.Add(0, nil, DefaultsV0)

	cfg, err := mgr.Migrate(config.NewYamlDecoder(fd))
	if err != nil {
		return nil, e.Wrap(err, "failed to migrate")
	}

	return cfg, nil
}

// Save writes cfg to path and creates the parent directory if needed.
func Save(path string, cfg *config.Config) error {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return e.Wrap(err, "failed to expand config path")
	}

	if err := os.MkdirAll(filepath.Dir(expanded), 0700); err != nil {
		return e.Wrap(err, "failed to create config dir")
	}

	fd, err := os.OpenFile(expanded, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return e.Wrap(err, "failed to open config for writing")
	}

	if err := cfg.Save(config.NewYamlEncoder(fd)); err != nil {
		fd.Close()
		return e.Wrap(err, "failed to save config")
	}

	return fd.Close()
}
