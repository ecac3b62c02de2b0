// Package configutil reads json5 configuration files with an optional
// machine-local override layer: <name>.local.<ext> next to <name>.<ext>
// wins field by field, so checked-in defaults and developer secrets can
// coexist.
package configutil

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// derives the `.local.` sibling of a config path, e.g.
// "menuboard_config.json5" -> "menuboard_config.local.json5"
func localOverridePath(name string) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	return stem + ".local" + ext
}

// reads one layer, a missing file is (false, nil)
func readLayer[T any](path string, out *T) (bool, error) {
	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json5.Unmarshal(contents, out)
}

// ReadConfig loads `name` and merges `<name>.local.<ext>` on top of it
// when present. At least one of the two files must exist, otherwise
// os.ErrNotExist comes back.
func ReadConfig[T any](name string) (T, error) {
	var config T

	foundBase, err := readLayer(name, &config)
	if err != nil {
		return config, err
	}

	var override T
	localPath := localOverridePath(name)
	foundLocal, err := readLayer(localPath, &override)
	if err != nil {
		return config, err
	}
	if foundLocal {
		err = mergo.Merge(&config, override, mergo.WithOverride)
		if err != nil {
			return config, err
		}
		slog.Info("merging config with local overrides", "local", localPath)
	}

	if !foundBase && !foundLocal {
		return config, os.ErrNotExist
	}
	return config, nil
}

// ReadRecursively walks from the working directory up to the
// filesystem root looking for a config with the given name, so a
// shared file at the repo root serves every service started below it.
func ReadRecursively[T any](name string) (T, error) {
	var config T

	dir, err := os.Getwd()
	if err != nil {
		return config, err
	}

	for {
		config, err := ReadConfig[T](filepath.Join(dir, name))
		if err == nil {
			return config, nil
		}
		if !os.IsNotExist(err) {
			return config, err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return config, os.ErrNotExist
		}
		dir = parent
	}
}
