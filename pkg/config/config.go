// Package config loads deobf's tool settings: built-in defaults layered
// under an optional deobf.toml found next to the manifest or in the XDG
// config directory.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/forgeutil/deobf/pkg/errors"
	"github.com/forgeutil/deobf/pkg/logging"
)

// ConfigFileName is the settings file deobf looks for.
const ConfigFileName = "deobf.toml"

// ManagerSettings configures the tracking manager.
type ManagerSettings struct {
	CompanionSuffix  string `koanf:"companion_suffix"`
	ObfConfiguration string `koanf:"obf_configuration"`
	ClearAfterApply  bool   `koanf:"clear_after_apply"`
}

// RemapperSettings selects and configures the remapper.
type RemapperSettings struct {
	Name    string                 `koanf:"name"`
	Options map[string]interface{} `koanf:"options"`
}

// Settings is deobf's resolved tool configuration.
type Settings struct {
	Manager  ManagerSettings  `koanf:"manager"`
	Remapper RemapperSettings `koanf:"remapper"`
}

// Load resolves settings from the embedded defaults plus the first
// deobf.toml found in searchDir (usually the manifest's directory) or the
// XDG config directory. A missing file is not an error.
func Load(searchDir string) (*Settings, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	for _, path := range candidatePaths(searchDir) {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
		break
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode config")
	}
	return &settings, nil
}

func candidatePaths(searchDir string) []string {
	var paths []string
	if searchDir != "" {
		paths = append(paths, filepath.Join(searchDir, ConfigFileName))
	}
	paths = append(paths, filepath.Join(xdg.ConfigHome, "deobf", ConfigFileName))
	return paths
}
