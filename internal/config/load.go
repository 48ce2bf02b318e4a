package config

import (
	"github.com/dshills/smartkey/internal/config/loader"
)

// Load reads the configuration file at path from the OS file system.
func Load(path string) (*Config, error) {
	return LoadFS(loader.DefaultFS(), path)
}

// LoadFS reads the configuration file at path from fsys, applies
// environment overrides and validates the result. An empty path or a
// missing file yields the defaults, still subject to the environment.
func LoadFS(fsys loader.FileSystem, path string) (*Config, error) {
	return load(fsys, path, loader.NewEnvLoader(loader.DefaultEnvPrefix))
}

func load(fsys loader.FileSystem, path string, env loader.Loader) (*Config, error) {
	var m map[string]any
	if path != "" {
		l, err := loader.ForPath(fsys, path)
		if err != nil {
			return nil, err
		}
		if m, err = l.Load(); err != nil {
			return nil, err
		}
	}

	if env != nil {
		overrides, err := env.Load()
		if err != nil {
			return nil, err
		}
		m = loader.DeepMerge(m, overrides)
	}

	c := Default()
	if err := decode(c, m); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
