package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"path/filepath"

	"github.com/hashicorp/hcl"
	yaml "gopkg.in/yaml.v2"
)

// `Config` is the static per-run configuration.  It is loaded once and
// does not change for the lifetime of the process.
type Config struct {
	APIToken   string `yaml:"apiToken" hcl:"apiToken"`
	APIURL     string `yaml:"apiUrl" hcl:"apiUrl"`
	SafeName   string `yaml:"safeName" hcl:"safeName"`
	PlatformID string `yaml:"platformId" hcl:"platformId"`
}

// `LoadConfig()` reads the config file at `path`.  `.yml` and `.yaml`
// files are parsed as YAML, other files as HCL.  All fields are required.
func LoadConfig(path string) (*Config, error) {
	dat, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	switch filepath.Ext(path) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(dat, &cfg); err != nil {
			err := fmt.Errorf(
				"failed to parse YAML config: %v", err,
			)
			return nil, err
		}
	default:
		if err := hcl.Unmarshal(dat, &cfg); err != nil {
			err := fmt.Errorf(
				"failed to parse HCL config: %v", err,
			)
			return nil, err
		}
	}

	for _, f := range []struct {
		key string
		val string
	}{
		{"apiToken", cfg.APIToken},
		{"apiUrl", cfg.APIURL},
		{"safeName", cfg.SafeName},
		{"platformId", cfg.PlatformID},
	} {
		if f.val == "" {
			err := errors.New(
				"config is missing `" + f.key + "`",
			)
			return nil, err
		}
	}

	return &cfg, nil
}
