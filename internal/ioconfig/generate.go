package ioconfig

import (
	"github.com/gnames/dsconf/pkg/config"
	"gopkg.in/yaml.v3"
)

// Dump renders the persistent part of a configuration in the config.yaml
// format. Runtime-only fields are left out.
func Dump(cfg *config.Config) (string, error) {
	persistent := config.New()
	persistent.Update(cfg.ToOptions())

	res, err := yaml.Marshal(persistent)
	if err != nil {
		return "", err
	}
	return string(res), nil
}
