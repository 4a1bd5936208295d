package config

import (
	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/shellkit/shellkit/pkg/errors"
)

// DumpTOML renders the effective configuration back as TOML, for the
// genconfig command and for scaffolding a repo config file.
func DumpTOML(cfg *Config) (string, error) {
	out, err := gotoml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal configuration")
	}
	return string(out), nil
}
