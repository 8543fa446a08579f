package ll1

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/cfgparse"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// DefaultEndMarker is used if a configuration does not name an end marker.
const DefaultEndMarker = "$"

// Config is the external form of an LL(1) parse table. Table maps a non-terminal
// to a map from lookahead (terminal or end marker) to production body.
//
// In TOML, the if-expression table of package grammars starts like this:
//
//    start = "L"
//    end = "$"
//    terminals = [ "(", ")", "i", "f", ... ]
//
//    [table.L]
//    "(" = "ER"
//    "a" = "ER"
//
// Config is not used by the parser directly, it has to be compiled into a Table.
type Config struct {
	Start         string                       `toml:"start" yaml:"start"`
	End           string                       `toml:"end" yaml:"end"`
	InvalidSymbol string                       `toml:"invalid-symbol" yaml:"invalid-symbol"`
	Terminals     []string                     `toml:"terminals" yaml:"terminals"`
	Table         map[string]map[string]string `toml:"table" yaml:"table"`
}

// LoadConfig reads a configuration from a TOML (*.toml) or YAML (*.yaml, *.yml)
// file. Missing end marker and invalid-symbol text are set to their defaults.
func LoadConfig(path string) (*Config, error) {
	c := &Config{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, c); err != nil {
			return nil, errors.Wrapf(err, "cannot load LL(1) table from %s", path)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot load LL(1) table from %s", path)
		}
		if err = yaml.UnmarshalStrict(data, c); err != nil {
			return nil, errors.Wrapf(err, "cannot load LL(1) table from %s", path)
		}
	default:
		return nil, errors.Errorf("unknown format of LL(1) table file %s", path)
	}
	if c.End == "" {
		c.End = DefaultEndMarker
	}
	if c.InvalidSymbol == "" {
		c.InvalidSymbol = cfgparse.ErrorInvalidSymbol
	}
	tracer().Debugf("loaded LL(1) configuration from %s", path)
	return c, nil
}
