// Package project reads simplec.toml, the optional project manifest that
// supplies default CLI behavior (which directory to compile, preferred
// output format) so "simplec build" can be invoked with no flags.
package project

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest is the decoded contents of simplec.toml.
type Manifest struct {
	Source struct {
		Dir string `toml:"dir"`
	} `toml:"source"`
	Output struct {
		Format string `toml:"format"` // "pretty", "json", or "msgpack"
	} `toml:"output"`
}

// Default returns a Manifest with SimpleC's built-in defaults.
func Default() Manifest {
	var m Manifest
	m.Source.Dir = "."
	m.Output.Format = "pretty"
	return m
}

// Load reads simplec.toml from dir, falling back to Default() values for
// any field the file doesn't set. A missing file is not an error.
func Load(dir string) (Manifest, error) {
	m := Default()
	path := filepath.Join(dir, "simplec.toml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return m, nil
	}
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}
