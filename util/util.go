// Package util holds log file and config file helpers for the cli.
package util

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// OpenLog opens path for appending, discarding when path is empty.
// The tui owns stdout, so logs go to a file.
func OpenLog(path string, mode os.FileMode) (file io.Writer, err error) {

	if path == "" {
		file = io.Discard
		return
	}

	file, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, mode)
	if err != nil {
		err = errors.Wrapf(err, "failed to open log %s", path)
		file = io.Discard
	}
	return
}

func CloseLog(file io.Writer) {

	actually, ok := file.(*os.File)
	if ok {
		actually.Close()
	}
}

// LoadConfig unmarshals the file at path into cfg, as toml for a .toml
// extension and yaml otherwise.
func LoadConfig(cfg any, path string) (err error) {

	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read from %s", path)
		return
	}

	if isToml(path) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	err = errors.Wrapf(err, "failed to unmarshal %s", path)
	return
}

// WriteConfig marshals cfg to path, refusing to overwrite unless force.
// The file is replaced atomically.
func WriteConfig(cfg any, path string, force bool) (err error) {

	if !force {
		_, err = os.Stat(path)
		if err == nil {
			err = errors.Errorf("not overwriting %s", path)
			return
		}
	}

	var data []byte
	if isToml(path) {
		data, err = toml.Marshal(cfg)
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to marshal")
		return
	}

	err = atomic.WriteFile(path, bytes.NewReader(data))
	err = errors.Wrapf(err, "failed to write to %s", path)
	return
}

// unexported

func isToml(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".toml"
}
