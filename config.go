package main

import (
	"bytes"
	"errors"
	"io"
	"os"

	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// configuration holds defaults for the render flags. Boolean flags given on
// the command line can only turn settings on; string flags replace the
// configured value when set.
type configuration struct {
	HTML5    bool `yaml:"html5"`
	Lists    bool `yaml:"lists"`
	IDs      bool `yaml:"ids"`
	Complete bool `yaml:"complete"`
	Smartify bool `yaml:"smartify"`
	Hash     bool `yaml:"hash"`

	ComponentStyle           string `yaml:"componentStyle"`
	IncorporateComponentText string `yaml:"incorporateComponentText"`
	QuoteComponentText       string `yaml:"quoteComponentText"`

	ClassNames []string `yaml:"classNames"`
	Depth      int      `yaml:"depth"`
}

func loadConfig(path string) (configuration, error) {
	if path == "" {
		return configuration{}, nil
	}
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return configuration{}, pkgerrors.Wrap(err, "could not open config")
	}
	config, err := configFromBytes(fileBytes)
	if err != nil {
		return configuration{}, pkgerrors.Wrapf(err, "could not parse config %s", path)
	}
	return config, nil
}

func configFromBytes(b []byte) (configuration, error) {
	var config configuration
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return configuration{}, err
	}
	return config, nil
}
