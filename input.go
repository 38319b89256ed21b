package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/hhhapz/formhtml/form"
)

// InputFlags name the form and the files binding values to its blanks.
type InputFlags struct {
	File       string `arg:"" optional:"" type:"existingfile" help:"Form JSON file (default: stdin)"`
	Values     string `short:"v" type:"existingfile" help:"YAML or JSON file mapping blank labels to values"`
	Directions string `short:"d" type:"existingfile" help:"YAML or JSON file listing blank labels and paths"`
}

func (in InputFlags) readForm() (*form.Form, []byte, error) {
	var data []byte
	var err error
	if in.File == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(in.File)
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not read form")
	}
	f, err := form.Parse(data)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not parse form")
	}
	return f, data, nil
}

// readValues binds the labelled values to blanks through the directions.
// Directions without values are an error; values without directions bind
// nothing.
func (in InputFlags) readValues(log *slog.Logger) ([]form.Value, error) {
	if in.Directions != "" && in.Values == "" {
		return nil, errors.New("--directions requires --values")
	}
	if in.Values == "" {
		return nil, nil
	}
	if in.Directions == "" {
		log.Warn("ignoring values without directions", "values", in.Values)
		return nil, nil
	}

	var values map[string]string
	if err := readYAML(in.Values, &values); err != nil {
		return nil, err
	}
	var directions []form.Direction
	if err := readYAML(in.Directions, &directions); err != nil {
		return nil, err
	}

	bound := form.PrepareValues(values, directions)
	log.Debug("bound blank values", "values", len(values), "directions", len(directions), "bound", len(bound))
	return bound, nil
}

func readAnnotations(path string) ([]form.Annotation, error) {
	if path == "" {
		return nil, nil
	}
	var annotations []form.Annotation
	if err := readYAML(path, &annotations); err != nil {
		return nil, err
	}
	return annotations, nil
}

// readYAML decodes a YAML file into v. JSON files decode as well.
func readYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "could not read %s", path)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "could not parse %s", path)
	}
	return nil
}
