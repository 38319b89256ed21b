package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhhapz/formhtml/form"
	"github.com/hhhapz/formhtml/inspect"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadValues(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	values := writeFile(t, "values.yml", "Seller: ACME, Inc.\nBuyer: Initech\n")
	directions := writeFile(t, "directions.yml", `
- label: Buyer
  blank: [content, 3]
- label: Price
  blank: [content, 5]
- label: Seller
  blank: [content, 1]
`)

	t.Run("bound in direction order", func(t *testing.T) {
		in := InputFlags{Values: values, Directions: directions}
		bound, err := in.readValues(log)
		require.NoError(t, err)
		assert.Equal(t, []form.Value{
			{Blank: form.Path{}.Content(3), Value: "Initech"},
			{Blank: form.Path{}.Content(1), Value: "ACME, Inc."},
		}, bound)
	})

	t.Run("directions without values", func(t *testing.T) {
		_, err := InputFlags{Directions: directions}.readValues(log)
		assert.Error(t, err)
	})

	t.Run("values without directions", func(t *testing.T) {
		buf := &bytes.Buffer{}
		bound, err := InputFlags{Values: values}.readValues(slog.New(slog.NewTextHandler(buf, nil)))
		require.NoError(t, err)
		assert.Empty(t, bound)
		assert.Contains(t, buf.String(), "ignoring values without directions")
	})

	t.Run("neither", func(t *testing.T) {
		bound, err := InputFlags{}.readValues(log)
		require.NoError(t, err)
		assert.Nil(t, bound)
	})
}

func TestReadForm(t *testing.T) {
	path := writeFile(t, "form.json", `{"content": ["The ", {"use": "Buyer"}, " pays."]}`)
	f, data, err := InputFlags{File: path}.readForm()
	require.NoError(t, err)
	assert.Len(t, f.Content, 3)
	assert.Equal(t, form.Use("Buyer"), f.Content[1])
	assert.NotEmpty(t, data)

	_, _, err = InputFlags{File: writeFile(t, "bad.json", `{"content": 1}`)}.readForm()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not parse form")
}

func TestReadAnnotations(t *testing.T) {
	annotations, err := readAnnotations("")
	require.NoError(t, err)
	assert.Nil(t, annotations)

	path := writeFile(t, "annotations.yml", `
- path: [content, 1, form]
  level: warning
  message: Check this.
`)
	annotations, err = readAnnotations(path)
	require.NoError(t, err)
	assert.Equal(t, []form.Annotation{{
		Path:    form.Path{}.Content(1).Form(),
		Level:   "warning",
		Message: "Check this.",
	}}, annotations)
}

func TestWriteInfo(t *testing.T) {
	buf := &bytes.Buffer{}
	writeInfo(buf, inspect.Stats{Forms: 3, Depth: 2, Words: 1234, Blanks: 2, Filled: 1}, "abc", 2048)

	out := buf.String()
	assert.Contains(t, out, "Size: 2.0 kB\n")
	assert.Contains(t, out, "Hash: abc\n")
	assert.Contains(t, out, "Forms: 3 (depth 2)\n")
	assert.Contains(t, out, "Words: 1,234\n")
	assert.Contains(t, out, "Blanks: 2 (1 filled)\n")
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "reference", pluralize(1, "reference"))
	assert.Equal(t, "references", pluralize(2, "reference"))
}
