/*
Copyright © 2025 Microsoft Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package serializer emits validated request documents as JSON or YAML to
// stdout or a file. Secret-bearing fields are excluded from serialization
// by the document types themselves.
package serializer

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Format selects the serialization encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"

	// StdoutPath is the special output path indicating stdout.
	StdoutPath = "-"
)

// IsUnknown reports whether f is not a supported encoding.
func (f Format) IsUnknown() bool {
	return f != FormatJSON && f != FormatYAML
}

// Writer serializes documents in a fixed format to a fixed destination.
type Writer struct {
	format Format
	path   string
}

// NewFileWriterOrStdout returns a Writer targeting path, or stdout when
// path is StdoutPath.
func NewFileWriterOrStdout(format Format, path string) (*Writer, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	return &Writer{format: format, path: path}, nil
}

// Serialize encodes doc in the writer's format and writes it to the
// writer's destination.
func (w *Writer) Serialize(doc any) error {
	var out []byte
	switch w.format {
	case FormatYAML:
		y, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to serialize to yaml: %w", err)
		}
		out = y
	default:
		j, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize to json: %w", err)
		}
		out = append(j, '\n')
	}

	if w.path == StdoutPath {
		_, err := os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(w.path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", w.path, err)
	}
	return nil
}
