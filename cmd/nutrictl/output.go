package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// render writes value as json or yaml; text output is left to the caller.
func render(w io.Writer, format string, value any, text func(io.Writer)) error {
	switch format {
	case outputText:
		text(w)
		return nil
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(value)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
