package cmd

import (
	"io"

	"gopkg.in/yaml.v3"
)

// encodeYAML writes v as a single YAML document and flushes the encoder.
func encodeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		_ = enc.Close()
		return err
	}

	return enc.Close()
}
