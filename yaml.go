package printf

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, tokens []Token) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if tokens == nil {
		tokens = []Token{}
	}
	if err := enc.Encode(tokens); err != nil {
		return err
	}
	return enc.Close()
}
