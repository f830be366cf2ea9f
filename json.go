package printf

import (
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, tokens []Token) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if tokens == nil {
		tokens = []Token{}
	}
	return enc.Encode(tokens)
}
