package diagfmt

import (
	"encoding/json"
	"io"
)

// WriteJSON marshals p as indented JSON to w. This is SimpleC's local
// stand-in for the external HTTP endpoint's response body (spec.md
// section 6 treats the HTTP server as an unimplemented collaborator; this
// gives the CLI the same shape locally).
func WriteJSON(w io.Writer, p Payload) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}
