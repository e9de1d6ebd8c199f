package diagfmt

import (
	"fmt"
	"io"

	"simplec/internal/token"
)

// FormatTokensPretty writes one Token(<KIND>, '<lexeme>', L<line>) per
// line, per spec.md section 6's token rendering contract.
func FormatTokensPretty(w io.Writer, toks []token.Token) error {
	for _, t := range toks {
		if _, err := fmt.Fprintln(w, t.String()); err != nil {
			return err
		}
	}
	return nil
}
