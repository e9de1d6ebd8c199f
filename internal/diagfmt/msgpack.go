package diagfmt

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// WriteMsgpack encodes p as msgpack to w: the binary sibling of WriteJSON,
// used by --format msgpack and by "build" when simplec.toml's
// [output].format is "msgpack" (the CLI writes it to stdout).
func WriteMsgpack(w io.Writer, p Payload) error {
	return msgpack.NewEncoder(w).Encode(p)
}
