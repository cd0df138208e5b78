package hasher

import (
	"encoding/binary"
	"encoding/hex"
	"io"

	"github.com/cespare/xxhash/v2"
)

// ContentHashReader computes the xxHash64 of r, streaming, and returns a hex
// string truncated to hexLen characters. 16 hex chars (the full 64 bits) is
// enough to group duplicate files in collections of practical size.
func ContentHashReader(r io.Reader, hexLen int) (string, error) {
	h := xxhash.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, h.Sum64())
	full := hex.EncodeToString(b)
	if hexLen > 0 && hexLen < len(full) {
		return full[:hexLen], nil
	}
	return full, nil
}
