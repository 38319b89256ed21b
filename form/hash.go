package form

import (
	"encoding/hex"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/zeebo/blake3"
)

// Hash returns the hex BLAKE3-256 digest of f's canonical JSON. Forms that
// differ only in key order or representation of equal values hash alike.
func Hash(f *Form) (string, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return "", errors.Wrap(err, "could not serialize form")
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
