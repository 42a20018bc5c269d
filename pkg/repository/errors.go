package repository

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidKey = goerr.New("invalid key")
)

// ValidateKey accepts keys usable by every backend: non-empty, no slash and
// at most 256 bytes.
func ValidateKey(key string) error {
	switch {
	case key == "":
		return goerr.Wrap(ErrInvalidKey, "key is empty")
	case strings.Contains(key, "/"):
		return goerr.Wrap(ErrInvalidKey, "key must not contain slash", goerr.V("key", key))
	case len(key) > 256:
		return goerr.Wrap(ErrInvalidKey, "key is too long", goerr.V("length", len(key)))
	}
	return nil
}
