package geohash

import (
	"errors"
	"fmt"
)

// base32Codes is the geohash alphabet: digits 0-9 then lowercase letters,
// skipping a, i, l and o.
const base32Codes = "0123456789bcdefghjkmnpqrstuvwxyz"

// ErrInvalidSymbol reports a character outside the geohash alphabet.
var ErrInvalidSymbol = errors.New("invalid geohash symbol")

var base32Values [256]int8

func init() {
	for i := range base32Values {
		base32Values[i] = -1
	}
	for i := 0; i < len(base32Codes); i++ {
		base32Values[base32Codes[i]] = int8(i)
	}
}

func encodeSymbol(v uint8) byte {
	return base32Codes[v]
}

func decodeSymbol(c byte) (uint8, error) {
	v := base32Values[c]
	if v < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, c)
	}
	return uint8(v), nil
}
