package types

import (
	"encoding/hex"
	"fmt"
)

// Bytes is an ordered byte sequence with hex parse/format support.
type Bytes struct {
	data []byte
}

// NewBytes wraps a byte slice as a Bytes value. The slice is not copied.
func NewBytes(data []byte) Bytes {
	return Bytes{data: data}
}

// Data returns the underlying byte slice.
func (b Bytes) Data() []byte { return b.data }

// Len returns the number of bytes.
func (b Bytes) Len() int { return len(b.data) }

// Equal reports whether two Bytes values hold identical content.
func (b Bytes) Equal(other Bytes) bool {
	if len(b.data) != len(other.data) {
		return false
	}
	for i := range b.data {
		if b.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// ToHex renders the bytes as a lowercase hex string with no separators.
func (b Bytes) ToHex() string {
	return hex.EncodeToString(b.data)
}

// FromHex parses a (possibly "'"-separated, per the literal grammar) hex string into Bytes.
func FromHex(s string) (Bytes, error) {
	clean := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' {
			continue
		}
		clean = append(clean, s[i])
	}
	decoded, err := hex.DecodeString(string(clean))
	if err != nil {
		return Bytes{}, fmt.Errorf("invalid hex byte data: %w", err)
	}
	return Bytes{data: decoded}, nil
}

// String renders the bytes as lowercase hex.
func (b Bytes) String() string {
	return b.ToHex()
}
