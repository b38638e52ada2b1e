// Package conversion implements the narrowing and widening rules between
// primitive numeric kinds and renders the converted values as text.
package conversion

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a kind name is not recognized.
var ErrUnknownKind = errors.New("unknown primitive kind")

// Kind is a primitive numeric kind.
type Kind int

// Available kinds.
const (
	Int Kind = iota
	Long
	Float
	Double
	Byte
	Char
	Short
)

var kindNames = [...]string{
	Int:    "Int",
	Long:   "Long",
	Float:  "Float",
	Double: "Double",
	Byte:   "Byte",
	Char:   "Char",
	Short:  "Short",
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	return []Kind{Int, Long, Float, Double, Byte, Char, Short}
}

// String returns the printed label of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// IsFloating reports whether the kind is float or double.
func (k Kind) IsFloating() bool {
	return k == Float || k == Double
}

// Bits returns the storage width of the kind.
func (k Kind) Bits() int {
	switch k {
	case Byte:
		return 8
	case Char, Short:
		return 16
	case Int, Float:
		return 32
	default:
		return 64
	}
}

// ParseKind resolves a kind by name, ignoring case.
func ParseKind(name string) (Kind, error) {
	needle := strings.ToLower(strings.TrimSpace(name))

	for _, k := range Kinds() {
		if strings.ToLower(k.String()) == needle {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
