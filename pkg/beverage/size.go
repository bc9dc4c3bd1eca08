package beverage

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the cup size of a drink. The zero value is Small.
type Size int

const (
	Small Size = iota
	Medium
	Large
)

// ErrUnknownSize is returned when a size name cannot be parsed.
var ErrUnknownSize = errors.New("unknown size")

// Sizes returns every size in ascending order.
func Sizes() []Size {
	return []Size{Small, Medium, Large}
}

// Surcharge is the amount the size adds to a base drink.
func (s Size) Surcharge() float64 {
	switch s {
	case Small:
		return 0.99
	case Medium:
		return 1.99
	case Large:
		return 2.99
	default:
		return 0
	}
}

func (s Size) IsValid() bool {
	return s >= Small && s <= Large
}

func (s Size) String() string {
	switch s {
	case Small:
		return "Small"
	case Medium:
		return "Medium"
	case Large:
		return "Large"
	default:
		return fmt.Sprintf("Size(%d)", int(s))
	}
}

// ParseSize parses a size name, ignoring case and surrounding space.
func ParseSize(name string) (Size, error) {
	for _, s := range Sizes() {
		if strings.EqualFold(strings.TrimSpace(name), s.String()) {
			return s, nil
		}
	}
	return Small, fmt.Errorf("%w: %q", ErrUnknownSize, name)
}

func (s Size) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSize, int(s))
	}
	return []byte(s.String()), nil
}

func (s *Size) UnmarshalText(text []byte) error {
	parsed, err := ParseSize(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
