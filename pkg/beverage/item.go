package beverage

// SizedItem is anything on the menu that has a description, a size and a cost.
// Base drinks and condiments both satisfy it.
type SizedItem interface {
	Description() string
	Size() Size
	Cost() float64
}

// DefaultSize supplies Size for types that do not track one. Embed it to get
// Small.
type DefaultSize struct{}

func (DefaultSize) Size() Size {
	return Small
}

// Wrapped is implemented by items that decorate another item.
type Wrapped interface {
	SizedItem
	Inner() SizedItem
}

// Root walks a chain inward and returns the base item at its end.
func Root(item SizedItem) SizedItem {
	for {
		w, ok := item.(Wrapped)
		if !ok {
			return item
		}
		item = w.Inner()
	}
}

// Depth is the number of wrappers around the base item.
func Depth(item SizedItem) int {
	n := 0
	for {
		w, ok := item.(Wrapped)
		if !ok {
			return n
		}
		item = w.Inner()
		n++
	}
}
