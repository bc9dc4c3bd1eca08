package beverage

const (
	HouseBlendPrice = 2.99
	DarkRoastPrice  = 2.99
	TeaPrice        = 0.99
)

// Base is a drink with no inner item. Its cost is the base price plus the
// surcharge of its size.
type Base struct {
	name  string
	price float64
	size  Size
}

// BaseOption customizes a base drink.
type BaseOption func(*Base)

// WithSize overrides the default Small size.
func WithSize(size Size) BaseOption {
	return func(b *Base) {
		b.size = size
	}
}

// NewBase creates a base drink that is not one of the built-ins, e.g. one
// defined by a catalog file.
func NewBase(name string, price float64, opts ...BaseOption) *Base {
	b := newBase(name, price, opts)
	return &b
}

func newBase(name string, price float64, opts []BaseOption) Base {
	b := Base{name: name, price: price, size: Small}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b *Base) Description() string {
	return b.name
}

func (b *Base) Size() Size {
	return b.size
}

// Price is the base price without the size surcharge.
func (b *Base) Price() float64 {
	return b.price
}

func (b *Base) Cost() float64 {
	return b.price + b.Size().Surcharge()
}

type HouseBlend struct{ Base }

func NewHouseBlend(opts ...BaseOption) *HouseBlend {
	return &HouseBlend{Base: newBase("HouseBlend", HouseBlendPrice, opts)}
}

type DarkRoast struct{ Base }

func NewDarkRoast(opts ...BaseOption) *DarkRoast {
	return &DarkRoast{Base: newBase("DarkRoast", DarkRoastPrice, opts)}
}

type Tea struct{ Base }

func NewTea(opts ...BaseOption) *Tea {
	return &Tea{Base: newBase("Tea", TeaPrice, opts)}
}
