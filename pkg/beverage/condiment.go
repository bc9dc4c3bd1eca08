package beverage

import "reflect"

const (
	SugarSurcharge     = 0.75
	CreamSurcharge     = 1.0
	MilkSurcharge      = 0.5
	WhipCreamSurcharge = 0.25
)

// Condiment wraps exactly one item, adding a fixed surcharge and appending
// " with <name>" to the description.
//
// A condiment does not report the size of the item it wraps: Size comes from
// the embedded DefaultSize and is always Small. Cost is unaffected, since the
// inner item already includes its own size surcharge. Use Root(item).Size() for
// the size of the drink.
type Condiment struct {
	DefaultSize

	inner     SizedItem
	name      string
	surcharge float64
}

// NewCondiment wraps inner with a condiment that is not one of the built-ins.
// It panics if inner is nil, including a nil pointer held in the interface.
func NewCondiment(inner SizedItem, name string, surcharge float64) *Condiment {
	c := newCondiment(inner, name, surcharge)
	return &c
}

func newCondiment(inner SizedItem, name string, surcharge float64) Condiment {
	if isNil(inner) {
		panic("beverage: condiment " + name + " wraps a nil item")
	}
	return Condiment{inner: inner, name: name, surcharge: surcharge}
}

func isNil(item SizedItem) bool {
	if item == nil {
		return true
	}
	v := reflect.ValueOf(item)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func (c *Condiment) Description() string {
	return c.inner.Description() + " with " + c.name
}

func (c *Condiment) Cost() float64 {
	return c.surcharge + c.inner.Cost()
}

func (c *Condiment) Inner() SizedItem {
	return c.inner
}

// Name is the text this condiment appends to the description.
func (c *Condiment) Name() string {
	return c.name
}

// Surcharge is the amount this condiment adds on its own.
func (c *Condiment) Surcharge() float64 {
	return c.surcharge
}

type Sugar struct{ Condiment }

func NewSugar(inner SizedItem) *Sugar {
	return &Sugar{Condiment: newCondiment(inner, "Sugar", SugarSurcharge)}
}

type Cream struct{ Condiment }

func NewCream(inner SizedItem) *Cream {
	return &Cream{Condiment: newCondiment(inner, "Cream", CreamSurcharge)}
}

type Milk struct{ Condiment }

func NewMilk(inner SizedItem) *Milk {
	return &Milk{Condiment: newCondiment(inner, "Milk", MilkSurcharge)}
}

type WhipCream struct{ Condiment }

func NewWhipCream(inner SizedItem) *WhipCream {
	return &WhipCream{Condiment: newCondiment(inner, "WhipCream", WhipCreamSurcharge)}
}
