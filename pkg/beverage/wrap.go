package beverage

// Wrapper decorates an item and returns the decorated item.
type Wrapper func(SizedItem) SizedItem

var (
	AddSugar     Wrapper = func(i SizedItem) SizedItem { return NewSugar(i) }
	AddCream     Wrapper = func(i SizedItem) SizedItem { return NewCream(i) }
	AddMilk      Wrapper = func(i SizedItem) SizedItem { return NewMilk(i) }
	AddWhipCream Wrapper = func(i SizedItem) SizedItem { return NewWhipCream(i) }
)

// Wrap applies wrappers to item in order, so the first wrapper is innermost and
// its text appears first in the description.
func Wrap(item SizedItem, wrappers ...Wrapper) SizedItem {
	for _, w := range wrappers {
		item = w(item)
	}
	return item
}
