// Package beverage prices drinks by composition.
//
// A base drink (HouseBlend, DarkRoast, Tea) is wrapped by any number of
// condiments (Sugar, Cream, Milk, WhipCream). Every condiment is itself a
// SizedItem that owns exactly one inner item, adds a fixed surcharge to its
// cost and appends " with <name>" to its description:
//
//	var drink beverage.SizedItem = beverage.NewHouseBlend()
//	drink = beverage.NewMilk(drink)
//	drink = beverage.NewSugar(drink)
//
//	drink.Cost()        // 5.23
//	drink.Description() // "HouseBlend with Milk with Sugar"
//
// The same chain can be built with Wrap, which applies wrappers inside-out:
//
//	drink := beverage.Wrap(beverage.NewHouseBlend(), beverage.AddMilk, beverage.AddSugar)
//
// New base drinks and condiments are added by implementing SizedItem (or by
// using NewBase and NewCondiment); nothing in this package enumerates the
// variants.
//
// Items are immutable after construction and safe for concurrent reads.
package beverage
