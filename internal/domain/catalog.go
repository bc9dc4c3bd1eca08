package domain

import "github.com/Victor-armando18/beverage-commercial/pkg/beverage"

// CatalogDefinition lists menu entries defined outside the code.
type CatalogDefinition struct {
	Bases      []CatalogEntry `yaml:"bases"`
	Condiments []CatalogEntry `yaml:"condiments"`
}

// CatalogEntry is a base drink (Price is the base price) or a condiment (Price
// is the surcharge). Size applies to base drinks only.
type CatalogEntry struct {
	Name  string         `yaml:"name"`
	Price float64        `yaml:"price"`
	Size  *beverage.Size `yaml:"size,omitempty"`
}
