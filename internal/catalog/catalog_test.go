package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Victor-armando18/beverage-commercial/internal/domain"
	cerrors "github.com/Victor-armando18/beverage-commercial/internal/errors"
	"github.com/Victor-armando18/beverage-commercial/pkg/beverage"
)

func TestBuiltins(t *testing.T) {
	r := New()

	assert.Equal(t, []string{"DarkRoast", "HouseBlend", "Tea"}, r.Bases())
	assert.Equal(t, []string{"Cream", "Milk", "Sugar", "WhipCream"}, r.Condiments())
}

func TestBuild(t *testing.T) {
	r := New()

	tests := []struct {
		base        string
		condiments  []string
		cost        float64
		description string
	}{
		{"HouseBlend", []string{"Milk", "Sugar"}, 5.23, "HouseBlend with Milk with Sugar"},
		{"Tea", []string{"Sugar"}, 2.73, "Tea with Sugar"},
		{"DarkRoast", []string{"Milk", "Milk"}, 4.98, "DarkRoast with Milk with Milk"},
		{"Tea", nil, 1.98, "Tea"},
		{"HouseBlend", []string{"Cream", "WhipCream"}, 2.99 + 0.99 + 1.0 + 0.25, "HouseBlend with Cream with WhipCream"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			item, err := r.Build(tt.base, tt.condiments...)
			require.NoError(t, err)
			assert.InDelta(t, tt.cost, item.Cost(), 1e-9)
			assert.Equal(t, tt.description, item.Description())
		})
	}
}

func TestBuildSized(t *testing.T) {
	item, err := New().BuildSized("Tea", beverage.Large, "Milk")
	require.NoError(t, err)

	assert.InDelta(t, 0.99+2.99+0.5, item.Cost(), 1e-9)
	assert.Equal(t, beverage.Large, beverage.Root(item).Size())

	_, err = New().BuildSized("Tea", beverage.Size(9))
	assert.Equal(t, cerrors.ErrCodeInvalidRequest, cerrors.CodeOf(err))
}

func TestBuildUnknown(t *testing.T) {
	r := New()

	_, err := r.Build("Mocha")
	require.Error(t, err)
	assert.Equal(t, cerrors.ErrCodeNotFound, cerrors.CodeOf(err))

	_, err = r.Build("Tea", "Sugar", "Ketchup")
	require.Error(t, err)
	assert.Equal(t, cerrors.ErrCodeNotFound, cerrors.CodeOf(err))
}

func TestRegisterDuplicate(t *testing.T) {
	r := New()

	err := r.RegisterCondiment("Milk", beverage.AddMilk)
	assert.Equal(t, cerrors.ErrCodeInvalidRequest, cerrors.CodeOf(err))

	err = r.RegisterBase("", nil)
	assert.Equal(t, cerrors.ErrCodeInvalidRequest, cerrors.CodeOf(err))
}

func TestRegisterNewCondimentWithoutTouchingBuiltins(t *testing.T) {
	r := New()
	require.NoError(t, r.RegisterCondiment("Honey", func(i beverage.SizedItem) beverage.SizedItem {
		return beverage.NewCondiment(i, "Honey", 0.4)
	}))

	item, err := r.Build("Tea", "Honey", "Milk")
	require.NoError(t, err)
	assert.Equal(t, "Tea with Honey with Milk", item.Description())
	assert.InDelta(t, 0.99+0.99+0.4+0.5, item.Cost(), 1e-9)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	doc := `
bases:
  - name: Espresso
    price: 3.49
  - name: ColdBrew
    price: 3.99
    size: large
condiments:
  - name: Caramel
    price: 0.6
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	r := New()
	require.NoError(t, r.LoadFile(path))
	assert.Contains(t, r.Bases(), "Espresso")
	assert.Contains(t, r.Condiments(), "Caramel")

	item, err := r.Build("Espresso", "Caramel", "Milk")
	require.NoError(t, err)
	assert.Equal(t, "Espresso with Caramel with Milk", item.Description())
	assert.InDelta(t, 3.49+0.99+0.6+0.5, item.Cost(), 1e-9)

	cold, err := r.Build("ColdBrew")
	require.NoError(t, err)
	assert.Equal(t, beverage.Large, cold.Size())
	assert.InDelta(t, 3.99+2.99, cold.Cost(), 1e-9)

	// loading twice collides with the entries just registered
	err = r.LoadFile(path)
	assert.Equal(t, cerrors.ErrCodeInvalidRequest, cerrors.CodeOf(err))
}

func TestLoadFileMissing(t *testing.T) {
	err := New().LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, cerrors.ErrCodeInvalidRequest, cerrors.CodeOf(err))
}

func TestLoadRejectsWholeCatalogOnCollision(t *testing.T) {
	tests := []struct {
		name string
		def  domain.CatalogDefinition
	}{
		{
			name: "base already registered",
			def: domain.CatalogDefinition{
				Bases: []domain.CatalogEntry{{Name: "Espresso", Price: 3.49}, {Name: "HouseBlend", Price: 1}},
			},
		},
		{
			name: "condiment already registered",
			def: domain.CatalogDefinition{
				Bases:      []domain.CatalogEntry{{Name: "Espresso", Price: 3.49}},
				Condiments: []domain.CatalogEntry{{Name: "Honey", Price: 0.4}, {Name: "Milk", Price: 0.1}},
			},
		},
		{
			name: "repeated within the file",
			def: domain.CatalogDefinition{
				Condiments: []domain.CatalogEntry{{Name: "Honey", Price: 0.4}, {Name: "Honey", Price: 0.5}},
			},
		},
		{
			name: "entry without a name",
			def: domain.CatalogDefinition{
				Bases: []domain.CatalogEntry{{Name: "Espresso", Price: 3.49}, {Price: 1}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			err := r.Load(&tt.def)
			require.Error(t, err)
			assert.Equal(t, cerrors.ErrCodeInvalidRequest, cerrors.CodeOf(err))

			assert.Equal(t, []string{"DarkRoast", "HouseBlend", "Tea"}, r.Bases())
			assert.Equal(t, []string{"Cream", "Milk", "Sugar", "WhipCream"}, r.Condiments())
		})
	}
}
