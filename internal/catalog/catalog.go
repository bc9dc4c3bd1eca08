// Package catalog is the menu: a registry of base drinks and condiments by
// name. Built-ins are registered by New; more can be registered in code or
// loaded from a YAML file without touching existing entries.
package catalog

import (
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/Victor-armando18/beverage-commercial/internal/domain"
	cerrors "github.com/Victor-armando18/beverage-commercial/internal/errors"
	"github.com/Victor-armando18/beverage-commercial/internal/infrastructure/yaml"
	"github.com/Victor-armando18/beverage-commercial/pkg/beverage"
)

// BaseFactory builds a base drink of the given size.
type BaseFactory func(size beverage.Size) beverage.SizedItem

type Registry struct {
	mu         sync.RWMutex
	bases      map[string]BaseFactory
	condiments map[string]beverage.Wrapper
}

// New returns a registry holding HouseBlend, DarkRoast, Tea and the four
// built-in condiments.
func New() *Registry {
	r := NewEmpty()
	r.mustRegisterBase("HouseBlend", func(s beverage.Size) beverage.SizedItem {
		return beverage.NewHouseBlend(beverage.WithSize(s))
	})
	r.mustRegisterBase("DarkRoast", func(s beverage.Size) beverage.SizedItem {
		return beverage.NewDarkRoast(beverage.WithSize(s))
	})
	r.mustRegisterBase("Tea", func(s beverage.Size) beverage.SizedItem {
		return beverage.NewTea(beverage.WithSize(s))
	})
	r.mustRegisterCondiment("Sugar", beverage.AddSugar)
	r.mustRegisterCondiment("Cream", beverage.AddCream)
	r.mustRegisterCondiment("Milk", beverage.AddMilk)
	r.mustRegisterCondiment("WhipCream", beverage.AddWhipCream)
	return r
}

// NewEmpty returns a registry with no entries.
func NewEmpty() *Registry {
	return &Registry{
		bases:      make(map[string]BaseFactory),
		condiments: make(map[string]beverage.Wrapper),
	}
}

func (r *Registry) RegisterBase(name string, factory BaseFactory) error {
	if name == "" || factory == nil {
		return cerrors.New(cerrors.ErrCodeInvalidRequest, "base drink needs a name and a factory")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bases[name]; ok {
		return cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest, "base drink already registered",
			map[string]any{"name": name})
	}
	r.bases[name] = factory
	return nil
}

func (r *Registry) RegisterCondiment(name string, wrap beverage.Wrapper) error {
	if name == "" || wrap == nil {
		return cerrors.New(cerrors.ErrCodeInvalidRequest, "condiment needs a name and a wrapper")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.condiments[name]; ok {
		return cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest, "condiment already registered",
			map[string]any{"name": name})
	}
	r.condiments[name] = wrap
	return nil
}

func (r *Registry) mustRegisterBase(name string, factory BaseFactory) {
	if err := r.RegisterBase(name, factory); err != nil {
		panic(err)
	}
}

func (r *Registry) mustRegisterCondiment(name string, wrap beverage.Wrapper) {
	if err := r.RegisterCondiment(name, wrap); err != nil {
		panic(err)
	}
}

// Build creates a Small base drink and wraps it with condiments in order.
func (r *Registry) Build(base string, condiments ...string) (beverage.SizedItem, error) {
	return r.BuildSized(base, beverage.Small, condiments...)
}

func (r *Registry) BuildSized(base string, size beverage.Size, condiments ...string) (beverage.SizedItem, error) {
	if !size.IsValid() {
		return nil, cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest, "invalid size",
			map[string]any{"size": int(size)})
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.bases[base]
	if !ok {
		return nil, cerrors.NewWithContext(cerrors.ErrCodeNotFound, "unknown base drink",
			map[string]any{"name": base})
	}

	wrappers := make([]beverage.Wrapper, 0, len(condiments))
	for _, name := range condiments {
		wrap, ok := r.condiments[name]
		if !ok {
			return nil, cerrors.NewWithContext(cerrors.ErrCodeNotFound, "unknown condiment",
				map[string]any{"name": name})
		}
		wrappers = append(wrappers, wrap)
	}

	return beverage.Wrap(factory(size), wrappers...), nil
}

// Bases returns the registered base drink names, sorted.
func (r *Registry) Bases() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.bases)
}

// Condiments returns the registered condiment names, sorted.
func (r *Registry) Condiments() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.condiments)
}

// LoadFile registers every entry of a YAML catalog file.
func (r *Registry) LoadFile(path string) error {
	def, err := yaml.LoadCatalog(path)
	if err != nil {
		return cerrors.WrapWithContext(cerrors.ErrCodeInvalidRequest, "failed to load catalog", err,
			map[string]any{"path": path})
	}
	if err := r.Load(def); err != nil {
		return err
	}
	slog.Info("catalog loaded", "path", path, "bases", len(def.Bases), "condiments", len(def.Condiments))
	return nil
}

// Load registers the entries of def. A base with a size in the catalog always
// uses that size; otherwise the requested size applies. Nothing is registered
// unless every entry is new.
func (r *Registry) Load(def *domain.CatalogDefinition) error {
	bases := make(map[string]BaseFactory, len(def.Bases))
	for _, e := range def.Bases {
		entry := e
		if err := checkEntry("base drink", entry.Name, bases); err != nil {
			return err
		}
		bases[entry.Name] = func(s beverage.Size) beverage.SizedItem {
			if entry.Size != nil {
				s = *entry.Size
			}
			return beverage.NewBase(entry.Name, entry.Price, beverage.WithSize(s))
		}
	}
	condiments := make(map[string]beverage.Wrapper, len(def.Condiments))
	for _, e := range def.Condiments {
		entry := e
		if err := checkEntry("condiment", entry.Name, condiments); err != nil {
			return err
		}
		condiments[entry.Name] = func(inner beverage.SizedItem) beverage.SizedItem {
			return beverage.NewCondiment(inner, entry.Name, entry.Price)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for name := range bases {
		if err := checkEntry("base drink", name, r.bases); err != nil {
			return err
		}
	}
	for name := range condiments {
		if err := checkEntry("condiment", name, r.condiments); err != nil {
			return err
		}
	}
	maps.Copy(r.bases, bases)
	maps.Copy(r.condiments, condiments)
	return nil
}

func checkEntry[V any](kind, name string, registered map[string]V) error {
	if name == "" {
		return cerrors.New(cerrors.ErrCodeInvalidRequest, kind+" needs a name")
	}
	if _, ok := registered[name]; ok {
		return cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest, kind+" already registered",
			map[string]any{"name": name})
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
