package yaml

import (
	"fmt"
	"os"

	"github.com/Victor-armando18/beverage-commercial/internal/domain"

	"gopkg.in/yaml.v3"
)

func LoadRulePack(path string) (*domain.RulePackDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeRulePack(data)
}

// DecodeRulePack accepts YAML or JSON.
func DecodeRulePack(data []byte) (*domain.RulePackDefinition, error) {
	var pack domain.RulePackDefinition
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("failed to decode rule pack: %w", err)
	}
	if pack.Version == "" {
		return nil, fmt.Errorf("rule pack has no version")
	}
	for i, r := range pack.Rules {
		if r.ID == "" || r.Phase == "" {
			return nil, fmt.Errorf("rule %d: id and phase are required", i)
		}
	}
	return &pack, nil
}

func LoadCatalog(path string) (*domain.CatalogDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeCatalog(data)
}

func DecodeCatalog(data []byte) (*domain.CatalogDefinition, error) {
	var def domain.CatalogDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	for _, e := range append(append([]domain.CatalogEntry{}, def.Bases...), def.Condiments...) {
		if e.Name == "" {
			return nil, fmt.Errorf("catalog entry without a name")
		}
		if e.Price < 0 {
			return nil, fmt.Errorf("catalog entry %q has a negative price", e.Name)
		}
	}
	return &def, nil
}
