package interfaces

import (
	"context"

	"github.com/Victor-armando18/beverage-commercial/internal/domain"
)

// RulePackLoader loads versioned rule packs (embedded, from disk, etc.).
type RulePackLoader interface {
	Load(ctx context.Context, version string) (*domain.RulePackDefinition, error)
}

// RuleExecutor evaluates a single JsonLogic rule against contextVars.
type RuleExecutor interface {
	Execute(ctx context.Context, ruleData map[string]any, contextVars map[string]any) (any, error)
	RegisterCustomOperator(name string, logic func(args ...any) any)
}

// PricingFacade prices an order against a rule pack version.
type PricingFacade interface {
	PriceOrder(ctx context.Context, order domain.Order, rulePackVersion string) (*domain.EngineResult, error)
}
