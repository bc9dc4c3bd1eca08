package domain

import (
	"errors"

	"github.com/google/uuid"

	"github.com/Victor-armando18/beverage-commercial/pkg/beverage"
)

// Order is a set of priced drinks run through a rule pack.
type Order struct {
	ID                 string             `json:"id"`
	Currency           string             `json:"currency"`
	RulesVersion       string             `json:"rulesVersion"`
	Lines              []OrderLine        `json:"lines"`
	BaseValue          float64            `json:"baseValue"`
	DiscountPercentage float64            `json:"discountPercentage"`
	DiscountValue      float64            `json:"discountValue"`
	DiscountPerCup     float64            `json:"discountPerCup"`
	AppliedTaxes       map[string]float64 `json:"appliedTaxes,omitempty"`
	TotalItems         int                `json:"totalItems"`
	TotalValue         float64            `json:"totalValue"`
}

// OrderLine is a snapshot of a drink chain: the chain itself is not
// serializable, its description and cost are.
type OrderLine struct {
	Description string        `json:"description"`
	Base        string        `json:"base"`
	Size        beverage.Size `json:"size"`
	Condiments  int           `json:"condiments"`
	UnitCost    float64       `json:"unitCost"`
	Qty         int           `json:"qty"`
}

// NewOrder creates an order with a fresh ID.
func NewOrder(currency string, lines ...OrderLine) Order {
	return Order{
		ID:       uuid.NewString(),
		Currency: currency,
		Lines:    lines,
	}
}

// NewOrderLine snapshots item. Size is read from the base of the chain since
// condiments always report the default size.
func NewOrderLine(item beverage.SizedItem, qty int) OrderLine {
	root := beverage.Root(item)
	return OrderLine{
		Description: item.Description(),
		Base:        root.Description(),
		Size:        root.Size(),
		Condiments:  beverage.Depth(item),
		UnitCost:    item.Cost(),
		Qty:         qty,
	}
}

func (l OrderLine) Total() float64 {
	return l.UnitCost * float64(l.Qty)
}

// RulePackDefinition is a versioned set of pricing rules.
type RulePackDefinition struct {
	Version     string       `json:"version" yaml:"version"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Rules       []RuleConfig `json:"rules" yaml:"rules"`
}

type RuleConfig struct {
	ID           string         `json:"id" yaml:"id"`
	Phase        string         `json:"phase" yaml:"phase"`
	Logic        map[string]any `json:"logic" yaml:"logic"`
	OutputKey    string         `json:"output_key,omitempty" yaml:"output_key,omitempty"`
	ErrorMessage string         `json:"error_message,omitempty" yaml:"error_message,omitempty"`
}

// Phases in execution order.
const (
	PhaseBaseline    = "baseline"
	PhaseOrderAdjust = "orderAdjust"
	PhaseTaxes       = "taxes"
	PhaseTotals      = "totals"
	PhaseGuards      = "guards"
)

func Phases() []string {
	return []string{PhaseBaseline, PhaseOrderAdjust, PhaseTaxes, PhaseTotals, PhaseGuards}
}

type EngineResult struct {
	FinalOrder    Order            `json:"finalOrder"`
	TotalValue    float64          `json:"totalValue"`
	StateFragment map[string]any   `json:"stateFragment"`
	Delta         map[string]any   `json:"delta,omitempty"`
	ServerDelta   bool             `json:"serverDelta"`
	RulesVersion  string           `json:"rulesVersion"`
	GuardsHit     []GuardViolation `json:"guardsHit,omitempty"`
	ExecutionLog  []ExecutionStep  `json:"executionLog"`
}

type ExecutionStep struct {
	Phase  string `json:"phase"`
	RuleID string `json:"ruleId"`
	Action string `json:"action"`
}

type GuardViolation struct {
	RuleID  string `json:"ruleId"`
	Reason  string `json:"reason"`
	Context string `json:"context"`
}

var ErrRuleExecutionFailed = errors.New("rule execution failed")
